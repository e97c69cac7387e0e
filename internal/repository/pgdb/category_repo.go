package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует хранилище узлов таксономий (категорий и меток) поверх PostgreSQL.
type CategoryRepo struct {
	pool tr.Querier
}

func NewCategoryRepo(pool tr.Querier) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// Find ищет узел таксономии по имени и родителю.
func (c *CategoryRepo) Find(ctx context.Context, taxonomy, name string, parentID int64) (*domain.Category, error) {
	query := `
		SELECT id, taxonomy, name, parent_id, created_at, updated_at
		FROM terms
		WHERE taxonomy = $1 AND name = $2 AND parent_id = $3;
	`

	var model converter.TermModel
	err := tr.QuerierFromCtx(ctx, c.pool).QueryRow(ctx, query, taxonomy, name, parentID).
		Scan(
			&model.ID, &model.Taxonomy, &model.Name, &model.ParentID, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrTermNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.TermToEntity(&model), nil
}

// Create идемпотентно создаёт узел: при гонке возвращается уже существующая запись.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO terms (taxonomy, name, parent_id) VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT terms_taxonomy_parent_name_key
		DO UPDATE SET name = EXCLUDED.name
		RETURNING id, taxonomy, name, parent_id, created_at, updated_at;
	`

	var model converter.TermModel
	if err := tr.QuerierFromCtx(ctx, c.pool).QueryRow(ctx, query, category.Taxonomy, category.Name, category.ParentID).
		Scan(
			&model.ID, &model.Taxonomy, &model.Name, &model.ParentID, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.TermToEntity(&model), nil
}
