package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует хранилище товаров и вариаций поверх PostgreSQL.
type ProductRepo struct {
	pool     tr.Querier
	txRunner usecase.TxRunner
}

func NewProductRepo(pool tr.Querier, txRunner usecase.TxRunner) *ProductRepo {
	return &ProductRepo{
		pool:     pool,
		txRunner: txRunner,
	}
}

// Save сохраняет товар вместе со связями категорий в одной транзакции и возвращает его ID.
// Новый товар вставляется с upsert по SKU, поэтому повторный импорт обновляет строки.
func (p *ProductRepo) Save(ctx context.Context, product *domain.Product) (int64, error) {
	model, err := converter.ProductToModel(product)
	if err != nil {
		return 0, err
	}

	// VALUES ($1 ... $26) в порядке ProductModel.Args
	insertQuery := `
		INSERT INTO products (
			parent_id, kind, sku, name, status, featured, catalog_visibility,
			short_description, description, regular_price, sale_price, tax_status, tax_class,
			manage_stock, stock_quantity, backorders, sold_individually,
			weight, length, width, height, reviews_allowed, purchase_note,
			image_id, attributes, variation_attributes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		ON CONFLICT (sku) WHERE sku <> ''
		DO UPDATE SET
			parent_id = EXCLUDED.parent_id,
			kind = EXCLUDED.kind,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			featured = EXCLUDED.featured,
			catalog_visibility = EXCLUDED.catalog_visibility,
			short_description = EXCLUDED.short_description,
			description = EXCLUDED.description,
			regular_price = EXCLUDED.regular_price,
			sale_price = EXCLUDED.sale_price,
			tax_status = EXCLUDED.tax_status,
			tax_class = EXCLUDED.tax_class,
			manage_stock = EXCLUDED.manage_stock,
			stock_quantity = EXCLUDED.stock_quantity,
			backorders = EXCLUDED.backorders,
			sold_individually = EXCLUDED.sold_individually,
			weight = EXCLUDED.weight,
			length = EXCLUDED.length,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			reviews_allowed = EXCLUDED.reviews_allowed,
			purchase_note = EXCLUDED.purchase_note,
			image_id = COALESCE(EXCLUDED.image_id, products.image_id),
			attributes = EXCLUDED.attributes,
			variation_attributes = EXCLUDED.variation_attributes,
			updated_at = NOW()
		RETURNING id;
	`

	updateQuery := `
		UPDATE products SET
			parent_id = $2, kind = $3, sku = $4, name = $5, status = $6, featured = $7,
			catalog_visibility = $8, short_description = $9, description = $10,
			regular_price = $11, sale_price = $12, tax_status = $13, tax_class = $14,
			manage_stock = $15, stock_quantity = $16, backorders = $17, sold_individually = $18,
			weight = $19, length = $20, width = $21, height = $22, reviews_allowed = $23,
			purchase_note = $24, image_id = $25, attributes = $26, variation_attributes = $27,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id;
	`

	var id int64
	err = p.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		q := tr.QuerierFromCtx(ctx, p.pool)

		var row pgx.Row
		if model.ID > 0 {
			row = q.QueryRow(ctx, updateQuery, append([]any{model.ID}, model.Args()...)...)
		} else {
			row = q.QueryRow(ctx, insertQuery, model.Args()...)
		}

		if err := row.Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return e.Wrap(whereami.WhereAmI(), e.ErrProductNotSaved)
			}
			return e.Wrap(whereami.WhereAmI(), err)
		}

		return replaceTerms(ctx, q, id, domain.TaxonomyCategory, product.CategoryIDs)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// SetMeta создаёт или обновляет мета-поле товара.
func (p *ProductRepo) SetMeta(ctx context.Context, productID int64, key, value string) error {
	query := `
		INSERT INTO product_meta (product_id, meta_key, meta_value) VALUES ($1, $2, $3)
		ON CONFLICT (product_id, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value;
	`

	if _, err := tr.QuerierFromCtx(ctx, p.pool).Exec(ctx, query, productID, key, value); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// SetTerms заменяет связи товара с узлами таксономии.
func (p *ProductRepo) SetTerms(ctx context.Context, productID int64, taxonomy string, termIDs []int64) error {
	return p.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		return replaceTerms(ctx, tr.QuerierFromCtx(ctx, p.pool), productID, taxonomy, termIDs)
	})
}

func replaceTerms(ctx context.Context, q tr.Querier, productID int64, taxonomy string, termIDs []int64) error {
	deleteQuery := `DELETE FROM product_terms WHERE product_id = $1 AND taxonomy = $2;`
	if _, err := q.Exec(ctx, deleteQuery, productID, taxonomy); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if len(termIDs) == 0 {
		return nil
	}

	insertQuery := `
		INSERT INTO product_terms (product_id, term_id, taxonomy)
		SELECT $1, unnest($2::bigint[]), $3
		ON CONFLICT DO NOTHING;
	`
	if _, err := q.Exec(ctx, insertQuery, productID, termIDs, taxonomy); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
