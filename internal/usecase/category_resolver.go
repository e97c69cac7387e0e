package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/storefront-seeder/internal/catalog"
	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
)

// CategoryResolver находит или создаёт узлы таксономии по иерархическому пути.
type CategoryResolver struct {
	taxonomyRepo TaxonomyRepository
	logger       logger.Logger
}

func NewCategoryResolver(taxonomyRepo TaxonomyRepository, logger logger.Logger) *CategoryResolver {
	return &CategoryResolver{
		taxonomyRepo: taxonomyRepo,
		logger:       logger,
	}
}

// Resolve разбирает путь "A > B > C" и возвращает ID узлов слева направо.
// Каждый узел ищется по имени и родителю и создаётся только при отсутствии.
// При ошибке хранилища сегмент и все следующие пропускаются: возвращаются уже найденные ID и ошибка.
func (c *CategoryResolver) Resolve(ctx context.Context, path string) ([]int64, error) {
	const op = "CategoryResolver.Resolve"

	segments := catalog.SplitCategoryPath(path)
	ids := make([]int64, 0, len(segments))

	parentID := domain.RootTermID
	for _, name := range segments {
		category, err := c.findOrCreate(ctx, domain.NewCategory(name, parentID))
		if err != nil {
			return ids, e.Wrap(fmt.Sprintf("%s: segment %q", op, name), err)
		}

		ids = append(ids, category.ID)
		parentID = category.ID
	}

	return ids, nil
}

// ResolveTags находит или создаёт метки в корне таксономии меток.
// Метка, которую не удалось сохранить, пропускается, остальные возвращаются вместе с ошибкой.
func (c *CategoryResolver) ResolveTags(ctx context.Context, names []string) ([]int64, error) {
	const op = "CategoryResolver.ResolveTags"

	var (
		ids  = make([]int64, 0, len(names))
		errs []error
	)
	for _, name := range names {
		tag, err := c.findOrCreate(ctx, domain.NewTag(name))
		if err != nil {
			errs = append(errs, fmt.Errorf("tag %q: %w", name, err))
			continue
		}

		ids = append(ids, tag.ID)
	}

	if len(errs) > 0 {
		return ids, e.Wrap(op, errors.Join(errs...))
	}

	return ids, nil
}

// findOrCreate возвращает существующий узел с тем же именем и родителем или создаёт новый.
func (c *CategoryResolver) findOrCreate(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category.Name == "" {
		return nil, e.ErrEmptyCategoryName
	}

	found, err := c.taxonomyRepo.Find(ctx, category.Taxonomy, category.Name, category.ParentID)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, e.ErrTermNotFound) {
		return nil, err
	}

	created, err := c.taxonomyRepo.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	c.logger.Debugf("created %s term %q (id=%d, parent=%d)", created.Taxonomy, created.Name, created.ID, created.ParentID)

	return created, nil
}
