package usecase

import (
	"context"
	"io"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
)

// TaxonomyRepository хранит узлы таксономий (категории и метки).
type TaxonomyRepository interface {
	// Find ищет узел по имени и родителю. Отсутствие узла — e.ErrTermNotFound.
	Find(ctx context.Context, taxonomy, name string, parentID int64) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (int64, error)
	SetMeta(ctx context.Context, productID int64, key, value string) error
	// SetTerms заменяет связи товара с узлами указанной таксономии.
	SetTerms(ctx context.Context, productID int64, taxonomy string, termIDs []int64) error
}

type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
}

type ObjectRepository interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// SettingsRepository — именованные настройки магазина в виде JSON-значений.
type SettingsRepository interface {
	// Get читает значение в dst. found = false, если настройки нет.
	Get(ctx context.Context, name string, dst any) (bool, error)
	Set(ctx context.Context, name string, value any) error
	Delete(ctx context.Context, name string) error
}

type ShippingRepository interface {
	ListZoneMethods(ctx context.Context, zoneID int64) ([]domain.ShippingMethod, error)
	AddZoneMethod(ctx context.Context, zoneID int64, methodID string) (*domain.ShippingMethod, error)
}

// RunRegistry не даёт запустить два импорта одновременно и помнит результат последнего.
type RunRegistry interface {
	// Acquire занимает слот импорта на ttl. Если слот занят — e.ErrImportInProgress.
	Acquire(ctx context.Context, ttl time.Duration) (string, error)
	Release(ctx context.Context, token string) error
	SaveResult(ctx context.Context, res *ImportCatalogRes) error
	// LastResult возвращает итог последнего импорта или e.ErrNoImportRuns.
	LastResult(ctx context.Context) (*ImportCatalogRes, error)
}
