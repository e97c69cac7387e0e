package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
)

// CATALOG USECASE

// ImportCatalogReq — запрос на импорт каталога.
type ImportCatalogReq struct {
	// Dataset — текст набора данных. Пустая строка — набор из конфигурации.
	Dataset string
}

// ImportCatalogRes — итог импорта каталога.
type ImportCatalogRes struct {
	SiteURL           string
	Products          int // товары верхнего уровня
	Variations        int
	Skipped           int // записи с неподдерживаемым типом
	DroppedVariations int // вариации без импортированного родителя
	StartedAt         time.Time
	FinishedAt        time.Time
}

// ProductImportedEvent — событие о сохранённом товаре каталога.
type ProductImportedEvent struct {
	ProductID  int64
	SKU        string
	Kind       domain.ProductKind
	Name       string
	Variations int
}

// BOOTSTRAP USECASE

// BootstrapRes перечисляет шаги, которые действительно изменили настройки магазина.
type BootstrapRes struct {
	Applied []string
}

// Имена настроек магазина
const (
	SettingPermalinkStructure     = "permalink_structure"
	SettingActivationRedirect     = "_wc_activation_redirect"
	SettingPreventWizardRedirect  = "prevent_setup_wizard_redirect"
	SettingCashOnDelivery         = "payment_cod_settings"
	settingFlatRateSettingsFormat = "shipping_flat_rate_%d_settings"

	PermalinkPostName = "/%postname%/"
)

// MAPPERS

func NewImportCatalogReq(dataset string) *ImportCatalogReq {
	return &ImportCatalogReq{Dataset: dataset}
}

func NewProductImportedEvent(product *domain.Product, variations int) *ProductImportedEvent {
	return &ProductImportedEvent{
		ProductID:  product.ID,
		SKU:        product.SKU,
		Kind:       product.Kind,
		Name:       product.Name,
		Variations: variations,
	}
}
