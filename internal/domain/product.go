package domain

import (
	"time"

	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/shopspring/decimal"
)

// ProductKind — тип товара в каталоге
type ProductKind string

const (
	KindSimple    ProductKind = "simple"
	KindVariable  ProductKind = "variable"
	KindVariation ProductKind = "variation"
)

// ProductStatus — статус публикации
type ProductStatus string

const (
	StatusPublish ProductStatus = "publish"
	StatusDraft   ProductStatus = "draft"
)

// Product описывает товар витрины. Вариации хранятся тем же типом с Kind = KindVariation
// и ссылкой на родителя в ParentID.
type Product struct {
	ID                int64
	ParentID          int64
	Kind              ProductKind
	SKU               string
	Name              string
	Status            ProductStatus
	Featured          bool
	CatalogVisibility string
	ShortDescription  string
	Description       string
	RegularPrice      decimal.NullDecimal
	SalePrice         decimal.NullDecimal
	TaxStatus         string
	TaxClass          string
	ManageStock       bool
	StockQuantity     *int64 // nil — остаток не ограничен
	Backorders        string // yes | no
	SoldIndividually  bool
	Weight            decimal.NullDecimal
	Length            decimal.NullDecimal
	Width             decimal.NullDecimal
	Height            decimal.NullDecimal
	ReviewsAllowed    bool
	PurchaseNote      string
	CategoryIDs       []int64
	ImageID           int64 // 0 — без изображения
	Attributes        []Attribute
	// Выбранные значения атрибутов вариации: ключ атрибута -> значение
	VariationAttributes map[string]string
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// NewProduct создаёт несохранённый товар верхнего уровня. Поддерживаются только simple и variable.
func NewProduct(kind ProductKind) (*Product, error) {
	switch kind {
	case KindSimple, KindVariable:
	default:
		return nil, e.ErrUnsupportedProductKind
	}

	return &Product{
		Kind:              kind,
		Status:            StatusDraft,
		CatalogVisibility: "visible",
		Backorders:        "no",
	}, nil
}

// NewVariation создаёт несохранённую вариацию, принадлежащую товару parentID.
func NewVariation(parentID int64) (*Product, error) {
	if parentID <= 0 {
		return nil, e.ErrProductNotSaved
	}

	return &Product{
		Kind:                KindVariation,
		ParentID:            parentID,
		Status:              StatusDraft,
		CatalogVisibility:   "visible",
		Backorders:          "no",
		VariationAttributes: make(map[string]string),
	}, nil
}

// IsVariation сообщает, является ли товар вариацией.
func (p *Product) IsVariation() bool {
	return p.Kind == KindVariation
}

// SetPublished переводит флаг публикации в статус.
func (p *Product) SetPublished(published bool) {
	if published {
		p.Status = StatusPublish
		return
	}
	p.Status = StatusDraft
}

// SetBackordersAllowed переводит флаг предзаказа в значение yes/no.
func (p *Product) SetBackordersAllowed(allowed bool) {
	if allowed {
		p.Backorders = "yes"
		return
	}
	p.Backorders = "no"
}
