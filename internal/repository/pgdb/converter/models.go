package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// TermModel представляет запись таблицы terms в PostgreSQL.
type TermModel struct {
	ID        int64      `db:"id"`
	Taxonomy  string     `db:"taxonomy"`
	Name      string     `db:"name"`
	ParentID  int64      `db:"parent_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID                  int64               `db:"id"`
	ParentID            int64               `db:"parent_id"`
	Kind                string              `db:"kind"`
	SKU                 string              `db:"sku"`
	Name                string              `db:"name"`
	Status              string              `db:"status"`
	Featured            bool                `db:"featured"`
	CatalogVisibility   string              `db:"catalog_visibility"`
	ShortDescription    string              `db:"short_description"`
	Description         string              `db:"description"`
	RegularPrice        decimal.NullDecimal `db:"regular_price"`
	SalePrice           decimal.NullDecimal `db:"sale_price"`
	TaxStatus           string              `db:"tax_status"`
	TaxClass            string              `db:"tax_class"`
	ManageStock         bool                `db:"manage_stock"`
	StockQuantity       *int64              `db:"stock_quantity"`
	Backorders          string              `db:"backorders"`
	SoldIndividually    bool                `db:"sold_individually"`
	Weight              decimal.NullDecimal `db:"weight"`
	Length              decimal.NullDecimal `db:"length"`
	Width               decimal.NullDecimal `db:"width"`
	Height              decimal.NullDecimal `db:"height"`
	ReviewsAllowed      bool                `db:"reviews_allowed"`
	PurchaseNote        string              `db:"purchase_note"`
	ImageID             *int64              `db:"image_id"`
	Attributes          []byte              `db:"attributes"`
	VariationAttributes []byte              `db:"variation_attributes"`
}

// MediaModel представляет запись таблицы media в PostgreSQL.
type MediaModel struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	FileName  string    `db:"file_name"`
	Bucket    string    `db:"bucket"`
	ObjectKey string    `db:"object_key"`
	MimeType  string    `db:"mime_type"`
	Size      int64     `db:"size"`
	SourceURL string    `db:"source_url"`
	CreatedAt time.Time `db:"created_at"`
}

// ShippingMethodModel представляет запись таблицы shipping_zone_methods в PostgreSQL.
type ShippingMethodModel struct {
	InstanceID int64  `db:"instance_id"`
	ZoneID     int64  `db:"zone_id"`
	MethodID   string `db:"method_id"`
	Order      int    `db:"method_order"`
	Enabled    bool   `db:"is_enabled"`
}
