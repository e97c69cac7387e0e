package converter

import (
	"encoding/json"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/jimlawless/whereami"
)

// TermToEntity преобразует запись terms в узел таксономии.
func TermToEntity(model *TermModel) *domain.Category {
	return &domain.Category{
		ID:        model.ID,
		Taxonomy:  model.Taxonomy,
		Name:      model.Name,
		ParentID:  model.ParentID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ProductToModel преобразует товар в запись products. Атрибуты сериализуются в JSONB.
func ProductToModel(entity *domain.Product) (*ProductModel, error) {
	attributes := entity.Attributes
	if attributes == nil {
		attributes = []domain.Attribute{}
	}
	attrs, err := json.Marshal(attributes)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	variationAttributes := entity.VariationAttributes
	if variationAttributes == nil {
		variationAttributes = map[string]string{}
	}
	varAttrs, err := json.Marshal(variationAttributes)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var imageID *int64
	if entity.ImageID > 0 {
		id := entity.ImageID
		imageID = &id
	}

	return &ProductModel{
		ID:                  entity.ID,
		ParentID:            entity.ParentID,
		Kind:                string(entity.Kind),
		SKU:                 entity.SKU,
		Name:                entity.Name,
		Status:              string(entity.Status),
		Featured:            entity.Featured,
		CatalogVisibility:   entity.CatalogVisibility,
		ShortDescription:    entity.ShortDescription,
		Description:         entity.Description,
		RegularPrice:        entity.RegularPrice,
		SalePrice:           entity.SalePrice,
		TaxStatus:           entity.TaxStatus,
		TaxClass:            entity.TaxClass,
		ManageStock:         entity.ManageStock,
		StockQuantity:       entity.StockQuantity,
		Backorders:          entity.Backorders,
		SoldIndividually:    entity.SoldIndividually,
		Weight:              entity.Weight,
		Length:              entity.Length,
		Width:               entity.Width,
		Height:              entity.Height,
		ReviewsAllowed:      entity.ReviewsAllowed,
		PurchaseNote:        entity.PurchaseNote,
		ImageID:             imageID,
		Attributes:          attrs,
		VariationAttributes: varAttrs,
	}, nil
}

// Args возвращает значения колонок в порядке productColumns.
func (m *ProductModel) Args() []any {
	return []any{
		m.ParentID, m.Kind, m.SKU, m.Name, m.Status, m.Featured, m.CatalogVisibility,
		m.ShortDescription, m.Description, m.RegularPrice, m.SalePrice, m.TaxStatus, m.TaxClass,
		m.ManageStock, m.StockQuantity, m.Backorders, m.SoldIndividually,
		m.Weight, m.Length, m.Width, m.Height, m.ReviewsAllowed, m.PurchaseNote,
		m.ImageID, m.Attributes, m.VariationAttributes,
	}
}

func MediaToModel(entity *domain.Asset) *MediaModel {
	return &MediaModel{
		ID:        entity.ID,
		Title:     entity.Title,
		FileName:  entity.FileName,
		Bucket:    entity.Bucket,
		ObjectKey: entity.ObjectKey,
		MimeType:  entity.MimeType,
		Size:      entity.Size,
		SourceURL: entity.SourceURL,
		CreatedAt: entity.CreatedAt,
	}
}

func MediaToEntity(model *MediaModel) *domain.Asset {
	return &domain.Asset{
		ID:        model.ID,
		Title:     model.Title,
		FileName:  model.FileName,
		Bucket:    model.Bucket,
		ObjectKey: model.ObjectKey,
		MimeType:  model.MimeType,
		Size:      model.Size,
		SourceURL: model.SourceURL,
		CreatedAt: model.CreatedAt,
	}
}

func ShippingMethodToEntity(model *ShippingMethodModel) *domain.ShippingMethod {
	return &domain.ShippingMethod{
		InstanceID: model.InstanceID,
		ZoneID:     model.ZoneID,
		MethodID:   model.MethodID,
		Order:      model.Order,
		Enabled:    model.Enabled,
	}
}
