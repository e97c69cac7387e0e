package converter

import (
	"testing"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductToModel(t *testing.T) {
	stock := int64(16)
	product := &domain.Product{
		ID:            3,
		Kind:          domain.KindVariable,
		SKU:           "woo-hoodie",
		Name:          "Hoodie",
		Status:        domain.StatusPublish,
		RegularPrice:  decimal.NewNullDecimal(decimal.RequireFromString("45")),
		StockQuantity: &stock,
		Attributes: []domain.Attribute{
			{Name: "Color", Options: []string{"Blue", "Red"}, Visible: true, Variation: true},
		},
	}

	model, err := ProductToModel(product)
	require.NoError(t, err)

	assert.Equal(t, "variable", model.Kind)
	assert.Equal(t, "publish", model.Status)
	assert.Nil(t, model.ImageID)
	assert.Equal(t, &stock, model.StockQuantity)
	assert.False(t, model.SalePrice.Valid)
	assert.JSONEq(t, `[{"name":"Color","options":["Blue","Red"],"position":0,"visible":true,"variation":true}]`, string(model.Attributes))
	assert.JSONEq(t, `{}`, string(model.VariationAttributes))
	assert.Len(t, model.Args(), 26)
}

func TestProductToModel_Variation(t *testing.T) {
	variation, err := domain.NewVariation(9)
	require.NoError(t, err)
	variation.ImageID = 4
	variation.VariationAttributes["color"] = "Red"

	model, err := ProductToModel(variation)
	require.NoError(t, err)

	assert.Equal(t, int64(9), model.ParentID)
	require.NotNil(t, model.ImageID)
	assert.Equal(t, int64(4), *model.ImageID)
	assert.JSONEq(t, `[]`, string(model.Attributes))
	assert.JSONEq(t, `{"color":"Red"}`, string(model.VariationAttributes))
}

func TestTermToEntity(t *testing.T) {
	term := TermToEntity(&TermModel{ID: 2, Taxonomy: domain.TaxonomyCategory, Name: "Hoodies", ParentID: 1})

	assert.Equal(t, &domain.Category{ID: 2, Taxonomy: "product_cat", Name: "Hoodies", ParentID: 1}, term)
}
