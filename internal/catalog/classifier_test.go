package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	data := "Type,SKU,Name,Parent\n" +
		"simple,a,First A,\n" +
		"variable,v,Hoodie,\n" +
		"variation,v-red,Red,v\n" +
		"simple,a,Second A,\n" +
		"variation,v-blue,Blue,v\n" +
		"variation,x-red,Orphan,missing\n" +
		"grouped,g,Group,\n"

	records, err := Parse(data)
	require.NoError(t, err)

	classified := Classify(records)

	assert.Equal(t, []string{"a", "v", "g"}, classified.Products.Keys())
	a, _ := classified.Products.Get("a")
	assert.Equal(t, "Second A", a.Get(ColName))

	assert.Equal(t, []string{"v", "missing"}, classified.Variations.Keys())
	group := classified.VariationsOf("v")
	require.Len(t, group, 2)
	assert.Equal(t, "v-red", group[0].Get(ColSKU))
	assert.Equal(t, "v-blue", group[1].Get(ColSKU))

	assert.Equal(t, 1, classified.OrphanVariations())

	classified.Products.Range(func(_ string, rec Record) bool {
		assert.NotEqual(t, TypeVariation, rec.Get(ColType))
		return true
	})
	classified.Variations.Range(func(_ string, group []Record) bool {
		for _, rec := range group {
			assert.Equal(t, TypeVariation, rec.Get(ColType))
		}
		return true
	})
}

func TestClassify_SampleDataset(t *testing.T) {
	records, err := Parse(SampleDataset())
	require.NoError(t, err)
	require.Len(t, records, 30)

	classified := Classify(records)

	kinds := map[string]int{}
	classified.Products.Range(func(_ string, rec Record) bool {
		kinds[rec.Get(ColType)]++
		return true
	})

	assert.Equal(t, 18, classified.Products.Len())
	assert.Equal(t, map[string]int{"simple": 14, "variable": 4}, kinds)

	variations := 0
	classified.Variations.Range(func(parent string, group []Record) bool {
		variations += len(group)
		assert.True(t, classified.Products.Has(parent), parent)
		return true
	})
	assert.Equal(t, 12, variations)
	assert.Zero(t, classified.OrphanVariations())
}
