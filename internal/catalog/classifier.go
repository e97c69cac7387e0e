package catalog

// Classified — результат классификации записей набора данных.
type Classified struct {
	// Products — товары верхнего уровня по SKU в порядке первого появления (последняя запись побеждает).
	Products *OrderedMap[string, Record]
	// Variations — вариации, сгруппированные по SKU родителя, в исходном порядке.
	Variations *OrderedMap[string, []Record]
}

// Classify разделяет записи на товары и вариации по колонке Type.
func Classify(records []Record) *Classified {
	res := &Classified{
		Products:   NewOrderedMap[string, Record](),
		Variations: NewOrderedMap[string, []Record](),
	}

	for _, rec := range records {
		if rec.Get(ColType) == TypeVariation {
			parent := rec.Get(ColParent)
			group, _ := res.Variations.Get(parent)
			res.Variations.Set(parent, append(group, rec))
			continue
		}

		res.Products.Set(rec.Get(ColSKU), rec)
	}

	return res
}

// VariationsOf возвращает вариации, сгруппированные под SKU родителя.
func (c *Classified) VariationsOf(sku string) []Record {
	group, _ := c.Variations.Get(sku)
	return group
}

// OrphanVariations считает вариации, чей родитель отсутствует среди товаров.
func (c *Classified) OrphanVariations() int {
	orphans := 0
	c.Variations.Range(func(parent string, group []Record) bool {
		if !c.Products.Has(parent) {
			orphans += len(group)
		}
		return true
	})

	return orphans
}
