package domain

import "time"

const (
	TaxonomyCategory = "product_cat"
	TaxonomyTag      = "product_tag"

	// RootTermID — родитель корневых узлов таксономии
	RootTermID int64 = 0
)

// Category описывает узел таксономии (категорию или метку товара)
type Category struct {
	ID        int64
	Taxonomy  string
	Name      string
	ParentID  int64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCategory(name string, parentID int64) *Category {
	return &Category{
		Taxonomy: TaxonomyCategory,
		Name:     name,
		ParentID: parentID,
	}
}

func NewTag(name string) *Category {
	return &Category{
		Taxonomy: TaxonomyTag,
		Name:     name,
		ParentID: RootTermID,
	}
}
