package domain

// Attribute описывает атрибут вариативного товара
type Attribute struct {
	Name      string   `json:"name"`
	Options   []string `json:"options"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"` // используется для вариаций
}

func NewAttribute(name string, options []string, visible, variation bool) *Attribute {
	return &Attribute{
		Name:      name,
		Options:   options,
		Visible:   visible,
		Variation: variation,
	}
}
