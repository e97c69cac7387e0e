package domain

const (
	// EverywhereZoneID — зона доставки «везде»
	EverywhereZoneID int64 = 0

	MethodFlatRate = "flat_rate"
)

// ShippingMethod описывает способ доставки, подключённый к зоне
type ShippingMethod struct {
	InstanceID int64
	ZoneID     int64
	MethodID   string
	Order      int
	Enabled    bool
}

// FlatRateSettings — настройки фиксированной ставки доставки
type FlatRateSettings struct {
	Title     string `json:"title"`
	Cost      int    `json:"cost"`
	TaxStatus string `json:"tax_status"`
}

func DefaultFlatRateSettings() FlatRateSettings {
	return FlatRateSettings{
		Title:     "Flat Rate",
		Cost:      10,
		TaxStatus: "none",
	}
}
