package calculator

// CatalogItem is a preset appliance the UI offers in the "Add Appliance"
// dropdown. Wattages are typical nameplate values, not measurements.
type CatalogItem struct {
	Name  string  `json:"name"`
	Watts float64 `json:"watts"`
}

var catalog = []CatalogItem{
	{Name: "LED Bulb", Watts: 10},
	{Name: "Ceiling Fan", Watts: 75},
	{Name: "Standing Fan", Watts: 50},
	{Name: "TV (LED 42\")", Watts: 80},
	{Name: "Laptop", Watts: 65},
	{Name: "Refrigerator (Medium)", Watts: 150},
	{Name: "Deep Freezer", Watts: 200},
	{Name: "Air Conditioner (1HP)", Watts: 1000},
	{Name: "Air Conditioner (1.5HP)", Watts: 1500},
	{Name: "Washing Machine", Watts: 500},
	{Name: "Microwave", Watts: 1000},
	{Name: "Water Pump (1HP)", Watts: 750},
	{Name: "Phone Charger", Watts: 10},
	{Name: "Decoder/Sound System", Watts: 50},
}

// Catalog returns the preset appliance list.
func Catalog() []CatalogItem {
	out := make([]CatalogItem, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogLookup finds a preset by name, or nil if there is none.
func CatalogLookup(name string) *CatalogItem {
	for i := range catalog {
		if catalog[i].Name == name {
			item := catalog[i]
			return &item
		}
	}
	return nil
}
