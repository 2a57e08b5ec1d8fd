package catalog

// Fixed size labels. Prices live in the catalog, not here.
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// Entry is one priced catalog row, used by the public catalog endpoint.
type Entry struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// DefaultSizes are the base prices seeded when the catalog tables are empty.
var DefaultSizes = map[string]float64{
	SizeSmall:  5.00,
	SizeMedium: 7.00,
	SizeLarge:  10.00,
}

// DefaultToppings are the topping increments seeded when the catalog tables
// are empty.
var DefaultToppings = map[string]float64{
	"Cheese":    1.50,
	"Tomatoes":  0.75,
	"Onions":    0.50,
	"Peppers":   0.80,
	"Mushrooms": 1.20,
	"Bacon":     2.00,
	"Olives":    0.70,
	"Chicken":   2.50,
}
