package pricing

import "pizzeria/internal/catalog"

// Order is the flat-list accumulator: a size plus the toppings that
// passed catalog validation, in the order they were added.
type Order struct {
	cat      *catalog.Catalog
	size     string
	base     float64
	toppings []string
}

func NewOrder(cat *catalog.Catalog, size string) (*Order, error) {
	base, err := cat.SizePrice(size)
	if err != nil {
		return nil, err
	}
	return &Order{cat: cat, size: size, base: base}, nil
}

// AddTopping validates name against the catalog. On success the
// topping is appended; duplicates are allowed and each occurrence
// is charged. On failure the order is left untouched and the
// catalog error is returned for the caller to report.
func (o *Order) AddTopping(name string) error {
	if _, err := o.cat.ToppingPrice(name); err != nil {
		return err
	}
	o.toppings = append(o.toppings, name)
	return nil
}

func (o *Order) Size() string {
	return o.size
}

// Toppings returns a copy of the accepted topping list.
func (o *Order) Toppings() []string {
	out := make([]string, len(o.toppings))
	copy(out, o.toppings)
	return out
}

// Total sums the base price plus every accepted topping's increment.
// Entries were validated on add, so lookups here cannot fail.
func (o *Order) Total() float64 {
	total := o.base
	for _, name := range o.toppings {
		increment, _ := o.cat.ToppingPrice(name)
		total += increment
	}
	return total
}
