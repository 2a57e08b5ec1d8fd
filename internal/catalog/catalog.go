package catalog

import (
	"errors"
	"sort"
)

var (
	ErrUnknownSize    = errors.New("unknown pizza size")
	ErrUnknownTopping = errors.New("unknown topping")
)

// Catalog is an immutable snapshot of size and topping prices.
// It is built once at startup and shared read-only by pricing.
type Catalog struct {
	sizes    map[string]float64
	toppings map[string]float64
}

// New copies the given maps so later mutation of the arguments
// cannot leak into the catalog.
func New(sizes, toppings map[string]float64) *Catalog {
	c := &Catalog{
		sizes:    make(map[string]float64, len(sizes)),
		toppings: make(map[string]float64, len(toppings)),
	}
	for k, v := range sizes {
		c.sizes[k] = v
	}
	for k, v := range toppings {
		c.toppings[k] = v
	}
	return c
}

// Default builds a catalog from the seed prices, for the console
// calculator and for tests that do not go through a repository.
func Default() *Catalog {
	return New(DefaultSizes, DefaultToppings)
}

func (c *Catalog) SizePrice(label string) (float64, error) {
	price, ok := c.sizes[label]
	if !ok {
		return 0, ErrUnknownSize
	}
	return price, nil
}

func (c *Catalog) ToppingPrice(label string) (float64, error) {
	price, ok := c.toppings[label]
	if !ok {
		return 0, ErrUnknownTopping
	}
	return price, nil
}

// Sizes returns the size entries sorted by price ascending,
// so Small/Medium/Large come out in menu order.
func (c *Catalog) Sizes() []Entry {
	return sortedEntries(c.sizes, byPrice)
}

// Toppings returns the topping entries sorted by label.
func (c *Catalog) Toppings() []Entry {
	return sortedEntries(c.toppings, byLabel)
}

type entryOrder int

const (
	byLabel entryOrder = iota
	byPrice
)

func sortedEntries(m map[string]float64, order entryOrder) []Entry {
	entries := make([]Entry, 0, len(m))
	for label, price := range m {
		entries = append(entries, Entry{Label: label, Price: price})
	}
	sort.Slice(entries, func(i, j int) bool {
		if order == byPrice {
			return entries[i].Price < entries[j].Price
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}
