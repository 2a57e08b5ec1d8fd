package pricing

import (
	"fmt"

	"pizzeria/internal/catalog"
)

// PricedOrder is the shared price-query capability. A bare order
// satisfies it, and so does every topping wrapped around one, so
// chains of any length compose uniformly.
type PricedOrder interface {
	Price() float64
	Description() string
}

// BaseOrder is the terminal of a wrapper chain: a pizza of a given
// size with no toppings.
type BaseOrder struct {
	size string
	base float64
}

func NewBaseOrder(cat *catalog.Catalog, size string) (*BaseOrder, error) {
	base, err := cat.SizePrice(size)
	if err != nil {
		return nil, err
	}
	return &BaseOrder{size: size, base: base}, nil
}

func (b *BaseOrder) Price() float64 {
	return b.base
}

func (b *BaseOrder) Description() string {
	return b.size + " pizza"
}

type toppingWrapper struct {
	inner     PricedOrder
	name      string
	increment float64
}

// WithTopping wraps inner with one accepted topping. An unknown
// topping fails with catalog.ErrUnknownTopping and leaves the chain
// as it was.
func WithTopping(cat *catalog.Catalog, inner PricedOrder, name string) (PricedOrder, error) {
	increment, err := cat.ToppingPrice(name)
	if err != nil {
		return nil, err
	}
	return &toppingWrapper{inner: inner, name: name, increment: increment}, nil
}

func (w *toppingWrapper) Price() float64 {
	return w.inner.Price() + w.increment
}

func (w *toppingWrapper) Description() string {
	return fmt.Sprintf("%s, %s", w.inner.Description(), w.name)
}
