package catalog

import "context"

// InMemoryRepository serves the default prices without a database.
// Used by tests and by the console calculator.
type InMemoryRepository struct {
	sizes    map[string]float64
	toppings map[string]float64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		sizes:    DefaultSizes,
		toppings: DefaultToppings,
	}
}

func (r *InMemoryRepository) LoadSizes(ctx context.Context) (map[string]float64, error) {
	return r.sizes, nil
}

func (r *InMemoryRepository) LoadToppings(ctx context.Context) (map[string]float64, error) {
	return r.toppings, nil
}
