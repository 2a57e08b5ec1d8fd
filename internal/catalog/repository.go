package catalog

import "context"

// Repository defines where catalog prices are loaded from.
// The loaded maps are snapshotted into an immutable Catalog;
// nothing writes back after startup.
type Repository interface {
	LoadSizes(ctx context.Context) (map[string]float64, error)
	LoadToppings(ctx context.Context) (map[string]float64, error)
}

// Load reads both price sets and builds the catalog snapshot.
func Load(ctx context.Context, repo Repository) (*Catalog, error) {
	sizes, err := repo.LoadSizes(ctx)
	if err != nil {
		return nil, err
	}
	toppings, err := repo.LoadToppings(ctx)
	if err != nil {
		return nil, err
	}
	return New(sizes, toppings), nil
}
