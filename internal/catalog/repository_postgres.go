package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Seed inserts the default prices for any label not already present.
// Existing rows win, so a price edited in the database survives restarts.
func (r *PostgresRepository) Seed(ctx context.Context) error {
	for label, price := range DefaultSizes {
		_, err := r.db.Exec(ctx, `
			INSERT INTO catalog_sizes (label, price)
			VALUES ($1, $2)
			ON CONFLICT (label) DO NOTHING
		`, label, price)
		if err != nil {
			return err
		}
	}

	for label, price := range DefaultToppings {
		_, err := r.db.Exec(ctx, `
			INSERT INTO catalog_toppings (label, price)
			VALUES ($1, $2)
			ON CONFLICT (label) DO NOTHING
		`, label, price)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *PostgresRepository) LoadSizes(ctx context.Context) (map[string]float64, error) {
	return r.loadPrices(ctx, `SELECT label, price FROM catalog_sizes`)
}

func (r *PostgresRepository) LoadToppings(ctx context.Context) (map[string]float64, error) {
	return r.loadPrices(ctx, `SELECT label, price FROM catalog_toppings`)
}

func (r *PostgresRepository) loadPrices(ctx context.Context, query string) (map[string]float64, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[string]float64)
	for rows.Next() {
		var (
			label string
			price float64
		)
		if err := rows.Scan(&label, &price); err != nil {
			return nil, err
		}
		prices[label] = price
	}

	return prices, rows.Err()
}
