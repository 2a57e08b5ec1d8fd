package order

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, quote *Quote) error {
	toppings, err := json.Marshal(quote.Toppings)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO quotes (id, user_id, size, toppings, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, quote.ID, quote.UserID, quote.Size, toppings, quote.Total, quote.CreatedAt)

	return err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Quote, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, size, toppings, total, created_at
		FROM quotes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []Quote
	for rows.Next() {
		var (
			q        Quote
			toppings []byte
		)
		if err := rows.Scan(&q.ID, &q.UserID, &q.Size, &toppings, &q.Total, &q.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(toppings, &q.Toppings); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}
