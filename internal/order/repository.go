package order

import "context"

// Repository defines all database operations for quotes.
type Repository interface {
	Save(ctx context.Context, quote *Quote) error
	ListByUser(ctx context.Context, userID string) ([]Quote, error)
}
