package order

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"pizzeria/internal/catalog"
	"pizzeria/internal/metrics"
	"pizzeria/internal/pricing"

	"github.com/google/uuid"
)

type Service struct {
	catalog *catalog.Catalog
	repo    Repository
	metrics *metrics.Registry
}

func NewService(cat *catalog.Catalog, repo Repository, reg *metrics.Registry) *Service {
	return &Service{catalog: cat, repo: repo, metrics: reg}
}

// PriceQuote prices (size, toppings) against the catalog, records the
// quote, and reports every rejected topping. Rejections are never
// fatal: the invalid topping contributes nothing and pricing goes on.
func (s *Service) PriceQuote(
	ctx context.Context,
	userID string,
	size string,
	toppings []string,
) (*Result, error) {

	flat, err := pricing.NewOrder(s.catalog, size)
	if err != nil {
		return nil, err
	}

	var rejected []string
	for _, name := range toppings {
		if err := flat.AddTopping(name); err != nil {
			if !errors.Is(err, catalog.ErrUnknownTopping) {
				return nil, err
			}
			rejected = append(rejected, pricing.FormatRejection(name))
			s.metrics.RejectedToppings.Inc()
		}
	}

	total := flat.Total()
	if err := s.crossCheck(size, flat.Toppings(), total); err != nil {
		return nil, err
	}

	quote := &Quote{
		ID:        uuid.New().String(),
		UserID:    userID,
		Size:      size,
		Toppings:  flat.Toppings(),
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, quote); err != nil {
		return nil, err
	}

	s.metrics.QuotesTotal.Inc()
	s.metrics.QuoteTotalPrice.Observe(total)

	return &Result{
		Quote:     quote,
		Rejected:  rejected,
		TotalLine: pricing.FormatTotal(total),
	}, nil
}

// crossCheck reprices the accepted toppings through the wrapper chain
// and fails loudly if the two accumulators ever disagree.
func (s *Service) crossCheck(size string, accepted []string, total float64) error {
	var chain pricing.PricedOrder
	chain, err := pricing.NewBaseOrder(s.catalog, size)
	if err != nil {
		return err
	}

	for _, name := range accepted {
		chain, err = pricing.WithTopping(s.catalog, chain, name)
		if err != nil {
			return err
		}
	}

	if math.Abs(chain.Price()-total) > 1e-9 {
		return fmt.Errorf(
			"pricing mismatch for %s %v: %.2f vs %.2f",
			size, accepted, chain.Price(), total,
		)
	}
	return nil
}

// History lists the quotes recorded for one user, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Quote, error) {
	return s.repo.ListByUser(ctx, userID)
}
