package order

import (
	"context"
	"errors"
	"math"
	"testing"

	"pizzeria/internal/catalog"
	"pizzeria/internal/metrics"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	quotes  []Quote
	saveErr error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

func (m *MockRepository) Save(ctx context.Context, quote *Quote) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.quotes = append(m.quotes, *quote)
	return nil
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]Quote, error) {
	var out []Quote
	for _, q := range m.quotes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func newTestService(repo Repository) *Service {
	return NewService(catalog.Default(), repo, metrics.NewRegistry())
}

func TestPriceQuoteWorkedExample(t *testing.T) {
	repo := NewMockRepository()
	service := newTestService(repo)

	result, err := service.PriceQuote(
		context.Background(),
		"user-1",
		catalog.SizeMedium,
		[]string{"Cheese", "Tomatoes", "Onions"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.Quote.Total-9.75) > 1e-9 {
		t.Fatalf("total = %.2f, want 9.75", result.Quote.Total)
	}
	if result.TotalLine != "Total Pizza Price: $9.75" {
		t.Fatalf("total line = %q", result.TotalLine)
	}
	if len(result.Rejected) != 0 {
		t.Fatalf("unexpected rejections: %v", result.Rejected)
	}
	if len(repo.quotes) != 1 {
		t.Fatalf("expected 1 saved quote, got %d", len(repo.quotes))
	}
	if repo.quotes[0].ID == "" {
		t.Fatalf("saved quote has no id")
	}
}

func TestPriceQuoteRejectsUnknownTopping(t *testing.T) {
	repo := NewMockRepository()
	service := newTestService(repo)

	result, err := service.PriceQuote(
		context.Background(),
		"user-1",
		catalog.SizeMedium,
		[]string{"Pineapple", "Cheese"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.Quote.Total-8.50) > 1e-9 {
		t.Fatalf("total = %.2f, want 8.50", result.Quote.Total)
	}

	if len(result.Rejected) != 1 {
		t.Fatalf("expected 1 rejection, got %v", result.Rejected)
	}
	want := "Error: 'Pineapple' is not an available topping."
	if result.Rejected[0] != want {
		t.Fatalf("rejection = %q, want %q", result.Rejected[0], want)
	}

	// The rejected topping is excluded from the recorded quote.
	if len(result.Quote.Toppings) != 1 || result.Quote.Toppings[0] != "Cheese" {
		t.Fatalf("recorded toppings = %v", result.Quote.Toppings)
	}
}

func TestPriceQuoteUnknownSize(t *testing.T) {
	service := newTestService(NewMockRepository())

	_, err := service.PriceQuote(context.Background(), "user-1", "ExtraLarge", nil)
	if !errors.Is(err, catalog.ErrUnknownSize) {
		t.Fatalf("expected ErrUnknownSize, got %v", err)
	}
}

func TestPriceQuoteSaveFailure(t *testing.T) {
	repo := NewMockRepository()
	repo.saveErr = errors.New("db down")
	service := newTestService(repo)

	_, err := service.PriceQuote(context.Background(), "user-1", catalog.SizeSmall, nil)
	if err == nil {
		t.Fatalf("expected save error")
	}
}

func TestHistoryFiltersByUser(t *testing.T) {
	repo := NewMockRepository()
	service := newTestService(repo)

	ctx := context.Background()
	if _, err := service.PriceQuote(ctx, "user-1", catalog.SizeSmall, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.PriceQuote(ctx, "user-2", catalog.SizeLarge, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	quotes, err := service.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote for user-1, got %d", len(quotes))
	}
	if quotes[0].Size != catalog.SizeSmall {
		t.Fatalf("quote size = %s", quotes[0].Size)
	}
}
