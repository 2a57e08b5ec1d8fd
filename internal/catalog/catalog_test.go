package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestLookupKnownLabels(t *testing.T) {
	cat := Default()

	price, err := cat.SizePrice(SizeMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 7.00 {
		t.Fatalf("Medium price = %.2f, want 7.00", price)
	}

	price, err = cat.ToppingPrice("Cheese")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 1.50 {
		t.Fatalf("Cheese price = %.2f, want 1.50", price)
	}
}

func TestLookupUnknownLabels(t *testing.T) {
	cat := Default()

	if _, err := cat.SizePrice("Gigantic"); !errors.Is(err, ErrUnknownSize) {
		t.Fatalf("expected ErrUnknownSize, got %v", err)
	}
	if _, err := cat.ToppingPrice("Pineapple"); !errors.Is(err, ErrUnknownTopping) {
		t.Fatalf("expected ErrUnknownTopping, got %v", err)
	}
}

func TestCatalogIsSnapshot(t *testing.T) {
	sizes := map[string]float64{SizeSmall: 5.00}
	cat := New(sizes, map[string]float64{})

	// Mutating the source map must not change the catalog.
	sizes[SizeSmall] = 99.00

	price, err := cat.SizePrice(SizeSmall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 5.00 {
		t.Fatalf("catalog leaked source mutation: price = %.2f", price)
	}
}

func TestSizesSortedByPrice(t *testing.T) {
	cat := Default()

	sizes := cat.Sizes()
	if len(sizes) != 3 {
		t.Fatalf("expected 3 sizes, got %d", len(sizes))
	}

	want := []string{SizeSmall, SizeMedium, SizeLarge}
	for i, entry := range sizes {
		if entry.Label != want[i] {
			t.Fatalf("sizes[%d] = %s, want %s", i, entry.Label, want[i])
		}
	}
}

func TestLoadFromRepository(t *testing.T) {
	cat, err := Load(context.Background(), NewInMemoryRepository())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cat.Toppings()) != len(DefaultToppings) {
		t.Fatalf(
			"expected %d toppings, got %d",
			len(DefaultToppings), len(cat.Toppings()),
		)
	}
}
