package main

import (
	"fmt"
	"os"

	"pizzeria/internal/catalog"
	"pizzeria/internal/pricing"
)

// pricecalc prices one pizza from the command line:
//
//	pricecalc Medium Cheese Tomatoes Onions
//
// Unknown toppings are reported and excluded; an unknown size is fatal.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: pricecalc <size> [topping ...]")
		os.Exit(2)
	}

	cat := catalog.Default()

	order, err := pricing.NewOrder(cat, os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: '%s' is not an available size.\n", os.Args[1])
		os.Exit(1)
	}

	for _, name := range os.Args[2:] {
		if err := order.AddTopping(name); err != nil {
			fmt.Println(pricing.FormatRejection(name))
		}
	}

	fmt.Println(pricing.FormatTotal(order.Total()))
}
