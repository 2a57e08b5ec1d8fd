package pricing

import "fmt"

// FormatTotal renders the total line printed to the customer.
func FormatTotal(total float64) string {
	return fmt.Sprintf("Total Pizza Price: $%.2f", total)
}

// FormatRejection renders the error line for a topping that is not
// in the catalog.
func FormatRejection(name string) string {
	return fmt.Sprintf("Error: '%s' is not an available topping.", name)
}
