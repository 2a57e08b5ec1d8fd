package order

import "time"

// Quote is one priced order, recorded after the total is computed.
type Quote struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Size      string    `json:"size"`
	Toppings  []string  `json:"toppings"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// Result is what a pricing request returns: the recorded quote plus
// the per-topping rejection messages for anything the catalog refused.
type Result struct {
	Quote     *Quote   `json:"quote"`
	Rejected  []string `json:"rejected,omitempty"`
	TotalLine string   `json:"total_line"`
}
