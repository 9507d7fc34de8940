package domain

import "time"

// Summary holds the cart totals shown at checkout.
type Summary struct {
	Items    int   `json:"items"`
	Subtotal Money `json:"subtotal"`
	Shipping Money `json:"shipping"`
	Tax      Money `json:"tax"`
	Total    Money `json:"total"`
}

// Order is the confirmation of a mock checkout. No payment data is kept.
type Order struct {
	ID       string     `json:"id"`
	Email    string     `json:"email"`
	Lines    []CartLine `json:"lines"`
	Summary  Summary    `json:"summary"`
	PlacedAt time.Time  `json:"placedAt"`
}
