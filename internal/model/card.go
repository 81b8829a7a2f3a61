package model

import "time"

// Card is a single item/feature with a title, description and price,
// scoped to exactly one product.
//
// WHY Price float64?
// Prices are stored as REAL in the database and travel as plain JSON numbers
// on the wire. Exact money arithmetic only matters inside Buy mode, and the
// engine converts to decimal there — keeping the model and wire shape as
// simple numbers.
type Card struct {
	ID          int64     `json:"id"          db:"id"`
	ProductID   int64     `json:"product_id"  db:"product_id"`
	Title       string    `json:"title"       db:"title"`
	Description string    `json:"description" db:"description"` // may be empty
	Price       float64   `json:"price"       db:"price"`       // non-negative
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
}
