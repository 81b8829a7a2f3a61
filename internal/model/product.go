// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// Product is the container for a set of cards being prioritized.
// Deleting a product cascades to its cards and sessions (and through the
// sessions, their snapshots) — the schema enforces this, not Go code.
//
// The `json:"..."` tags use snake_case because that is the wire contract the
// frontend speaks (product_id, created_at, ...). Keep every new field in the
// same convention.
type Product struct {
	ID        int64     `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
