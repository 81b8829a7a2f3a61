package model

import "time"

// Session is one participant's run of an exercise against a product's cards.
// ShowPrices gates whether Sort/Group views reveal card prices; Budget is the
// spending ceiling for Buy mode (default 100 at creation).
//
// A session does NOT snapshot the card set — its cards are always the owning
// product's current cards at read time.
type Session struct {
	ID         int64     `json:"id"          db:"id"`
	ProductID  int64     `json:"product_id"  db:"product_id"`
	UserName   string    `json:"user_name"   db:"user_name"`
	ShowPrices bool      `json:"show_prices" db:"show_prices"`
	Budget     float64   `json:"budget"      db:"budget"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// SessionSummary is a session joined with its owning product's name.
// This is what the session list endpoints return — the frontend shows
// "user_name (product_name)" rows without a second request.
type SessionSummary struct {
	Session
	ProductName string `json:"product_name" db:"product_name"`
}

// SessionDetail is the full facade read: the summary plus the product's
// current card set in creation order. Loading one of these is the precondition
// for running any exercise mode.
type SessionDetail struct {
	SessionSummary
	Cards []Card `json:"cards"`
}
