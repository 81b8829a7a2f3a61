// Package repository declares the storage interfaces the service layer
// programs against. The sqlite subpackage is the concrete implementation;
// tests substitute in-memory fakes.
//
// Method names are entity-qualified (CreateProduct, not Create) because one
// concrete store implements all four interfaces on a single connection type.
package repository

import (
	"context"

	"github.com/sakif/feature-workshop/internal/model"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	// ListProducts returns all products, newest first.
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	// DeleteProduct removes the product and, through the schema's cascades,
	// its cards, sessions and those sessions' snapshots — atomically.
	DeleteProduct(ctx context.Context, id int64) error
}

type CardRepository interface {
	CreateCard(ctx context.Context, card *model.Card) error
	GetCard(ctx context.Context, id int64) (*model.Card, error)
	// ListCardsByProduct returns the product's cards in creation order. That
	// order is the stable display order for the card grid, unlike the other
	// lists which are newest-first.
	ListCardsByProduct(ctx context.Context, productID int64) ([]model.Card, error)
	UpdateCard(ctx context.Context, card *model.Card) error
	DeleteCard(ctx context.Context, id int64) error
}

// SessionRepository has no delete: sessions only disappear when their
// product is deleted.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id int64) (*model.Session, error)
	// GetSessionSummary is GetSession joined with the owning product's name.
	GetSessionSummary(ctx context.Context, id int64) (*model.SessionSummary, error)
	ListSessions(ctx context.Context) ([]model.SessionSummary, error)
	ListSessionsByProduct(ctx context.Context, productID int64) ([]model.Session, error)
	UpdateSession(ctx context.Context, session *model.Session) error
}

// SnapshotRepository is create/list only — snapshots are immutable.
type SnapshotRepository interface {
	CreateSnapshot(ctx context.Context, snapshot *model.Snapshot) error
	ListSnapshotsBySession(ctx context.Context, sessionID int64) ([]model.Snapshot, error)
}
