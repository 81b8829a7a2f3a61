package sqlite

import (
	"context"
	"testing"

	"github.com/sakif/feature-workshop/internal/model"
)

// Each test gets a fresh in-memory database: fast, isolated, destroyed when
// the connection closes. The helpers use t.Helper() so failures point at the
// calling test line, and t.Cleanup so teardown runs even in subtests.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestProduct(t *testing.T, db *DB, name string) *model.Product {
	t.Helper()
	product := &model.Product{Name: name}
	if err := db.CreateProduct(context.Background(), product); err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

func createTestCard(t *testing.T, db *DB, productID int64, title string, price float64) *model.Card {
	t.Helper()
	card := &model.Card{ProductID: productID, Title: title, Price: price}
	if err := db.CreateCard(context.Background(), card); err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}

func createTestSession(t *testing.T, db *DB, productID int64, userName string) *model.Session {
	t.Helper()
	session := &model.Session{ProductID: productID, UserName: userName, Budget: 100}
	if err := db.CreateSession(context.Background(), session); err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}
	return session
}

func createTestSnapshot(t *testing.T, db *DB, sessionID int64, mode, data string) *model.Snapshot {
	t.Helper()
	snapshot := &model.Snapshot{SessionID: sessionID, Mode: mode, Data: []byte(data)}
	if err := db.CreateSnapshot(context.Background(), snapshot); err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snapshot
}
