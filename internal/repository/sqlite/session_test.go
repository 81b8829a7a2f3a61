package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/feature-workshop/internal/apperror"
	"github.com/sakif/feature-workshop/internal/model"
)

func TestCreateSession(t *testing.T) {
	db := newTestDB(t)
	product := createTestProduct(t, db, "Widgets")

	session := &model.Session{
		ProductID:  product.ID,
		UserName:   "alice",
		ShowPrices: true,
		Budget:     60,
	}
	if err := db.CreateSession(context.Background(), session); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	if session.ID == 0 {
		t.Error("CreateSession() did not set session.ID")
	}
	if session.CreatedAt.IsZero() {
		t.Error("CreateSession() did not set session.CreatedAt")
	}

	got, err := db.GetSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.UserName != "alice" || !got.ShowPrices || got.Budget != 60 {
		t.Errorf("GetSession() = %+v, fields do not match what was created", got)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetSession(context.Background(), 9999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetSession() error = %v, want ErrNotFound", err)
	}
}

func TestGetSessionSummary_JoinsProductName(t *testing.T) {
	db := newTestDB(t)
	product := createTestProduct(t, db, "Widgets")
	session := createTestSession(t, db, product.ID, "alice")

	summary, err := db.GetSessionSummary(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("GetSessionSummary() error = %v", err)
	}
	if summary.ProductName != "Widgets" {
		t.Errorf("product_name = %q, want %q", summary.ProductName, "Widgets")
	}
	if summary.UserName != "alice" {
		t.Errorf("user_name = %q, want %q", summary.UserName, "alice")
	}
}

func TestListSessions_NewestFirstWithProductNames(t *testing.T) {
	db := newTestDB(t)
	widgets := createTestProduct(t, db, "Widgets")
	gadgets := createTestProduct(t, db, "Gadgets")
	first := createTestSession(t, db, widgets.ID, "alice")
	second := createTestSession(t, db, gadgets.ID, "bob")

	sessions, err := db.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("ListSessions() returned %d sessions, want 2", len(sessions))
	}
	if sessions[0].ID != second.ID || sessions[1].ID != first.ID {
		t.Errorf("ListSessions() order = [%d, %d], want newest first", sessions[0].ID, sessions[1].ID)
	}
	if sessions[0].ProductName != "Gadgets" || sessions[1].ProductName != "Widgets" {
		t.Errorf("product names = [%q, %q]", sessions[0].ProductName, sessions[1].ProductName)
	}
}

func TestListSessionsByProduct(t *testing.T) {
	db := newTestDB(t)
	widgets := createTestProduct(t, db, "Widgets")
	gadgets := createTestProduct(t, db, "Gadgets")
	mine := createTestSession(t, db, widgets.ID, "alice")
	createTestSession(t, db, gadgets.ID, "bob")

	sessions, err := db.ListSessionsByProduct(context.Background(), widgets.ID)
	if err != nil {
		t.Fatalf("ListSessionsByProduct() error = %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != mine.ID {
		t.Errorf("ListSessionsByProduct() = %+v, want just session %d", sessions, mine.ID)
	}
}

func TestUpdateSession(t *testing.T) {
	db := newTestDB(t)
	product := createTestProduct(t, db, "Widgets")
	session := createTestSession(t, db, product.ID, "alice")

	session.ShowPrices = true
	session.Budget = 250
	if err := db.UpdateSession(context.Background(), session); err != nil {
		t.Fatalf("UpdateSession() error = %v", err)
	}

	got, err := db.GetSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if !got.ShowPrices || got.Budget != 250 {
		t.Errorf("session after update = %+v", got)
	}
}

func TestUpdateSession_NotFound(t *testing.T) {
	db := newTestDB(t)
	product := createTestProduct(t, db, "Widgets")
	session := createTestSession(t, db, product.ID, "alice")

	session.ID = 9999
	if err := db.UpdateSession(context.Background(), session); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("UpdateSession() error = %v, want ErrNotFound", err)
	}
}
