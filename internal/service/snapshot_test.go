package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sakif/feature-workshop/internal/apperror"
)

func newSnapshotFixture(t *testing.T) (*SnapshotService, int64) {
	t.Helper()
	store := newMockStore()
	product, err := NewProductService(store, discardLogger).Create(context.Background(), "Widgets")
	if err != nil {
		t.Fatalf("fixture product: %v", err)
	}
	session, err := NewSessionService(store, store, store, discardLogger).
		Create(context.Background(), product.ID, "alice", false, nil)
	if err != nil {
		t.Fatalf("fixture session: %v", err)
	}
	return NewSnapshotService(store, store, discardLogger), session.ID
}

func TestSnapshotService_Save(t *testing.T) {
	svc, sessionID := newSnapshotFixture(t)

	data := json.RawMessage(`[{"id":1,"title":"A","rank":1},{"id":2,"title":"B","rank":2}]`)
	snap, err := svc.Save(context.Background(), sessionID, "sort", data)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if snap.ID == 0 {
		t.Error("Save() did not assign an id")
	}
	if snap.Mode != "sort" || string(snap.Data) != string(data) {
		t.Errorf("Save() = %+v", snap)
	}
}

func TestSnapshotService_Save_Validation(t *testing.T) {
	svc, sessionID := newSnapshotFixture(t)

	tests := []struct {
		name string
		mode string
		data string
	}{
		{"missing mode", "", `[]`},
		{"whitespace mode", "  ", `[]`},
		{"missing data", "sort", ""},
		{"wrong shape for sort", "sort", `{"budget":60}`},
		{"rank gap", "sort", `[{"id":1,"title":"A","rank":2}]`},
		{"wrong shape for buy", "buy", `[1,2,3]`},
		{"unknown mode with broken JSON", "vote", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), sessionID, tt.mode, json.RawMessage(tt.data))
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("Save() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSnapshotService_Save_UnknownModeIsStoredOpaque(t *testing.T) {
	svc, sessionID := newSnapshotFixture(t)

	snap, err := svc.Save(context.Background(), sessionID, "vote", json.RawMessage(`{"votes":{"1":3}}`))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if snap.Mode != "vote" {
		t.Errorf("mode = %q, want %q", snap.Mode, "vote")
	}
}

func TestSnapshotService_Save_UnknownSession(t *testing.T) {
	svc, _ := newSnapshotFixture(t)

	_, err := svc.Save(context.Background(), 9999, "sort", json.RawMessage(`[]`))
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Save() error = %v, want ErrNotFound", err)
	}
}

func TestSnapshotService_List_NewestFirst(t *testing.T) {
	svc, sessionID := newSnapshotFixture(t)

	first, err := svc.Save(context.Background(), sessionID, "sort", json.RawMessage(`[]`))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second, err := svc.Save(context.Background(), sessionID, "group", json.RawMessage(`[{"name":"Ungrouped","cards":[]}]`))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	snapshots, err := svc.List(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("List() returned %d snapshots, want 2", len(snapshots))
	}
	if snapshots[0].ID != second.ID || snapshots[1].ID != first.ID {
		t.Errorf("order = [%d, %d], want newest first", snapshots[0].ID, snapshots[1].ID)
	}
}
