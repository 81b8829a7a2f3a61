package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/sakif/feature-workshop/internal/apperror"
	"github.com/sakif/feature-workshop/internal/model"
	"github.com/sakif/feature-workshop/internal/repository"
)

// discardLogger keeps service log output out of test results.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))

// mockStore is an in-memory stand-in for the sqlite store. Like the real
// thing, one value implements every repository interface, including the
// ordering conventions (lists newest first, cards in creation order) and
// the cascade on product delete. forceErr, when set, makes every call fail —
// for exercising the services' error-wrapping paths.
type mockStore struct {
	products  map[int64]*model.Product
	cards     map[int64]*model.Card
	sessions  map[int64]*model.Session
	snapshots map[int64]*model.Snapshot
	nextID    int64
	forceErr  error
}

var (
	_ repository.ProductRepository  = (*mockStore)(nil)
	_ repository.CardRepository     = (*mockStore)(nil)
	_ repository.SessionRepository  = (*mockStore)(nil)
	_ repository.SnapshotRepository = (*mockStore)(nil)
)

func newMockStore() *mockStore {
	return &mockStore{
		products:  make(map[int64]*model.Product),
		cards:     make(map[int64]*model.Card),
		sessions:  make(map[int64]*model.Session),
		snapshots: make(map[int64]*model.Snapshot),
	}
}

func (m *mockStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *mockStore) CreateProduct(_ context.Context, product *model.Product) error {
	if m.forceErr != nil {
		return m.forceErr
	}
	product.ID = m.id()
	product.CreatedAt = time.Now().UTC()
	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m *mockStore) GetProduct(_ context.Context, id int64) (*model.Product, error) {
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	product, ok := m.products[id]
	if !ok {
		return nil, apperror.NotFound("product", id)
	}
	result := *product
	return &result, nil
}

func (m *mockStore) ListProducts(_ context.Context) ([]model.Product, error) {
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	result := []model.Product{}
	for _, p := range m.products {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockStore) UpdateProduct(_ context.Context, product *model.Product) error {
	if m.forceErr != nil {
		return m.forceErr
	}
	if _, ok := m.products[product.ID]; !ok {
		return apperror.NotFound("product", product.ID)
	}
	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m *mockStore) DeleteProduct(_ context.Context, id int64) error {
	if m.forceErr != nil {
		return m.forceErr
	}
	if _, ok := m.products[id]; !ok {
		return apperror.NotFound("product", id)
	}
	delete(m.products, id)
	for cid, c := range m.cards {
		if c.ProductID == id {
			delete(m.cards, cid)
		}
	}
	for sid, s := range m.sessions {
		if s.ProductID == id {
			delete(m.sessions, sid)
			for snid, sn := range m.snapshots {
				if sn.SessionID == sid {
					delete(m.snapshots, snid)
				}
			}
		}
	}
	return nil
}

func (m *mockStore) CreateCard(_ context.Context, card *model.Card) error {
	if m.forceErr != nil {
		return m.forceErr
	}
	card.ID = m.id()
	card.CreatedAt = time.Now().UTC()
	stored := *card
	m.cards[card.ID] = &stored
	return nil
}

func (m *mockStore) GetCard(_ context.Context, id int64) (*model.Card, error) {
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	card, ok := m.cards[id]
	if !ok {
		return nil, apperror.NotFound("card", id)
	}
	result := *card
	return &result, nil
}

func (m *mockStore) ListCardsByProduct(_ context.Context, productID int64) ([]model.Card, error) {
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	result := []model.Card{}
	for _, c := range m.cards {
		if c.ProductID == productID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockStore) UpdateCard(_ context.Context, card *model.Card) error {
	if m.forceErr != nil {
		return m.forceErr
	}
	if _, ok := m.cards[card.ID]; !ok {
		return apperror.NotFound("card", card.ID)
	}
	stored := *card
	m.cards[card.ID] = &stored
	return nil
}

func (m *mockStore) DeleteCard(_ context.Context, id int64) error {
	if m.forceErr != nil {
		return m.forceErr
	}
	if _, ok := m.cards[id]; !ok {
		return apperror.NotFound("card", id)
	}
	delete(m.cards, id)
	return nil
}

func (m *mockStore) CreateSession(_ context.Context, session *model.Session) error {
	if m.forceErr != nil {
		return m.forceErr
	}
	session.ID = m.id()
	session.CreatedAt = time.Now().UTC()
	stored := *session
	m.sessions[session.ID] = &stored
	return nil
}

func (m *mockStore) GetSession(_ context.Context, id int64) (*model.Session, error) {
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, apperror.NotFound("session", id)
	}
	result := *session
	return &result, nil
}

func (m *mockStore) GetSessionSummary(_ context.Context, id int64) (*model.SessionSummary, error) {
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, apperror.NotFound("session", id)
	}
	summary := model.SessionSummary{Session: *session}
	if product, ok := m.products[session.ProductID]; ok {
		summary.ProductName = product.Name
	}
	return &summary, nil
}

func (m *mockStore) ListSessions(_ context.Context) ([]model.SessionSummary, error) {
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	result := []model.SessionSummary{}
	for _, s := range m.sessions {
		summary := model.SessionSummary{Session: *s}
		if product, ok := m.products[s.ProductID]; ok {
			summary.ProductName = product.Name
		}
		result = append(result, summary)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockStore) ListSessionsByProduct(_ context.Context, productID int64) ([]model.Session, error) {
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	result := []model.Session{}
	for _, s := range m.sessions {
		if s.ProductID == productID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockStore) UpdateSession(_ context.Context, session *model.Session) error {
	if m.forceErr != nil {
		return m.forceErr
	}
	if _, ok := m.sessions[session.ID]; !ok {
		return apperror.NotFound("session", session.ID)
	}
	stored := *session
	m.sessions[session.ID] = &stored
	return nil
}

func (m *mockStore) CreateSnapshot(_ context.Context, snapshot *model.Snapshot) error {
	if m.forceErr != nil {
		return m.forceErr
	}
	snapshot.ID = m.id()
	snapshot.CreatedAt = time.Now().UTC()
	stored := *snapshot
	m.snapshots[snapshot.ID] = &stored
	return nil
}

func (m *mockStore) ListSnapshotsBySession(_ context.Context, sessionID int64) ([]model.Snapshot, error) {
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	result := []model.Snapshot{}
	for _, s := range m.snapshots {
		if s.SessionID == sessionID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}
