package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/feature-workshop/internal/apperror"
	"github.com/sakif/feature-workshop/internal/model"
	"github.com/sakif/feature-workshop/internal/repository"
)

// DefaultBudget is the Buy-mode spending ceiling a session gets when the
// creator doesn't choose one.
const DefaultBudget = 100

// SessionService is the session access facade: it owns session reads
// (joined with product name, with the product's current card set attached)
// and the partial update of show_prices/budget. The exercise engines are
// fed exclusively from its Get.
type SessionService struct {
	sessions repository.SessionRepository
	products repository.ProductRepository
	cards    repository.CardRepository
	logger   *slog.Logger
}

func NewSessionService(
	sessions repository.SessionRepository,
	products repository.ProductRepository,
	cards repository.CardRepository,
	logger *slog.Logger,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		products: products,
		cards:    cards,
		logger:   logger,
	}
}

// Create validates and saves a new session. product_id and user_name are
// mandatory; the product must exist. Budget is optional — nil means
// DefaultBudget. There is deliberately no upper bound on budget and no
// check against card prices: the original tool accepts any value and only
// Buy mode enforces affordability.
func (s *SessionService) Create(ctx context.Context, productID int64, userName string, showPrices bool, budget *float64) (*model.Session, error) {
	userName = strings.TrimSpace(userName)

	if productID <= 0 {
		return nil, apperror.ValidationFailed("product_id", "product_id is required")
	}
	if userName == "" {
		return nil, apperror.ValidationFailed("user_name", "user_name is required")
	}
	if len(userName) > MaxNameLength {
		return nil, apperror.ValidationFailed("user_name",
			fmt.Sprintf("user_name must be %d characters or less", MaxNameLength))
	}

	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	session := &model.Session{
		ProductID:  productID,
		UserName:   userName,
		ShowPrices: showPrices,
		Budget:     DefaultBudget,
	}
	if budget != nil {
		session.Budget = *budget
	}

	if err := s.sessions.CreateSession(ctx, session); err != nil {
		s.logger.Error("failed to create session",
			slog.Int64("product_id", productID),
			slog.String("user_name", userName),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating session: %w", err)
	}

	s.logger.Info("session created",
		slog.Int64("id", session.ID),
		slog.Int64("product_id", session.ProductID),
		slog.String("user_name", session.UserName),
	)

	return session, nil
}

// Get is the facade read: session metadata joined with the product's name,
// plus the product's CURRENT cards in creation order. The card set is not
// snapshotted per session — edit a card mid-workshop and the next Get
// reflects it.
func (s *SessionService) Get(ctx context.Context, id int64) (*model.SessionDetail, error) {
	summary, err := s.sessions.GetSessionSummary(ctx, id)
	if err != nil {
		return nil, err
	}

	cards, err := s.cards.ListCardsByProduct(ctx, summary.ProductID)
	if err != nil {
		s.logger.Error("failed to load session cards",
			slog.Int64("session_id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("loading session cards: %w", err)
	}

	return &model.SessionDetail{
		SessionSummary: *summary,
		Cards:          cards,
	}, nil
}

// List returns all sessions across all products, newest first, each with
// its product's name.
func (s *SessionService) List(ctx context.Context) ([]model.SessionSummary, error) {
	sessions, err := s.sessions.ListSessions(ctx)
	if err != nil {
		s.logger.Error("failed to list sessions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}

// ListByProduct returns one product's sessions, newest first.
func (s *SessionService) ListByProduct(ctx context.Context, productID int64) ([]model.Session, error) {
	sessions, err := s.sessions.ListSessionsByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("failed to list sessions",
			slog.Int64("product_id", productID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}

// Update applies a TRUE partial update: only the fields the caller actually
// supplied (non-nil pointers) change, the rest keep their stored values.
// Supplying neither field is legal and returns the session unchanged.
func (s *SessionService) Update(ctx context.Context, id int64, showPrices *bool, budget *float64) (*model.Session, error) {
	session, err := s.sessions.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if showPrices == nil && budget == nil {
		return session, nil
	}

	if showPrices != nil {
		session.ShowPrices = *showPrices
	}
	if budget != nil {
		session.Budget = *budget
	}

	if err := s.sessions.UpdateSession(ctx, session); err != nil {
		s.logger.Error("failed to update session",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating session: %w", err)
	}

	s.logger.Info("session updated",
		slog.Int64("id", session.ID),
		slog.Bool("show_prices", session.ShowPrices),
		slog.Float64("budget", session.Budget),
	)

	return session, nil
}
