package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sakif/feature-workshop/internal/apperror"
	"github.com/sakif/feature-workshop/internal/model"
	"github.com/sakif/feature-workshop/internal/repository"
)

var _ repository.SessionRepository = (*DB)(nil)

// CreateSession inserts a new session. show_prices is stored as INTEGER
// (0/1) — SQLite has no boolean type, and the driver scans it back into a
// Go bool transparently.
func (db *DB) CreateSession(ctx context.Context, session *model.Session) error {
	session.CreatedAt = time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO sessions (product_id, user_name, show_prices, budget, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		session.ProductID,
		session.UserName,
		session.ShowPrices,
		session.Budget,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating session: %w", err)
	}

	session.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading session id: %w", err)
	}

	return nil
}

func (db *DB) GetSession(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, product_id, user_name, show_prices, budget, created_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	).Scan(
		&session.ID,
		&session.ProductID,
		&session.UserName,
		&session.ShowPrices,
		&session.Budget,
		&session.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("session", id)
		}
		return nil, fmt.Errorf("sqlite: getting session %d: %w", id, err)
	}

	return &session, nil
}

// GetSessionSummary joins the session with its product's name. The JOIN can
// only miss if the session itself is missing — a session without a product
// cannot exist under the foreign key.
func (db *DB) GetSessionSummary(ctx context.Context, id int64) (*model.SessionSummary, error) {
	var s model.SessionSummary

	err := db.conn.QueryRowContext(ctx,
		`SELECT s.id, s.product_id, s.user_name, s.show_prices, s.budget, s.created_at, p.name
		 FROM sessions s
		 JOIN products p ON p.id = s.product_id
		 WHERE s.id = ?`,
		id,
	).Scan(
		&s.ID,
		&s.ProductID,
		&s.UserName,
		&s.ShowPrices,
		&s.Budget,
		&s.CreatedAt,
		&s.ProductName,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("session", id)
		}
		return nil, fmt.Errorf("sqlite: getting session summary %d: %w", id, err)
	}

	return &s, nil
}

// ListSessions returns every session across all products, newest first,
// each joined with its product's name.
func (db *DB) ListSessions(ctx context.Context) ([]model.SessionSummary, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT s.id, s.product_id, s.user_name, s.show_prices, s.budget, s.created_at, p.name
		 FROM sessions s
		 JOIN products p ON p.id = s.product_id
		 ORDER BY s.created_at DESC, s.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing sessions: %w", err)
	}
	defer rows.Close()

	sessions := []model.SessionSummary{}
	for rows.Next() {
		var s model.SessionSummary
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.UserName, &s.ShowPrices, &s.Budget, &s.CreatedAt,
			&s.ProductName,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating sessions: %w", err)
	}

	return sessions, nil
}

func (db *DB) ListSessionsByProduct(ctx context.Context, productID int64) ([]model.Session, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, product_id, user_name, show_prices, budget, created_at
		 FROM sessions
		 WHERE product_id = ?
		 ORDER BY created_at DESC, id DESC`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing sessions for product %d: %w", productID, err)
	}
	defer rows.Close()

	sessions := []model.Session{}
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.UserName, &s.ShowPrices, &s.Budget, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating sessions: %w", err)
	}

	return sessions, nil
}

// UpdateSession writes show_prices and budget. The partial-update semantics
// (only touch fields the caller supplied) live in the service layer, which
// fetches the row first and overlays the supplied fields — by the time the
// write reaches here it is a full value.
func (db *DB) UpdateSession(ctx context.Context, session *model.Session) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE sessions SET show_prices = ?, budget = ? WHERE id = ?`,
		session.ShowPrices,
		session.Budget,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating session %d: %w", session.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("session", session.ID)
	}

	return nil
}
