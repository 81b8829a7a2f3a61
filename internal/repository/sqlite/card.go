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

var _ repository.CardRepository = (*DB)(nil)

// CreateCard inserts a new card under its product. The product_id foreign
// key is validated by the service layer first (so the caller gets a 404, not
// a constraint error), but the REFERENCES clause still backstops it.
func (db *DB) CreateCard(ctx context.Context, card *model.Card) error {
	card.CreatedAt = time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO cards (product_id, title, description, price, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		card.ProductID,
		card.Title,
		card.Description,
		card.Price,
		card.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating card: %w", err)
	}

	card.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading card id: %w", err)
	}

	return nil
}

func (db *DB) GetCard(ctx context.Context, id int64) (*model.Card, error) {
	var card model.Card

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, product_id, title, description, price, created_at
		 FROM cards
		 WHERE id = ?`,
		id,
	).Scan(
		&card.ID,
		&card.ProductID,
		&card.Title,
		&card.Description,
		&card.Price,
		&card.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("card", id)
		}
		return nil, fmt.Errorf("sqlite: getting card %d: %w", id, err)
	}

	return &card, nil
}

// ListCardsByProduct returns the product's cards ORDER BY id — creation
// sequence, which is the stable display order for the card grid. An unknown
// product yields an empty list, not an error; only reads-by-id distinguish
// missing records.
func (db *DB) ListCardsByProduct(ctx context.Context, productID int64) ([]model.Card, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, product_id, title, description, price, created_at
		 FROM cards
		 WHERE product_id = ?
		 ORDER BY id`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing cards for product %d: %w", productID, err)
	}
	defer rows.Close()

	cards := []model.Card{}
	for rows.Next() {
		var c model.Card
		if err := rows.Scan(
			&c.ID, &c.ProductID, &c.Title, &c.Description, &c.Price, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning card row: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating cards: %w", err)
	}

	return cards, nil
}

// UpdateCard rewrites title, description and price. product_id and
// created_at are immutable — a card never moves between products.
func (db *DB) UpdateCard(ctx context.Context, card *model.Card) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE cards SET title = ?, description = ?, price = ? WHERE id = ?`,
		card.Title,
		card.Description,
		card.Price,
		card.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating card %d: %w", card.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("card", card.ID)
	}

	return nil
}

func (db *DB) DeleteCard(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM cards WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting card %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("card", id)
	}

	return nil
}
