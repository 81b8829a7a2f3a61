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

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` assigns a nil *Y to a variable of interface type X.
// If *Y stops implementing X, the compiler errors right here instead of at
// some distant call site. One check per interface *DB claims to implement.
var _ repository.ProductRepository = (*DB)(nil)

// CreateProduct inserts a new product. The caller's struct is filled in-place
// with the assigned id and timestamp — SQLite hands out the AUTOINCREMENT id
// via LastInsertId.
func (db *DB) CreateProduct(ctx context.Context, product *model.Product) error {
	product.CreatedAt = time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO products (name, created_at) VALUES (?, ?)`,
		product.Name,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating product: %w", err)
	}

	product.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading product id: %w", err)
	}

	return nil
}

// GetProduct retrieves a single product. A missing row becomes
// apperror.NotFound — the handler maps that to 404, which is distinct from
// an empty list.
func (db *DB) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM products WHERE id = ?`,
		id,
	).Scan(&product.ID, &product.Name, &product.CreatedAt)

	if err != nil {
		// sql.ErrNoRows is a sentinel — database/sql doesn't wrap it,
		// so == is the correct comparison.
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("product", id)
		}
		return nil, fmt.Errorf("sqlite: getting product %d: %w", id, err)
	}

	return &product, nil
}

// ListProducts returns every product, newest first. The id tiebreak keeps
// the order deterministic when several rows share a creation timestamp.
func (db *DB) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, created_at
		 FROM products
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating products: %w", err)
	}

	return products, nil
}

// UpdateProduct renames a product. RowsAffected distinguishes "no such
// product" from a successful write — one query instead of SELECT + UPDATE.
func (db *DB) UpdateProduct(ctx context.Context, product *model.Product) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE products SET name = ? WHERE id = ?`,
		product.Name,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating product %d: %w", product.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("product", product.ID)
	}

	return nil
}

// DeleteProduct removes a product and everything under it. The ON DELETE
// CASCADE chain (cards, sessions, snapshots) fires inside this single
// statement, so the whole sweep is atomic — there is no moment where the
// product is gone but its cards remain.
func (db *DB) DeleteProduct(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM products WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting product %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("product", id)
	}

	return nil
}
