// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes to the database
//
// Services accept primitives and return domain models and domain errors —
// never HTTP types or status codes. That keeps every business rule callable
// (and testable) as a plain Go function, and lets the handler layer stay a
// thin translation shim.
//
// Each service takes repository INTERFACES, not the concrete sqlite store,
// so tests inject in-memory fakes and the wiring in internal/server decides
// the real implementation.
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

// Validation constants. Named (not magic numbers inline) so error messages
// and tests reference the same values.
const (
	MaxNameLength        = 200
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// ProductService handles business logic for products — the containers a
// workshop's cards and sessions hang off.
type ProductService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

func NewProductService(repo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and saves a new product. Name is mandatory — a blank or
// whitespace-only name is rejected before any store mutation.
func (s *ProductService) Create(ctx context.Context, name string) (*model.Product, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, apperror.ValidationFailed("name", "product name is required")
	}
	if len(name) > MaxNameLength {
		return nil, apperror.ValidationFailed("name",
			fmt.Sprintf("product name must be %d characters or less", MaxNameLength))
	}

	product := &model.Product{Name: name}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		s.logger.Error("failed to create product",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating product: %w", err)
	}

	s.logger.Info("product created",
		slog.Int64("id", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// Get retrieves a product by id. Returns apperror.ErrNotFound if it
// doesn't exist.
func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// List returns all products, newest first.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.logger.Error("failed to list products", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// Rename updates a product's name, with the same validation as Create.
func (s *ProductService) Rename(ctx context.Context, id int64, name string) (*model.Product, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, apperror.ValidationFailed("name", "product name is required")
	}
	if len(name) > MaxNameLength {
		return nil, apperror.ValidationFailed("name",
			fmt.Sprintf("product name must be %d characters or less", MaxNameLength))
	}

	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = name
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		s.logger.Error("failed to rename product",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("renaming product: %w", err)
	}

	s.logger.Info("product renamed",
		slog.Int64("id", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// Delete removes a product. The store's cascades take the product's cards,
// sessions, and those sessions' snapshots with it in one atomic sweep.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deleted", slog.Int64("id", id))
	return nil
}
