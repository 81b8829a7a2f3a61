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

// CardService handles business logic for cards. It also holds the product
// repository so card creation can distinguish "unknown product" (404) from
// a plain constraint failure.
type CardService struct {
	cards    repository.CardRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

func NewCardService(cards repository.CardRepository, products repository.ProductRepository, logger *slog.Logger) *CardService {
	return &CardService{
		cards:    cards,
		products: products,
		logger:   logger,
	}
}

// validateCardFields enforces the card rules shared by Create and Update:
// title mandatory, price non-negative. Description may be anything up to
// the length cap, including empty.
func validateCardFields(title, description string, price float64) error {
	if title == "" {
		return apperror.ValidationFailed("title", "card title is required")
	}
	if len(title) > MaxTitleLength {
		return apperror.ValidationFailed("title",
			fmt.Sprintf("card title must be %d characters or less", MaxTitleLength))
	}
	if len(description) > MaxDescriptionLength {
		return apperror.ValidationFailed("description",
			fmt.Sprintf("card description must be %d characters or less", MaxDescriptionLength))
	}
	if price < 0 {
		return apperror.ValidationFailed("price", "card price must not be negative")
	}
	return nil
}

// Create validates and saves a new card under a product. The product must
// exist — referencing a missing one is a not-found error, surfaced before
// any insert.
func (s *CardService) Create(ctx context.Context, productID int64, title, description string, price float64) (*model.Card, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := validateCardFields(title, description, price); err != nil {
		return nil, err
	}

	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	card := &model.Card{
		ProductID:   productID,
		Title:       title,
		Description: description,
		Price:       price,
	}
	if err := s.cards.CreateCard(ctx, card); err != nil {
		s.logger.Error("failed to create card",
			slog.Int64("product_id", productID),
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating card: %w", err)
	}

	s.logger.Info("card created",
		slog.Int64("id", card.ID),
		slog.Int64("product_id", card.ProductID),
		slog.String("title", card.Title),
	)

	return card, nil
}

// ListByProduct returns a product's cards in creation order. An unknown
// product yields an empty list — scoped lists don't 404, only reads-by-id do.
func (s *CardService) ListByProduct(ctx context.Context, productID int64) ([]model.Card, error) {
	cards, err := s.cards.ListCardsByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("failed to list cards",
			slog.Int64("product_id", productID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	return cards, nil
}

// Update rewrites a card's title, description and price, returning the
// refreshed record.
func (s *CardService) Update(ctx context.Context, id int64, title, description string, price float64) (*model.Card, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := validateCardFields(title, description, price); err != nil {
		return nil, err
	}

	card, err := s.cards.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}

	card.Title = title
	card.Description = description
	card.Price = price

	if err := s.cards.UpdateCard(ctx, card); err != nil {
		s.logger.Error("failed to update card",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating card: %w", err)
	}

	s.logger.Info("card updated",
		slog.Int64("id", card.ID),
		slog.String("title", card.Title),
	)

	return card, nil
}

// Delete removes a card by id.
func (s *CardService) Delete(ctx context.Context, id int64) error {
	if err := s.cards.DeleteCard(ctx, id); err != nil {
		return err
	}

	s.logger.Info("card deleted", slog.Int64("id", id))
	return nil
}
