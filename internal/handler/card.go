package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/feature-workshop/internal/apperror"
	"github.com/sakif/feature-workshop/internal/service"
)

// CardHandler manages CRUD operations for cards. Creation and listing are
// scoped under a product; update and delete address cards directly.
type CardHandler struct {
	svc    *service.CardService
	logger *slog.Logger
}

func NewCardHandler(svc *service.CardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, logger: logger}
}

// cardRequest is the body for create and update. Absent fields take their
// JSON zero values — empty description, zero price — which matches the wire
// contract's defaults.
type cardRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// HandleListByProduct returns a product's cards in creation order.
//
// HTTP: GET /api/products/{id}/cards
func (h *CardHandler) HandleListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	cards, err := h.svc.ListByProduct(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// HandleCreate adds a card to a product.
//
// HTTP: POST /api/products/{id}/cards
// BODY: {"title": "Dark mode", "description": "", "price": 30}
func (h *CardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	card, err := h.svc.Create(r.Context(), productID, req.Title, req.Description, req.Price)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

// HandleUpdate rewrites a card and returns the refreshed record.
//
// HTTP: PUT /api/cards/{id}
func (h *CardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	card, err := h.svc.Update(r.Context(), id, req.Title, req.Description, req.Price)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// HandleDelete removes a card.
//
// HTTP: DELETE /api/cards/{id}
func (h *CardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
