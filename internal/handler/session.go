package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/feature-workshop/internal/apperror"
	"github.com/sakif/feature-workshop/internal/service"
)

// SessionHandler manages session creation, reads and the partial update of
// the two tunable fields (show_prices, budget).
type SessionHandler struct {
	svc    *service.SessionService
	logger *slog.Logger
}

func NewSessionHandler(svc *service.SessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, logger: logger}
}

type createSessionRequest struct {
	ProductID  int64    `json:"product_id"`
	UserName   string   `json:"user_name"`
	ShowPrices bool     `json:"show_prices"`
	Budget     *float64 `json:"budget"` // nil → DefaultBudget
}

// updateSessionRequest uses pointers so "absent" and "zero" are
// distinguishable: {"budget": 0} sets the budget to zero, {} changes
// nothing. That is what makes the partial update a true partial update.
type updateSessionRequest struct {
	ShowPrices *bool    `json:"show_prices"`
	Budget     *float64 `json:"budget"`
}

// HandleList returns every session, newest first, joined with product names.
//
// HTTP: GET /api/sessions
func (h *SessionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// HandleListByProduct returns one product's sessions, newest first.
//
// HTTP: GET /api/products/{id}/sessions
func (h *SessionHandler) HandleListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	sessions, err := h.svc.ListByProduct(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// HandleCreate starts a new session against a product.
//
// HTTP: POST /api/sessions
// BODY: {"product_id": 1, "user_name": "dana", "show_prices": true, "budget": 60}
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	session, err := h.svc.Create(r.Context(), req.ProductID, req.UserName, req.ShowPrices, req.Budget)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// HandleGet is the facade read: the session, its product's name, and the
// product's current card set — everything an exercise mode needs to start.
//
// HTTP: GET /api/sessions/{id}
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// HandleUpdate partially updates show_prices and/or budget.
//
// HTTP: PUT /api/sessions/{id}
// BODY: {"budget": 150}  — show_prices stays as it was
func (h *SessionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	session, err := h.svc.Update(r.Context(), id, req.ShowPrices, req.Budget)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}
