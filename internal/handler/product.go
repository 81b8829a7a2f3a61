// Package handler contains the HTTP layer: request parsing, response
// shaping, and nothing else. Business rules live in the service layer;
// a handler's whole job is translating between HTTP and plain Go calls.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/feature-workshop/internal/apperror"
	"github.com/sakif/feature-workshop/internal/service"
)

// ProductHandler manages CRUD operations for products.
type ProductHandler struct {
	svc    *service.ProductService
	logger *slog.Logger
}

func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, logger: logger}
}

// productRequest is the body for both create and rename.
type productRequest struct {
	Name string `json:"name"`
}

// HandleList returns all products, newest first.
//
// HTTP: GET /api/products
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// HandleCreate creates a product.
//
// HTTP: POST /api/products
// BODY: {"name": "Widgets"}
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	product, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// HandleGet returns one product by id.
//
// HTTP: GET /api/products/{id}
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// HandleUpdate renames a product.
//
// HTTP: PUT /api/products/{id}
// BODY: {"name": "Widgets v2"}
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	product, err := h.svc.Rename(r.Context(), id, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// HandleDelete deletes a product and, by cascade, everything under it.
//
// HTTP: DELETE /api/products/{id}
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
