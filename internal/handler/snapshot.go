package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/feature-workshop/internal/apperror"
	"github.com/sakif/feature-workshop/internal/model"
	"github.com/sakif/feature-workshop/internal/service"
	"github.com/sakif/feature-workshop/internal/snapshot"
)

// SnapshotHandler appends and lists snapshots for a session.
type SnapshotHandler struct {
	svc    *service.SnapshotService
	logger *slog.Logger
}

func NewSnapshotHandler(svc *service.SnapshotService, logger *slog.Logger) *SnapshotHandler {
	return &SnapshotHandler{svc: svc, logger: logger}
}

type createSnapshotRequest struct {
	Mode string          `json:"mode"`
	Data json.RawMessage `json:"data"`
}

// snapshotView is a stored snapshot plus its rendered summary. The summary
// is recomputed from the stored payload on every read — snapshots are
// immutable, so there is nothing to cache or invalidate.
type snapshotView struct {
	model.Snapshot
	Summary string `json:"summary"`
}

// HandleCreate saves a finished exercise pass.
//
// HTTP: POST /api/sessions/{id}/snapshot
// BODY: {"mode": "buy", "data": {"budget": 60, "total": 50, "selected": [...]}}
func (h *SnapshotHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req createSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	snap, err := h.svc.Save(r.Context(), sessionID, req.Mode, req.Data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

// HandleList returns a session's snapshots, newest first, each with a
// rendered summary.
//
// INTEGRITY FALLBACK:
// A stored payload that no longer parses for its mode is a store fault, not
// a reason to fail the whole session view. The affected snapshot keeps its
// raw text as the summary and the fault is logged; every other snapshot
// renders normally.
//
// HTTP: GET /api/sessions/{id}/snapshots
func (h *SnapshotHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	snaps, err := h.svc.List(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]snapshotView, len(snaps))
	for i, snap := range snaps {
		summary, err := snapshot.Render(snap.Mode, snap.Data)
		if err != nil {
			integrity := apperror.Integrity("snapshot", snap.ID, err.Error())
			h.logger.Warn("snapshot payload corrupt, falling back to raw dump",
				slog.Int64("snapshot_id", snap.ID),
				slog.String("mode", snap.Mode),
				slog.String("error", integrity.Message),
			)
			summary = string(snap.Data)
		}
		views[i] = snapshotView{Snapshot: snap, Summary: summary}
	}

	writeJSON(w, http.StatusOK, views)
}
