package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/feature-workshop/internal/apperror"
	"github.com/sakif/feature-workshop/internal/model"
	"github.com/sakif/feature-workshop/internal/repository"
	"github.com/sakif/feature-workshop/internal/snapshot"
)

// SnapshotService persists finished exercise passes. Snapshots are append-
// only: there is no update, no delete, and a failed save leaves nothing
// behind for the participant to clean up — they just save again.
type SnapshotService struct {
	snapshots repository.SnapshotRepository
	sessions  repository.SessionRepository
	logger    *slog.Logger
}

func NewSnapshotService(
	snapshots repository.SnapshotRepository,
	sessions repository.SessionRepository,
	logger *slog.Logger,
) *SnapshotService {
	return &SnapshotService{
		snapshots: snapshots,
		sessions:  sessions,
		logger:    logger,
	}
}

// Save validates and appends a snapshot for a session.
//
// Rules, in order:
//   - mode and data are mandatory
//   - the session must exist (saving against an unloaded/unknown session is
//     rejected before anything touches the store)
//   - for the recognized modes the payload must match its tag's shape;
//     any other tag is accepted as long as the payload is well-formed JSON
func (s *SnapshotService) Save(ctx context.Context, sessionID int64, mode string, data json.RawMessage) (*model.Snapshot, error) {
	mode = strings.TrimSpace(mode)

	if mode == "" {
		return nil, apperror.ValidationFailed("mode", "mode is required")
	}
	if len(data) == 0 {
		return nil, apperror.ValidationFailed("data", "data is required")
	}

	if _, err := s.sessions.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	if err := snapshot.Validate(mode, data); err != nil {
		return nil, apperror.ValidationFailed("data", err.Error())
	}

	snap := &model.Snapshot{
		SessionID: sessionID,
		Mode:      mode,
		Data:      data,
	}
	if err := s.snapshots.CreateSnapshot(ctx, snap); err != nil {
		s.logger.Error("failed to save snapshot",
			slog.Int64("session_id", sessionID),
			slog.String("mode", mode),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	s.logger.Info("snapshot saved",
		slog.Int64("id", snap.ID),
		slog.Int64("session_id", snap.SessionID),
		slog.String("mode", snap.Mode),
	)

	return snap, nil
}

// List returns a session's snapshots, newest first. Stored payloads come
// back verbatim; rendering (and the integrity fallback for corrupt rows)
// happens at the presentation edge so one bad snapshot can't take down the
// whole session view.
func (s *SnapshotService) List(ctx context.Context, sessionID int64) ([]model.Snapshot, error) {
	snapshots, err := s.snapshots.ListSnapshotsBySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to list snapshots",
			slog.Int64("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	return snapshots, nil
}
