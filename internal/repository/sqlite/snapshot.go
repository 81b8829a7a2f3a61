package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/sakif/feature-workshop/internal/model"
	"github.com/sakif/feature-workshop/internal/repository"
)

var _ repository.SnapshotRepository = (*DB)(nil)

// CreateSnapshot appends an immutable snapshot row. The payload arrives as
// json.RawMessage and is stored verbatim in the TEXT column — validation
// against the mode happened in the service layer before we got here.
func (db *DB) CreateSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	snapshot.CreatedAt = time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO snapshots (session_id, mode, data, created_at)
		 VALUES (?, ?, ?, ?)`,
		snapshot.SessionID,
		snapshot.Mode,
		string(snapshot.Data),
		snapshot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating snapshot: %w", err)
	}

	snapshot.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading snapshot id: %w", err)
	}

	return nil
}

// ListSnapshotsBySession returns the session's snapshots, newest first.
// The stored payload text is returned as-is; decoding (and any integrity
// failure it surfaces) is the snapshot codec's concern.
func (db *DB) ListSnapshotsBySession(ctx context.Context, sessionID int64) ([]model.Snapshot, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, session_id, mode, data, created_at
		 FROM snapshots
		 WHERE session_id = ?
		 ORDER BY created_at DESC, id DESC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing snapshots for session %d: %w", sessionID, err)
	}
	defer rows.Close()

	snapshots := []model.Snapshot{}
	for rows.Next() {
		var (
			s    model.Snapshot
			data string
		)
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Mode, &data, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning snapshot row: %w", err)
		}
		s.Data = []byte(data)
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating snapshots: %w", err)
	}

	return snapshots, nil
}
