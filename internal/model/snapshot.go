package model

import (
	"encoding/json"
	"time"
)

// Snapshot is an immutable, mode-tagged record of a completed exercise pass.
// There is no update or delete for snapshots — they are append-only history
// and only disappear when their session's product is deleted (cascade).
//
// WHY json.RawMessage FOR Data?
// The payload is a mode-tagged union (sort / group / buy shapes). RawMessage
// carries it through the model layer without forcing a decode — the snapshot
// package owns the typed variants and validates/decodes on demand. Mode is a
// free-form tag at this level, not a closed enum; unrecognized modes are
// stored as opaque (but well-formed) JSON.
type Snapshot struct {
	ID        int64           `json:"id"         db:"id"`
	SessionID int64           `json:"session_id" db:"session_id"`
	Mode      string          `json:"mode"       db:"mode"`
	Data      json.RawMessage `json:"data"       db:"data"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
