package store

import (
	"context"
	"time"
)

// ProgressionData is the persisted progression cache. It mirrors the values
// the backend owns; on startup it is rendered immediately and then overwritten
// by the authoritative profile fetch.
type ProgressionData struct {
	UserID       string   `json:"user_id"`
	Username     string   `json:"username"`
	XP           int      `json:"xp"`
	Level        int      `json:"level"`
	Streak       int      `json:"streak"`
	Achievements []string `json:"achievements"`
}

// SnapshotData captures the full local state at a point in time.
type SnapshotData struct {
	Version     int              `json:"version"`
	Progression *ProgressionData `json:"progression,omitempty"`
}

// Snapshot represents a point-in-time capture of local state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages local state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot. Used by reset.
	Clear(ctx context.Context) error
}

// APIRequestEventData captures the data for a single backend request event.
type APIRequestEventData struct {
	RequestID    string
	Operation    string
	Method       string
	Endpoint     string
	StatusCode   int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendAPIRequest records a backend API call event.
	AppendAPIRequest(ctx context.Context, data APIRequestEventData) error
}
