// Package store archives serialized decision records for audit review.
// Archiving is append-only: a stored record is never rewritten.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound indicates no archived decision matched the query.
var ErrNotFound = errors.New("decision not found")

// StoredDecision is one archived decision record plus archive metadata.
type StoredDecision struct {
	ID        string
	Month     string
	CreatedAt time.Time
	Record    json.RawMessage
}

// DecisionStore persists and retrieves archived decision records.
type DecisionStore interface {
	Save(ctx context.Context, month string, record []byte) (StoredDecision, error)
	GetLatest(ctx context.Context, month string) (StoredDecision, error)
	List(ctx context.Context) ([]StoredDecision, error)
}
