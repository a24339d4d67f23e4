package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLiteDecisionStore implements DecisionStore over a SQLite database.
type SQLiteDecisionStore struct {
	db *sql.DB
}

// NewSQLiteDecisionStore creates a new SQLiteDecisionStore.
func NewSQLiteDecisionStore(db *sql.DB) *SQLiteDecisionStore {
	return &SQLiteDecisionStore{db: db}
}

func (s *SQLiteDecisionStore) Save(ctx context.Context, month string, record []byte) (StoredDecision, error) {
	dec := StoredDecision{
		ID:        uuid.New().String(),
		Month:     month,
		CreatedAt: time.Now().UTC(),
		Record:    json.RawMessage(record),
	}
	query := `INSERT INTO decisions (id, month, created_at, record) VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		dec.ID,
		dec.Month,
		dec.CreatedAt.Format(time.RFC3339),
		string(record),
	)
	if err != nil {
		return StoredDecision{}, fmt.Errorf("inserting decision: %w", err)
	}
	return dec, nil
}

func (s *SQLiteDecisionStore) GetLatest(ctx context.Context, month string) (StoredDecision, error) {
	query := `SELECT id, month, created_at, record FROM decisions
		WHERE month = ? ORDER BY created_at DESC, id LIMIT 1`
	row := s.db.QueryRowContext(ctx, query, month)
	dec, err := scanDecision(row.Scan)
	if err == sql.ErrNoRows {
		return StoredDecision{}, fmt.Errorf("%w: month %s", ErrNotFound, month)
	}
	return dec, err
}

func (s *SQLiteDecisionStore) List(ctx context.Context) ([]StoredDecision, error) {
	query := `SELECT id, month, created_at, record FROM decisions
		ORDER BY month DESC, created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing decisions: %w", err)
	}
	defer rows.Close()

	var decisions []StoredDecision
	for rows.Next() {
		dec, err := scanDecision(rows.Scan)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, dec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decisions: %w", err)
	}
	return decisions, nil
}

func scanDecision(scan func(...any) error) (StoredDecision, error) {
	var dec StoredDecision
	var createdAt, record string
	if err := scan(&dec.ID, &dec.Month, &createdAt, &record); err != nil {
		return StoredDecision{}, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return StoredDecision{}, fmt.Errorf("parsing created_at: %w", err)
	}
	dec.CreatedAt = t
	dec.Record = json.RawMessage(record)
	return dec, nil
}
