package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShadowEntry is one recorded prediction.
type ShadowEntry struct {
	ID        string
	Sequence  int64
	Model     string
	Payload   json.RawMessage
	CreatedAt time.Time
}

// ShadowRepo keeps a bounded audit log of analytics predictions.
type ShadowRepo interface {
	// RecordPrediction stores prediction as JSON under model and prunes
	// the log to its retention limit.
	RecordPrediction(ctx context.Context, model string, prediction any) error

	// Recent returns up to limit entries, newest first (0 = all).
	Recent(ctx context.Context, limit int) ([]ShadowEntry, error)

	// Get returns the entry with the given sequence, or nil if none.
	Get(ctx context.Context, sequence int64) (*ShadowEntry, error)

	// ModelCounts returns the number of retained entries per model.
	ModelCounts(ctx context.Context) (map[string]int, error)

	// Clear deletes every entry and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}

type shadowRepo struct {
	db   *sql.DB
	seq  *sequenceCounter
	keep int
}

func (r *shadowRepo) RecordPrediction(ctx context.Context, model string, prediction any) error {
	payload, err := json.Marshal(prediction)
	if err != nil {
		return fmt.Errorf("marshal prediction: %w", err)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO shadow_logs (id, sequence, model, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), seq, model, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save shadow log: %w", err)
	}

	if r.keep > 0 {
		_, err = r.db.ExecContext(ctx,
			`DELETE FROM shadow_logs WHERE sequence NOT IN (
				SELECT sequence FROM shadow_logs ORDER BY sequence DESC LIMIT ?
			)`, r.keep)
		if err != nil {
			return fmt.Errorf("prune shadow logs: %w", err)
		}
	}
	return nil
}

func (r *shadowRepo) Recent(ctx context.Context, limit int) ([]ShadowEntry, error) {
	q := `SELECT id, sequence, model, payload, created_at FROM shadow_logs ORDER BY sequence DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query shadow logs: %w", err)
	}
	defer rows.Close()

	var out []ShadowEntry
	for rows.Next() {
		e, err := scanShadow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shadow logs: %w", err)
	}
	return out, nil
}

func (r *shadowRepo) Get(ctx context.Context, sequence int64) (*ShadowEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, sequence, model, payload, created_at FROM shadow_logs WHERE sequence = ?`, sequence)
	e, err := scanShadow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *shadowRepo) ModelCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT model, COUNT(*) FROM shadow_logs GROUP BY model`)
	if err != nil {
		return nil, fmt.Errorf("count shadow logs: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			model string
			n     int
		)
		if err := rows.Scan(&model, &n); err != nil {
			return nil, fmt.Errorf("scan shadow count: %w", err)
		}
		out[model] = n
	}
	return out, rows.Err()
}

func (r *shadowRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shadow_logs`)
	if err != nil {
		return 0, fmt.Errorf("clear shadow logs: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShadow(sc rowScanner) (ShadowEntry, error) {
	var (
		e       ShadowEntry
		payload string
		created string
	)
	if err := sc.Scan(&e.ID, &e.Sequence, &e.Model, &payload, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("scan shadow log: %w", err)
	}
	e.Payload = json.RawMessage(payload)
	if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
		e.CreatedAt = t
	}
	return e, nil
}
