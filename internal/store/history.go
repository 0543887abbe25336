package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studyhub/internal/history"
)

// QueryOpts filters history queries.
type QueryOpts struct {
	Limit   int    // most recent N records (0 = unlimited)
	Subject string // exact subject match (empty = any)
	From    string // date >= From (YYYY-MM-DD)
	To      string // date <= To (YYYY-MM-DD)
}

// HistoryRepo stores the learner's study sessions.
type HistoryRepo interface {
	// Append stores records in the given order.
	Append(ctx context.Context, recs ...history.SessionRecord) error

	// Query returns matching records, oldest first.
	Query(ctx context.Context, opts QueryOpts) (history.StudyHistory, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Clear deletes every stored record and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}

const sessionColumns = `subject, date, timestamp, minutes, completed, difficulty`

type historyRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *historyRepo) Append(ctx context.Context, recs ...history.SessionRecord) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, rec := range recs {
		seq, err := r.seq.nextOn(ctx, tx)
		if err != nil {
			return err
		}
		diff, _ := history.ParseDifficulty(string(rec.Difficulty))
		_, err = tx.ExecContext(ctx,
			`INSERT INTO sessions (id, sequence, subject, date, timestamp, minutes, completed, difficulty, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), seq, rec.Subject, rec.Date, nullString(rec.Timestamp),
			max(rec.Minutes, 0), boolInt(rec.Completed), string(diff), now,
		)
		if err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *historyRepo) Query(ctx context.Context, opts QueryOpts) (history.StudyHistory, error) {
	var where []string
	var args []any
	if opts.Subject != "" {
		where = append(where, "subject = ?")
		args = append(args, opts.Subject)
	}
	if opts.From != "" {
		where = append(where, "date >= ?")
		args = append(args, opts.From)
	}
	if opts.To != "" {
		where = append(where, "date <= ?")
		args = append(args, opts.To)
	}

	q := `SELECT ` + sessionColumns + `, sequence FROM sessions`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	if opts.Limit > 0 {
		// Newest N, re-sorted oldest first.
		q = `SELECT ` + sessionColumns + ` FROM (` + q + ` ORDER BY date DESC, sequence DESC LIMIT ?) ORDER BY date ASC, sequence ASC`
		args = append(args, opts.Limit)
	} else {
		q = `SELECT ` + sessionColumns + ` FROM (` + q + `) ORDER BY date ASC, sequence ASC`
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out history.StudyHistory
	for rows.Next() {
		var (
			rec  history.SessionRecord
			ts   sql.NullString
			diff string
		)
		if err := rows.Scan(&rec.Subject, &rec.Date, &ts, &rec.Minutes, &rec.Completed, &diff); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.Timestamp = ts.String
		rec.Difficulty, _ = history.ParseDifficulty(diff)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (r *historyRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func (r *historyRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions`)
	if err != nil {
		return 0, fmt.Errorf("clear sessions: %w", err)
	}
	return res.RowsAffected()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
