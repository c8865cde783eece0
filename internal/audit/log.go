// Package audit records who generated what. Paper generation consumes
// questions from a shared bank, so a trail of generation and session
// events is the only way to reconstruct why a question was unavailable.
package audit

import (
	"context"
	"database/sql"
	"time"
)

type Event struct {
	ID        int64  `json:"id"`
	Actor     string `json:"actor"`
	Type      string `json:"type"` // "paper.generated", "session.cleared", ...
	Key       string `json:"key"`  // paper ID or session subject
	DataJSON  string `json:"data,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type Repo struct{ db *sql.DB }

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (actor, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.Actor, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

func (r *Repo) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, actor, typ, key, data, created_at FROM audit_log
		 ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Actor, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
