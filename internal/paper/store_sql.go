package paper

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// Store archives generated papers. Get returns the paper with its HTML;
// List omits the HTML to keep listings light.
type Store interface {
	Put(ctx context.Context, p Paper, req GenerateRequest) error
	Get(ctx context.Context, id string) (Paper, error)
	List(ctx context.Context, limit int) ([]Paper, error)
}

var ErrNotFound = errors.New("paper not found")

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Put(ctx context.Context, p Paper, req GenerateRequest) error {
	cfg, err := json.Marshal(req)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO papers (id,class_id,subject,total_marks,html,config_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET html=EXCLUDED.html, total_marks=EXCLUDED.total_marks`,
		p.ID, p.ClassID, p.Subject, p.TotalMarks, p.HTML, string(cfg), p.CreatedAt)
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Paper, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,class_id,subject,total_marks,html,created_at FROM papers WHERE id=$1`, id)
	var p Paper
	if err := row.Scan(&p.ID, &p.ClassID, &p.Subject, &p.TotalMarks, &p.HTML, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Paper{}, ErrNotFound
		}
		return Paper{}, err
	}
	return p, nil
}

func (s *SQLStore) List(ctx context.Context, limit int) ([]Paper, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,class_id,subject,total_marks,created_at FROM papers ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Paper
	for rows.Next() {
		var p Paper
		if err := rows.Scan(&p.ID, &p.ClassID, &p.Subject, &p.TotalMarks, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
