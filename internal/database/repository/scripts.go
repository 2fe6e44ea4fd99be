package repository

import (
	"context"
	"database/sql"
)

// ScriptRepo handles scripts.
type ScriptRepo struct {
	db *sql.DB
}

func NewScriptRepo(db *sql.DB) *ScriptRepo { return &ScriptRepo{db: db} }

var scriptColumns = map[string]bool{
	"title":    true,
	"author":   true,
	"revision": true,
}

// EntityName identifies the repo for debounced save keys.
func (r *ScriptRepo) EntityName() string { return "scripts" }

// Update applies a column payload to a script row.
func (r *ScriptRepo) Update(ctx context.Context, id string, payload map[string]any) error {
	return updateFields(ctx, r.db, "scripts", scriptColumns, id, payload)
}

func (r *ScriptRepo) Insert(ctx context.Context, s Script) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO scripts(id, title, author, revision, created_at, updated_at)
	VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, s.ID, s.Title, s.Author, s.Revision)
	return err
}

func (r *ScriptRepo) Get(ctx context.Context, id string) (*Script, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, author, revision, created_at, updated_at FROM scripts WHERE id = ?`, id)
	var s Script
	var author sql.NullString
	if err := row.Scan(&s.ID, &s.Title, &author, &s.Revision, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if author.Valid {
		s.Author = &author.String
	}
	return &s, nil
}

func (r *ScriptRepo) List(ctx context.Context) ([]Script, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, author, revision, created_at, updated_at FROM scripts ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Script
	for rows.Next() {
		var s Script
		var author sql.NullString
		if err := rows.Scan(&s.ID, &s.Title, &author, &s.Revision, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if author.Valid {
			s.Author = &author.String
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ScriptRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scripts WHERE id = ?`, id)
	return err
}
