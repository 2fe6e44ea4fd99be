package repository

import (
	"context"
	"database/sql"
	"strings"
)

// SceneFilters defines list filters.
type SceneFilters struct {
	ScriptID  string
	TimeOfDay string
	Search    string
}

// SceneRepo handles scenes.
type SceneRepo struct {
	db *sql.DB
}

func NewSceneRepo(db *sql.DB) *SceneRepo { return &SceneRepo{db: db} }

var sceneColumns = map[string]bool{
	"number":       true,
	"slugline":     true,
	"synopsis":     true,
	"time_of_day":  true,
	"page_eighths": true,
}

func (r *SceneRepo) EntityName() string { return "scenes" }

func (r *SceneRepo) Update(ctx context.Context, id string, payload map[string]any) error {
	return updateFields(ctx, r.db, "scenes", sceneColumns, id, payload)
}

func (r *SceneRepo) Insert(ctx context.Context, s Scene) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO scenes(id, script_id, number, slugline, synopsis, time_of_day, page_eighths, sort_order, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, s.ID, s.ScriptID, s.Number, s.Slugline, s.Synopsis, s.TimeOfDay, s.PageEighths, s.SortOrder)
	return err
}

func (r *SceneRepo) Get(ctx context.Context, id string) (*Scene, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, script_id, number, slugline, synopsis, time_of_day, page_eighths, sort_order, created_at, updated_at FROM scenes WHERE id = ?`, id)
	s, err := scanScene(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SceneRepo) List(ctx context.Context, f SceneFilters) ([]Scene, error) {
	var where []string
	var args []any

	if f.ScriptID != "" {
		where = append(where, "script_id = ?")
		args = append(args, f.ScriptID)
	}
	if f.TimeOfDay != "" {
		where = append(where, "time_of_day = ?")
		args = append(args, f.TimeOfDay)
	}
	if f.Search != "" {
		where = append(where, "(slugline LIKE ? OR synopsis LIKE ?)")
		args = append(args, "%"+f.Search+"%", "%"+f.Search+"%")
	}

	query := "SELECT id, script_id, number, slugline, synopsis, time_of_day, page_eighths, sort_order, created_at, updated_at FROM scenes"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sort_order, number"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Scene
	for rows.Next() {
		s, err := scanScene(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Reorder rewrites sort_order for the script's scenes to match ids.
func (r *SceneRepo) Reorder(ctx context.Context, scriptID string, ids []string) error {
	return reorder(ctx, r.db, "scenes", "script_id", scriptID, ids)
}

func (r *SceneRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scenes WHERE id = ?`, id)
	return err
}

func scanScene(row scanner) (Scene, error) {
	var s Scene
	var synopsis, timeOfDay sql.NullString
	if err := row.Scan(&s.ID, &s.ScriptID, &s.Number, &s.Slugline, &synopsis, &timeOfDay,
		&s.PageEighths, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return Scene{}, err
	}
	if synopsis.Valid {
		s.Synopsis = &synopsis.String
	}
	if timeOfDay.Valid {
		s.TimeOfDay = &timeOfDay.String
	}
	return s, nil
}

// scanner handles nullable fields for both Row and Rows.
type scanner interface {
	Scan(dest ...any) error
}
