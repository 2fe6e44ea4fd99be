package repository

import (
	"context"
	"database/sql"
	"strings"
)

// ElementFilters defines list filters.
type ElementFilters struct {
	SceneID    string
	CategoryID string
	Search     string
}

// ElementRepo handles breakdown elements.
type ElementRepo struct {
	db *sql.DB
}

func NewElementRepo(db *sql.DB) *ElementRepo { return &ElementRepo{db: db} }

var elementColumns = map[string]bool{
	"category_id": true,
	"name":        true,
	"quantity":    true,
	"notes":       true,
}

func (r *ElementRepo) EntityName() string { return "elements" }

func (r *ElementRepo) Update(ctx context.Context, id string, payload map[string]any) error {
	return updateFields(ctx, r.db, "elements", elementColumns, id, payload)
}

func (r *ElementRepo) Insert(ctx context.Context, e Element) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO elements(id, scene_id, category_id, name, quantity, notes, sort_order, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, e.ID, e.SceneID, e.CategoryID, e.Name, e.Quantity, e.Notes, e.SortOrder)
	return err
}

func (r *ElementRepo) List(ctx context.Context, f ElementFilters) ([]Element, error) {
	var where []string
	var args []any

	if f.SceneID != "" {
		where = append(where, "scene_id = ?")
		args = append(args, f.SceneID)
	}
	if f.CategoryID != "" {
		where = append(where, "category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.Search != "" {
		where = append(where, "name LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}

	query := "SELECT id, scene_id, category_id, name, quantity, notes, sort_order, created_at, updated_at FROM elements"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sort_order, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Element
	for rows.Next() {
		var e Element
		var category, notes sql.NullString
		if err := rows.Scan(&e.ID, &e.SceneID, &category, &e.Name, &e.Quantity, &notes, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if category.Valid {
			e.CategoryID = &category.String
		}
		if notes.Valid {
			e.Notes = &notes.String
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Reorder rewrites sort_order for the scene's elements to match ids.
func (r *ElementRepo) Reorder(ctx context.Context, sceneID string, ids []string) error {
	return reorder(ctx, r.db, "elements", "scene_id", sceneID, ids)
}

func (r *ElementRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM elements WHERE id = ?`, id)
	return err
}
