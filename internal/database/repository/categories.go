package repository

import (
	"context"
	"database/sql"
)

// ElementCategoryRepo handles breakdown categories.
type ElementCategoryRepo struct {
	db *sql.DB
}

func NewElementCategoryRepo(db *sql.DB) *ElementCategoryRepo {
	return &ElementCategoryRepo{db: db}
}

func (r *ElementCategoryRepo) Upsert(ctx context.Context, c ElementCategory) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO element_categories(id, name, color, sort_order)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 color=excluded.color,
	 sort_order=excluded.sort_order;
	`, c.ID, c.Name, c.Color, c.SortOrder)
	return err
}

func (r *ElementCategoryRepo) List(ctx context.Context) ([]ElementCategory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color, sort_order FROM element_categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ElementCategory
	for rows.Next() {
		var c ElementCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ElementCategoryRepo) ByName(ctx context.Context, name string) (*ElementCategory, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, color, sort_order FROM element_categories WHERE name = ?`, name)
	var c ElementCategory
	if err := row.Scan(&c.ID, &c.Name, &c.Color, &c.SortOrder); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
