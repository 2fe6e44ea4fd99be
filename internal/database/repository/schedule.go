package repository

import (
	"context"
	"database/sql"
)

// ScheduleRepo handles shoot days and strips.
type ScheduleRepo struct {
	db *sql.DB
}

func NewScheduleRepo(db *sql.DB) *ScheduleRepo { return &ScheduleRepo{db: db} }

var stripColumns = map[string]bool{
	"day_id": true,
	"status": true,
}

func (r *ScheduleRepo) EntityName() string { return "strips" }

func (r *ScheduleRepo) Update(ctx context.Context, id string, payload map[string]any) error {
	return updateFields(ctx, r.db, "strips", stripColumns, id, payload)
}

func (r *ScheduleRepo) InsertDay(ctx context.Context, d ShootDay) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO shoot_days(id, day_date, label, sort_order, created_at, updated_at)
	VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, d.ID, d.Date, d.Label, d.SortOrder)
	return err
}

func (r *ScheduleRepo) ListDays(ctx context.Context) ([]ShootDay, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, day_date, label, sort_order FROM shoot_days ORDER BY sort_order, day_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ShootDay
	for rows.Next() {
		var d ShootDay
		var label sql.NullString
		if err := rows.Scan(&d.ID, &d.Date, &label, &d.SortOrder); err != nil {
			return nil, err
		}
		if label.Valid {
			d.Label = &label.String
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *ScheduleRepo) InsertStrip(ctx context.Context, s Strip) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO strips(id, scene_id, day_id, status, sort_order, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, s.ID, s.SceneID, s.DayID, s.Status, s.SortOrder)
	return err
}

// ListStrips returns strips for a day; a nil dayID selects the boneyard.
func (r *ScheduleRepo) ListStrips(ctx context.Context, dayID *string) ([]Strip, error) {
	query := `SELECT id, scene_id, day_id, status, sort_order, created_at, updated_at FROM strips WHERE day_id IS NULL ORDER BY sort_order`
	var args []any
	if dayID != nil {
		query = `SELECT id, scene_id, day_id, status, sort_order, created_at, updated_at FROM strips WHERE day_id = ? ORDER BY sort_order`
		args = append(args, *dayID)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Strip
	for rows.Next() {
		var s Strip
		var day sql.NullString
		if err := rows.Scan(&s.ID, &s.SceneID, &day, &s.Status, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if day.Valid {
			s.DayID = &day.String
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// MoveStrip reassigns a strip's day; nil sends it to the boneyard.
func (r *ScheduleRepo) MoveStrip(ctx context.Context, stripID string, dayID *string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE strips SET day_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, dayID, stripID)
	return err
}

// ReorderStrips rewrites sort_order within a day (nil = boneyard) to match ids.
func (r *ScheduleRepo) ReorderStrips(ctx context.Context, dayID *string, ids []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	query := `UPDATE strips SET sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND day_id IS NULL`
	if dayID != nil {
		query = `UPDATE strips SET sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND day_id = ?`
	}
	for idx, id := range ids {
		args := []any{idx, id}
		if dayID != nil {
			args = append(args, *dayID)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *ScheduleRepo) DeleteStrip(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM strips WHERE id = ?`, id)
	return err
}
