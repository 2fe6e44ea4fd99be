package repository

import (
	"context"
	"database/sql"
)

// FrameRepo handles storyboard frames.
type FrameRepo struct {
	db *sql.DB
}

func NewFrameRepo(db *sql.DB) *FrameRepo { return &FrameRepo{db: db} }

var frameColumns = map[string]bool{
	"caption":    true,
	"shot_type":  true,
	"image_path": true,
}

func (r *FrameRepo) EntityName() string { return "frames" }

func (r *FrameRepo) Update(ctx context.Context, id string, payload map[string]any) error {
	return updateFields(ctx, r.db, "frames", frameColumns, id, payload)
}

func (r *FrameRepo) Insert(ctx context.Context, f Frame) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO frames(id, scene_id, caption, shot_type, image_path, sort_order, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, f.ID, f.SceneID, f.Caption, f.ShotType, f.ImagePath, f.SortOrder)
	return err
}

func (r *FrameRepo) ListByScene(ctx context.Context, sceneID string) ([]Frame, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, scene_id, caption, shot_type, image_path, sort_order, created_at, updated_at FROM frames WHERE scene_id = ? ORDER BY sort_order`, sceneID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Frame
	for rows.Next() {
		var f Frame
		var shot, image sql.NullString
		if err := rows.Scan(&f.ID, &f.SceneID, &f.Caption, &shot, &image, &f.SortOrder, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		if shot.Valid {
			f.ShotType = &shot.String
		}
		if image.Valid {
			f.ImagePath = &image.String
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Reorder rewrites sort_order for the scene's frames to match ids.
func (r *FrameRepo) Reorder(ctx context.Context, sceneID string, ids []string) error {
	return reorder(ctx, r.db, "frames", "scene_id", sceneID, ids)
}

func (r *FrameRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM frames WHERE id = ?`, id)
	return err
}
