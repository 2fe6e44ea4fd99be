package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"slate/internal/database/repository"
)

// SeedDefaults ensures baseline breakdown categories exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	catRepo := repository.NewElementCategoryRepo(db)
	existing, err := catRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	defaults := []struct {
		name  string
		color string
	}{
		{"Cast", "#f38ba8"},
		{"Background", "#fab387"},
		{"Props", "#a6e3a1"},
		{"Set Dressing", "#94e2d5"},
		{"Wardrobe", "#89b4fa"},
		{"Makeup & Hair", "#cba6f7"},
		{"Vehicles", "#f9e2af"},
		{"Animals", "#eba0ac"},
		{"Special Effects", "#74c7ec"},
		{"Sound & Music", "#b4befe"},
	}
	for idx, c := range defaults {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("elemcat:"+c.name)).String()
		cat := repository.ElementCategory{ID: id, Name: c.name, Color: c.color, SortOrder: idx}
		if err := catRepo.Upsert(ctx, cat); err != nil {
			return err
		}
	}
	return nil
}
