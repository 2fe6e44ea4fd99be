package database

import (
	"context"
	"testing"

	"slate/internal/database/repository"
)

func TestMigrationsApplyTwice(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := RunMigrations(db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// No-change runs must be silent.
	if err := RunMigrations(db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	for _, table := range []string{"scripts", "scenes", "element_categories", "elements", "frames", "shoot_days", "strips"} {
		var name string
		row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := SeedDefaults(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cats := repository.NewElementCategoryRepo(db)
	first, err := cats.List(ctx)
	if err != nil || len(first) == 0 {
		t.Fatalf("list: %v, %v", first, err)
	}

	if err := SeedDefaults(ctx, db); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	second, err := cats.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second) != len(first) {
		t.Errorf("reseed grew categories: %d -> %d", len(first), len(second))
	}

	props, err := cats.ByName(ctx, "Props")
	if err != nil || props == nil {
		t.Fatalf("Props category missing: %v", err)
	}
}
