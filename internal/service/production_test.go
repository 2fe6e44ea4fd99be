package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"slate/internal/database"
	"slate/internal/database/repository"
	"slate/internal/dnd"
	"slate/internal/timing"
)

func openTestDB(t *testing.T) *Production {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaults(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return &Production{
		Scripts:    repository.NewScriptRepo(db),
		Scenes:     repository.NewSceneRepo(db),
		Elements:   repository.NewElementRepo(db),
		Categories: repository.NewElementCategoryRepo(db),
		Frames:     repository.NewFrameRepo(db),
		Schedule:   repository.NewScheduleRepo(db),
	}
}

func TestOrderIDs(t *testing.T) {
	if _, err := orderIDs(map[string]any{}); err == nil {
		t.Error("missing order key: want error")
	}
	if _, err := orderIDs(map[string]any{"order": []any{"a", 3}}); err == nil {
		t.Error("non-string id: want error")
	}
	ids, err := orderIDs(map[string]any{"order": []any{"a", "b"}})
	if err != nil || len(ids) != 2 || ids[1] != "b" {
		t.Errorf("orderIDs([]any) = %v, %v", ids, err)
	}
	ids, err = orderIDs(map[string]any{"order": []string{"x"}})
	if err != nil || len(ids) != 1 {
		t.Errorf("orderIDs([]string) = %v, %v", ids, err)
	}
}

func TestSaveOrderDebouncesToOneWrite(t *testing.T) {
	ctx := context.Background()
	p := openTestDB(t)

	clock := timing.NewManualClock()
	p.Saver = dnd.NewSaver(timing.NewDebouncer(2*time.Second, clock), nil, zap.NewNop())

	if err := p.Scripts.Insert(ctx, repository.Script{ID: "s1", Title: "Untitled", Revision: "white"}); err != nil {
		t.Fatalf("insert script: %v", err)
	}
	for i, id := range []string{"sc-a", "sc-b", "sc-c"} {
		scene := repository.Scene{ID: id, ScriptID: "s1", Number: string(rune('1' + i)), Slugline: "INT. SOMEWHERE", SortOrder: i}
		if err := p.Scenes.Insert(ctx, scene); err != nil {
			t.Fatalf("insert scene: %v", err)
		}
	}

	// Two rapid moves; only the second order should hit storage.
	if err := p.SaveOrder(ctx, p.SceneOrder(), "s1", []string{"sc-b", "sc-a", "sc-c"}, nil); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := p.SaveOrder(ctx, p.SceneOrder(), "s1", []string{"sc-c", "sc-b", "sc-a"}, nil); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	scenes, err := p.Scenes.List(ctx, repository.SceneFilters{ScriptID: "s1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if scenes[0].ID != "sc-a" {
		t.Fatalf("order changed before the window elapsed: %v", scenes[0].ID)
	}

	clock.Advance(2 * time.Second)

	scenes, err = p.Scenes.List(ctx, repository.SceneFilters{ScriptID: "s1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{scenes[0].ID, scenes[1].ID, scenes[2].ID}
	want := []string{"sc-c", "sc-b", "sc-a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFlushOrderCommitsImmediately(t *testing.T) {
	ctx := context.Background()
	p := openTestDB(t)

	clock := timing.NewManualClock()
	p.Saver = dnd.NewSaver(timing.NewDebouncer(2*time.Second, clock), nil, zap.NewNop())

	if err := p.Scripts.Insert(ctx, repository.Script{ID: "s1", Title: "Untitled", Revision: "white"}); err != nil {
		t.Fatalf("insert script: %v", err)
	}
	for i, id := range []string{"sc-a", "sc-b"} {
		if err := p.Scenes.Insert(ctx, repository.Scene{ID: id, ScriptID: "s1", Number: string(rune('1' + i)), Slugline: "INT. SOMEWHERE", SortOrder: i}); err != nil {
			t.Fatalf("insert scene: %v", err)
		}
	}

	if err := p.SaveOrder(ctx, p.SceneOrder(), "s1", []string{"sc-b", "sc-a"}, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	p.FlushOrder(p.SceneOrder(), "s1")

	scenes, err := p.Scenes.List(ctx, repository.SceneFilters{ScriptID: "s1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if scenes[0].ID != "sc-b" {
		t.Fatalf("flush did not commit, first = %s", scenes[0].ID)
	}
}

func TestStripOrderAcrossBoneyard(t *testing.T) {
	ctx := context.Background()
	p := openTestDB(t)

	clock := timing.NewManualClock()
	p.Saver = dnd.NewSaver(timing.NewDebouncer(2*time.Second, clock), nil, zap.NewNop())

	if err := p.Scripts.Insert(ctx, repository.Script{ID: "s1", Title: "Untitled", Revision: "white"}); err != nil {
		t.Fatalf("insert script: %v", err)
	}
	if err := p.Scenes.Insert(ctx, repository.Scene{ID: "sc-1", ScriptID: "s1", Number: "1", Slugline: "INT. SOMEWHERE"}); err != nil {
		t.Fatalf("insert scene: %v", err)
	}
	day := repository.ShootDay{ID: "day-1", Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}
	if err := p.Schedule.InsertDay(ctx, day); err != nil {
		t.Fatalf("insert day: %v", err)
	}
	for i, id := range []string{"st-a", "st-b"} {
		strip := repository.Strip{ID: id, SceneID: "sc-1", Status: "unscheduled", SortOrder: i}
		if err := p.Schedule.InsertStrip(ctx, strip); err != nil {
			t.Fatalf("insert strip: %v", err)
		}
	}

	// Move st-a onto the day, then persist both lists' orders.
	if err := p.Schedule.MoveStrip(ctx, "st-a", &day.ID); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := p.SaveOrder(ctx, p.StripOrder(), "day-1", []string{"st-a"}, nil); err != nil {
		t.Fatalf("save day: %v", err)
	}
	if err := p.SaveOrder(ctx, p.StripOrder(), BoneyardID(), []string{"st-b"}, nil); err != nil {
		t.Fatalf("save boneyard: %v", err)
	}
	clock.Advance(2 * time.Second)

	onDay, err := p.Schedule.ListStrips(ctx, &day.ID)
	if err != nil || len(onDay) != 1 || onDay[0].ID != "st-a" {
		t.Fatalf("day strips = %v, %v", onDay, err)
	}
	pool, err := p.Schedule.ListStrips(ctx, nil)
	if err != nil || len(pool) != 1 || pool[0].ID != "st-b" {
		t.Fatalf("boneyard strips = %v, %v", pool, err)
	}
}

func TestStripOwner(t *testing.T) {
	if got := StripOwner(BoneyardID()); got != nil {
		t.Errorf("StripOwner(boneyard) = %v, want nil", *got)
	}
	got := StripOwner("day-7")
	if got == nil || *got != "day-7" {
		t.Errorf("StripOwner(day-7) = %v, want day-7", got)
	}
}
