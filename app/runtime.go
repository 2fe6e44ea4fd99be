package app

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"slate/internal/config"
	"slate/internal/database/repository"
	"slate/internal/dnd"
	"slate/internal/llm"
	"slate/internal/service"
	"slate/internal/timing"
	"slate/tabs"
)

// saveQuiet is the trailing debounce window for order writes.
const saveQuiet = 2 * time.Second

// Runtime owns the long-lived collaborators behind the tabs: repositories,
// the drag provider, the debounced saver, and the current selection (which
// script, scene, and shoot day the panes show).
type Runtime struct {
	Cfg        config.Config
	Log        *zap.Logger
	Production *service.Production
	Assistant  *service.Assistant
	Provider   *dnd.Provider

	scriptID string
	sceneID  string
	schedule *tabs.ScheduleTab

	pendingScene       string
	pendingSuggestions []llm.SuggestedElement
}

func NewRuntime(cfg config.Config, log *zap.Logger, db *sql.DB, model llm.Provider, live dnd.LiveRegion) *Runtime {
	if log == nil {
		log = zap.NewNop()
	}
	clock := timing.RealClock()
	announcer := dnd.NewAnnouncer(live, clock)
	registry := dnd.NewRegistry()
	provider := dnd.NewProvider(registry, announcer, log, cfg.UI.ReorderEnabled)
	saver := dnd.NewSaver(timing.NewDebouncer(saveQuiet, clock), announcer, log)

	production := &service.Production{
		Scripts:    repository.NewScriptRepo(db),
		Scenes:     repository.NewSceneRepo(db),
		Elements:   repository.NewElementRepo(db),
		Categories: repository.NewElementCategoryRepo(db),
		Frames:     repository.NewFrameRepo(db),
		Schedule:   repository.NewScheduleRepo(db),
		Saver:      saver,
	}
	assistant := &service.Assistant{
		Provider:   model,
		Scenes:     production.Scenes,
		Elements:   production.Elements,
		Categories: production.Categories,
		Log:        log,
	}
	return &Runtime{
		Cfg:        cfg,
		Log:        log,
		Production: production,
		Assistant:  assistant,
		Provider:   provider,
	}
}

// currentScript resolves the active script, defaulting to the first one.
func (rt *Runtime) currentScript(ctx context.Context) (string, error) {
	if rt.scriptID != "" {
		return rt.scriptID, nil
	}
	scripts, err := rt.Production.Scripts.List(ctx)
	if err != nil {
		return "", err
	}
	if len(scripts) == 0 {
		return "", nil
	}
	rt.scriptID = scripts[0].ID
	return rt.scriptID, nil
}

// currentScene resolves the active scene, defaulting to the script's first.
func (rt *Runtime) currentScene(ctx context.Context) (string, error) {
	if rt.sceneID != "" {
		return rt.sceneID, nil
	}
	scriptID, err := rt.currentScript(ctx)
	if err != nil || scriptID == "" {
		return "", err
	}
	scenes, err := rt.Production.Scenes.List(ctx, repository.SceneFilters{ScriptID: scriptID})
	if err != nil {
		return "", err
	}
	if len(scenes) == 0 {
		return "", nil
	}
	rt.sceneID = scenes[0].ID
	return rt.sceneID, nil
}
