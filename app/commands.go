package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"slate/core"
	"slate/internal/config"
	"slate/internal/database/repository"
	"slate/screens"
)

// RegisterCommands installs the palette commands. Tab switching addresses
// the order produced by Tabs.
func (rt *Runtime) RegisterCommands(reg *core.CommandRegistry) {
	tabSwitch := []struct {
		id, name string
		index    int
	}{
		{"switch-script", "Switch to script", 0},
		{"switch-breakdown", "Switch to breakdown", 1},
		{"switch-storyboard", "Switch to storyboard", 2},
		{"switch-schedule", "Switch to schedule", 3},
		{"switch-settings", "Switch to settings", 4},
	}
	for _, t := range tabSwitch {
		t := t
		reg.Register(core.Command{
			ID:          t.id,
			Name:        t.name,
			Description: "Activate the " + t.name[10:] + " tab",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTab(t.index)
				return nil
			},
		})
	}

	reg.Register(core.Command{
		ID:          "script-pick",
		Name:        "Open script",
		Description: "Choose which script the tabs show",
		Scopes:      []string{"*"},
		Execute:     rt.pickScript,
	})
	reg.Register(core.Command{
		ID:          "scene-pick",
		Name:        "Go to scene",
		Description: "Choose the scene for breakdown and storyboard",
		Scopes:      []string{"*"},
		Execute:     rt.pickScene,
	})
	reg.Register(core.Command{
		ID:          "day-pick",
		Name:        "Go to shoot day",
		Description: "Choose which day the stripboard shows",
		Scopes:      []string{"*"},
		Execute:     rt.pickDay,
	})
	reg.Register(core.Command{
		ID:          "breakdown-suggest",
		Name:        "Suggest breakdown",
		Description: "Ask the assistant to tag elements for the current scene",
		Scopes:      []string{"*"},
		Disabled:    rt.needsScene,
		Execute:     rt.suggestBreakdown,
	})
	reg.Register(core.Command{
		ID:          "breakdown-apply",
		Name:        "Apply suggested breakdown",
		Description: "Insert the last reviewed suggestions",
		Scopes:      []string{"*"},
		Disabled: func(m *core.Model) (bool, string) {
			if len(rt.pendingSuggestions) == 0 {
				return true, "no suggestions waiting for review"
			}
			return false, ""
		},
		Execute: rt.applySuggestions,
	})
	reg.Register(core.Command{
		ID:          "synopsis-revise",
		Name:        "Revise synopsis",
		Description: "Rewrite the current scene's synopsis with the assistant",
		Scopes:      []string{"*"},
		Disabled:    rt.needsScene,
		Execute:     rt.reviseSynopsis,
	})
	reg.Register(core.Command{
		ID:          "schedule-plan",
		Name:        "Plan schedule",
		Description: "Distribute strips across shoot days with the assistant",
		Scopes:      []string{"*"},
		Execute:     rt.planSchedule,
	})
	reg.Register(core.Command{
		ID:          "reorder-toggle",
		Name:        "Toggle reordering",
		Description: "Enable or disable keyboard list reordering",
		Scopes:      []string{"*"},
		Execute:     rt.toggleReorder,
	})
}

func (rt *Runtime) needsScene(m *core.Model) (bool, string) {
	if id, err := rt.currentScene(context.Background()); err != nil || id == "" {
		return true, "no scene selected"
	}
	return false, ""
}

func (rt *Runtime) pickScript(m *core.Model) tea.Cmd {
	ctx := context.Background()
	scripts, err := rt.Production.Scripts.List(ctx)
	if err != nil {
		return core.ErrorCmd(err)
	}
	items := make([]screens.PickerItem, len(scripts))
	for i, s := range scripts {
		items[i] = screens.PickerItem{ID: s.ID, Label: s.Title, Desc: "rev " + s.Revision}
	}
	m.PushScreen(screens.NewPickerScreen("Open Script", "screen:picker", items, func(it screens.PickerItem) tea.Msg {
		rt.scriptID = it.ID
		rt.sceneID = ""
		return tea.Batch(
			rt.loadScriptTab(),
			rt.loadBreakdownTab(),
			rt.loadStoryboardTab(),
			core.StatusCmd("Script: "+it.Label),
		)()
	}))
	return nil
}

func (rt *Runtime) pickScene(m *core.Model) tea.Cmd {
	ctx := context.Background()
	scriptID, err := rt.currentScript(ctx)
	if err != nil {
		return core.ErrorCmd(err)
	}
	scenes, err := rt.Production.Scenes.List(ctx, repository.SceneFilters{ScriptID: scriptID})
	if err != nil {
		return core.ErrorCmd(err)
	}
	items := make([]screens.PickerItem, len(scenes))
	for i, s := range scenes {
		desc := ""
		if s.Synopsis != nil {
			desc = *s.Synopsis
		}
		items[i] = screens.PickerItem{ID: s.ID, Label: sceneLabel(s), Desc: desc}
	}
	m.PushScreen(screens.NewPickerScreen("Go to Scene", "screen:picker", items, func(it screens.PickerItem) tea.Msg {
		rt.sceneID = it.ID
		return tea.Batch(
			rt.loadBreakdownTab(),
			rt.loadStoryboardTab(),
			core.StatusCmd("Scene: "+it.Label),
		)()
	}))
	return nil
}

func (rt *Runtime) pickDay(m *core.Model) tea.Cmd {
	ctx := context.Background()
	days, err := rt.Production.Schedule.ListDays(ctx)
	if err != nil {
		return core.ErrorCmd(err)
	}
	items := make([]screens.PickerItem, len(days))
	for i, d := range days {
		items[i] = screens.PickerItem{ID: d.ID, Label: fmt.Sprintf("Day %d: %s", i+1, rt.dayLabel(d)), Desc: d.Date.Format("2006-01-02")}
	}
	m.PushScreen(screens.NewPickerScreen("Go to Shoot Day", "screen:picker", items, func(it screens.PickerItem) tea.Msg {
		if rt.schedule != nil {
			rt.schedule.SetDay(it.ID, it.Label)
		}
		return tea.Batch(rt.loadScheduleTab(), core.StatusCmd(it.Label))()
	}))
	return nil
}

func (rt *Runtime) suggestBreakdown(m *core.Model) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sceneID, err := rt.currentScene(ctx)
		if err != nil {
			return core.DataLoadedMsg{Key: keyElements, Err: err}
		}
		result, err := rt.Assistant.SuggestBreakdown(ctx, sceneID)
		if err != nil {
			return core.DataLoadedMsg{Key: keyElements, Err: err}
		}
		if !result.AutoApply {
			rt.pendingScene = sceneID
			rt.pendingSuggestions = result.Elements
			return core.StatusMsg{Text: fmt.Sprintf(
				"%d suggestions at %.0f%% confidence, run \"Apply suggested breakdown\" to accept",
				len(result.Elements), result.Confidence*100)}
		}
		n, err := rt.Assistant.ApplyBreakdown(ctx, sceneID, result.Elements)
		if err != nil {
			return core.DataLoadedMsg{Key: keyElements, Err: err}
		}
		return tea.Batch(
			rt.loadBreakdownTab(),
			core.StatusCmd(fmt.Sprintf("Tagged %d elements (%.0f%% confidence)", n, result.Confidence*100)),
		)()
	}
}

func (rt *Runtime) applySuggestions(m *core.Model) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		n, err := rt.Assistant.ApplyBreakdown(ctx, rt.pendingScene, rt.pendingSuggestions)
		if err != nil {
			return core.DataLoadedMsg{Key: keyElements, Err: err}
		}
		rt.pendingScene = ""
		rt.pendingSuggestions = nil
		return tea.Batch(
			rt.loadBreakdownTab(),
			core.StatusCmd(fmt.Sprintf("Tagged %d elements", n)),
		)()
	}
}

func (rt *Runtime) reviseSynopsis(m *core.Model) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sceneID, err := rt.currentScene(ctx)
		if err != nil {
			return core.DataLoadedMsg{Key: keyScenes, Err: err}
		}
		synopsis, err := rt.Assistant.ReviseSynopsis(ctx, sceneID)
		if err != nil {
			return core.DataLoadedMsg{Key: keyScenes, Err: err}
		}
		return tea.Batch(
			rt.loadScriptTab(),
			core.StatusCmd("Synopsis: "+synopsis),
		)()
	}
}

func (rt *Runtime) planSchedule(m *core.Model) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		scriptID, err := rt.currentScript(ctx)
		if err != nil {
			return core.DataLoadedMsg{Key: keyDayStrips, Err: err}
		}
		days, err := rt.Production.Schedule.ListDays(ctx)
		if err != nil {
			return core.DataLoadedMsg{Key: keyDayStrips, Err: err}
		}
		if len(days) == 0 {
			return core.StatusMsg{Text: "Add shoot days before planning", IsErr: true}
		}
		plan, err := rt.Assistant.PlanSchedule(ctx, scriptID, len(days))
		if err != nil {
			return core.DataLoadedMsg{Key: keyDayStrips, Err: err}
		}
		moved, err := rt.applyPlan(ctx, scriptID, days, plan.Days)
		if err != nil {
			return core.DataLoadedMsg{Key: keyDayStrips, Err: err}
		}
		return tea.Batch(
			rt.loadScheduleTab(),
			rt.loadBoneyard(),
			core.StatusCmd(fmt.Sprintf("Scheduled %d strips across %d days", moved, len(days))),
		)()
	}
}

func (rt *Runtime) toggleReorder(m *core.Model) tea.Cmd {
	enabled := !rt.Provider.Enabled()
	rt.Provider.SetEnabled(enabled)
	rt.Cfg.UI.ReorderEnabled = enabled
	if err := config.Save(rt.Cfg); err != nil {
		return core.ErrorCmd(err)
	}
	status := "Reordering disabled"
	if enabled {
		status = "Reordering enabled"
	}
	return tea.Batch(rt.loadSettings(), core.StatusCmd(status))
}
