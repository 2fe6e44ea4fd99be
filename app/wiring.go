package app

import (
	"context"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"slate/core"
	"slate/internal/dnd"
	"slate/internal/service"
	"slate/screens"
	"slate/tabs"
)

// keyDayPlaceholder is the day pane's droppable id before a shoot day has
// been resolved.
const keyDayPlaceholder = "day-pending"

// rankMatch is the minimum similarity for a filtered list row to stay
// visible.
const rankMatch = 0.55

// Tabs assembles the tab set against the runtime. Order matters: the
// switch-tab keybindings address tabs by index.
func (rt *Runtime) Tabs() []core.Tab {
	script := tabs.NewScriptTab(rt.Provider, tabs.ScriptConfig{
		Scenes: tabs.ListSource{
			ListID:  "scenes",
			LoadKey: keyScenes,
			Load:    rt.loadScriptTab,
			Persist: rt.persistScenes,
			Flush:   rt.flushScenes,
		},
		Rank:    rankItems,
		InfoKey: keyScriptInfo,
	})
	breakdown := tabs.NewBreakdownTab(rt.Provider, tabs.BreakdownConfig{
		Elements: tabs.ListSource{
			ListID:  "elements",
			LoadKey: keyElements,
			Load:    rt.loadBreakdownTab,
			Persist: rt.persistElements,
			Flush:   rt.flushElements,
		},
		SheetKey: keySheet,
	})
	storyboard := tabs.NewStoryboardTab(rt.Provider, tabs.StoryboardConfig{
		Frames: tabs.ListSource{
			ListID:  "frames",
			LoadKey: keyFrames,
			Load:    rt.loadStoryboardTab,
			Persist: rt.persistFrames,
			Flush:   rt.flushFrames,
		},
		DetailKey: keyFrameDetail,
	})
	schedule := tabs.NewScheduleTab(rt.Provider, tabs.ScheduleConfig{
		Day: tabs.ListSource{
			ListID:  keyDayPlaceholder,
			LoadKey: keyDayStrips,
			Load:    rt.loadScheduleTab,
			Persist: rt.persistStrips,
			Flush:   rt.flushStrips(func() string { return rt.scheduleDayID() }),
		},
		Boneyard: tabs.ListSource{
			ListID:  service.BoneyardID(),
			LoadKey: keyBoneyard,
			Load:    rt.loadBoneyard,
			Persist: rt.persistStrips,
			Flush:   rt.flushStrips(service.BoneyardID),
		},
		SummaryKey: keySummary,
	})
	rt.schedule = schedule
	settings := tabs.NewSettingsTab(keySettings, rt.loadSettings)

	rt.initSelection()

	return []core.Tab{script, breakdown, storyboard, schedule, settings}
}

// initSelection resolves the startup script, scene, and shoot day before the
// event loop runs, so load commands never mutate pane registrations off the
// UI goroutine.
func (rt *Runtime) initSelection() {
	ctx := context.Background()
	if _, err := rt.currentScene(ctx); err != nil {
		rt.Log.Error("resolve startup scene", zap.Error(err))
	}
	days, err := rt.Production.Schedule.ListDays(ctx)
	if err != nil {
		rt.Log.Error("resolve startup day", zap.Error(err))
		return
	}
	if len(days) > 0 {
		rt.schedule.SetDay(days[0].ID, "Day 1: "+rt.dayLabel(days[0]))
	}
}

// loadScriptTab refreshes the scene list and the script summary together.
func (rt *Runtime) loadScriptTab() tea.Cmd {
	return tea.Batch(rt.loadScenes(), rt.loadScriptInfo())
}

// loadBreakdownTab refreshes the element list and the category sheet.
func (rt *Runtime) loadBreakdownTab() tea.Cmd {
	return tea.Batch(rt.loadElements(), rt.loadSheet())
}

// loadStoryboardTab refreshes the frame list and the shot detail.
func (rt *Runtime) loadStoryboardTab() tea.Cmd {
	return tea.Batch(rt.loadFrames(), rt.loadFrameDetail())
}

// loadScheduleTab refreshes the day strips and the workload chart.
func (rt *Runtime) loadScheduleTab() tea.Cmd {
	return tea.Batch(rt.loadDayStrips(), rt.loadSummary())
}

func (rt *Runtime) scheduleDayID() string {
	if rt.schedule == nil {
		return ""
	}
	return rt.schedule.DayID()
}

// rankItems filters list rows by label similarity to the query.
func rankItems(query string, items []dnd.Item) []dnd.Item {
	type scored struct {
		item  dnd.Item
		score float64
	}
	matches := make([]scored, 0, len(items))
	for _, it := range items {
		if s := service.Similarity(query, it.Label); s >= rankMatch {
			matches = append(matches, scored{item: it, score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	out := make([]dnd.Item, len(matches))
	for i, m := range matches {
		out[i] = m.item
	}
	return out
}

// ConfigureModel finishes model setup that needs both the model and runtime.
func ConfigureModel(m *core.Model, rt *Runtime) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	rt.RegisterCommands(m.CommandRegistry())
}
