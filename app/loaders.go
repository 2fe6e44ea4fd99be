package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"slate/core"
	"slate/internal/database/repository"
	"slate/internal/dnd"
	"slate/internal/service"
	"slate/widgets"
)

// Load keys shared between the wiring and the panes that consume them.
const (
	keyScenes      = "scenes"
	keyScriptInfo  = "script-info"
	keyElements    = "elements"
	keySheet       = "breakdown-sheet"
	keyFrames      = "frames"
	keyFrameDetail = "frame-detail"
	keyDayStrips   = "day-strips"
	keyBoneyard    = "boneyard-strips"
	keySummary     = "schedule-summary"
	keySettings    = "settings"
)

func loaded(key string, data any, err error) tea.Msg {
	return core.DataLoadedMsg{Key: key, Data: data, Err: err}
}

func itemIDs(items []dnd.Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func sceneLabel(s repository.Scene) string {
	return fmt.Sprintf("%-4s %s (%d/8)", s.Number, s.Slugline, s.PageEighths)
}

func (rt *Runtime) loadScenes() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		scriptID, err := rt.currentScript(ctx)
		if err != nil {
			return loaded(keyScenes, nil, err)
		}
		scenes, err := rt.Production.Scenes.List(ctx, repository.SceneFilters{ScriptID: scriptID})
		if err != nil {
			return loaded(keyScenes, nil, err)
		}
		items := make([]dnd.Item, len(scenes))
		for i, s := range scenes {
			items[i] = dnd.Item{ID: s.ID, Label: sceneLabel(s)}
		}
		return loaded(keyScenes, items, nil)
	}
}

func (rt *Runtime) loadScriptInfo() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		scriptID, err := rt.currentScript(ctx)
		if err != nil {
			return loaded(keyScriptInfo, nil, err)
		}
		if scriptID == "" {
			return loaded(keyScriptInfo, "No script loaded", nil)
		}
		script, err := rt.Production.Scripts.Get(ctx, scriptID)
		if err != nil || script == nil {
			return loaded(keyScriptInfo, nil, err)
		}
		scenes, err := rt.Production.Scenes.List(ctx, repository.SceneFilters{ScriptID: scriptID})
		if err != nil {
			return loaded(keyScriptInfo, nil, err)
		}
		eighths := 0
		for _, s := range scenes {
			eighths += s.PageEighths
		}
		author := ""
		if script.Author != nil {
			author = *script.Author
		}
		info := strings.Join([]string{
			script.Title,
			"by " + author,
			"rev " + script.Revision,
			"",
			fmt.Sprintf("%d scenes", len(scenes)),
			fmt.Sprintf("%d %d/8 pages", eighths/8, eighths%8),
		}, "\n")
		return loaded(keyScriptInfo, info, nil)
	}
}

func (rt *Runtime) loadElements() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sceneID, err := rt.currentScene(ctx)
		if err != nil {
			return loaded(keyElements, nil, err)
		}
		if sceneID == "" {
			return loaded(keyElements, []dnd.Item{}, nil)
		}
		elements, err := rt.Production.Elements.List(ctx, repository.ElementFilters{SceneID: sceneID})
		if err != nil {
			return loaded(keyElements, nil, err)
		}
		names, err := rt.categoryNames(ctx)
		if err != nil {
			return loaded(keyElements, nil, err)
		}
		items := make([]dnd.Item, len(elements))
		for i, e := range elements {
			label := e.Name
			if e.Quantity > 1 {
				label = fmt.Sprintf("%s x%d", e.Name, e.Quantity)
			}
			if e.CategoryID != nil {
				if name, ok := names[*e.CategoryID]; ok {
					label += " [" + name + "]"
				}
			}
			items[i] = dnd.Item{ID: e.ID, Label: label}
		}
		return loaded(keyElements, items, nil)
	}
}

func (rt *Runtime) loadSheet() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sceneID, err := rt.currentScene(ctx)
		if err != nil || sceneID == "" {
			return loaded(keySheet, widgets.Table{Headers: []string{"Category", "Items"}}, err)
		}
		elements, err := rt.Production.Elements.List(ctx, repository.ElementFilters{SceneID: sceneID})
		if err != nil {
			return loaded(keySheet, nil, err)
		}
		categories, err := rt.Production.Categories.List(ctx)
		if err != nil {
			return loaded(keySheet, nil, err)
		}
		counts := map[string]int{}
		quantities := map[string]int{}
		for _, e := range elements {
			key := ""
			if e.CategoryID != nil {
				key = *e.CategoryID
			}
			counts[key]++
			quantities[key] += e.Quantity
		}
		rows := make([][]string, 0, len(categories)+1)
		for _, c := range categories {
			if counts[c.ID] == 0 {
				continue
			}
			rows = append(rows, []string{c.Name, fmt.Sprint(counts[c.ID]), fmt.Sprint(quantities[c.ID])})
		}
		if counts[""] > 0 {
			rows = append(rows, []string{"(uncategorized)", fmt.Sprint(counts[""]), fmt.Sprint(quantities[""])})
		}
		return loaded(keySheet, widgets.Table{Headers: []string{"Category", "Items", "Qty"}, Rows: rows}, nil)
	}
}

func (rt *Runtime) loadFrames() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sceneID, err := rt.currentScene(ctx)
		if err != nil {
			return loaded(keyFrames, nil, err)
		}
		if sceneID == "" {
			return loaded(keyFrames, []dnd.Item{}, nil)
		}
		frames, err := rt.Production.Frames.ListByScene(ctx, sceneID)
		if err != nil {
			return loaded(keyFrames, nil, err)
		}
		items := make([]dnd.Item, len(frames))
		for i, f := range frames {
			label := f.Caption
			if f.ShotType != nil {
				label = "[" + *f.ShotType + "] " + label
			}
			items[i] = dnd.Item{ID: f.ID, Label: label}
		}
		return loaded(keyFrames, items, nil)
	}
}

func (rt *Runtime) loadFrameDetail() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sceneID, err := rt.currentScene(ctx)
		if err != nil || sceneID == "" {
			return loaded(keyFrameDetail, "", err)
		}
		scene, err := rt.Production.Scenes.Get(ctx, sceneID)
		if err != nil || scene == nil {
			return loaded(keyFrameDetail, nil, err)
		}
		frames, err := rt.Production.Frames.ListByScene(ctx, sceneID)
		if err != nil {
			return loaded(keyFrameDetail, nil, err)
		}
		shots := map[string]int{}
		sketched := 0
		for _, f := range frames {
			if f.ShotType != nil {
				shots[*f.ShotType]++
			}
			if f.ImagePath != nil {
				sketched++
			}
		}
		lines := []string{scene.Slugline, fmt.Sprintf("%d frames, %d sketched", len(frames), sketched), ""}
		for shot, n := range shots {
			lines = append(lines, fmt.Sprintf("%-6s %d", shot, n))
		}
		return loaded(keyFrameDetail, strings.Join(lines, "\n"), nil)
	}
}

// stripItems resolves strips to scene labels for display.
func (rt *Runtime) stripItems(ctx context.Context, dayID *string) ([]dnd.Item, error) {
	strips, err := rt.Production.Schedule.ListStrips(ctx, dayID)
	if err != nil {
		return nil, err
	}
	items := make([]dnd.Item, len(strips))
	for i, s := range strips {
		scene, err := rt.Production.Scenes.Get(ctx, s.SceneID)
		if err != nil {
			return nil, err
		}
		label := s.SceneID
		if scene != nil {
			label = sceneLabel(*scene)
		}
		if s.Status != "" && s.Status != "planned" {
			label += " [" + s.Status + "]"
		}
		items[i] = dnd.Item{ID: s.ID, Label: label}
	}
	return items, nil
}

func (rt *Runtime) loadDayStrips() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		dayID, err := rt.currentDay(ctx)
		if err != nil {
			return loaded(keyDayStrips, nil, err)
		}
		if dayID == "" {
			return loaded(keyDayStrips, []dnd.Item{}, nil)
		}
		items, err := rt.stripItems(ctx, &dayID)
		return loaded(keyDayStrips, items, err)
	}
}

func (rt *Runtime) loadBoneyard() tea.Cmd {
	return func() tea.Msg {
		items, err := rt.stripItems(context.Background(), nil)
		return loaded(keyBoneyard, items, err)
	}
}

func (rt *Runtime) loadSummary() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		days, err := rt.Production.Schedule.ListDays(ctx)
		if err != nil {
			return loaded(keySummary, nil, err)
		}
		points := make([]widgets.ChartPoint, 0, len(days))
		for _, d := range days {
			dayID := d.ID
			strips, err := rt.Production.Schedule.ListStrips(ctx, &dayID)
			if err != nil {
				return loaded(keySummary, nil, err)
			}
			eighths := 0
			for _, s := range strips {
				scene, err := rt.Production.Scenes.Get(ctx, s.SceneID)
				if err != nil {
					return loaded(keySummary, nil, err)
				}
				if scene != nil {
					eighths += scene.PageEighths
				}
			}
			points = append(points, widgets.ChartPoint{Label: rt.dayLabel(d), Value: float64(eighths)})
		}
		return loaded(keySummary, widgets.Chart{Title: "Eighths per day", Data: points}, nil)
	}
}

func (rt *Runtime) loadSettings() tea.Cmd {
	return func() tea.Msg {
		reorder := "off"
		if rt.Provider.Enabled() {
			reorder = "on"
		}
		logPath := rt.Cfg.Logging.Path
		if logPath == "" {
			logPath = "(disabled)"
		}
		info := strings.Join([]string{
			"Database:  " + rt.Cfg.Database.Path,
			"Assistant: " + rt.Cfg.LLM.Provider + " / " + rt.Cfg.LLM.Model,
			"Timezone:  " + rt.Cfg.UI.Timezone,
			"Dates:     " + rt.Cfg.UI.DateFormat,
			"Log:       " + logPath,
			"",
			"Reordering: " + reorder,
		}, "\n")
		return loaded(keySettings, info, nil)
	}
}

func (rt *Runtime) categoryNames(ctx context.Context) (map[string]string, error) {
	categories, err := rt.Production.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (rt *Runtime) dayLabel(d repository.ShootDay) string {
	if d.Label != nil && *d.Label != "" {
		return *d.Label
	}
	return d.Date.Format(rt.Cfg.UI.DateFormat)
}

// currentDay reports the schedule tab's shoot day. Day selection is set on
// the UI loop (startup or the day picker), never from a load command.
func (rt *Runtime) currentDay(ctx context.Context) (string, error) {
	_ = ctx
	if rt.schedule == nil {
		return "", nil
	}
	if id := rt.schedule.DayID(); id != keyDayPlaceholder && id != service.BoneyardID() {
		return id, nil
	}
	return "", nil
}
