package tabs

import (
	"slate/core"
	"slate/internal/dnd"
	"slate/widgets"
)

// ScriptConfig wires the script tab: the reorderable scene list and the
// script summary fed under InfoKey.
type ScriptConfig struct {
	Scenes  ListSource
	Rank    RankFunc
	InfoKey string
}

// NewScriptTab builds the script tab: scene order on the left, script
// summary on the right.
func NewScriptTab(provider *dnd.Provider, cfg ScriptConfig) *core.GeneratedTab {
	scenes := NewListPane("scenes", "Scenes", "pane:script:scenes", 's', 22, "No scenes yet", provider, cfg.Scenes)
	scenes.SetRank(cfg.Rank)
	info := NewInfoPane("script-info", "Script", "pane:script:info", 'i', 22, cfg.InfoKey, nil)

	specs := []core.PaneSpec{
		{ID: "scenes", Factory: func(core.PaneSpec) core.Pane { return scenes }},
		{ID: "script-info", Factory: func(core.PaneSpec) core.Pane { return info }},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.HStack{
			Widgets: []widgets.Widget{host.BuildPane("scenes", m), host.BuildPane("script-info", m)},
			Ratios:  []float64{2, 1},
			Gap:     1,
		}
	}
	return core.NewGeneratedTab("script", "Script", specs, layout)
}
