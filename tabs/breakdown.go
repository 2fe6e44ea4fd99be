package tabs

import (
	"slate/core"
	"slate/internal/dnd"
	"slate/widgets"
)

// BreakdownConfig wires the breakdown tab: the reorderable element list for
// the current scene and the category sheet fed under SheetKey. The sheet
// payload is a widgets.Table.
type BreakdownConfig struct {
	Elements ListSource
	SheetKey string
}

// NewBreakdownTab builds the breakdown tab: tagged elements on the left, the
// per-category sheet on the right.
func NewBreakdownTab(provider *dnd.Provider, cfg BreakdownConfig) *core.GeneratedTab {
	elements := NewListPane("elements", "Elements", "pane:breakdown:elements", 'e', 22, "No elements tagged", provider, cfg.Elements)
	sheet := NewInfoPane("sheet", "Breakdown Sheet", "pane:breakdown:sheet", 'b', 22, cfg.SheetKey,
		func(data any, width, height int) string {
			table, ok := data.(widgets.Table)
			if !ok {
				return ""
			}
			return table.Render(width, height)
		})

	specs := []core.PaneSpec{
		{ID: "elements", Factory: func(core.PaneSpec) core.Pane { return elements }},
		{ID: "sheet", Factory: func(core.PaneSpec) core.Pane { return sheet }},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.HStack{
			Widgets: []widgets.Widget{host.BuildPane("elements", m), host.BuildPane("sheet", m)},
			Ratios:  []float64{1, 1},
			Gap:     1,
		}
	}
	return core.NewGeneratedTab("breakdown", "Breakdown", specs, layout)
}
