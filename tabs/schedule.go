package tabs

import (
	"slate/core"
	"slate/internal/dnd"
	"slate/widgets"
)

// ScheduleConfig wires the schedule tab: the current day's strip list, the
// boneyard pool, and the per-day workload chart fed under SummaryKey. The
// summary payload is a widgets.Chart.
type ScheduleConfig struct {
	Day        ListSource
	Boneyard   ListSource
	SummaryKey string
}

// ScheduleTab is the stripboard: one shoot day's strips beside the boneyard,
// with cross-list moves between them, and a workload summary underneath.
type ScheduleTab struct {
	*core.GeneratedTab
	day      *ListPane
	boneyard *ListPane
}

func NewScheduleTab(provider *dnd.Provider, cfg ScheduleConfig) *ScheduleTab {
	day := NewListPane("day", "Day", "pane:schedule:day", 'd', 16, "No strips scheduled", provider, cfg.Day)
	boneyard := NewListPane("boneyard", "Boneyard", "pane:schedule:boneyard", 'y', 16, "Boneyard is empty", provider, cfg.Boneyard)
	day.SetPeer(boneyard)
	boneyard.SetPeer(day)
	summary := NewInfoPane("summary", "Day Totals", "pane:schedule:summary", 'u', 8, cfg.SummaryKey,
		func(data any, width, height int) string {
			chart, ok := data.(widgets.Chart)
			if !ok {
				return ""
			}
			return chart.Render(width, height)
		})

	specs := []core.PaneSpec{
		{ID: "day", Factory: func(core.PaneSpec) core.Pane { return day }},
		{ID: "boneyard", Factory: func(core.PaneSpec) core.Pane { return boneyard }},
		{ID: "summary", Factory: func(core.PaneSpec) core.Pane { return summary }},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		strips := widgets.HStack{
			Widgets: []widgets.Widget{host.BuildPane("day", m), host.BuildPane("boneyard", m)},
			Ratios:  []float64{1, 1},
			Gap:     1,
		}
		return widgets.VStack{
			Widgets: []widgets.Widget{strips, host.BuildPane("summary", m)},
			Ratios:  []float64{2, 1},
		}
	}
	return &ScheduleTab{
		GeneratedTab: core.NewGeneratedTab("schedule", "Schedule", specs, layout),
		day:          day,
		boneyard:     boneyard,
	}
}

// SetDay points the day pane at another shoot day. The pane's droppable id
// follows the day so drops persist against the right owner.
func (t *ScheduleTab) SetDay(dayID, label string) {
	t.day.SetListID(dayID)
	t.day.SetTitle(label)
}

// DayID reports the shoot day the day pane currently shows.
func (t *ScheduleTab) DayID() string { return t.day.ListID() }

// BoneyardPane exposes the boneyard for drop assertions and command wiring.
func (t *ScheduleTab) BoneyardPane() *ListPane { return t.boneyard }

// DayPane exposes the day strip pane.
func (t *ScheduleTab) DayPane() *ListPane { return t.day }
