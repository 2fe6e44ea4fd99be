package tabs

import (
	"slate/core"
	"slate/internal/dnd"
	"slate/widgets"
)

// StoryboardConfig wires the storyboard tab: the reorderable frame list for
// the current scene and the shot detail text fed under DetailKey.
type StoryboardConfig struct {
	Frames    ListSource
	DetailKey string
}

// NewStoryboardTab builds the storyboard tab: frame order on the left, the
// selected frame's shot details on the right.
func NewStoryboardTab(provider *dnd.Provider, cfg StoryboardConfig) *core.GeneratedTab {
	frames := NewListPane("frames", "Frames", "pane:storyboard:frames", 'f', 22, "No frames sketched", provider, cfg.Frames)
	detail := NewInfoPane("frame-detail", "Shot", "pane:storyboard:detail", 'o', 22, cfg.DetailKey, nil)

	specs := []core.PaneSpec{
		{ID: "frames", Factory: func(core.PaneSpec) core.Pane { return frames }},
		{ID: "frame-detail", Factory: func(core.PaneSpec) core.Pane { return detail }},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.HStack{
			Widgets: []widgets.Widget{host.BuildPane("frames", m), host.BuildPane("frame-detail", m)},
			Ratios:  []float64{2, 1},
			Gap:     1,
		}
	}
	return core.NewGeneratedTab("storyboard", "Storyboard", specs, layout)
}
