package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"slate/core"
	"slate/widgets"
)

// NewSettingsTab builds the settings tab: a single read-only pane showing
// the effective configuration fed under infoKey. Toggles run through the
// command palette.
func NewSettingsTab(infoKey string, load func() tea.Cmd) *core.GeneratedTab {
	info := NewInfoPane("settings", "Settings", "pane:settings:info", 'g', 22, infoKey, nil)
	info.SetLoad(load)
	specs := []core.PaneSpec{
		{ID: "settings", Factory: func(core.PaneSpec) core.Pane { return info }},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return host.BuildPane("settings", m)
	}
	return core.NewGeneratedTab("settings", "Settings", specs, layout)
}
