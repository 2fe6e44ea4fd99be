package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"slate/core"
	"slate/widgets"
)

// InfoPane is a read-only pane fed by load messages. With a Render function
// it draws the last payload at the pane's inner size; otherwise it shows the
// payload as plain text.
type InfoPane struct {
	id      string
	title   string
	scope   string
	jump    byte
	height  int
	loadKey string
	render  func(data any, width, height int) string
	load    func() tea.Cmd

	data any
	text string
}

func NewInfoPane(id, title, scope string, jumpKey byte, height int, loadKey string, render func(data any, width, height int) string) *InfoPane {
	return &InfoPane{id: id, title: title, scope: scope, jump: jumpKey, height: height, loadKey: loadKey, render: render}
}

func (p *InfoPane) ID() string      { return p.id }
func (p *InfoPane) Title() string   { return p.title }
func (p *InfoPane) Scope() string   { return p.scope }
func (p *InfoPane) JumpKey() byte   { return p.jump }
func (p *InfoPane) Focusable() bool { return false }

func (p *InfoPane) Init() tea.Cmd {
	if p.load != nil {
		return p.load()
	}
	return nil
}

// SetLoad gives the pane its own refresh command, for panes whose data is
// not covered by a sibling list pane's load fan-out.
func (p *InfoPane) SetLoad(load func() tea.Cmd) { p.load = load }

func (p *InfoPane) Update(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(core.DataLoadedMsg)
	if !ok || loaded.Key != p.loadKey || loaded.Err != nil {
		return nil
	}
	p.data = loaded.Data
	if s, ok := loaded.Data.(string); ok {
		p.text = s
	}
	return nil
}

func (p *InfoPane) View(width, height int, selected, focused bool) string {
	content := p.text
	if p.render != nil && p.data != nil {
		content = p.render(p.data, max(1, width-4), max(1, p.height-2))
	}
	return widgets.Pane{Title: p.title, Height: p.height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *InfoPane) OnSelect() tea.Cmd   { return nil }
func (p *InfoPane) OnDeselect() tea.Cmd { return nil }
func (p *InfoPane) OnFocus() tea.Cmd    { return nil }
func (p *InfoPane) OnBlur() tea.Cmd     { return nil }
