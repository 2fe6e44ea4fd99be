package core

import (
	"database/sql"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"slate/widgets"
)

func TestPaneHostScopeTracksSelectionAndFocus(t *testing.T) {
	host := NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', true, "two", 10),
	)
	if got := host.Scope(); got != "pane:x:1" {
		t.Fatalf("scope mismatch: %s", got)
	}
	_, _ = host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyRight})
	if got := host.Scope(); got != "pane:x:2" {
		t.Fatalf("scope should follow selection: %s", got)
	}
	_, _ = host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := host.Scope(); got != "pane:x:2" {
		t.Fatalf("scope should follow focused pane: %s", got)
	}
}

func TestPaneHostEscDefocuses(t *testing.T) {
	host := NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', true, "two", 10),
	)
	_, _ = host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := host.ActivePaneTitle(); got != "Pane One" {
		t.Fatalf("expected pane one focused")
	}
	handled, _ := host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyEsc})
	if !handled {
		t.Fatalf("expected esc to be handled by pane host")
	}
	if got := host.Scope(); got != "pane:x:1" {
		t.Fatalf("expected selected scope after unfocus, got %s", got)
	}
}

func TestPaneHostFocusedDoesNotCaptureArrowKeys(t *testing.T) {
	host := NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', true, "two", 10),
	)
	_, _ = host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyEnter})
	handled, _ := host.HandlePaneKey(&Model{}, tea.KeyMsg{Type: tea.KeyDown})
	if handled {
		t.Fatalf("expected down key to pass through when pane is focused")
	}
}

func TestPaneHostJumpTargetsAndFocus(t *testing.T) {
	host := NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', false, "two", 10),
		NewStaticPane("p3", "Pane Three", "pane:x:3", 'h', true, "three", 10),
	)
	targets := host.JumpTargets()
	if len(targets) != 2 {
		t.Fatalf("jump target count = %d, want 2", len(targets))
	}
	handled, _ := host.JumpToTarget(&Model{}, "h")
	if !handled {
		t.Fatalf("expected jump target to be handled")
	}
	if got := host.ActivePaneTitle(); got != "Pane Three" {
		t.Fatalf("active pane mismatch: %s", got)
	}
}

type paneNavTab struct {
	handled []string
}

func (t *paneNavTab) ID() string                           { return "p" }
func (t *paneNavTab) Title() string                        { return "PaneTab" }
func (t *paneNavTab) Scope() string                        { return "pane:test" }
func (t *paneNavTab) Update(m *Model, msg tea.Msg) tea.Cmd { return nil }
func (t *paneNavTab) Build(m *Model) widgets.Widget        { return widgets.Pane{Title: "P", Height: 10} }
func (t *paneNavTab) ActivePaneTitle() string              { return "Pane" }
func (t *paneNavTab) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	t.handled = append(t.handled, msg.String())
	if msg.String() == "right" || msg.String() == "left" || msg.String() == "enter" {
		return true, StatusCmd("pane key")
	}
	return false, nil
}

func TestPaneNavigationKeysRouteToActiveTab(t *testing.T) {
	tab := &paneNavTab{}
	keys := NewKeyRegistry([]KeyBinding{{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}}})
	m := NewModel([]Tab{tab}, keys, NewCommandRegistry(nil), &sql.DB{}, AppData{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	updated := next.(Model)
	if len(tab.handled) == 0 || tab.handled[0] != "right" {
		t.Fatalf("expected pane handler to receive right key")
	}
	if cmd == nil {
		t.Fatalf("expected pane handler command")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text == "" {
		t.Fatalf("expected status msg from pane handler")
	}
	if updated.statusErr {
		t.Fatalf("unexpected status error")
	}
}
