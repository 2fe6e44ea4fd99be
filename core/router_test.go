package core

import (
	"database/sql"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"slate/widgets"
)

type routerTab struct {
	hits     int
	dataHits int
}

func (t *routerTab) ID() string                    { return "r" }
func (t *routerTab) Title() string                 { return "Router" }
func (t *routerTab) Scope() string                 { return "tab:r" }
func (t *routerTab) Build(m *Model) widgets.Widget { return widgets.Box{Title: "t", Content: "x"} }
func (t *routerTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.hits++
	}
	return nil
}
func (t *routerTab) OnData(m *Model, msg DataLoadedMsg) tea.Cmd {
	t.dataHits++
	return nil
}

type fakeScreen struct{ hits int }

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) Scope() string        { return "screen:test" }
func (s *fakeScreen) View(int, int) string { return "screen" }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

func TestScreenGetsKeyBeforeTab(t *testing.T) {
	tab := &routerTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil), &sql.DB{}, AppData{})
	screen := &fakeScreen{}
	m.PushScreen(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if tab.hits != 0 {
		t.Fatalf("tab should not receive key when screen open")
	}
	if updated.screens.Len() != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestScreenCanPopItself(t *testing.T) {
	tab := &routerTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil), &sql.DB{}, AppData{})
	m.PushScreen(&fakeScreen{})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.screens.Len() != 0 {
		t.Fatalf("expected screen to pop on esc")
	}
}

func TestDataLoadedBroadcastsToAllTabs(t *testing.T) {
	active := &routerTab{}
	inactive := &routerTab{}
	m := NewModel([]Tab{active, inactive}, NewKeyRegistry(nil), NewCommandRegistry(nil), &sql.DB{}, AppData{})
	m.Update(DataLoadedMsg{Key: "scenes"})
	if active.dataHits != 1 || inactive.dataHits != 1 {
		t.Fatalf("data hits = %d/%d, want 1/1", active.dataHits, inactive.dataHits)
	}
}

func TestStatusRegionConcurrentWrite(t *testing.T) {
	r := NewStatusRegion()
	done := make(chan struct{})
	go func() {
		r.SetText("Grabbed scene 14, position 2 of 8")
		close(done)
	}()
	<-done
	if r.Text() == "" {
		t.Fatal("live region empty after write")
	}
}
