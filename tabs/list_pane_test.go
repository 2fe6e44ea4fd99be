package tabs

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"slate/core"
	"slate/internal/dnd"
	"slate/internal/timing"
)

type liveBuf struct {
	texts []string
}

func (b *liveBuf) SetText(text string) { b.texts = append(b.texts, text) }

func (b *liveBuf) last() string {
	if len(b.texts) == 0 {
		return ""
	}
	return b.texts[len(b.texts)-1]
}

func newTestProvider(enabled bool) (*dnd.Provider, *liveBuf) {
	buf := &liveBuf{}
	announcer := dnd.NewAnnouncer(buf, timing.NewManualClock())
	return dnd.NewProvider(dnd.NewRegistry(), announcer, zap.NewNop(), enabled), buf
}

func threeItems() []dnd.Item {
	return []dnd.Item{
		{ID: "a", Label: "Alpha"},
		{ID: "b", Label: "Bravo"},
		{ID: "c", Label: "Charlie"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGrabMoveDropReorders(t *testing.T) {
	provider, buf := newTestProvider(true)
	var gotSource []dnd.Item
	pane := NewListPane("p", "Pane", "pane:test", 'p', 10, "", provider, ListSource{
		ListID: "list",
		Persist: func(res dnd.DropResult, source, dest []dnd.Item) {
			gotSource = source
			if dest != nil {
				t.Fatalf("same-list drop should not carry a dest list")
			}
		},
	})
	_ = pane.Init()
	pane.SetItems(threeItems())

	_ = pane.Update(keyMsg(" "))
	if !pane.Grabbed() {
		t.Fatalf("space should grab the row under the cursor")
	}
	if buf.last() != "Grabbed Alpha, position 1 of 3" {
		t.Fatalf("announcement = %q", buf.last())
	}

	_ = pane.Update(keyMsg("j"))
	_ = pane.Update(keyMsg("j"))
	_ = pane.Update(keyMsg(" "))

	if pane.Grabbed() {
		t.Fatalf("drop should release the grab")
	}
	want := []string{"b", "c", "a"}
	items := pane.Items()
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("items[%d] = %s, want %s", i, items[i].ID, id)
		}
	}
	if len(gotSource) != 3 || gotSource[2].ID != "a" {
		t.Fatalf("persist got %v", gotSource)
	}

	registered, _, ok := provider.Registry().Lookup("list")
	if !ok || registered[0].ID != "b" {
		t.Fatalf("registry not refreshed after drop: %v", registered)
	}
}

func TestDropAtSamePositionIsNoOp(t *testing.T) {
	provider, _ := newTestProvider(true)
	called := false
	pane := NewListPane("p", "Pane", "pane:test", 'p', 10, "", provider, ListSource{
		ListID:  "list",
		Persist: func(dnd.DropResult, []dnd.Item, []dnd.Item) { called = true },
	})
	_ = pane.Init()
	pane.SetItems(threeItems())

	_ = pane.Update(keyMsg(" "))
	_ = pane.Update(keyMsg(" "))
	if called {
		t.Fatalf("dropping in place should not persist")
	}
	if pane.Items()[0].ID != "a" {
		t.Fatalf("order changed on no-op drop")
	}
}

func TestBlurCancelsGrab(t *testing.T) {
	provider, buf := newTestProvider(true)
	called := false
	pane := NewListPane("p", "Pane", "pane:test", 'p', 10, "", provider, ListSource{
		ListID:  "list",
		Persist: func(dnd.DropResult, []dnd.Item, []dnd.Item) { called = true },
	})
	_ = pane.Init()
	pane.SetItems(threeItems())

	_ = pane.Update(keyMsg(" "))
	_ = pane.OnBlur()

	if pane.Grabbed() {
		t.Fatalf("blur should release the grab")
	}
	if buf.last() != "Move cancelled, the item has returned to its starting position" {
		t.Fatalf("announcement = %q", buf.last())
	}
	if called {
		t.Fatalf("cancel should not persist")
	}
	if pane.Items()[0].ID != "a" {
		t.Fatalf("cancel should leave the order alone")
	}
}

func TestTransferToPeerAppends(t *testing.T) {
	provider, buf := newTestProvider(true)
	var destGot []dnd.Item
	day := NewListPane("day", "Day", "pane:day", 'd', 10, "", provider, ListSource{
		ListID: "day-1",
		Persist: func(res dnd.DropResult, source, dest []dnd.Item) {
			destGot = dest
		},
	})
	boneyard := NewListPane("boneyard", "Boneyard", "pane:boneyard", 'y', 10, "", provider, ListSource{ListID: "boneyard"})
	day.SetPeer(boneyard)
	boneyard.SetPeer(day)
	_ = day.Init()
	_ = boneyard.Init()
	day.SetItems(threeItems())
	boneyard.SetItems([]dnd.Item{{ID: "x", Label: "X-Ray"}})

	_ = day.Update(keyMsg(" "))
	_ = day.Update(keyMsg("t"))

	if len(day.Items()) != 2 {
		t.Fatalf("source kept %d items, want 2", len(day.Items()))
	}
	bone := boneyard.Items()
	if len(bone) != 2 || bone[1].ID != "a" {
		t.Fatalf("peer = %v, want moved item appended", bone)
	}
	if len(destGot) != 2 {
		t.Fatalf("persist dest = %v, want the peer's new contents", destGot)
	}
	if buf.last() != "Moved Alpha from position 1 in list day-1 to position 2 in list boneyard" {
		t.Fatalf("announcement = %q", buf.last())
	}

	registered, _, ok := provider.Registry().Lookup("boneyard")
	if !ok || len(registered) != 2 {
		t.Fatalf("peer registration stale: %v", registered)
	}
}

func TestGrabRefusedWhenDisabled(t *testing.T) {
	provider, _ := newTestProvider(false)
	pane := NewListPane("p", "Pane", "pane:test", 'p', 10, "", provider, ListSource{ListID: "list"})
	_ = pane.Init()
	pane.SetItems(threeItems())

	cmd := pane.Update(keyMsg(" "))
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	msg, ok := cmd().(core.StatusMsg)
	if !ok || msg.Text != "Reordering is disabled" {
		t.Fatalf("msg = %+v", msg)
	}
	if pane.Grabbed() {
		t.Fatalf("disabled provider should not allow grabbing")
	}
}

func TestFilterBlocksGrab(t *testing.T) {
	provider, _ := newTestProvider(true)
	pane := NewListPane("p", "Pane", "pane:test", 'p', 10, "", provider, ListSource{ListID: "list"})
	pane.SetRank(func(query string, items []dnd.Item) []dnd.Item {
		out := make([]dnd.Item, 0, len(items))
		for _, it := range items {
			if it.Label != "" && query != "" && it.Label[0:1] == query[0:1] {
				out = append(out, it)
			}
		}
		return out
	})
	_ = pane.Init()
	pane.SetItems(threeItems())

	_ = pane.Update(keyMsg("/"))
	_ = pane.Update(keyMsg("B"))
	_ = pane.Update(keyMsg("enter"))

	if got, ok := pane.SelectedItem(); !ok || got.ID != "b" {
		t.Fatalf("selected = %+v, want the ranked match", got)
	}
	cmd := pane.Update(keyMsg(" "))
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	if msg := cmd().(core.StatusMsg); msg.Text != "Clear the filter before reordering" {
		t.Fatalf("msg = %+v", msg)
	}
}

func TestFilterCapturesInput(t *testing.T) {
	provider, _ := newTestProvider(true)
	pane := NewListPane("p", "Pane", "pane:test", 'p', 10, "", provider, ListSource{ListID: "list"})
	pane.SetRank(func(query string, items []dnd.Item) []dnd.Item { return items })
	_ = pane.Init()
	pane.SetItems(threeItems())

	if pane.CapturingInput() {
		t.Fatalf("should not capture before the filter opens")
	}
	_ = pane.Update(keyMsg("/"))
	if !pane.CapturingInput() {
		t.Fatalf("filter prompt should capture input")
	}
	_ = pane.Update(keyMsg("q"))
	_ = pane.Update(keyMsg("enter"))
	if pane.CapturingInput() {
		t.Fatalf("enter should close the prompt")
	}
}

func TestDataLoadedReplacesItems(t *testing.T) {
	provider, _ := newTestProvider(true)
	pane := NewListPane("p", "Pane", "pane:test", 'p', 10, "", provider, ListSource{ListID: "list", LoadKey: "scenes"})
	_ = pane.Init()
	pane.SetItems(threeItems())

	_ = pane.Update(core.DataLoadedMsg{Key: "other", Data: []dnd.Item{{ID: "z"}}})
	if len(pane.Items()) != 3 {
		t.Fatalf("foreign key should be ignored")
	}

	_ = pane.Update(core.DataLoadedMsg{Key: "scenes", Data: []dnd.Item{{ID: "z", Label: "Zulu"}}})
	items := pane.Items()
	if len(items) != 1 || items[0].ID != "z" {
		t.Fatalf("items = %v", items)
	}
	registered, _, _ := provider.Registry().Lookup("list")
	if len(registered) != 1 {
		t.Fatalf("registration not refreshed on load")
	}
}

func TestDeselectFlushesPendingSave(t *testing.T) {
	provider, _ := newTestProvider(true)
	flushed := false
	pane := NewListPane("p", "Pane", "pane:test", 'p', 10, "", provider, ListSource{
		ListID: "list",
		Flush:  func() { flushed = true },
	})
	_ = pane.Init()
	pane.SetItems(threeItems())

	_ = pane.OnDeselect()
	if !flushed {
		t.Fatalf("deselect should flush the pending order write")
	}
}

func TestSetListIDMovesRegistration(t *testing.T) {
	provider, _ := newTestProvider(true)
	pane := NewListPane("p", "Pane", "pane:test", 'p', 10, "", provider, ListSource{ListID: "day-1"})
	_ = pane.Init()
	pane.SetItems(threeItems())

	pane.SetListID("day-2")
	if _, _, ok := provider.Registry().Lookup("day-1"); ok {
		t.Fatalf("old registration should be removed")
	}
	if _, _, ok := provider.Registry().Lookup("day-2"); !ok {
		t.Fatalf("new registration missing")
	}
	if pane.ListID() != "day-2" {
		t.Fatalf("ListID = %s", pane.ListID())
	}
}
