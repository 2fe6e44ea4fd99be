package tabs

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"slate/core"
	"slate/internal/dnd"
	"slate/internal/service"
	"slate/widgets"
)

// ListSource binds a list pane to its data and persistence. Load produces a
// core.DataLoadedMsg carrying []dnd.Item under LoadKey; Persist receives the
// resolved drop plus the post-move contents of the affected lists.
type ListSource struct {
	ListID  string
	LoadKey string
	Load    func() tea.Cmd
	Persist func(res dnd.DropResult, source, dest []dnd.Item)
	Flush   func()
}

// RankFunc orders items by relevance to a query. Returning nil or an empty
// slice means no item matched.
type RankFunc func(query string, items []dnd.Item) []dnd.Item

// ListPane is a cursor-driven list with keyboard grab and drop. Space grabs
// the row under the cursor and drops it at the cursor's new position; "t"
// drops the grabbed row at the end of the peer list. Leaving the pane cancels
// an active grab and flushes any pending order write.
type ListPane struct {
	id     string
	title  string
	scope  string
	jump   byte
	height int
	empty  string

	provider *dnd.Provider
	source   ListSource
	rank     RankFunc

	items     []dnd.Item
	peer      *ListPane
	cursor    int
	grabbed   int
	filtering bool
	query     string
}

func NewListPane(id, title, scope string, jumpKey byte, height int, empty string, provider *dnd.Provider, source ListSource) *ListPane {
	return &ListPane{
		id:       id,
		title:    title,
		scope:    scope,
		jump:     jumpKey,
		height:   height,
		empty:    empty,
		provider: provider,
		source:   source,
		grabbed:  -1,
	}
}

func (p *ListPane) ID() string      { return p.id }
func (p *ListPane) Title() string   { return p.title }
func (p *ListPane) Scope() string   { return p.scope }
func (p *ListPane) JumpKey() byte   { return p.jump }
func (p *ListPane) Focusable() bool { return true }

func (p *ListPane) Init() tea.Cmd {
	p.register()
	if p.source.Load != nil {
		return p.source.Load()
	}
	return nil
}

// SetTitle renames the pane, used when its backing list changes owner.
func (p *ListPane) SetTitle(title string) { p.title = title }

// SetRank enables "/" filtering with the given ranking function.
func (p *ListPane) SetRank(rank RankFunc) { p.rank = rank }

// SetPeer links two panes for cross-list drops in both directions.
func (p *ListPane) SetPeer(peer *ListPane) { p.peer = peer }

// SetListID rebinds the pane to a different droppable id, moving its
// registration. An active grab is cancelled first.
func (p *ListPane) SetListID(listID string) {
	if listID == p.source.ListID {
		return
	}
	p.cancelGrab()
	p.provider.Registry().Unregister(p.source.ListID)
	p.source.ListID = listID
	p.register()
}

// ListID reports the droppable id the pane currently owns.
func (p *ListPane) ListID() string { return p.source.ListID }

// Items returns a copy of the pane's unfiltered contents.
func (p *ListPane) Items() []dnd.Item { return slices.Clone(p.items) }

// SetItems replaces the contents, drops any grab and filter, and refreshes
// the registration.
func (p *ListPane) SetItems(items []dnd.Item) {
	p.items = slices.Clone(items)
	p.grabbed = -1
	p.filtering = false
	p.query = ""
	p.clampCursor()
	p.register()
}

// SelectedItem returns the item under the cursor in the visible (possibly
// filtered) view.
func (p *ListPane) SelectedItem() (dnd.Item, bool) {
	visible := p.visible()
	if p.cursor < 0 || p.cursor >= len(visible) {
		return dnd.Item{}, false
	}
	return visible[p.cursor], true
}

// Grabbed reports whether a row is currently held.
func (p *ListPane) Grabbed() bool { return p.grabbed >= 0 }

// CapturingInput reports whether the filter prompt is consuming keystrokes.
func (p *ListPane) CapturingInput() bool { return p.filtering }

func (p *ListPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != p.source.LoadKey || msg.Err != nil {
			return nil
		}
		if items, ok := msg.Data.([]dnd.Item); ok {
			p.SetItems(items)
		}
		return nil
	case tea.KeyMsg:
		return p.handleKey(msg.String())
	}
	return nil
}

func (p *ListPane) handleKey(key string) tea.Cmd {
	if p.filtering {
		return p.handleFilterKey(key)
	}
	switch key {
	case "down", "j":
		p.moveCursor(1)
	case "up", "k":
		p.moveCursor(-1)
	case " ", "space":
		return p.toggleGrab()
	case "t":
		return p.transferToPeer()
	case "/":
		if p.rank != nil {
			p.cancelGrab()
			p.filtering = true
			p.query = ""
		}
	}
	return nil
}

func (p *ListPane) handleFilterKey(key string) tea.Cmd {
	switch key {
	case "enter":
		p.filtering = false
	case "backspace":
		if p.query != "" {
			p.query = p.query[:len(p.query)-1]
		} else {
			p.filtering = false
		}
	default:
		if len(key) == 1 {
			p.query += key
		}
	}
	p.clampCursor()
	return nil
}

func (p *ListPane) moveCursor(delta int) {
	visible := p.visible()
	if len(visible) == 0 {
		p.cursor = 0
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(visible) {
		p.cursor = len(visible) - 1
	}
}

func (p *ListPane) toggleGrab() tea.Cmd {
	if !p.provider.Enabled() {
		return core.StatusCmd("Reordering is disabled")
	}
	if p.query != "" {
		return core.StatusCmd("Clear the filter before reordering")
	}
	if len(p.items) == 0 {
		return nil
	}
	if p.grabbed < 0 {
		p.grabbed = p.cursor
		p.provider.DragStart(p.source.ListID, p.grabbed)
		return nil
	}
	idx := p.grabbed
	p.grabbed = -1
	p.provider.DragEnd(dnd.DropResult{
		Source:      dnd.Position{DroppableID: p.source.ListID, Index: idx},
		Destination: &dnd.Position{DroppableID: p.source.ListID, Index: p.cursor},
		DraggableID: p.items[idx].ID,
	})
	return nil
}

func (p *ListPane) transferToPeer() tea.Cmd {
	if p.grabbed < 0 || p.peer == nil {
		return nil
	}
	idx := p.grabbed
	p.grabbed = -1
	p.provider.DragEnd(dnd.DropResult{
		Source:      dnd.Position{DroppableID: p.source.ListID, Index: idx},
		Destination: &dnd.Position{DroppableID: p.peer.source.ListID, Index: len(p.peer.items)},
		DraggableID: p.items[idx].ID,
	})
	return nil
}

func (p *ListPane) cancelGrab() {
	if p.grabbed < 0 {
		return
	}
	idx := p.grabbed
	p.grabbed = -1
	id := ""
	if idx >= 0 && idx < len(p.items) {
		id = p.items[idx].ID
	}
	p.provider.DragEnd(dnd.DropResult{
		Source:      dnd.Position{DroppableID: p.source.ListID, Index: idx},
		DraggableID: id,
	})
}

// applyDrop is the registry callback: it mutates pane state to match the
// resolved drop and hands the new order to the persistence hook.
func (p *ListPane) applyDrop(res dnd.DropResult) {
	if res.Destination == nil {
		return
	}
	dst := *res.Destination
	switch {
	case dst.DroppableID == p.source.ListID:
		p.items = service.Move(p.items, res.Source.Index, dst.Index)
		p.cursor = dst.Index
		p.register()
		if p.source.Persist != nil {
			p.source.Persist(res, p.Items(), nil)
		}
	case p.peer != nil && dst.DroppableID == p.peer.source.ListID:
		p.items, p.peer.items = service.Transfer(p.items, p.peer.items, res.Source.Index, dst.Index)
		p.clampCursor()
		p.peer.clampCursor()
		p.register()
		p.peer.register()
		if p.source.Persist != nil {
			p.source.Persist(res, p.Items(), p.peer.Items())
		}
	}
}

func (p *ListPane) register() {
	p.provider.Registry().Register(p.source.ListID, slices.Clone(p.items), p.applyDrop)
}

func (p *ListPane) clampCursor() {
	visible := p.visible()
	if p.cursor >= len(visible) {
		p.cursor = len(visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *ListPane) visible() []dnd.Item {
	if p.query == "" || p.rank == nil {
		return p.items
	}
	return p.rank(p.query, p.items)
}

func (p *ListPane) OnSelect() tea.Cmd {
	if p.source.Load != nil {
		return p.source.Load()
	}
	return nil
}

func (p *ListPane) OnDeselect() tea.Cmd {
	p.cancelGrab()
	if p.source.Flush != nil {
		p.source.Flush()
	}
	return nil
}

func (p *ListPane) OnFocus() tea.Cmd { return nil }

func (p *ListPane) OnBlur() tea.Cmd {
	p.cancelGrab()
	return nil
}

func (p *ListPane) View(width, height int, selected, focused bool) string {
	visible := p.visible()
	labels := make([]string, 0, len(visible))
	for _, it := range visible {
		labels = append(labels, it.Label)
	}
	inner := widgets.CursorList{
		Items:   labels,
		Cursor:  p.cursor,
		Grabbed: p.grabbed,
		Empty:   p.empty,
	}.Render(max(1, width-4), max(1, p.height-3))
	if p.query != "" || p.filtering {
		inner = "/" + p.query + "\n" + inner
	}
	title := fmt.Sprintf("%s (%d)", p.title, len(p.items))
	return widgets.Pane{Title: title, Height: p.height, Content: inner, Selected: selected, Focused: focused}.Render(width, height)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
