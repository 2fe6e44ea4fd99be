// Package dnd synchronizes list reordering between the UI and storage.
// List-owning panes register their current items and an update callback;
// the provider resolves drop events, announces them for assistive output,
// and delegates the actual mutation back to the owning pane. Persistence
// goes through a debounced write-through saver.
package dnd

// Position locates an item inside a droppable list.
type Position struct {
	DroppableID string
	Index       int
}

// DropResult describes a completed drag. A nil Destination means the drag
// was cancelled or dropped outside any list.
type DropResult struct {
	Source      Position
	Destination *Position
	DraggableID string
}

// Item is one entry of a registered list.
type Item struct {
	ID    string
	Label string
}

// UpdateFunc receives the drop result for the source list. The callback owns
// reordering its data and committing the new order; the provider never
// mutates list state itself.
type UpdateFunc func(DropResult)

type registration struct {
	items    []Item
	onUpdate UpdateFunc
}

// Registry maps listID to the owning pane's current data and callback.
// A listID has at most one owner at a time; re-registering replaces the
// previous entry. Not safe for concurrent use: registration happens on the
// UI event loop between renders.
type Registry struct {
	lists map[string]registration
}

func NewRegistry() *Registry {
	return &Registry{lists: make(map[string]registration)}
}

// Register installs or replaces the entry for listID.
func (r *Registry) Register(listID string, items []Item, onUpdate UpdateFunc) {
	r.lists[listID] = registration{items: items, onUpdate: onUpdate}
}

// Unregister removes the entry for listID.
func (r *Registry) Unregister(listID string) {
	delete(r.lists, listID)
}

// Lookup returns the registered items and callback for listID.
func (r *Registry) Lookup(listID string) ([]Item, UpdateFunc, bool) {
	reg, ok := r.lists[listID]
	if !ok {
		return nil, nil, false
	}
	return reg.items, reg.onUpdate, true
}

// Len reports the number of registered lists.
func (r *Registry) Len() int { return len(r.lists) }
