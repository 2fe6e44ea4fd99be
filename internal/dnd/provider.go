package dnd

import (
	"fmt"

	"go.uber.org/zap"
)

// Provider coordinates drag lifecycle events against the registry. It owns
// the transient "dragging" state and the announcements; the registered
// callback owns the mutation and its persistence. When disabled, drag events
// pass through without effect and panes render without reorder affordances.
type Provider struct {
	enabled   bool
	registry  *Registry
	announcer *Announcer
	log       *zap.Logger

	dragging bool
}

func NewProvider(registry *Registry, announcer *Announcer, log *zap.Logger, enabled bool) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{
		enabled:   enabled,
		registry:  registry,
		announcer: announcer,
		log:       log,
	}
}

// Enabled reports whether reordering is active.
func (p *Provider) Enabled() bool { return p.enabled }

// SetEnabled flips reordering. Disabling drops any in-flight drag state.
func (p *Provider) SetEnabled(enabled bool) {
	p.enabled = enabled
	if !enabled {
		p.dragging = false
	}
}

// Dragging reports whether a drag is in progress, for visual state.
func (p *Provider) Dragging() bool { return p.dragging }

// Registry exposes the list registry for pane registration.
func (p *Provider) Registry() *Registry { return p.registry }

// DragStart marks the dragging state and announces the grabbed item's
// position (1-based) and the list's total count.
func (p *Provider) DragStart(listID string, index int) {
	if !p.enabled {
		return
	}
	p.dragging = true
	items, _, ok := p.registry.Lookup(listID)
	if !ok || index < 0 || index >= len(items) {
		return
	}
	p.announcer.Announce(fmt.Sprintf("Grabbed %s, position %d of %d", items[index].Label, index+1, len(items)))
}

// DragEnd clears the dragging state and resolves the drop. A nil destination
// cancels; an unchanged position is a no-op; an unknown source list is
// logged and announced as a failure. Otherwise the move is announced and the
// source registration's callback receives the drop result exactly once.
func (p *Provider) DragEnd(res DropResult) {
	if !p.enabled {
		return
	}
	p.dragging = false

	if res.Destination == nil {
		p.announcer.Announce("Move cancelled, the item has returned to its starting position")
		return
	}
	dst := *res.Destination
	if dst.DroppableID == res.Source.DroppableID && dst.Index == res.Source.Index {
		return
	}

	items, onUpdate, ok := p.registry.Lookup(res.Source.DroppableID)
	if !ok {
		p.log.Error("drop on unregistered list",
			zap.String("list", res.Source.DroppableID),
			zap.String("draggable", res.DraggableID))
		p.announcer.Announce("Unable to move the item, its list is no longer available")
		return
	}

	name := res.DraggableID
	if res.Source.Index >= 0 && res.Source.Index < len(items) {
		name = items[res.Source.Index].Label
	}
	if dst.DroppableID == res.Source.DroppableID {
		p.announcer.Announce(fmt.Sprintf("Moved %s from position %d to position %d in its original list",
			name, res.Source.Index+1, dst.Index+1))
	} else {
		p.announcer.Announce(fmt.Sprintf("Moved %s from position %d in list %s to position %d in list %s",
			name, res.Source.Index+1, res.Source.DroppableID, dst.Index+1, dst.DroppableID))
	}

	if onUpdate != nil {
		onUpdate(res)
	}
}
