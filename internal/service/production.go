package service

import (
	"context"
	"fmt"

	"slate/internal/database/repository"
	"slate/internal/dnd"
)

// boneyardDoc keys the unscheduled strip pool for debounced order saves.
const boneyardDoc = "boneyard"

// Production exposes per-resource list access and order persistence over the
// repositories. Reorder commits go through the debounced saver so a burst of
// moves collapses into one write.
type Production struct {
	Scripts    *repository.ScriptRepo
	Scenes     *repository.SceneRepo
	Elements   *repository.ElementRepo
	Categories *repository.ElementCategoryRepo
	Frames     *repository.FrameRepo
	Schedule   *repository.ScheduleRepo
	Saver      *dnd.Saver
}

// orderEntity adapts a repository reorder operation to the saver's entity
// surface: the doc id is the owning list's id and the payload carries the
// full ordered id sequence.
type orderEntity struct {
	name  string
	apply func(ctx context.Context, ownerID string, ids []string) error
}

func (e orderEntity) EntityName() string { return e.name }

func (e orderEntity) Update(ctx context.Context, ownerID string, payload map[string]any) error {
	ids, err := orderIDs(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	return e.apply(ctx, ownerID, ids)
}

func orderIDs(payload map[string]any) ([]string, error) {
	raw, ok := payload["order"]
	if !ok {
		return nil, fmt.Errorf("payload missing order")
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("order contains non-string id")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("order has unsupported type %T", raw)
	}
}

// SceneOrder is the entity behind scene reordering, keyed by script id.
func (p *Production) SceneOrder() dnd.Entity {
	return orderEntity{name: "scene-order", apply: p.Scenes.Reorder}
}

// ElementOrder is the entity behind element reordering, keyed by scene id.
func (p *Production) ElementOrder() dnd.Entity {
	return orderEntity{name: "element-order", apply: p.Elements.Reorder}
}

// FrameOrder is the entity behind frame reordering, keyed by scene id.
func (p *Production) FrameOrder() dnd.Entity {
	return orderEntity{name: "frame-order", apply: p.Frames.Reorder}
}

// StripOrder is the entity behind strip reordering, keyed by shoot-day id or
// the boneyard sentinel.
func (p *Production) StripOrder() dnd.Entity {
	return orderEntity{name: "strip-order", apply: func(ctx context.Context, ownerID string, ids []string) error {
		var dayID *string
		if ownerID != boneyardDoc {
			dayID = &ownerID
		}
		return p.Schedule.ReorderStrips(ctx, dayID, ids)
	}}
}

// SaveOrder schedules a debounced reorder write for the given entity.
func (p *Production) SaveOrder(ctx context.Context, entity dnd.Entity, ownerID string, ids []string, onFailure func(error)) error {
	return p.Saver.Save(ctx, dnd.SaveRequest{
		Entity:    entity,
		DocID:     ownerID,
		Payload:   map[string]any{"order": ids},
		OnFailure: onFailure,
	})
}

// FlushOrder commits a pending reorder write immediately (pane teardown).
func (p *Production) FlushOrder(entity dnd.Entity, ownerID string) {
	p.Saver.Flush(entity.EntityName(), ownerID)
}

// StripOwner converts a droppable id back to the repository's day key.
func StripOwner(droppableID string) *string {
	if droppableID == boneyardDoc {
		return nil
	}
	return &droppableID
}

// BoneyardID is the droppable id of the unscheduled pool.
func BoneyardID() string { return boneyardDoc }
