package app

import (
	"context"

	"go.uber.org/zap"

	"slate/internal/dnd"
	"slate/internal/service"
)

// persistScenes saves the scene order for the active script.
func (rt *Runtime) persistScenes(res dnd.DropResult, source, dest []dnd.Item) {
	rt.saveOrder(rt.Production.SceneOrder(), rt.scriptID, source)
}

// persistElements saves the element order for the active scene.
func (rt *Runtime) persistElements(res dnd.DropResult, source, dest []dnd.Item) {
	rt.saveOrder(rt.Production.ElementOrder(), rt.sceneID, source)
}

// persistFrames saves the frame order for the active scene.
func (rt *Runtime) persistFrames(res dnd.DropResult, source, dest []dnd.Item) {
	rt.saveOrder(rt.Production.FrameOrder(), rt.sceneID, source)
}

// persistStrips saves strip order for one or both affected lists. A strip
// crossing lists is re-homed immediately so the debounced order writes land
// on rows already owned by the right day.
func (rt *Runtime) persistStrips(res dnd.DropResult, source, dest []dnd.Item) {
	entity := rt.Production.StripOrder()
	if res.Destination != nil && res.Destination.DroppableID != res.Source.DroppableID {
		ctx := context.Background()
		if err := rt.Production.Schedule.MoveStrip(ctx, res.DraggableID, service.StripOwner(res.Destination.DroppableID)); err != nil {
			rt.Log.Error("move strip failed",
				zap.String("strip", res.DraggableID),
				zap.String("to", res.Destination.DroppableID),
				zap.Error(err))
			return
		}
		rt.saveOrder(entity, res.Destination.DroppableID, dest)
	}
	rt.saveOrder(entity, res.Source.DroppableID, source)
}

func (rt *Runtime) saveOrder(entity dnd.Entity, ownerID string, items []dnd.Item) {
	if ownerID == "" || items == nil {
		return
	}
	err := rt.Production.SaveOrder(context.Background(), entity, ownerID, itemIDs(items), nil)
	if err != nil {
		rt.Log.Error("schedule order save failed",
			zap.String("entity", entity.EntityName()),
			zap.String("owner", ownerID),
			zap.Error(err))
	}
}

func (rt *Runtime) flushScenes() {
	rt.Production.FlushOrder(rt.Production.SceneOrder(), rt.scriptID)
}

func (rt *Runtime) flushElements() {
	rt.Production.FlushOrder(rt.Production.ElementOrder(), rt.sceneID)
}

func (rt *Runtime) flushFrames() {
	rt.Production.FlushOrder(rt.Production.FrameOrder(), rt.sceneID)
}

func (rt *Runtime) flushStrips(listID func() string) func() {
	return func() {
		rt.Production.FlushOrder(rt.Production.StripOrder(), listID())
	}
}
