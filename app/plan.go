package app

import (
	"context"

	"go.uber.org/zap"

	"slate/internal/database/repository"
	"slate/internal/llm"
)

// applyPlan moves strips onto shoot days per the assistant's plan. Scene
// numbers the plan invents, and scenes without a strip, are skipped and
// logged. Returns how many strips were placed.
func (rt *Runtime) applyPlan(ctx context.Context, scriptID string, days []repository.ShootDay, plan []llm.DayPlan) (int, error) {
	scenes, err := rt.Production.Scenes.List(ctx, repository.SceneFilters{ScriptID: scriptID})
	if err != nil {
		return 0, err
	}
	sceneByNumber := make(map[string]string, len(scenes))
	for _, s := range scenes {
		sceneByNumber[s.Number] = s.ID
	}

	stripByScene, err := rt.stripIndex(ctx, days)
	if err != nil {
		return 0, err
	}

	moved := 0
	for i, dayPlan := range plan {
		if i >= len(days) {
			break
		}
		dayID := days[i].ID
		ordered := make([]string, 0, len(dayPlan.SceneNumbers))
		for _, number := range dayPlan.SceneNumbers {
			sceneID, ok := sceneByNumber[number]
			if !ok {
				rt.Log.Warn("plan names unknown scene", zap.String("number", number))
				continue
			}
			stripID, ok := stripByScene[sceneID]
			if !ok {
				rt.Log.Warn("scene has no strip", zap.String("scene", sceneID))
				continue
			}
			if err := rt.Production.Schedule.MoveStrip(ctx, stripID, &dayID); err != nil {
				return moved, err
			}
			ordered = append(ordered, stripID)
			moved++
		}
		if len(ordered) > 0 {
			if err := rt.Production.Schedule.ReorderStrips(ctx, &dayID, ordered); err != nil {
				return moved, err
			}
		}
	}
	return moved, nil
}

// stripIndex maps scene id to strip id across every day and the boneyard.
func (rt *Runtime) stripIndex(ctx context.Context, days []repository.ShootDay) (map[string]string, error) {
	index := make(map[string]string)
	collect := func(dayID *string) error {
		strips, err := rt.Production.Schedule.ListStrips(ctx, dayID)
		if err != nil {
			return err
		}
		for _, s := range strips {
			index[s.SceneID] = s.ID
		}
		return nil
	}
	if err := collect(nil); err != nil {
		return nil, err
	}
	for _, d := range days {
		dayID := d.ID
		if err := collect(&dayID); err != nil {
			return nil, err
		}
	}
	return index, nil
}
