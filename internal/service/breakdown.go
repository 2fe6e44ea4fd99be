package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slate/internal/database/repository"
	"slate/internal/llm"
)

// autoApplyConfidence gates automatic insertion of suggested elements.
// Below this the suggestions are surfaced for review instead of applied.
const autoApplyConfidence = 0.70

// Assistant drives the model-backed breakdown and scheduling helpers.
type Assistant struct {
	Provider   llm.Provider
	Scenes     *repository.SceneRepo
	Elements   *repository.ElementRepo
	Categories *repository.ElementCategoryRepo
	Log        *zap.Logger
}

// BreakdownResult carries suggestions plus whether they were safe to apply
// without review.
type BreakdownResult struct {
	Elements   []llm.SuggestedElement
	Confidence float64
	AutoApply  bool
}

// SuggestBreakdown asks the model for the elements a scene needs. Suggestions
// come back unapplied; the caller decides based on AutoApply.
func (a *Assistant) SuggestBreakdown(ctx context.Context, sceneID string) (BreakdownResult, error) {
	scene, err := a.Scenes.Get(ctx, sceneID)
	if err != nil {
		return BreakdownResult{}, err
	}
	if scene == nil {
		return BreakdownResult{}, fmt.Errorf("scene %s not found", sceneID)
	}
	categories, err := a.Categories.List(ctx)
	if err != nil {
		return BreakdownResult{}, err
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	resp, err := a.Provider.BreakdownScene(ctx, llm.BreakdownRequest{
		Scene:      sceneInput(*scene),
		Categories: names,
	})
	if err != nil {
		return BreakdownResult{}, err
	}
	a.Log.Info("breakdown suggested",
		zap.String("scene", scene.Number),
		zap.Int("elements", len(resp.Elements)),
		zap.Float64("confidence", resp.Confidence))
	return BreakdownResult{
		Elements:   resp.Elements,
		Confidence: resp.Confidence,
		AutoApply:  resp.Confidence >= autoApplyConfidence,
	}, nil
}

// ApplyBreakdown inserts suggested elements on the scene, resolving category
// names to ids. Unknown categories insert uncategorized. Returns the count
// inserted.
func (a *Assistant) ApplyBreakdown(ctx context.Context, sceneID string, suggestions []llm.SuggestedElement) (int, error) {
	existing, err := a.Elements.List(ctx, repository.ElementFilters{SceneID: sceneID})
	if err != nil {
		return 0, err
	}
	next := len(existing)

	inserted := 0
	for _, s := range suggestions {
		if s.Name == "" {
			continue
		}
		var categoryID *string
		if s.Category != "" {
			cat, err := a.Categories.ByName(ctx, s.Category)
			if err != nil {
				return inserted, err
			}
			if cat != nil {
				categoryID = &cat.ID
			}
		}
		qty := s.Quantity
		if qty < 1 {
			qty = 1
		}
		el := repository.Element{
			ID:         uuid.NewString(),
			SceneID:    sceneID,
			CategoryID: categoryID,
			Name:       s.Name,
			Quantity:   qty,
			SortOrder:  next,
		}
		if err := a.Elements.Insert(ctx, el); err != nil {
			return inserted, err
		}
		next++
		inserted++
	}
	return inserted, nil
}

// PlanSchedule asks the model to group a script's scenes into shoot days.
func (a *Assistant) PlanSchedule(ctx context.Context, scriptID string, dayCount int) (llm.ScheduleResponse, error) {
	scenes, err := a.Scenes.List(ctx, repository.SceneFilters{ScriptID: scriptID})
	if err != nil {
		return llm.ScheduleResponse{}, err
	}
	if len(scenes) == 0 {
		return llm.ScheduleResponse{}, fmt.Errorf("script %s has no scenes", scriptID)
	}
	inputs := make([]llm.SceneInput, len(scenes))
	for i, sc := range scenes {
		inputs[i] = sceneInput(sc)
	}
	return a.Provider.SuggestSchedule(ctx, llm.ScheduleRequest{Scenes: inputs, DayCount: dayCount})
}

// ReviseSynopsis asks the model for a one-line synopsis and writes it back.
func (a *Assistant) ReviseSynopsis(ctx context.Context, sceneID string) (string, error) {
	scene, err := a.Scenes.Get(ctx, sceneID)
	if err != nil {
		return "", err
	}
	if scene == nil {
		return "", fmt.Errorf("scene %s not found", sceneID)
	}
	resp, err := a.Provider.ReviseSynopsis(ctx, llm.SynopsisRequest{Scene: sceneInput(*scene)})
	if err != nil {
		return "", err
	}
	if resp.Synopsis == "" {
		return "", fmt.Errorf("empty synopsis for scene %s", scene.Number)
	}
	if err := a.Scenes.Update(ctx, sceneID, map[string]any{"synopsis": resp.Synopsis}); err != nil {
		return "", err
	}
	return resp.Synopsis, nil
}

func sceneInput(s repository.Scene) llm.SceneInput {
	in := llm.SceneInput{Number: s.Number, Slugline: s.Slugline}
	if s.Synopsis != nil {
		in.Synopsis = *s.Synopsis
	}
	if s.TimeOfDay != nil {
		in.TimeOfDay = *s.TimeOfDay
	}
	return in
}
