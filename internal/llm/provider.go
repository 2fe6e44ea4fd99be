package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider defines the assistant methods used by services.
type Provider interface {
	BreakdownScene(ctx context.Context, req BreakdownRequest) (BreakdownResponse, error)
	SuggestSchedule(ctx context.Context, req ScheduleRequest) (ScheduleResponse, error)
	ReviseSynopsis(ctx context.Context, req SynopsisRequest) (SynopsisResponse, error)
}

type SceneInput struct {
	Number    string `json:"number"`
	Slugline  string `json:"slugline"`
	Synopsis  string `json:"synopsis"`
	TimeOfDay string `json:"time_of_day"`
}

type BreakdownRequest struct {
	Scene      SceneInput `json:"scene"`
	Categories []string   `json:"categories"`
}

type SuggestedElement struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type BreakdownResponse struct {
	Elements   []SuggestedElement `json:"elements"`
	Confidence float64            `json:"confidence"`
}

type ScheduleRequest struct {
	Scenes   []SceneInput `json:"scenes"`
	DayCount int          `json:"day_count"`
}

type DayPlan struct {
	Label        string   `json:"label"`
	SceneNumbers []string `json:"scene_numbers"`
}

type ScheduleResponse struct {
	Days      []DayPlan `json:"days"`
	Reasoning string    `json:"reasoning"`
}

type SynopsisRequest struct {
	Scene SceneInput `json:"scene"`
}

type SynopsisResponse struct {
	Synopsis string `json:"synopsis"`
}

// decodeJSON tolerates models wrapping output in markdown fences.
func decodeJSON(text string, out any) error {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return json.Unmarshal([]byte(strings.TrimSpace(text)), out)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
