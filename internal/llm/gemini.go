package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiProvider uses the google genai client (Gemini API backend).
type GeminiProvider struct {
	apiKey string
	model  string
	client *genai.Client
}

func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	return &GeminiProvider{apiKey: strings.TrimSpace(apiKey), model: strings.TrimSpace(model)}
}

var ErrGeminiNoAPIKey = fmt.Errorf("gemini: api key not configured")

func (p *GeminiProvider) ensureClient(ctx context.Context) error {
	if strings.TrimSpace(p.apiKey) == "" {
		return ErrGeminiNoAPIKey
	}
	if p.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  p.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("gemini: create client: %w", err)
		}
		p.client = client
	}
	return nil
}

func (p *GeminiProvider) BreakdownScene(ctx context.Context, req BreakdownRequest) (BreakdownResponse, error) {
	payload, _ := json.Marshal(req)
	system := "You are a film script breakdown assistant. Given a scene, list the production elements it requires. Return ONLY valid JSON with keys: elements (array of objects with name, category, quantity), confidence (number 0-1). Categories must come from the provided list."
	respText, err := p.generate(ctx, system, "Input JSON:\n"+string(payload))
	if err != nil {
		return BreakdownResponse{}, err
	}
	var out BreakdownResponse
	if err := decodeJSON(respText, &out); err != nil {
		return BreakdownResponse{}, fmt.Errorf("gemini: parse breakdown: %w", err)
	}
	out.Confidence = clamp01(out.Confidence)
	return out, nil
}

func (p *GeminiProvider) SuggestSchedule(ctx context.Context, req ScheduleRequest) (ScheduleResponse, error) {
	payload, _ := json.Marshal(req)
	system := "You are a film scheduling assistant. Group scenes into shoot days, keeping shared locations and day/night blocks together. Return ONLY valid JSON with keys: days (array of objects with label, scene_numbers), reasoning (string)."
	respText, err := p.generate(ctx, system, "Input JSON:\n"+string(payload))
	if err != nil {
		return ScheduleResponse{}, err
	}
	var out ScheduleResponse
	if err := decodeJSON(respText, &out); err != nil {
		return ScheduleResponse{}, fmt.Errorf("gemini: parse schedule: %w", err)
	}
	return out, nil
}

func (p *GeminiProvider) ReviseSynopsis(ctx context.Context, req SynopsisRequest) (SynopsisResponse, error) {
	payload, _ := json.Marshal(req)
	system := "You are a film pre-production assistant. Rewrite the scene synopsis as one tight sentence for a breakdown sheet. Return ONLY valid JSON with key: synopsis (string)."
	respText, err := p.generate(ctx, system, "Input JSON:\n"+string(payload))
	if err != nil {
		return SynopsisResponse{}, err
	}
	var out SynopsisResponse
	if err := decodeJSON(respText, &out); err != nil {
		return SynopsisResponse{}, fmt.Errorf("gemini: parse synopsis: %w", err)
	}
	return out, nil
}

func (p *GeminiProvider) generate(ctx context.Context, system, user string) (string, error) {
	if err := p.ensureClient(ctx); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	model := p.model
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	contents := []*genai.Content{genai.NewContentFromText(user, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: 600,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}
	result, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}
