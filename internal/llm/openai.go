package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// OpenAIProvider uses the official openai-go client (Responses API).
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{apiKey: strings.TrimSpace(apiKey), model: strings.TrimSpace(model)}
}

var ErrOpenAINoAPIKey = fmt.Errorf("openai: api key not configured")

func (p *OpenAIProvider) ensureClient() error {
	if strings.TrimSpace(p.apiKey) == "" {
		return ErrOpenAINoAPIKey
	}
	if p.client == nil {
		client := openai.NewClient(option.WithAPIKey(p.apiKey))
		p.client = &client
	}
	return nil
}

func (p *OpenAIProvider) BreakdownScene(ctx context.Context, req BreakdownRequest) (BreakdownResponse, error) {
	if err := p.ensureClient(); err != nil {
		return BreakdownResponse{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	payload, _ := json.Marshal(req)
	system := "You are a film script breakdown assistant. Given a scene, list the production elements it requires. Return ONLY valid JSON with keys: elements (array of objects with name, category, quantity), confidence (number 0-1). Categories must come from the provided list."
	respText, err := p.callResponse(ctx, system, "Input JSON:\n"+string(payload))
	if err != nil {
		return BreakdownResponse{}, err
	}
	var out BreakdownResponse
	if err := decodeJSON(respText, &out); err != nil {
		return BreakdownResponse{}, fmt.Errorf("openai: parse breakdown: %w", err)
	}
	out.Confidence = clamp01(out.Confidence)
	return out, nil
}

func (p *OpenAIProvider) SuggestSchedule(ctx context.Context, req ScheduleRequest) (ScheduleResponse, error) {
	if err := p.ensureClient(); err != nil {
		return ScheduleResponse{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	payload, _ := json.Marshal(req)
	system := "You are a film scheduling assistant. Group scenes into shoot days, keeping shared locations and day/night blocks together. Return ONLY valid JSON with keys: days (array of objects with label, scene_numbers), reasoning (string)."
	respText, err := p.callResponse(ctx, system, "Input JSON:\n"+string(payload))
	if err != nil {
		return ScheduleResponse{}, err
	}
	var out ScheduleResponse
	if err := decodeJSON(respText, &out); err != nil {
		return ScheduleResponse{}, fmt.Errorf("openai: parse schedule: %w", err)
	}
	return out, nil
}

func (p *OpenAIProvider) ReviseSynopsis(ctx context.Context, req SynopsisRequest) (SynopsisResponse, error) {
	if err := p.ensureClient(); err != nil {
		return SynopsisResponse{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	payload, _ := json.Marshal(req)
	system := "You are a film pre-production assistant. Rewrite the scene synopsis as one tight sentence for a breakdown sheet. Return ONLY valid JSON with key: synopsis (string)."
	respText, err := p.callResponse(ctx, system, "Input JSON:\n"+string(payload))
	if err != nil {
		return SynopsisResponse{}, err
	}
	var out SynopsisResponse
	if err := decodeJSON(respText, &out); err != nil {
		return SynopsisResponse{}, fmt.Errorf("openai: parse synopsis: %w", err)
	}
	return out, nil
}

func (p *OpenAIProvider) callResponse(ctx context.Context, system, user string) (string, error) {
	model := p.model
	if model == "" {
		model = "gpt-4o-mini"
	}
	params := responses.ResponseNewParams{
		Model:           model,
		MaxOutputTokens: openai.Int(600),
		Input:           responses.ResponseNewParamsInputUnion{OfString: openai.String(system + "\n\n" + user)},
	}
	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.OutputText())
	if text == "" {
		return "", fmt.Errorf("openai: empty response")
	}
	return text, nil
}
