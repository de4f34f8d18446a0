package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"consulting360/internal/entities"
	apperrors "consulting360/internal/errors"
)

const strategistModel = "gemini-2.0-flash"

const strategistPromptTemplate = `
You are John Licata, Principal of 360 Consulting Solutions. You have 30 years of experience in retail, footwear, and managing massive topline revenues. Your philosophy is "Winning at work without losing at home."
User input: %q
Analyze through: 1. STRATEGIC OVERSIGHT, 2. OPERATIONAL FIX, 3. LEGACY BLUEPRINT.
Return JSON: { "strategy": "...", "operations": "...", "legacy": "..." }
`

// StrategistService runs user input through the Gemini model and returns the
// three-lens analysis. Stateless pass-through; one model call per request.
type StrategistService struct {
	APIKey string
}

func NewStrategistService(apiKey string) *StrategistService {
	return &StrategistService{APIKey: apiKey}
}

func (s *StrategistService) GenerateStrategy(ctx context.Context, input string) (*entities.StrategyAnalysis, error) {
	if s.APIKey == "" {
		return nil, apperrors.ErrConfiguration("AI Module Offline: API Configuration Required.")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(strategistModel)
	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(strategistPromptTemplate, input)))
	if err != nil {
		return nil, fmt.Errorf("Gemini generation failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("Gemini returned an empty response")
	}

	var analysis entities.StrategyAnalysis
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &analysis); err != nil {
		return nil, fmt.Errorf("Gemini response is not the expected JSON: %w", err)
	}
	return &analysis, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

// stripCodeFences removes the ```json fences models wrap JSON output in.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
