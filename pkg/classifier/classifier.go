// Package classifier produces a ContentAnalysis for a deck payload, either
// through a remote model or through a local deterministic heuristic. The
// exported chain never fails: remote trouble degrades to the heuristic.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bragi/internal/models"
)

// ContentClassifier classifies deck content.
type ContentClassifier interface {
	// Name identifies the provider in logs and usage records.
	Name() string
	// Classify returns the analysis for one deck's payload. Remote
	// implementations return an error on any transport or shape problem so
	// the chain can fall through; the heuristic never errors.
	Classify(ctx context.Context, deckID uuid.UUID, payload models.ContentPayload) (models.ContentAnalysis, error)
}

// parseAnalysis decodes a remote response into a ContentAnalysis. The
// response must be a JSON object carrying a non-empty industry; anything
// else is a shape failure. Unknown enum values in an otherwise valid
// response normalize to their documented defaults instead of failing.
func parseAnalysis(content string) (models.ContentAnalysis, error) {
	content = stripCodeFence(strings.TrimSpace(content))

	var parsed struct {
		Industry         string   `json:"industry"`
		BusinessTone     string   `json:"businessTone"`
		KeyThemes        []string `json:"keyThemes"`
		ColorSuggestions []string `json:"colorSuggestions"`
		RecommendedStyle string   `json:"recommendedStyle"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return models.ContentAnalysis{}, fmt.Errorf("failed to parse classifier response as JSON: %w\nResponse content: %s", err, content)
	}
	if strings.TrimSpace(parsed.Industry) == "" {
		return models.ContentAnalysis{}, fmt.Errorf("classifier response carries no industry\nResponse content: %s", content)
	}

	return models.ContentAnalysis{
		Industry:         models.ParseIndustry(parsed.Industry),
		BusinessTone:     models.ParseTone(parsed.BusinessTone),
		KeyThemes:        parsed.KeyThemes,
		ColorSuggestions: parsed.ColorSuggestions,
		RecommendedStyle: models.ParseDesignStyle(parsed.RecommendedStyle),
	}, nil
}

// stripCodeFence unwraps ```json fenced blocks some models insist on.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
