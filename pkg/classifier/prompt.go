package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"bragi/internal/models"
)

// DefaultPromptTemplate is the fixed instruction sent to remote classifiers.
// A configured prompt file may replace it, but the response contract (a bare
// JSON object with exactly these five keys) must not change.
const DefaultPromptTemplate = `You are a presentation design analyst. Study the pitch deck content below and classify it.

Deck content (JSON):
{{DECK_CONTENT}}

Respond with ONLY a JSON object, no prose and no code fences, with these keys:
- "industry": one of "technology", "healthcare", "finance", "education", "ecommerce", "creative", "default"
- "businessTone": one of "professional", "creative", "technical", "friendly", "luxurious", "modern", "traditional"
- "keyThemes": up to 3 short lowercase strings naming the deck's dominant topics
- "colorSuggestions": up to 3 hex color strings suited to the content
- "recommendedStyle": one of "corporate", "playful", "innovative", "tech", "elegant", "minimal"`

// renderPrompt substitutes the payload into the prompt template.
func renderPrompt(template string, payload models.ContentPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize payload for prompt: %w", err)
	}
	return strings.ReplaceAll(template, "{{DECK_CONTENT}}", string(body)), nil
}
