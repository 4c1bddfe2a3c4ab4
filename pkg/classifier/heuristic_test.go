package classifier

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bragi/internal/models"
	"bragi/internal/styles"
)

func payloadFromText(text string) models.ContentPayload {
	return models.ContentPayload{
		Title: "Pitch",
		Slides: []models.SlidePayload{
			{Type: models.SlideProblem, Paragraphs: []string{text}},
		},
	}
}

func TestHeuristic_Deterministic(t *testing.T) {
	h := NewHeuristicClassifier()
	payload := payloadFromText("Our software platform ships a scheduling algorithm for hospitals and clinics.")

	first, err := h.Classify(context.Background(), uuid.Nil, payload)
	require.NoError(t, err)

	// Byte-identical across repeated calls: compare serialized forms.
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := h.Classify(context.Background(), uuid.Nil, payload)
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON), "call %d diverged", i)
	}
}

// A payload with software/platform/algorithm tokens classifies as technology
// with the tech voice.
func TestHeuristic_TechnologyKeywords(t *testing.T) {
	h := NewHeuristicClassifier()
	payload := payloadFromText("Our software platform runs a custom matching algorithm in the cloud.")

	analysis, err := h.Classify(context.Background(), uuid.Nil, payload)

	require.NoError(t, err)
	assert.Equal(t, models.IndustryTechnology, analysis.Industry)
	assert.Equal(t, models.ToneTechnical, analysis.BusinessTone)
	assert.Contains(t, []models.DesignStyle{models.StyleInnovative, models.StyleTech}, analysis.RecommendedStyle)
	assert.Equal(t, "heuristic", analysis.Source)
}

func TestHeuristic_NoKeywordsFallsToDefault(t *testing.T) {
	h := NewHeuristicClassifier()
	payload := payloadFromText("Fresh bread delivered daily across town, baked slowly overnight.")

	analysis, err := h.Classify(context.Background(), uuid.Nil, payload)

	require.NoError(t, err)
	assert.Equal(t, models.IndustryDefault, analysis.Industry)
	assert.Equal(t, models.ToneProfessional, analysis.BusinessTone)
	assert.Equal(t, models.StyleCorporate, analysis.RecommendedStyle)
}

// Industry sets are tested in priority order: a deck that mentions both
// technology and healthcare terms resolves to technology.
func TestHeuristic_IndustryPriorityOrder(t *testing.T) {
	h := NewHeuristicClassifier()
	payload := payloadFromText("A telemedicine service for patients built on our software platform.")

	analysis, err := h.Classify(context.Background(), uuid.Nil, payload)

	require.NoError(t, err)
	assert.Equal(t, models.IndustryTechnology, analysis.Industry)
}

func TestHeuristic_ColorSuggestionsFollowGuideOrder(t *testing.T) {
	h := NewHeuristicClassifier()
	payload := payloadFromText("Investment banking for wealth portfolios.")

	analysis, err := h.Classify(context.Background(), uuid.Nil, payload)

	require.NoError(t, err)
	require.Equal(t, models.IndustryFinance, analysis.Industry)

	guide := styles.GuideFor(models.IndustryFinance)
	require.Len(t, analysis.ColorSuggestions, 3)
	for i, theme := range guide.ColorThemes[:3] {
		assert.Equal(t, styles.ThemeFor(theme).Palette.Primary, analysis.ColorSuggestions[i])
	}
}

func TestHeuristic_EmptyPayload(t *testing.T) {
	h := NewHeuristicClassifier()

	analysis, err := h.Classify(context.Background(), uuid.Nil, models.ContentPayload{})

	require.NoError(t, err)
	assert.Equal(t, models.IndustryDefault, analysis.Industry)
	assert.Empty(t, analysis.KeyThemes)
	assert.Len(t, analysis.ColorSuggestions, 3)
}

func TestTokenize_DropsShortTokensAndStopWords(t *testing.T) {
	tokens := tokenize("The API and the SDK will ship with full documentation about setup")

	assert.Equal(t, []string{"ship", "full", "documentation", "setup"}, tokens)
}

func TestRankThemes_FrequencyThenFirstOccurrence(t *testing.T) {
	// "delivery" appears three times, "orders" twice; "fleet" and "routing"
	// once each, tie broken by position.
	tokens := tokenize("delivery orders fleet delivery routing orders delivery")

	themes := rankThemes(tokens)

	assert.Equal(t, []string{"delivery", "orders", "fleet"}, themes)
}

func TestRankThemes_CapsAtThree(t *testing.T) {
	themes := rankThemes([]string{"alpha", "bravo", "charlie", "delta", "echo"})
	assert.Len(t, themes, 3)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, themes)
}
