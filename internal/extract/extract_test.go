package extract

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bragi/internal/models"
)

func slideWithContent(t *testing.T, slideType models.SlideType, content map[string]interface{}) models.Slide {
	t.Helper()
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	return models.Slide{
		ID:      uuid.New(),
		Type:    slideType,
		Content: raw,
	}
}

func TestBuildPayload_NilDeck(t *testing.T) {
	payload := BuildPayload(nil)
	assert.True(t, payload.Empty())
}

func TestBuildPayload_ExtractsTextFields(t *testing.T) {
	deck := &models.Deck{
		ID:    uuid.New(),
		Title: "Acme Robotics",
		Slides: []models.Slide{
			slideWithContent(t, models.SlideCover, map[string]interface{}{
				"title":    "Acme Robotics",
				"headline": "Automation for everyone",
			}),
			slideWithContent(t, models.SlideProblem, map[string]interface{}{
				"title":      "The problem",
				"paragraphs": []string{"Factories waste hours on manual sorting.", "Error rates climb with fatigue."},
				"bullets":    []string{"40% idle time", "12% defect rate"},
			}),
		},
	}

	payload := BuildPayload(deck)

	require.Len(t, payload.Slides, 2)
	assert.Equal(t, "Acme Robotics", payload.Title)
	assert.Equal(t, "Automation for everyone", payload.Slides[0].Headline)
	assert.Equal(t, models.SlideProblem, payload.Slides[1].Type)
	assert.Equal(t, []string{"Factories waste hours on manual sorting.", "Error rates climb with fatigue."}, payload.Slides[1].Paragraphs)
	assert.Equal(t, []string{"40% idle time", "12% defect rate"}, payload.Slides[1].Bullets)
}

func TestBuildPayload_StripsMarkup(t *testing.T) {
	deck := &models.Deck{
		Title: "<b>Bold</b> pitch",
		Slides: []models.Slide{
			slideWithContent(t, models.SlideSolution, map[string]interface{}{
				"headline":   "<p>Our <em>platform</em> scales</p>",
				"paragraphs": []string{"<div>One <span>clean</span> sentence.</div>"},
			}),
		},
	}

	payload := BuildPayload(deck)

	assert.Equal(t, "Bold pitch", payload.Title)
	assert.Equal(t, "Our platform scales", payload.Slides[0].Headline)
	assert.Equal(t, []string{"One clean sentence."}, payload.Slides[0].Paragraphs)
}

func TestBuildPayload_AlternateFieldNames(t *testing.T) {
	deck := &models.Deck{
		Slides: []models.Slide{
			slideWithContent(t, models.SlideMarket, map[string]interface{}{
				"subtitle":      "A growing market",
				"body":          "The market doubles every three years.",
				"bullet_points": []string{"TAM $4B"},
			}),
		},
	}

	payload := BuildPayload(deck)

	assert.Equal(t, "A growing market", payload.Slides[0].Headline)
	assert.Equal(t, []string{"The market doubles every three years."}, payload.Slides[0].Paragraphs)
	assert.Equal(t, []string{"TAM $4B"}, payload.Slides[0].Bullets)
}

func TestBuildPayload_MalformedContentDegradesToEmpty(t *testing.T) {
	deck := &models.Deck{
		Slides: []models.Slide{
			{Type: models.SlideAgenda, Content: json.RawMessage(`"just a string"`)},
			{Type: models.SlideClosing, Content: json.RawMessage(`{{{`)},
			{Type: models.SlideTeam},
		},
	}

	payload := BuildPayload(deck)

	require.Len(t, payload.Slides, 3)
	for _, sp := range payload.Slides {
		assert.Empty(t, sp.Title)
		assert.Empty(t, sp.Paragraphs)
		assert.Empty(t, sp.Bullets)
	}
}

func TestClampForPrompt_TruncatesOnSentenceBoundaries(t *testing.T) {
	long := "First sentence here. Second sentence follows. Third one too. Fourth keeps going. Fifth is dropped."
	payload := models.ContentPayload{
		Slides: []models.SlidePayload{
			{Type: models.SlideProblem, Paragraphs: []string{long, "Short."}},
		},
	}

	clamped := ClampForPrompt(payload, 2)

	require.Len(t, clamped.Slides, 1)
	assert.Equal(t, "First sentence here. Second sentence follows.", clamped.Slides[0].Paragraphs[0])
	assert.Equal(t, "Short.", clamped.Slides[0].Paragraphs[1])
	// Original payload is untouched.
	assert.Equal(t, long, payload.Slides[0].Paragraphs[0])
}

func TestClampForPrompt_ZeroMaxLeavesPayloadAlone(t *testing.T) {
	payload := models.ContentPayload{
		Slides: []models.SlidePayload{{Paragraphs: []string{"One. Two. Three."}}},
	}
	clamped := ClampForPrompt(payload, 0)
	assert.Equal(t, payload, clamped)
}
