package apihandlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bragi/internal/app"
	"bragi/internal/models"
	"bragi/internal/services"
	"bragi/internal/store/memory"
	"bragi/internal/styles"
	"bragi/pkg/classifier"
)

// countingClassifier counts Classify calls so tests can tell a cache hit
// from a reclassification.
type countingClassifier struct {
	mu    sync.Mutex
	calls int
}

func (c *countingClassifier) Name() string { return "counting" }

func (c *countingClassifier) Classify(ctx context.Context, deckID uuid.UUID, payload models.ContentPayload) (models.ContentAnalysis, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return models.ContentAnalysis{
		Industry:         models.IndustryTechnology,
		BusinessTone:     models.ToneTechnical,
		RecommendedStyle: models.StyleTech,
		Source:           "counting",
	}, nil
}

func (c *countingClassifier) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func newTestRouter(t *testing.T, cls classifier.ContentClassifier) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := memory.NewStore()
	svc := services.NewStylingService(services.StylingServiceDeps{
		DeckStore:  mem,
		Classifier: cls,
	})
	h := NewAPIHandler(&app.App{DeckStore: mem, StylingService: svc})

	router := gin.New()
	router.POST("/api/v1/decks/:id/styling", h.ApplyStylingHandler)
	router.GET("/api/v1/decks/:id/styling", h.GetStylingHandler)
	router.DELETE("/api/v1/decks/:id/styling", h.InvalidateStylingHandler)
	router.GET("/api/v1/themes", h.ListThemesHandler)
	router.GET("/health", h.HealthHandler)
	return router, mem
}

// heuristicRouter wires the real classifier chain with no remote providers.
func heuristicRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	return newTestRouter(t, classifier.NewFallbackClassifier(nil, 0, nil))
}

func seedDeck(t *testing.T, mem *memory.Store) uuid.UUID {
	t.Helper()
	deck := &models.Deck{
		Title: "Dispatch software for harbor crews",
		Slides: []models.Slide{
			{Type: models.SlideCover, Content: json.RawMessage(`{"title":"Dispatch platform"}`)},
			{Type: models.SlideProblem, Content: json.RawMessage(`{"headline":"Paper manifests slow every shift"}`)},
			{Type: models.SlideData, Content: json.RawMessage(`{"bullets":["38% faster turnaround"]}`)},
		},
	}
	require.NoError(t, mem.CreateDeck(context.Background(), deck))
	return deck.ID
}

func perform(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestApplyStylingHandler_StylesDeck(t *testing.T) {
	router, mem := heuristicRouter(t)
	deckID := seedDeck(t, mem)

	// 1. Apply styling over HTTP.
	w := perform(router, http.MethodPost, "/api/v1/decks/"+deckID.String()+"/styling")
	require.Equal(t, http.StatusOK, w.Code)

	// 2. The summary reflects the classified deck.
	var body struct {
		Data struct {
			DeckID   string `json:"deck_id"`
			Status   string `json:"status"`
			Industry string `json:"industry"`
			Tone     string `json:"tone"`
			Style    string `json:"style"`
			Slides   int    `json:"slides"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, deckID.String(), body.Data.DeckID)
	assert.Equal(t, "complete", body.Data.Status)
	assert.Equal(t, "technology", body.Data.Industry)
	assert.Equal(t, "technical", body.Data.Tone)
	assert.Equal(t, 3, body.Data.Slides)

	// 3. The styled content was persisted, not just reported.
	deck, err := mem.GetDeck(context.Background(), deckID)
	require.NoError(t, err)
	var content map[string]interface{}
	require.NoError(t, json.Unmarshal(deck.Slides[0].Content, &content))
	assert.Contains(t, content, models.KeyColorTheme)
	assert.Equal(t, "full-width-image", content[models.KeyLayout])
	assert.Equal(t, "Dispatch platform", content["title"])
}

func TestApplyStylingHandler_InvalidID(t *testing.T) {
	router, _ := heuristicRouter(t)

	w := perform(router, http.MethodPost, "/api/v1/decks/not-a-uuid/styling")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestApplyStylingHandler_UnknownDeck(t *testing.T) {
	router, _ := heuristicRouter(t)

	w := perform(router, http.MethodPost, "/api/v1/decks/"+uuid.NewString()+"/styling")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestApplyStylingHandler_ForceRestyles(t *testing.T) {
	cls := &countingClassifier{}
	router, mem := newTestRouter(t, cls)
	deckID := seedDeck(t, mem)
	path := "/api/v1/decks/" + deckID.String() + "/styling"

	// Two plain applies share one classification.
	require.Equal(t, http.StatusOK, perform(router, http.MethodPost, path).Code)
	require.Equal(t, http.StatusOK, perform(router, http.MethodPost, path).Code)
	assert.Equal(t, 1, cls.callCount(), "plain reapply must reuse the cached analysis")

	// force=true reclassifies from the current content.
	require.Equal(t, http.StatusOK, perform(router, http.MethodPost, path+"?force=true").Code)
	assert.Equal(t, 2, cls.callCount())
}

func TestGetStylingHandler_Lifecycle(t *testing.T) {
	router, mem := heuristicRouter(t)
	deckID := seedDeck(t, mem)
	path := "/api/v1/decks/" + deckID.String() + "/styling"

	// Before styling: not started, no analysis attached.
	w := perform(router, http.MethodGet, path)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"not_started"`)
	assert.NotContains(t, w.Body.String(), `"analysis"`)

	require.Equal(t, http.StatusOK, perform(router, http.MethodPost, path).Code)

	// After styling: complete with the cached analysis.
	w = perform(router, http.MethodGet, path)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"complete"`)
	assert.Contains(t, w.Body.String(), `"industry":"technology"`)

	// Navigating away resets the session state.
	require.Equal(t, http.StatusNoContent, perform(router, http.MethodDelete, path).Code)
	w = perform(router, http.MethodGet, path)
	assert.Contains(t, w.Body.String(), `"status":"not_started"`)
	assert.NotContains(t, w.Body.String(), `"analysis"`)
}

func TestListThemesHandler(t *testing.T) {
	router, _ := heuristicRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/themes")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Themes     map[string]models.ThemeStyle         `json:"themes"`
			Industries map[string]models.IndustryStyleGuide `json:"industries"`
			Fonts      map[string]models.FontPairing        `json:"fonts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.Themes, len(styles.ThemeStyles))
	assert.Contains(t, body.Data.Themes, string(models.ThemeOcean))
	assert.NotEmpty(t, body.Data.Industries[string(models.IndustryTechnology)].ColorThemes)
	assert.NotEmpty(t, body.Data.Fonts[string(models.ToneTechnical)].Heading)
}

func TestHealthHandler(t *testing.T) {
	router, _ := heuristicRouter(t)

	w := perform(router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
