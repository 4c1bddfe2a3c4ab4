package apihandlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bragi/internal/models"
	"bragi/internal/store"
)

// stylingSummary is the success body for a styling run.
type stylingSummary struct {
	DeckID   string               `json:"deck_id"`
	Status   models.StylingStatus `json:"status"`
	Industry models.Industry      `json:"industry"`
	Tone     models.Tone          `json:"tone"`
	Style    models.DesignStyle   `json:"style"`
	Slides   int                  `json:"slides"`
}

// ApplyStylingHandler handles POST /api/v1/decks/:id/styling. A plain POST is
// idempotent for an already styled deck; ?force=true reclassifies and
// restyles it from the current content instead.
func (h *APIHandler) ApplyStylingHandler(c *gin.Context) {
	deckID, ok := parseDeckID(c)
	if !ok {
		return
	}
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))

	svc := h.App.StylingService
	var (
		styled *models.Deck
		err    error
	)
	if force {
		styled, err = svc.Restyle(c.Request.Context(), deckID)
	} else {
		styled, err = svc.ApplyStyling(c.Request.Context(), deckID)
	}
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			NotFound(c, "deck not found: "+deckID.String())
		case errors.Is(err, models.ErrStaleAnalysis):
			Conflict(c, "deck content changed while styling was in flight; retry to restyle")
		default:
			Internal(c, "apply styling: "+err.Error())
		}
		return
	}

	summary := stylingSummary{
		DeckID: deckID.String(),
		Status: svc.Status(deckID),
		Slides: len(styled.Slides),
	}
	if analysis, ok := svc.Analysis(deckID); ok {
		summary.Industry = analysis.Industry
		summary.Tone = analysis.BusinessTone
		summary.Style = analysis.RecommendedStyle
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// GetStylingHandler handles GET /api/v1/decks/:id/styling. The analysis field
// appears only once classification has produced a verdict in this process.
func (h *APIHandler) GetStylingHandler(c *gin.Context) {
	deckID, ok := parseDeckID(c)
	if !ok {
		return
	}
	svc := h.App.StylingService
	body := gin.H{
		"deck_id": deckID.String(),
		"status":  svc.Status(deckID),
	}
	if analysis, ok := svc.Analysis(deckID); ok {
		body["analysis"] = analysis
	}
	c.JSON(http.StatusOK, gin.H{"data": body})
}

// InvalidateStylingHandler handles DELETE /api/v1/decks/:id/styling. Editors
// call it when the user leaves a deck so the next visit reclassifies.
func (h *APIHandler) InvalidateStylingHandler(c *gin.Context) {
	deckID, ok := parseDeckID(c)
	if !ok {
		return
	}
	h.App.StylingService.Invalidate(deckID)
	c.Status(http.StatusNoContent)
}
