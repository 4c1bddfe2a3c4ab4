package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bragi/internal/styles"
)

// ListThemesHandler handles GET /api/v1/themes. It exposes the static style
// tables so editor frontends can render pickers without duplicating them.
func (h *APIHandler) ListThemesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"themes":     styles.ThemeStyles,
		"industries": styles.IndustryGuides,
		"fonts":      styles.ToneFonts,
	}})
}
