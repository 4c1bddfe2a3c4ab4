package services

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"bragi/internal/design"
	"bragi/internal/models"
	"bragi/internal/styles"
)

// mergeSlideStyling resolves and emits the slide's design, then merges it
// into the slide's content document under the reserved keys. Every other
// key in the document passes through untouched. Content that does not parse
// as a JSON object cannot carry foreign keys to preserve, so styling starts
// from an empty document.
func mergeSlideStyling(analysis models.ContentAnalysis, slide models.Slide) (json.RawMessage, error) {
	style, layout := styles.Resolve(analysis, slide.Type)
	spec := design.Emit(style, layout, slide.Type, analysis.RecommendedStyle)

	doc := make(map[string]interface{})
	if len(slide.Content) > 0 {
		if err := json.Unmarshal(slide.Content, &doc); err != nil {
			log.Warnf("Slide %s content is not a JSON object, restyling from scratch: %v", slide.ID, err)
			doc = make(map[string]interface{})
		}
	}

	doc[models.KeyColorTheme] = spec.Style.Theme
	doc[models.KeyDesignStyle] = analysis.RecommendedStyle
	doc[models.KeyFontStyle] = spec.Style.Fonts.Heading
	doc[models.KeyLayout] = spec.Layout
	doc[models.KeyCSS] = spec.CSS
	doc[models.KeyDecorations] = spec.Decorations
	doc[models.KeyStyle] = spec.Style
	doc[models.KeyIndustry] = analysis.Industry
	doc[models.KeyBusinessTone] = analysis.BusinessTone

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal styled content: %w", err)
	}
	return merged, nil
}
