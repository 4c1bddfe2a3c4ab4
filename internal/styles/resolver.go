package styles

import "bragi/internal/models"

// Resolve combines a classifier verdict with the static tables into the
// concrete visual identity and layout for one slide type. Pure and total:
// unknown industries, tones and styles resolve through the table defaults,
// so Resolve never fails.
func Resolve(analysis models.ContentAnalysis, slideType models.SlideType) (models.SlideStyle, models.Layout) {
	guide := GuideFor(analysis.Industry)

	theme := models.Theme("")
	if len(guide.ColorThemes) > 0 {
		theme = guide.ColorThemes[0]
	}
	base := ThemeFor(theme)

	style := models.SlideStyle{
		Theme:      theme,
		Palette:    buildPalette(analysis),
		Fonts:      FontsFor(analysis.BusinessTone),
		Spacing:    base.Spacing,
		ImageStyle: base.ImageStyle,
		Elements:   guide.Elements,
	}
	if len(guide.ImageStyles) > 0 {
		style.ImageStyle = guide.ImageStyles[0]
	}

	return style, resolveLayout(analysis, slideType, guide)
}

// buildPalette fills primary, secondary and accent from the classifier's
// color suggestions in order; every slot not covered comes from the
// style-specific default palette, so none is ever empty.
func buildPalette(analysis models.ContentAnalysis) models.ColorPalette {
	palette := PaletteFor(analysis.RecommendedStyle)
	slots := []*string{&palette.Primary, &palette.Secondary, &palette.Accent}
	for i, c := range analysis.ColorSuggestions {
		if i >= len(slots) {
			break
		}
		if c != "" {
			*slots[i] = c
		}
	}
	return palette
}

// resolveLayout picks the slide layout: an analysis overlay wins, then the
// fixed slide-type rules, then the first layout of the industry guide.
func resolveLayout(analysis models.ContentAnalysis, slideType models.SlideType, guide models.IndustryStyleGuide) models.Layout {
	if override, ok := analysis.SlideStyles[slideType]; ok && override.Layout != "" {
		return override.Layout
	}

	switch slideType {
	case models.SlideCover:
		return models.LayoutFullWidthImage
	case models.SlideData, models.SlideFinancials:
		return models.LayoutGrid
	case models.SlideTeam:
		return models.LayoutImageTop
	}

	if len(guide.Layouts) > 0 {
		return guide.Layouts[0]
	}
	return models.LayoutCentered
}
