package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bragi/internal/models"
)

// Every theme an industry guide references must exist in the theme table,
// otherwise heuristic color suggestions would come up empty.
func TestIndustryGuides_ThemesResolvable(t *testing.T) {
	for industry, guide := range IndustryGuides {
		require.NotEmpty(t, guide.ColorThemes, "guide %s has no color themes", industry)
		require.NotEmpty(t, guide.Layouts, "guide %s has no layouts", industry)
		for _, theme := range guide.ColorThemes {
			_, ok := ThemeStyles[theme]
			assert.True(t, ok, "guide %s references unknown theme %s", industry, theme)
		}
	}
}

func TestGuideFor_UnknownIndustryFallsBackToDefault(t *testing.T) {
	got := GuideFor(models.Industry("agriculture"))
	assert.Equal(t, IndustryGuides[models.IndustryDefault], got)
}

func TestFontsFor_UnknownToneFallsBackToProfessional(t *testing.T) {
	got := FontsFor(models.Tone("sarcastic"))
	assert.Equal(t, ToneFonts[models.ToneProfessional], got)
}

func TestThemeFor_UnknownThemeResolves(t *testing.T) {
	got := ThemeFor(models.Theme("neon"))
	assert.NotEmpty(t, got.Palette.Primary)
	assert.NotEmpty(t, got.Fonts.Heading)
}

func TestPaletteFor_AllStylesComplete(t *testing.T) {
	for _, style := range []models.DesignStyle{
		models.StyleCorporate, models.StylePlayful, models.StyleInnovative,
		models.StyleTech, models.StyleElegant, models.StyleMinimal,
	} {
		p := PaletteFor(style)
		assert.NotEmpty(t, p.Primary, "style %s missing primary", style)
		assert.NotEmpty(t, p.Secondary, "style %s missing secondary", style)
		assert.NotEmpty(t, p.Accent, "style %s missing accent", style)
		assert.NotEmpty(t, p.Background, "style %s missing background", style)
		assert.NotEmpty(t, p.Text, "style %s missing text", style)
	}
}

func TestVoiceFor_FixedPerIndustry(t *testing.T) {
	tone, style := VoiceFor(models.IndustryTechnology)
	assert.Equal(t, models.ToneTechnical, tone)
	assert.Equal(t, models.StyleTech, style)

	tone, style = VoiceFor(models.Industry("unmapped"))
	assert.Equal(t, models.ToneProfessional, tone)
	assert.Equal(t, models.StyleCorporate, style)
}
