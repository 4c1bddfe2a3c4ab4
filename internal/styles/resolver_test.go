package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bragi/internal/models"
)

func TestResolve_PaletteFromSuggestions(t *testing.T) {
	analysis := models.ContentAnalysis{
		Industry:         models.IndustryTechnology,
		BusinessTone:     models.ToneTechnical,
		ColorSuggestions: []string{"#111111", "#222222"},
		RecommendedStyle: models.StyleTech,
	}

	style, _ := Resolve(analysis, models.SlideSolution)

	assert.Equal(t, "#111111", style.Palette.Primary)
	assert.Equal(t, "#222222", style.Palette.Secondary)
	// Third suggestion missing, accent comes from the tech default palette.
	assert.Equal(t, PaletteFor(models.StyleTech).Accent, style.Palette.Accent)
	assert.Equal(t, PaletteFor(models.StyleTech).Background, style.Palette.Background)
	assert.Equal(t, PaletteFor(models.StyleTech).Text, style.Palette.Text)
}

func TestResolve_NoSuggestionsUsesStyleDefaults(t *testing.T) {
	analysis := models.ContentAnalysis{
		Industry:         models.IndustryFinance,
		BusinessTone:     models.ToneProfessional,
		RecommendedStyle: models.StyleCorporate,
	}

	style, _ := Resolve(analysis, models.SlideMarket)

	assert.Equal(t, PaletteFor(models.StyleCorporate), style.Palette)
}

func TestResolve_ExtraSuggestionsIgnored(t *testing.T) {
	analysis := models.ContentAnalysis{
		Industry:         models.IndustryDefault,
		RecommendedStyle: models.StyleMinimal,
		ColorSuggestions: []string{"#0a0a0a", "#0b0b0b", "#0c0c0c", "#0d0d0d", "#0e0e0e"},
	}

	style, _ := Resolve(analysis, models.SlideAgenda)

	assert.Equal(t, "#0a0a0a", style.Palette.Primary)
	assert.Equal(t, "#0b0b0b", style.Palette.Secondary)
	assert.Equal(t, "#0c0c0c", style.Palette.Accent)
}

func TestResolve_LayoutPrecedence(t *testing.T) {
	testCases := []struct {
		name      string
		analysis  models.ContentAnalysis
		slideType models.SlideType
		expected  models.Layout
	}{
		{
			name: "analysis overlay wins over slide-type rule",
			analysis: models.ContentAnalysis{
				Industry: models.IndustryTechnology,
				SlideStyles: map[models.SlideType]models.SlideOverride{
					models.SlideData: {Layout: models.LayoutTimeline},
				},
			},
			slideType: models.SlideData,
			expected:  models.LayoutTimeline,
		},
		{
			name:      "cover rule",
			analysis:  models.ContentAnalysis{Industry: models.IndustryHealthcare},
			slideType: models.SlideCover,
			expected:  models.LayoutFullWidthImage,
		},
		{
			name:      "data rule",
			analysis:  models.ContentAnalysis{Industry: models.IndustryCreative},
			slideType: models.SlideData,
			expected:  models.LayoutGrid,
		},
		{
			name:      "financials rule",
			analysis:  models.ContentAnalysis{Industry: models.IndustryEducation},
			slideType: models.SlideFinancials,
			expected:  models.LayoutGrid,
		},
		{
			name:      "team rule",
			analysis:  models.ContentAnalysis{Industry: models.IndustryFinance},
			slideType: models.SlideTeam,
			expected:  models.LayoutImageTop,
		},
		{
			name:      "guide first layout when no rule matches",
			analysis:  models.ContentAnalysis{Industry: models.IndustryTechnology},
			slideType: models.SlideSolution,
			expected:  IndustryGuides[models.IndustryTechnology].Layouts[0],
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, layout := Resolve(tc.analysis, tc.slideType)
			assert.Equal(t, tc.expected, layout)
		})
	}
}

// Cover slides get the full-width image layout no matter which industry the
// classifier picked.
func TestResolve_CoverLayoutIndependentOfIndustry(t *testing.T) {
	for industry := range IndustryGuides {
		_, layout := Resolve(models.ContentAnalysis{Industry: industry}, models.SlideCover)
		assert.Equal(t, models.LayoutFullWidthImage, layout, "industry %s", industry)
	}
}

func TestResolve_UnknownIndustryNeverPanics(t *testing.T) {
	analysis := models.ContentAnalysis{Industry: models.Industry("space-mining")}

	style, layout := Resolve(analysis, models.SlideProblem)

	require.NotEmpty(t, layout)
	assert.Equal(t, IndustryGuides[models.IndustryDefault].Elements, style.Elements)
	assert.Equal(t, IndustryGuides[models.IndustryDefault].ColorThemes[0], style.Theme)
}

func TestResolve_ElementsCopiedFromGuide(t *testing.T) {
	analysis := models.ContentAnalysis{
		Industry:     models.IndustryHealthcare,
		BusinessTone: models.ToneLuxurious,
	}

	style, _ := Resolve(analysis, models.SlideClosing)

	assert.Equal(t, IndustryGuides[models.IndustryHealthcare].Elements, style.Elements)
	assert.Equal(t, ToneFonts[models.ToneLuxurious], style.Fonts)
}
