package design

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bragi/internal/models"
	"bragi/internal/styles"
)

func sampleStyle() models.SlideStyle {
	return models.SlideStyle{
		Theme:      models.ThemeMidnight,
		Palette:    styles.PaletteFor(models.StyleTech),
		Fonts:      models.FontPairing{Heading: "Space Grotesk", Body: "IBM Plex Sans"},
		Spacing:    models.SpacingComfortable,
		ImageStyle: models.ImageAbstract,
		Elements:   models.DesignElements{Shapes: true, Gradients: true, Icons: true, Shadows: true},
	}
}

// Emission is total: every layout/type/variant combination yields parseable
// CSS declaring all required custom properties.
func TestEmit_TotalOverAllCombinations(t *testing.T) {
	layouts := []models.Layout{
		models.LayoutFullWidthImage, models.LayoutGrid, models.LayoutImageTop,
		models.LayoutImageLeft, models.LayoutImageRight, models.LayoutSplit,
		models.LayoutCentered, models.LayoutTimeline, models.Layout(""),
	}
	slideTypes := []models.SlideType{
		models.SlideCover, models.SlideAgenda, models.SlideProblem,
		models.SlideSolution, models.SlideMarket, models.SlideProduct,
		models.SlideTeam, models.SlideFinancials, models.SlideData,
		models.SlideRoadmap, models.SlideClosing,
	}
	designStyles := []models.DesignStyle{
		models.StyleCorporate, models.StylePlayful, models.StyleInnovative,
		models.StyleTech, models.StyleElegant, models.StyleMinimal,
	}

	style := sampleStyle()
	for _, layout := range layouts {
		for _, slideType := range slideTypes {
			for _, designStyle := range designStyles {
				spec := Emit(style, layout, slideType, designStyle)
				require.NotEmpty(t, spec.CSS, "%s/%s/%s", layout, slideType, designStyle)
				assert.Equal(t, layout, spec.Layout)

				missing, err := MissingProperties(spec.CSS)
				require.NoError(t, err, "%s/%s/%s", layout, slideType, designStyle)
				assert.Empty(t, missing, "%s/%s/%s", layout, slideType, designStyle)
			}
		}
	}
}

func TestEmit_Deterministic(t *testing.T) {
	style := sampleStyle()
	first := Emit(style, models.LayoutGrid, models.SlideData, models.StyleTech)
	second := Emit(style, models.LayoutGrid, models.SlideData, models.StyleTech)

	assert.Equal(t, first, second)
}

func TestEmit_PaletteReachesCustomProperties(t *testing.T) {
	style := sampleStyle()
	style.Palette.Primary = "#123456"
	style.Palette.Accent = "#abcdef"

	spec := Emit(style, models.LayoutCentered, models.SlideAgenda, models.StyleMinimal)

	assert.Contains(t, spec.CSS, "--color-primary: #123456;")
	assert.Contains(t, spec.CSS, "--color-accent: #abcdef;")
	assert.Contains(t, spec.CSS, "--font-heading: 'Space Grotesk', sans-serif;")
	assert.Contains(t, spec.CSS, "--spacing-unit: 1rem;")
}

func TestEmit_OneVariantBlockOrNone(t *testing.T) {
	style := sampleStyle()
	testCases := []struct {
		designStyle models.DesignStyle
		marker      string
	}{
		{models.StyleCorporate, ".slide.style-corporate"},
		{models.StylePlayful, ".slide.style-playful"},
		{models.StyleInnovative, ".slide.style-modern"},
		{models.StyleTech, ".slide.style-modern"},
		{models.StyleElegant, ""},
		{models.StyleMinimal, ""},
	}

	markers := []string{".slide.style-corporate", ".slide.style-playful", ".slide.style-modern"}
	for _, tc := range testCases {
		t.Run(string(tc.designStyle), func(t *testing.T) {
			spec := Emit(style, models.LayoutGrid, models.SlideMarket, tc.designStyle)
			for _, marker := range markers {
				if marker == tc.marker {
					assert.Contains(t, spec.CSS, marker)
				} else {
					assert.NotContains(t, spec.CSS, marker)
				}
			}
		})
	}
}

func TestEmit_LayoutBlockMatchesLayoutOnly(t *testing.T) {
	style := sampleStyle()
	spec := Emit(style, models.LayoutSplit, models.SlideSolution, models.StyleCorporate)

	assert.Contains(t, spec.CSS, ".slide.layout-split")
	assert.NotContains(t, spec.CSS, ".slide.layout-grid")
	assert.NotContains(t, spec.CSS, ".slide.layout-centered")
}

func TestBuildDecorations_Rules(t *testing.T) {
	style := sampleStyle()

	t.Run("tech emits two rectangles", func(t *testing.T) {
		decor := Emit(style, models.LayoutGrid, models.SlideData, models.StyleTech).Decorations
		require.GreaterOrEqual(t, len(decor), 2)
		assert.Equal(t, models.ElementRect, decor[0].Kind)
		assert.Equal(t, models.ElementRect, decor[1].Kind)
	})

	t.Run("innovative emits two rectangles", func(t *testing.T) {
		decor := Emit(style, models.LayoutGrid, models.SlideData, models.StyleInnovative).Decorations
		require.GreaterOrEqual(t, len(decor), 2)
		assert.Equal(t, models.ElementRect, decor[0].Kind)
		assert.Equal(t, models.ElementRect, decor[1].Kind)
	})

	t.Run("playful emits two circles", func(t *testing.T) {
		decor := Emit(style, models.LayoutGrid, models.SlideData, models.StylePlayful).Decorations
		require.GreaterOrEqual(t, len(decor), 2)
		assert.Equal(t, models.ElementCircle, decor[0].Kind)
		assert.Equal(t, models.ElementCircle, decor[1].Kind)
	})

	t.Run("shapes flag emits one top bar", func(t *testing.T) {
		flat := style
		flat.Elements = models.DesignElements{Shapes: true}
		decor := Emit(flat, models.LayoutGrid, models.SlideData, models.StyleCorporate).Decorations
		require.Len(t, decor, 1)
		assert.Equal(t, models.ElementBar, decor[0].Kind)
		assert.Equal(t, "100%", decor[0].Width)
	})

	t.Run("gradient appended after branch shapes", func(t *testing.T) {
		decor := Emit(style, models.LayoutGrid, models.SlideData, models.StyleTech).Decorations
		require.Len(t, decor, 3)
		assert.Equal(t, models.ElementCornerGradient, decor[2].Kind)
	})

	t.Run("no flags no variant emits nothing", func(t *testing.T) {
		bare := style
		bare.Elements = models.DesignElements{}
		decor := Emit(bare, models.LayoutGrid, models.SlideData, models.StyleCorporate).Decorations
		assert.Empty(t, decor)
	})
}

func TestAuditCSS_ReturnsDeclaredProperties(t *testing.T) {
	css := `.slide { --color-primary: #111; --font-body: 'Inter', sans-serif; }
.slide h1 { color: var(--color-primary); }`

	props, err := AuditCSS(css)

	require.NoError(t, err)
	assert.Equal(t, []string{"--color-primary", "--font-body"}, props)
}

func TestMissingProperties_FlagsAbsentDeclarations(t *testing.T) {
	css := `.slide { --color-primary: #111; }`

	missing, err := MissingProperties(css)

	require.NoError(t, err)
	assert.Contains(t, missing, "--color-accent")
	assert.NotContains(t, missing, "--color-primary")
	assert.True(t, strings.HasPrefix(missing[0], "--"))
}
