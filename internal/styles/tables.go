// Package styles holds the static design vocabulary of the styling engine:
// per-industry style guides, per-tone font pairings, per-theme presets and
// per-style default palettes. All tables are immutable after init; accessors
// resolve unknown keys to documented defaults and never fail.
package styles

import "bragi/internal/models"

// IndustryGuides maps each classifiable industry to its design vocabulary.
// Every industry the classifier can emit has an entry; anything else resolves
// to the default guide.
var IndustryGuides = map[models.Industry]models.IndustryStyleGuide{
	models.IndustryTechnology: {
		ColorThemes: []models.Theme{models.ThemeMidnight, models.ThemeSlate, models.ThemeCharcoal},
		Layouts:     []models.Layout{models.LayoutSplit, models.LayoutGrid, models.LayoutTimeline},
		Elements:    models.DesignElements{Shapes: true, Gradients: true, Icons: true, Shadows: true},
		ImageStyles: []models.ImageStyle{models.ImageAbstract, models.ImageIconographic},
	},
	models.IndustryHealthcare: {
		ColorThemes: []models.Theme{models.ThemeOcean, models.ThemeMint, models.ThemePaper},
		Layouts:     []models.Layout{models.LayoutCentered, models.LayoutImageRight, models.LayoutGrid},
		Elements:    models.DesignElements{Shapes: false, Gradients: false, Icons: true, Shadows: false},
		ImageStyles: []models.ImageStyle{models.ImagePhotography, models.ImageIllustration},
	},
	models.IndustryFinance: {
		ColorThemes: []models.Theme{models.ThemeMidnight, models.ThemeForest, models.ThemeCharcoal},
		Layouts:     []models.Layout{models.LayoutGrid, models.LayoutCentered, models.LayoutSplit},
		Elements:    models.DesignElements{Shapes: true, Gradients: false, Icons: false, Shadows: true},
		ImageStyles: []models.ImageStyle{models.ImagePhotography},
	},
	models.IndustryEducation: {
		ColorThemes: []models.Theme{models.ThemeSunrise, models.ThemeMint, models.ThemeLavender},
		Layouts:     []models.Layout{models.LayoutImageTop, models.LayoutGrid, models.LayoutCentered},
		Elements:    models.DesignElements{Shapes: true, Gradients: true, Icons: true, Shadows: false},
		ImageStyles: []models.ImageStyle{models.ImageIllustration, models.ImageIconographic},
	},
	models.IndustryEcommerce: {
		ColorThemes: []models.Theme{models.ThemeCoral, models.ThemeSunrise, models.ThemeOcean},
		Layouts:     []models.Layout{models.LayoutImageLeft, models.LayoutGrid, models.LayoutSplit},
		Elements:    models.DesignElements{Shapes: true, Gradients: true, Icons: true, Shadows: true},
		ImageStyles: []models.ImageStyle{models.ImagePhotography, models.ImageIllustration},
	},
	models.IndustryCreative: {
		ColorThemes: []models.Theme{models.ThemeLavender, models.ThemeCoral, models.ThemeRoyal},
		Layouts:     []models.Layout{models.LayoutSplit, models.LayoutFullWidthImage, models.LayoutTimeline},
		Elements:    models.DesignElements{Shapes: true, Gradients: true, Icons: false, Shadows: false},
		ImageStyles: []models.ImageStyle{models.ImageAbstract, models.ImageIllustration},
	},
	models.IndustryDefault: {
		ColorThemes: []models.Theme{models.ThemeSlate, models.ThemePaper, models.ThemeOcean},
		Layouts:     []models.Layout{models.LayoutCentered, models.LayoutImageTop, models.LayoutGrid},
		Elements:    models.DesignElements{Shapes: true, Gradients: false, Icons: false, Shadows: false},
		ImageStyles: []models.ImageStyle{models.ImagePhotography},
	},
}

// ToneFonts maps a business tone to its heading/body pairing. Unknown tones
// resolve to the professional pairing.
var ToneFonts = map[models.Tone]models.FontPairing{
	models.ToneProfessional: {Heading: "Inter", Body: "Source Sans Pro"},
	models.ToneCreative:     {Heading: "Playfair Display", Body: "Lato"},
	models.ToneTechnical:    {Heading: "Space Grotesk", Body: "IBM Plex Sans"},
	models.ToneFriendly:     {Heading: "Nunito", Body: "Open Sans"},
	models.ToneLuxurious:    {Heading: "Cormorant Garamond", Body: "Montserrat"},
	models.ToneModern:       {Heading: "Poppins", Body: "Work Sans"},
	models.ToneTraditional:  {Heading: "Libre Baskerville", Body: "Lora"},
}

// ThemeStyles is the full preset for each named theme.
var ThemeStyles = map[models.Theme]models.ThemeStyle{
	models.ThemeMidnight: {
		Fonts: models.FontPairing{Heading: "Inter", Body: "Source Sans Pro"},
		Palette: models.ColorPalette{
			Primary: "#1a2238", Secondary: "#9daaf2", Accent: "#ff6a3d",
			Background: "#f4f4f6", Text: "#1a2238",
			Highlights: [3]string{"#ff6a3d", "#9daaf2", "#f4db7d"},
		},
		Spacing: models.SpacingComfortable, ImageStyle: models.ImagePhotography,
		Elements:      models.DesignElements{Shapes: true, Gradients: true, Icons: true, Shadows: true},
		BrandPosition: "bottom-left",
	},
	models.ThemeOcean: {
		Fonts: models.FontPairing{Heading: "Poppins", Body: "Open Sans"},
		Palette: models.ColorPalette{
			Primary: "#0a6ebd", Secondary: "#5fc9f3", Accent: "#fec93c",
			Background: "#f2f9ff", Text: "#0b2239",
			Highlights: [3]string{"#5fc9f3", "#fec93c", "#0a6ebd"},
		},
		Spacing: models.SpacingComfortable, ImageStyle: models.ImagePhotography,
		Elements:      models.DesignElements{Shapes: false, Gradients: true, Icons: true, Shadows: false},
		BrandPosition: "bottom-right",
	},
	models.ThemeSlate: {
		Fonts: models.FontPairing{Heading: "Space Grotesk", Body: "IBM Plex Sans"},
		Palette: models.ColorPalette{
			Primary: "#334155", Secondary: "#64748b", Accent: "#38bdf8",
			Background: "#f8fafc", Text: "#0f172a",
			Highlights: [3]string{"#38bdf8", "#94a3b8", "#e2e8f0"},
		},
		Spacing: models.SpacingCompact, ImageStyle: models.ImageIconographic,
		Elements:      models.DesignElements{Shapes: true, Gradients: false, Icons: true, Shadows: true},
		BrandPosition: "bottom-left",
	},
	models.ThemeForest: {
		Fonts: models.FontPairing{Heading: "Merriweather", Body: "Source Sans Pro"},
		Palette: models.ColorPalette{
			Primary: "#1b4332", Secondary: "#40916c", Accent: "#d8f3dc",
			Background: "#f6fff8", Text: "#081c15",
			Highlights: [3]string{"#40916c", "#95d5b2", "#d8f3dc"},
		},
		Spacing: models.SpacingSpacious, ImageStyle: models.ImagePhotography,
		Elements:      models.DesignElements{Shapes: true, Gradients: false, Icons: false, Shadows: false},
		BrandPosition: "bottom-left",
	},
	models.ThemeMint: {
		Fonts: models.FontPairing{Heading: "Nunito", Body: "Open Sans"},
		Palette: models.ColorPalette{
			Primary: "#0c7b6c", Secondary: "#5eead4", Accent: "#f59e0b",
			Background: "#f0fdfa", Text: "#134e4a",
			Highlights: [3]string{"#5eead4", "#f59e0b", "#99f6e4"},
		},
		Spacing: models.SpacingComfortable, ImageStyle: models.ImageIllustration,
		Elements:      models.DesignElements{Shapes: true, Gradients: true, Icons: true, Shadows: false},
		BrandPosition: "bottom-right",
	},
	models.ThemeRoyal: {
		Fonts: models.FontPairing{Heading: "Cormorant Garamond", Body: "Montserrat"},
		Palette: models.ColorPalette{
			Primary: "#3c096c", Secondary: "#7b2cbf", Accent: "#e0aaff",
			Background: "#faf5ff", Text: "#240046",
			Highlights: [3]string{"#e0aaff", "#9d4edd", "#c77dff"},
		},
		Spacing: models.SpacingSpacious, ImageStyle: models.ImageAbstract,
		Elements:      models.DesignElements{Shapes: false, Gradients: true, Icons: false, Shadows: true},
		BrandPosition: "bottom-center",
	},
	models.ThemeSandstone: {
		Fonts: models.FontPairing{Heading: "Libre Baskerville", Body: "Lora"},
		Palette: models.ColorPalette{
			Primary: "#8a5a44", Secondary: "#c8977f", Accent: "#eab464",
			Background: "#fdf8f2", Text: "#3d2c23",
			Highlights: [3]string{"#eab464", "#c8977f", "#f2d0a9"},
		},
		Spacing: models.SpacingComfortable, ImageStyle: models.ImagePhotography,
		Elements:      models.DesignElements{Shapes: false, Gradients: false, Icons: false, Shadows: false},
		BrandPosition: "bottom-left",
	},
	models.ThemeSunrise: {
		Fonts: models.FontPairing{Heading: "Poppins", Body: "Lato"},
		Palette: models.ColorPalette{
			Primary: "#d1495b", Secondary: "#ff9e44", Accent: "#ffd166",
			Background: "#fff8f0", Text: "#432818",
			Highlights: [3]string{"#ff9e44", "#ffd166", "#f77f00"},
		},
		Spacing: models.SpacingSpacious, ImageStyle: models.ImageIllustration,
		Elements:      models.DesignElements{Shapes: true, Gradients: true, Icons: true, Shadows: false},
		BrandPosition: "top-left",
	},
	models.ThemeCoral: {
		Fonts: models.FontPairing{Heading: "Quicksand", Body: "Open Sans"},
		Palette: models.ColorPalette{
			Primary: "#ef6351", Secondary: "#f38375", Accent: "#38a3a5",
			Background: "#fff5f3", Text: "#40241f",
			Highlights: [3]string{"#38a3a5", "#f38375", "#ffc2b4"},
		},
		Spacing: models.SpacingComfortable, ImageStyle: models.ImageIllustration,
		Elements:      models.DesignElements{Shapes: true, Gradients: true, Icons: true, Shadows: false},
		BrandPosition: "bottom-right",
	},
	models.ThemeLavender: {
		Fonts: models.FontPairing{Heading: "Playfair Display", Body: "Lato"},
		Palette: models.ColorPalette{
			Primary: "#6c63ff", Secondary: "#a5a1ff", Accent: "#ffb3c6",
			Background: "#f7f7ff", Text: "#2b2a4a",
			Highlights: [3]string{"#ffb3c6", "#a5a1ff", "#8d86ff"},
		},
		Spacing: models.SpacingSpacious, ImageStyle: models.ImageAbstract,
		Elements:      models.DesignElements{Shapes: true, Gradients: true, Icons: false, Shadows: true},
		BrandPosition: "bottom-center",
	},
	models.ThemeCharcoal: {
		Fonts: models.FontPairing{Heading: "Inter", Body: "IBM Plex Sans"},
		Palette: models.ColorPalette{
			Primary: "#212529", Secondary: "#495057", Accent: "#20c997",
			Background: "#f8f9fa", Text: "#111315",
			Highlights: [3]string{"#20c997", "#6c757d", "#adb5bd"},
		},
		Spacing: models.SpacingCompact, ImageStyle: models.ImageIconographic,
		Elements:      models.DesignElements{Shapes: true, Gradients: false, Icons: true, Shadows: true},
		BrandPosition: "bottom-left",
	},
	models.ThemePaper: {
		Fonts: models.FontPairing{Heading: "Merriweather", Body: "Source Sans Pro"},
		Palette: models.ColorPalette{
			Primary: "#5d5a53", Secondary: "#8f8b80", Accent: "#c0a062",
			Background: "#fbfaf7", Text: "#33312c",
			Highlights: [3]string{"#c0a062", "#8f8b80", "#d9d4c5"},
		},
		Spacing: models.SpacingSpacious, ImageStyle: models.ImagePhotography,
		Elements:      models.DesignElements{Shapes: false, Gradients: false, Icons: false, Shadows: false},
		BrandPosition: "bottom-left",
	},
}

// stylePalettes supplies the default palette slots for each design style.
// The resolver overlays classifier color suggestions onto the first three
// slots; everything not supplied comes from here, so no slot is ever empty.
var stylePalettes = map[models.DesignStyle]models.ColorPalette{
	models.StyleCorporate: {
		Primary: "#1d3557", Secondary: "#457b9d", Accent: "#e63946",
		Background: "#f1faee", Text: "#14213d",
		Highlights: [3]string{"#457b9d", "#a8dadc", "#e63946"},
	},
	models.StylePlayful: {
		Primary: "#ff6b6b", Secondary: "#4ecdc4", Accent: "#ffe66d",
		Background: "#fffdf7", Text: "#2f2d2e",
		Highlights: [3]string{"#4ecdc4", "#ffe66d", "#ff8fab"},
	},
	models.StyleInnovative: {
		Primary: "#5a189a", Secondary: "#7b2cbf", Accent: "#00f5d4",
		Background: "#f8f7ff", Text: "#10002b",
		Highlights: [3]string{"#00f5d4", "#9d4edd", "#f72585"},
	},
	models.StyleTech: {
		Primary: "#0f172a", Secondary: "#1e40af", Accent: "#22d3ee",
		Background: "#f8fafc", Text: "#020617",
		Highlights: [3]string{"#22d3ee", "#60a5fa", "#a5f3fc"},
	},
	models.StyleElegant: {
		Primary: "#3c2f2f", Secondary: "#854d27", Accent: "#dd7230",
		Background: "#fbf6f0", Text: "#2a2020",
		Highlights: [3]string{"#dd7230", "#b08968", "#e6ccb2"},
	},
	models.StyleMinimal: {
		Primary: "#18181b", Secondary: "#52525b", Accent: "#a1a1aa",
		Background: "#fafafa", Text: "#09090b",
		Highlights: [3]string{"#a1a1aa", "#d4d4d8", "#71717a"},
	},
}

// industryVoices fixes the tone and recommended style the local heuristic
// derives from an industry match. The remote model chooses its own.
var industryVoices = map[models.Industry]struct {
	Tone  models.Tone
	Style models.DesignStyle
}{
	models.IndustryTechnology: {models.ToneTechnical, models.StyleTech},
	models.IndustryHealthcare: {models.ToneProfessional, models.StyleCorporate},
	models.IndustryFinance:    {models.ToneProfessional, models.StyleCorporate},
	models.IndustryEducation:  {models.ToneFriendly, models.StylePlayful},
	models.IndustryEcommerce:  {models.ToneModern, models.StyleInnovative},
	models.IndustryCreative:   {models.ToneCreative, models.StylePlayful},
	models.IndustryDefault:    {models.ToneProfessional, models.StyleCorporate},
}

// GuideFor returns the style guide for an industry, or the default guide
// when the industry has no entry.
func GuideFor(industry models.Industry) models.IndustryStyleGuide {
	if g, ok := IndustryGuides[industry]; ok {
		return g
	}
	return IndustryGuides[models.IndustryDefault]
}

// FontsFor returns the font pairing for a tone, or the professional pairing
// when the tone has no entry.
func FontsFor(tone models.Tone) models.FontPairing {
	if f, ok := ToneFonts[tone]; ok {
		return f
	}
	return ToneFonts[models.ToneProfessional]
}

// ThemeFor returns the preset for a theme. Unknown themes resolve to the
// first theme of the default industry guide.
func ThemeFor(theme models.Theme) models.ThemeStyle {
	if t, ok := ThemeStyles[theme]; ok {
		return t
	}
	return ThemeStyles[IndustryGuides[models.IndustryDefault].ColorThemes[0]]
}

// PaletteFor returns the default palette for a design style, falling back to
// the corporate palette.
func PaletteFor(style models.DesignStyle) models.ColorPalette {
	if p, ok := stylePalettes[style]; ok {
		return p
	}
	return stylePalettes[models.StyleCorporate]
}

// VoiceFor returns the tone and recommended style fixed for an industry.
func VoiceFor(industry models.Industry) (models.Tone, models.DesignStyle) {
	v, ok := industryVoices[industry]
	if !ok {
		v = industryVoices[models.IndustryDefault]
	}
	return v.Tone, v.Style
}
