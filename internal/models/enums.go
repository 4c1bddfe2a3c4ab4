package models

import "strings"

/*
Typed string enums for the styling domain. Every Parse* helper maps unknown
input onto a documented fallback instead of failing, so malformed remote
responses degrade to defaults rather than errors.
*/

type Industry string

const (
	IndustryTechnology Industry = "technology"
	IndustryHealthcare Industry = "healthcare"
	IndustryFinance    Industry = "finance"
	IndustryEducation  Industry = "education"
	IndustryEcommerce  Industry = "ecommerce"
	IndustryCreative   Industry = "creative"
	IndustryDefault    Industry = "default"
)

// ParseIndustry maps s onto a known industry. Unrecognized values fall back
// to IndustryDefault.
func ParseIndustry(s string) Industry {
	switch v := Industry(strings.ToLower(strings.TrimSpace(s))); v {
	case IndustryTechnology, IndustryHealthcare, IndustryFinance,
		IndustryEducation, IndustryEcommerce, IndustryCreative, IndustryDefault:
		return v
	}
	return IndustryDefault
}

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCreative     Tone = "creative"
	ToneTechnical    Tone = "technical"
	ToneFriendly     Tone = "friendly"
	ToneLuxurious    Tone = "luxurious"
	ToneModern       Tone = "modern"
	ToneTraditional  Tone = "traditional"
)

// ParseTone falls back to ToneProfessional for unrecognized values.
func ParseTone(s string) Tone {
	switch v := Tone(strings.ToLower(strings.TrimSpace(s))); v {
	case ToneProfessional, ToneCreative, ToneTechnical, ToneFriendly,
		ToneLuxurious, ToneModern, ToneTraditional:
		return v
	}
	return ToneProfessional
}

type DesignStyle string

const (
	StyleCorporate  DesignStyle = "corporate"
	StylePlayful    DesignStyle = "playful"
	StyleInnovative DesignStyle = "innovative"
	StyleTech       DesignStyle = "tech"
	StyleElegant    DesignStyle = "elegant"
	StyleMinimal    DesignStyle = "minimal"
)

// ParseDesignStyle falls back to StyleCorporate for unrecognized values.
func ParseDesignStyle(s string) DesignStyle {
	switch v := DesignStyle(strings.ToLower(strings.TrimSpace(s))); v {
	case StyleCorporate, StylePlayful, StyleInnovative, StyleTech,
		StyleElegant, StyleMinimal:
		return v
	}
	return StyleCorporate
}

type Theme string

const (
	ThemeMidnight  Theme = "midnight"
	ThemeOcean     Theme = "ocean"
	ThemeSlate     Theme = "slate"
	ThemeForest    Theme = "forest"
	ThemeMint      Theme = "mint"
	ThemeRoyal     Theme = "royal"
	ThemeSandstone Theme = "sandstone"
	ThemeSunrise   Theme = "sunrise"
	ThemeCoral     Theme = "coral"
	ThemeLavender  Theme = "lavender"
	ThemeCharcoal  Theme = "charcoal"
	ThemePaper     Theme = "paper"
)

// ParseTheme reports whether s names a known theme.
func ParseTheme(s string) (Theme, bool) {
	switch v := Theme(strings.ToLower(strings.TrimSpace(s))); v {
	case ThemeMidnight, ThemeOcean, ThemeSlate, ThemeForest, ThemeMint,
		ThemeRoyal, ThemeSandstone, ThemeSunrise, ThemeCoral, ThemeLavender,
		ThemeCharcoal, ThemePaper:
		return v, true
	}
	return "", false
}

type Layout string

const (
	LayoutFullWidthImage Layout = "full-width-image"
	LayoutGrid           Layout = "grid"
	LayoutImageTop       Layout = "image-top"
	LayoutImageLeft      Layout = "image-left"
	LayoutImageRight     Layout = "image-right"
	LayoutSplit          Layout = "split"
	LayoutCentered       Layout = "centered"
	LayoutTimeline       Layout = "timeline"
)

// ParseLayout reports whether s names a known layout. Callers drop unknown
// layouts rather than substituting one, since the effective default depends
// on the industry guide.
func ParseLayout(s string) (Layout, bool) {
	switch v := Layout(strings.ToLower(strings.TrimSpace(s))); v {
	case LayoutFullWidthImage, LayoutGrid, LayoutImageTop, LayoutImageLeft,
		LayoutImageRight, LayoutSplit, LayoutCentered, LayoutTimeline:
		return v, true
	}
	return "", false
}

type SlideType string

const (
	SlideCover      SlideType = "cover"
	SlideAgenda     SlideType = "agenda"
	SlideProblem    SlideType = "problem"
	SlideSolution   SlideType = "solution"
	SlideMarket     SlideType = "market"
	SlideProduct    SlideType = "product"
	SlideTeam       SlideType = "team"
	SlideFinancials SlideType = "financials"
	SlideData       SlideType = "data"
	SlideRoadmap    SlideType = "roadmap"
	SlideClosing    SlideType = "closing"
)

// ParseSlideType reports whether s names a known slide type.
func ParseSlideType(s string) (SlideType, bool) {
	switch v := SlideType(strings.ToLower(strings.TrimSpace(s))); v {
	case SlideCover, SlideAgenda, SlideProblem, SlideSolution, SlideMarket,
		SlideProduct, SlideTeam, SlideFinancials, SlideData, SlideRoadmap,
		SlideClosing:
		return v, true
	}
	return "", false
}

type Spacing string

const (
	SpacingCompact     Spacing = "compact"
	SpacingComfortable Spacing = "comfortable"
	SpacingSpacious    Spacing = "spacious"
)

type ImageStyle string

const (
	ImagePhotography  ImageStyle = "photography"
	ImageIllustration ImageStyle = "illustration"
	ImageAbstract     ImageStyle = "abstract"
	ImageIconographic ImageStyle = "iconographic"
)

// StylingStatus tracks per-deck progress through a styling pass. It lives in
// memory only and resets when the process exits.
type StylingStatus string

const (
	StylingNotStarted StylingStatus = "not_started"
	StylingInProgress StylingStatus = "in_progress"
	StylingComplete   StylingStatus = "complete"
)
