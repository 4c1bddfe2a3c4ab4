package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Unknown values never error; they land on the documented defaults so a
// malformed remote verdict degrades instead of failing a styling pass.
func TestParseEnums_DocumentedFallbacks(t *testing.T) {
	assert.Equal(t, IndustryDefault, ParseIndustry("agriculture"))
	assert.Equal(t, ToneProfessional, ParseTone("aggressive"))
	assert.Equal(t, StyleCorporate, ParseDesignStyle("brutalist"))
}

func TestParseEnums_NormalizeCaseAndSpace(t *testing.T) {
	assert.Equal(t, IndustryHealthcare, ParseIndustry("  Healthcare "))
	assert.Equal(t, ToneLuxurious, ParseTone("LUXURIOUS"))
	assert.Equal(t, StyleMinimal, ParseDesignStyle("Minimal"))

	theme, ok := ParseTheme(" Midnight ")
	assert.True(t, ok)
	assert.Equal(t, ThemeMidnight, theme)
}

// The ok-returning parsers reject instead of defaulting: their callers drop
// unknown values rather than substitute.
func TestParseEnums_RejectingParsers(t *testing.T) {
	_, ok := ParseTheme("neon")
	assert.False(t, ok)

	layout, ok := ParseLayout("full-width-image")
	assert.True(t, ok)
	assert.Equal(t, LayoutFullWidthImage, layout)
	_, ok = ParseLayout("masonry")
	assert.False(t, ok)

	slideType, ok := ParseSlideType("financials")
	assert.True(t, ok)
	assert.Equal(t, SlideFinancials, slideType)
	_, ok = ParseSlideType("appendix")
	assert.False(t, ok)
}

func TestStylingStatusValues(t *testing.T) {
	assert.Equal(t, StylingStatus("not_started"), StylingNotStarted)
	assert.Equal(t, StylingStatus("in_progress"), StylingInProgress)
	assert.Equal(t, StylingStatus("complete"), StylingComplete)
}
