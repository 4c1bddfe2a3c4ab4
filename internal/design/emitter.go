// Package design turns a resolved slide style into a generated stylesheet
// and a decorative-element list. Emission is pure template substitution over
// the style values; no I/O, no randomness.
package design

import (
	"fmt"
	"strings"

	"bragi/internal/models"
)

// Emit renders the complete design spec for one slide. Total: every input
// combination produces non-empty CSS, because the custom-property and base
// blocks are always present even when no layout, slide-type or variant
// block matches.
func Emit(style models.SlideStyle, layout models.Layout, slideType models.SlideType, designStyle models.DesignStyle) models.DesignSpec {
	var b strings.Builder

	writeCustomProperties(&b, style)
	b.WriteString(baseRules)
	if block := layoutBlock(layout); block != "" {
		b.WriteString(block)
	}
	if block := slideTypeBlock(slideType); block != "" {
		b.WriteString(block)
	}
	if block := variantBlock(designStyle); block != "" {
		b.WriteString(block)
	}

	return models.DesignSpec{
		Style:       style,
		Layout:      layout,
		CSS:         b.String(),
		Decorations: buildDecorations(style, designStyle),
	}
}

// Renderer-facing custom properties. Every emitted stylesheet declares all
// of these on .slide.
var RequiredProperties = []string{
	"--color-primary",
	"--color-secondary",
	"--color-accent",
	"--color-background",
	"--color-text",
	"--color-highlight-1",
	"--color-highlight-2",
	"--color-highlight-3",
	"--font-heading",
	"--font-body",
	"--spacing-unit",
}

func writeCustomProperties(b *strings.Builder, style models.SlideStyle) {
	p := style.Palette
	fmt.Fprintf(b, `.slide {
  --color-primary: %s;
  --color-secondary: %s;
  --color-accent: %s;
  --color-background: %s;
  --color-text: %s;
  --color-highlight-1: %s;
  --color-highlight-2: %s;
  --color-highlight-3: %s;
  --font-heading: '%s', sans-serif;
  --font-body: '%s', sans-serif;
  --spacing-unit: %s;
}
`, p.Primary, p.Secondary, p.Accent, p.Background, p.Text,
		p.Highlights[0], p.Highlights[1], p.Highlights[2],
		style.Fonts.Heading, style.Fonts.Body, spacingUnit(style.Spacing))
}

// spacingUnit maps the spacing enum to the base rem unit all paddings and
// gaps derive from. Unknown values get the comfortable unit.
func spacingUnit(spacing models.Spacing) string {
	switch spacing {
	case models.SpacingCompact:
		return "0.75rem"
	case models.SpacingSpacious:
		return "1.5rem"
	default:
		return "1rem"
	}
}

const baseRules = `.slide {
  background-color: var(--color-background);
  color: var(--color-text);
  font-family: var(--font-body);
  line-height: 1.55;
  padding: calc(var(--spacing-unit) * 2.5);
}
.slide h1, .slide h2, .slide h3 {
  font-family: var(--font-heading);
  color: var(--color-primary);
  line-height: 1.15;
  margin-bottom: var(--spacing-unit);
}
.slide .slide-headline {
  font-size: 2.4em;
  font-weight: 700;
}
.slide p {
  margin-bottom: calc(var(--spacing-unit) * 0.75);
  max-width: 62ch;
}
.slide ul {
  padding-left: calc(var(--spacing-unit) * 1.5);
}
.slide li {
  margin-bottom: calc(var(--spacing-unit) * 0.5);
}
.slide li::marker {
  color: var(--color-accent);
}
.slide a {
  color: var(--color-accent);
}
`

func layoutBlock(layout models.Layout) string {
	switch layout {
	case models.LayoutFullWidthImage:
		return `.slide.layout-full-width-image {
  position: relative;
  padding: 0;
}
.slide.layout-full-width-image .slide-media {
  position: absolute;
  inset: 0;
  z-index: 0;
}
.slide.layout-full-width-image .slide-body {
  position: relative;
  z-index: 1;
  padding: calc(var(--spacing-unit) * 3);
  background: linear-gradient(transparent 35%, var(--color-background));
  min-height: 100%;
  display: flex;
  flex-direction: column;
  justify-content: flex-end;
}
`
	case models.LayoutGrid:
		return `.slide.layout-grid .slide-body {
  display: grid;
  grid-template-columns: repeat(2, minmax(0, 1fr));
  gap: calc(var(--spacing-unit) * 1.5);
  align-items: start;
}
.slide.layout-grid .slide-cell {
  background-color: var(--color-background);
  border: 1px solid var(--color-secondary);
  border-radius: 8px;
  padding: var(--spacing-unit);
}
`
	case models.LayoutImageTop:
		return `.slide.layout-image-top .slide-media {
  width: 100%;
  height: 42%;
  object-fit: cover;
  margin-bottom: var(--spacing-unit);
}
`
	case models.LayoutImageLeft:
		return `.slide.layout-image-left .slide-body {
  display: flex;
  flex-direction: row;
  gap: calc(var(--spacing-unit) * 2);
}
.slide.layout-image-left .slide-media {
  flex: 0 0 40%;
  object-fit: cover;
}
`
	case models.LayoutImageRight:
		return `.slide.layout-image-right .slide-body {
  display: flex;
  flex-direction: row-reverse;
  gap: calc(var(--spacing-unit) * 2);
}
.slide.layout-image-right .slide-media {
  flex: 0 0 40%;
  object-fit: cover;
}
`
	case models.LayoutSplit:
		return `.slide.layout-split .slide-body {
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: calc(var(--spacing-unit) * 2);
  align-items: center;
  height: 100%;
}
`
	case models.LayoutCentered:
		return `.slide.layout-centered .slide-body {
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  text-align: center;
  height: 100%;
}
.slide.layout-centered p {
  margin-left: auto;
  margin-right: auto;
}
`
	case models.LayoutTimeline:
		return `.slide.layout-timeline .slide-body {
  display: flex;
  flex-direction: row;
  gap: var(--spacing-unit);
  align-items: flex-start;
}
.slide.layout-timeline .slide-step {
  flex: 1;
  border-top: 3px solid var(--color-accent);
  padding-top: var(--spacing-unit);
}
`
	}
	return ""
}

func slideTypeBlock(slideType models.SlideType) string {
	switch slideType {
	case models.SlideCover:
		return `.slide.type-cover .slide-headline {
  font-size: 3.2em;
  letter-spacing: -0.02em;
}
.slide.type-cover .slide-subtitle {
  color: var(--color-secondary);
  font-size: 1.3em;
}
`
	case models.SlideData:
		return `.slide.type-data .slide-figure {
  font-family: var(--font-heading);
  font-size: 2.6em;
  color: var(--color-accent);
}
.slide.type-data table {
  width: 100%;
  border-collapse: collapse;
}
.slide.type-data td, .slide.type-data th {
  border-bottom: 1px solid var(--color-secondary);
  padding: calc(var(--spacing-unit) * 0.5);
}
`
	case models.SlideFinancials:
		return `.slide.type-financials .slide-figure {
  font-family: var(--font-heading);
  font-size: 2.6em;
  color: var(--color-primary);
}
.slide.type-financials .slide-caption {
  color: var(--color-secondary);
  font-size: 0.85em;
  text-transform: uppercase;
  letter-spacing: 0.08em;
}
`
	case models.SlideTeam:
		return `.slide.type-team .slide-portrait {
  border-radius: 50%;
  width: 96px;
  height: 96px;
  object-fit: cover;
  border: 3px solid var(--color-accent);
}
.slide.type-team .slide-role {
  color: var(--color-secondary);
  font-size: 0.9em;
}
`
	case models.SlideClosing:
		return `.slide.type-closing .slide-headline {
  font-size: 2.8em;
  color: var(--color-accent);
}
`
	}
	return ""
}

// variantBlock appends the style-variant overrides. Innovative and tech share
// one block; elegant and minimal rely on the base rules alone.
func variantBlock(designStyle models.DesignStyle) string {
	switch designStyle {
	case models.StyleCorporate:
		return `.slide.style-corporate h1, .slide.style-corporate h2 {
  text-transform: none;
  border-bottom: 2px solid var(--color-secondary);
  padding-bottom: calc(var(--spacing-unit) * 0.5);
}
`
	case models.StylePlayful:
		return `.slide.style-playful h1, .slide.style-playful h2 {
  color: var(--color-accent);
}
.slide.style-playful {
  background-color: var(--color-background);
  border-radius: 16px;
}
`
	case models.StyleInnovative, models.StyleTech:
		return `.slide.style-modern h1, .slide.style-modern h2 {
  color: var(--color-text);
}
.slide.style-modern .slide-headline {
  background: linear-gradient(90deg, var(--color-primary), var(--color-accent));
  -webkit-background-clip: text;
  background-clip: text;
  color: transparent;
}
`
	}
	return ""
}
