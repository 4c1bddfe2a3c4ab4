package models

// DesignElements flags which decorative treatments an industry guide allows.
type DesignElements struct {
	Shapes    bool `json:"shapes"`
	Gradients bool `json:"gradients"`
	Icons     bool `json:"icons"`
	Shadows   bool `json:"shadows"`
}

type FontPairing struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type ColorPalette struct {
	Primary    string    `json:"primary"`
	Secondary  string    `json:"secondary"`
	Accent     string    `json:"accent"`
	Background string    `json:"background"`
	Text       string    `json:"text"`
	Highlights [3]string `json:"highlights"`
}

// IndustryStyleGuide is the static design vocabulary for one industry.
// Guides are immutable after init; lookups for unknown industries resolve to
// the default guide rather than failing.
type IndustryStyleGuide struct {
	ColorThemes []Theme        `json:"colorThemes"`
	Layouts     []Layout       `json:"layouts"`
	Elements    DesignElements `json:"designElements"`
	ImageStyles []ImageStyle   `json:"imageStyles"`
}

// ThemeStyle is the full styling preset for one named theme.
type ThemeStyle struct {
	Fonts         FontPairing    `json:"fonts"`
	Palette       ColorPalette   `json:"palette"`
	Spacing       Spacing        `json:"spacing"`
	ImageStyle    ImageStyle     `json:"imageStyle"`
	Elements      DesignElements `json:"designElements"`
	BrandPosition string         `json:"brandPosition"`
}

// SlideStyle is the resolved visual identity applied to one slide. Unlike
// ThemeStyle it may carry a palette synthesized from classifier color
// suggestions rather than copied from a preset.
type SlideStyle struct {
	Theme      Theme          `json:"theme"`
	Palette    ColorPalette   `json:"palette"`
	Fonts      FontPairing    `json:"fonts"`
	Spacing    Spacing        `json:"spacing"`
	ImageStyle ImageStyle     `json:"imageStyle"`
	Elements   DesignElements `json:"designElements"`
}

// ElementPosition holds CSS inset offsets for an absolutely positioned
// decoration. Empty fields are omitted from the rendered output.
type ElementPosition struct {
	Top    string `json:"top,omitempty"`
	Right  string `json:"right,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Left   string `json:"left,omitempty"`
}

type ElementKind string

const (
	ElementRect           ElementKind = "rect"
	ElementCircle         ElementKind = "circle"
	ElementBar            ElementKind = "bar"
	ElementCornerGradient ElementKind = "corner-gradient"
)

// DecorativeElement is one renderer-positioned accent shape.
type DecorativeElement struct {
	Kind     ElementKind     `json:"kind"`
	Position ElementPosition `json:"position"`
	Width    string          `json:"width"`
	Height   string          `json:"height"`
	Color    string          `json:"color"`
	Opacity  float64         `json:"opacity"`
	ZIndex   int             `json:"zIndex"`
}

// DesignSpec is the complete generated design for a single slide. Specs are
// recomputed on every styling pass and never cached.
type DesignSpec struct {
	Style       SlideStyle          `json:"style"`
	Layout      Layout              `json:"layout"`
	CSS         string              `json:"css"`
	Decorations []DecorativeElement `json:"decorativeElements"`
}
