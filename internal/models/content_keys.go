package models

/*
Reserved slide-content keys owned by the styling engine. ApplyStyling merges
these into each slide's content document and guarantees they are present with
stable types afterwards; every other key in the document belongs to the deck
wizard and is preserved verbatim.
*/

const (
	KeyColorTheme   = "color_theme"        // string, theme name
	KeyDesignStyle  = "design_style"       // string, style variant
	KeyFontStyle    = "font_style"         // string, heading font family
	KeyLayout       = "layout"             // string, layout name
	KeyCSS          = "css"                // string, generated stylesheet
	KeyDecorations  = "decorativeElements" // array of decoration objects
	KeyStyle        = "style"              // object, full resolved SlideStyle
	KeyIndustry     = "industry"           // string, classified industry
	KeyBusinessTone = "business_tone"      // string, classified tone
)
