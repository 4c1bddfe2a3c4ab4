package models

import "strings"

// ContentPayload is the flattened text of a deck, rebuilt from the live deck
// on every styling request and never persisted.
type ContentPayload struct {
	Title  string         `json:"title"`
	Slides []SlidePayload `json:"slides"`
}

type SlidePayload struct {
	Title      string    `json:"title,omitempty"`
	Type       SlideType `json:"type"`
	Headline   string    `json:"headline,omitempty"`
	Paragraphs []string  `json:"paragraphs,omitempty"`
	Bullets    []string  `json:"bullets,omitempty"`
}

// Empty reports whether the payload carries no usable text at all.
func (p ContentPayload) Empty() bool {
	if p.Title != "" {
		return false
	}
	for _, s := range p.Slides {
		if s.Title != "" || s.Headline != "" || len(s.Paragraphs) > 0 || len(s.Bullets) > 0 {
			return false
		}
	}
	return true
}

// FlatText concatenates every text field of the payload in document order,
// separated by single spaces. The local heuristic classifier depends on this
// ordering being stable.
func (p ContentPayload) FlatText() string {
	parts := make([]string, 0, 1+len(p.Slides)*4)
	if p.Title != "" {
		parts = append(parts, p.Title)
	}
	for _, s := range p.Slides {
		if s.Title != "" {
			parts = append(parts, s.Title)
		}
		if s.Headline != "" {
			parts = append(parts, s.Headline)
		}
		parts = append(parts, s.Paragraphs...)
		parts = append(parts, s.Bullets...)
	}
	return strings.Join(parts, " ")
}

// SlideOverride is a per-slide-type layout overlay attached to an analysis
// after classification. Overlays are never requested from the remote model.
type SlideOverride struct {
	Layout Layout `json:"layout"`
}

// ContentAnalysis is the classifier verdict for one deck. Immutable once
// produced; cached per deck id for the life of the process. The JSON field
// names follow the remote classification contract.
type ContentAnalysis struct {
	Industry         Industry                    `json:"industry"`
	BusinessTone     Tone                        `json:"businessTone"`
	KeyThemes        []string                    `json:"keyThemes"`
	ColorSuggestions []string                    `json:"colorSuggestions"`
	RecommendedStyle DesignStyle                 `json:"recommendedStyle"`
	SlideStyles      map[SlideType]SlideOverride `json:"slideSpecificStyles,omitempty"`

	// Source names the provider that produced the verdict ("openai",
	// "gemini", "heuristic"). Informational; not part of the remote contract.
	Source string `json:"source,omitempty"`
}
