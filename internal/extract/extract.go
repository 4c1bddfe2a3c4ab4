// Package extract reduces a deck's free text into the canonical payload both
// classification paths operate on. Extraction is pure and never fails:
// missing or malformed fields degrade to empty values.
package extract

import (
	"encoding/json"
	"strings"

	"github.com/neurosnap/sentences"
	"golang.org/x/net/html"

	"bragi/internal/models"
)

// DefaultMaxSentences bounds paragraph length in prompts sent to remote
// classifiers. The local heuristic always sees the unclamped payload.
const DefaultMaxSentences = 4

// BuildPayload flattens a deck into a ContentPayload. Slide content is an
// opaque wizard-owned JSON document; only its recognized text fields are
// read, and rich-text markup is stripped to plain text.
func BuildPayload(deck *models.Deck) models.ContentPayload {
	payload := models.ContentPayload{}
	if deck == nil {
		return payload
	}
	payload.Title = stripMarkup(deck.Title)
	payload.Slides = make([]models.SlidePayload, 0, len(deck.Slides))

	for _, slide := range deck.Slides {
		var fields map[string]interface{}
		if len(slide.Content) > 0 {
			// Non-object content is ignored, not an error.
			_ = json.Unmarshal(slide.Content, &fields)
		}

		sp := models.SlidePayload{
			Type:     slide.Type,
			Title:    stripMarkup(textField(fields, "title")),
			Headline: stripMarkup(textField(fields, "headline", "subtitle")),
		}
		for _, p := range listField(fields, "paragraphs", "body", "text") {
			if cleaned := stripMarkup(p); cleaned != "" {
				sp.Paragraphs = append(sp.Paragraphs, cleaned)
			}
		}
		for _, b := range listField(fields, "bullets", "bullet_points") {
			if cleaned := stripMarkup(b); cleaned != "" {
				sp.Bullets = append(sp.Bullets, cleaned)
			}
		}
		payload.Slides = append(payload.Slides, sp)
	}
	return payload
}

// ClampForPrompt returns a copy of the payload with every paragraph cut to
// at most maxSentences sentences. Used only on the remote classification
// path, so clamping can never change offline results. maxSentences <= 0
// returns the payload unchanged.
func ClampForPrompt(payload models.ContentPayload, maxSentences int) models.ContentPayload {
	if maxSentences <= 0 {
		return payload
	}
	tokenizer := sentences.NewSentenceTokenizer(nil)

	out := payload
	out.Slides = make([]models.SlidePayload, len(payload.Slides))
	for i, slide := range payload.Slides {
		out.Slides[i] = slide
		if len(slide.Paragraphs) == 0 {
			continue
		}
		clamped := make([]string, len(slide.Paragraphs))
		for j, para := range slide.Paragraphs {
			clamped[j] = clampSentences(tokenizer, para, maxSentences)
		}
		out.Slides[i].Paragraphs = clamped
	}
	return out
}

func clampSentences(tokenizer *sentences.DefaultSentenceTokenizer, text string, max int) string {
	sents := tokenizer.Tokenize(text)
	if len(sents) <= max {
		return text
	}
	kept := make([]string, 0, max)
	for _, s := range sents[:max] {
		if t := strings.TrimSpace(s.Text); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, " ")
}

// textField returns the first non-empty string value among keys.
func textField(fields map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := fields[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// listField collects string values from the first of keys that is present,
// accepting either a single string or an array of strings.
func listField(fields map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		switch v := fields[key].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return []string{v}
			}
		case []interface{}:
			var out []string
			for _, item := range v {
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// stripMarkup flattens an HTML fragment to its text content with collapsed
// whitespace. Plain text (no '<') passes through with whitespace collapsed
// only, so wizard text without markup is untouched beyond trimming.
func stripMarkup(s string) string {
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "<") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(sb.String()), " ")
}
