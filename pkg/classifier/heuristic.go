package classifier

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"

	"bragi/internal/models"
	"bragi/internal/styles"
)

// HeuristicClassifier is the local deterministic fallback. It derives the
// analysis from token statistics alone: no randomness, no clock, no I/O, so
// identical payloads produce byte-identical analyses on every call and
// across process restarts.
type HeuristicClassifier struct{}

func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{}
}

func (h *HeuristicClassifier) Name() string { return "heuristic" }

func (h *HeuristicClassifier) Classify(_ context.Context, _ uuid.UUID, payload models.ContentPayload) (models.ContentAnalysis, error) {
	tokens := tokenize(payload.FlatText())
	industry := matchIndustry(tokens)
	tone, style := styles.VoiceFor(industry)

	return models.ContentAnalysis{
		Industry:         industry,
		BusinessTone:     tone,
		KeyThemes:        rankThemes(tokens),
		ColorSuggestions: suggestColors(industry),
		RecommendedStyle: style,
		Source:           h.Name(),
	}, nil
}

var nonWord = regexp.MustCompile(`\W+`)

// tokenize lowercases the flattened text, splits on non-word boundaries and
// drops short tokens and stop words. Token order is document order.
func tokenize(text string) []string {
	var kept []string
	for _, tok := range nonWord.Split(strings.ToLower(text), -1) {
		if len(tok) <= 3 || stopWords[tok] {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// rankThemes orders tokens by frequency descending, breaking ties by first
// occurrence. The top ten are theme candidates; the top three surface in
// the result.
func rankThemes(tokens []string) []string {
	type stat struct {
		token string
		count int
		first int
	}
	index := make(map[string]*stat, len(tokens))
	var ranked []*stat
	for i, tok := range tokens {
		if s, ok := index[tok]; ok {
			s.count++
			continue
		}
		s := &stat{token: tok, count: 1, first: i}
		index[tok] = s
		ranked = append(ranked, s)
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].count != ranked[b].count {
			return ranked[a].count > ranked[b].count
		}
		return ranked[a].first < ranked[b].first
	})

	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	limit := 3
	if len(ranked) < limit {
		limit = len(ranked)
	}
	if limit == 0 {
		return nil
	}
	themes := make([]string, 0, limit)
	for _, s := range ranked[:limit] {
		themes = append(themes, s.token)
	}
	return themes
}

// matchIndustry tests token membership against the keyword sets in priority
// order; the first industry any token hits wins.
func matchIndustry(tokens []string) models.Industry {
	for _, industry := range industryOrder {
		set := industryKeywords[industry]
		for _, tok := range tokens {
			if set[tok] {
				return industry
			}
		}
	}
	return models.IndustryDefault
}

// suggestColors resolves the industry guide's color themes through each
// theme's primary color, in table order.
func suggestColors(industry models.Industry) []string {
	guide := styles.GuideFor(industry)
	colors := make([]string, 0, 3)
	for _, theme := range guide.ColorThemes {
		if len(colors) == 3 {
			break
		}
		colors = append(colors, styles.ThemeFor(theme).Palette.Primary)
	}
	return colors
}

var industryOrder = []models.Industry{
	models.IndustryTechnology,
	models.IndustryHealthcare,
	models.IndustryFinance,
	models.IndustryEducation,
}

var industryKeywords = map[models.Industry]map[string]bool{
	models.IndustryTechnology: {
		"software": true, "platform": true, "technology": true, "digital": true,
		"cloud": true, "saas": true, "algorithm": true, "algorithms": true,
		"automation": true, "automated": true, "developer": true, "developers": true,
		"computing": true, "infrastructure": true, "machine": true,
		"intelligence": true, "artificial": true, "analytics": true,
		"cybersecurity": true, "blockchain": true, "database": true,
		"devops": true, "integration": true, "mobile": true,
	},
	models.IndustryHealthcare: {
		"health": true, "healthcare": true, "medical": true, "medicine": true,
		"patient": true, "patients": true, "clinical": true, "clinic": true,
		"clinics": true, "hospital": true, "hospitals": true, "doctor": true,
		"doctors": true, "wellness": true, "therapy": true, "therapeutics": true,
		"pharma": true, "pharmaceutical": true, "diagnosis": true,
		"diagnostics": true, "treatment": true, "telemedicine": true,
		"biotech": true,
	},
	models.IndustryFinance: {
		"finance": true, "financial": true, "banking": true, "bank": true,
		"banks": true, "investment": true, "investments": true, "investor": true,
		"investors": true, "capital": true, "trading": true, "payments": true,
		"payment": true, "lending": true, "wealth": true, "insurance": true,
		"fintech": true, "portfolio": true, "credit": true, "loans": true,
		"assets": true, "equity": true, "funds": true,
	},
	models.IndustryEducation: {
		"education": true, "educational": true, "learning": true, "learners": true,
		"students": true, "student": true, "school": true, "schools": true,
		"teacher": true, "teachers": true, "teaching": true, "curriculum": true,
		"classroom": true, "classrooms": true, "tutoring": true, "training": true,
		"courses": true, "university": true, "universities": true,
		"academic": true, "literacy": true,
	},
}

var stopWords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "against": true,
	"almost": true, "along": true, "already": true, "also": true,
	"although": true, "always": true, "among": true, "around": true,
	"because": true, "been": true, "before": true, "being": true, "below": true,
	"between": true, "both": true, "cannot": true, "could": true, "does": true,
	"doing": true, "down": true, "during": true, "each": true, "either": true,
	"else": true, "even": true, "ever": true, "every": true, "from": true,
	"further": true, "have": true, "having": true, "here": true, "into": true,
	"itself": true, "just": true, "like": true, "made": true, "make": true,
	"many": true, "more": true, "most": true, "much": true, "must": true,
	"never": true, "only": true, "onto": true, "other": true, "others": true,
	"over": true, "same": true, "shall": true, "should": true, "since": true,
	"some": true, "such": true, "than": true, "that": true, "their": true,
	"theirs": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "thus": true,
	"under": true, "until": true, "upon": true, "very": true, "want": true,
	"well": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "will": true, "with": true, "within": true,
	"without": true, "would": true, "your": true, "yours": true,
}

var _ ContentClassifier = (*HeuristicClassifier)(nil)
