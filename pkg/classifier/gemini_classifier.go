package classifier

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"bragi/internal/costtracker"
	"bragi/internal/extract"
	"bragi/internal/models"
)

// GeminiClassifier classifies deck content through the Google Gemini API.
type GeminiClassifier struct {
	client         *genai.Client
	model          string
	promptTemplate string
	maxSentences   int

	tracker costtracker.Tracker
}

// NewGeminiClassifier creates the Gemini-backed classifier. A missing API
// key leaves the provider disabled rather than failing startup; a disabled
// provider errors on every Classify call so the chain skips past it.
func NewGeminiClassifier(apiKey, modelName, promptTemplate string, maxSentences int, tracker costtracker.Tracker) (*GeminiClassifier, error) {
	if promptTemplate == "" {
		promptTemplate = DefaultPromptTemplate
	}
	if maxSentences <= 0 {
		maxSentences = extract.DefaultMaxSentences
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Warn("Gemini API key not provided. Gemini classifier will be disabled.")
		return &GeminiClassifier{model: modelName, promptTemplate: promptTemplate, maxSentences: maxSentences, tracker: tracker}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	log.Infof("Gemini classifier initialized with model %s", modelName)

	return &GeminiClassifier{
		client:         client,
		model:          modelName,
		promptTemplate: promptTemplate,
		maxSentences:   maxSentences,
		tracker:        tracker,
	}, nil
}

func (c *GeminiClassifier) Name() string { return "gemini" }

func (c *GeminiClassifier) Classify(ctx context.Context, deckID uuid.UUID, payload models.ContentPayload) (models.ContentAnalysis, error) {
	if c.client == nil {
		return models.ContentAnalysis{}, fmt.Errorf("gemini classifier is not initialized (missing API key)")
	}

	prompt, err := renderPrompt(c.promptTemplate, extract.ClampForPrompt(payload, c.maxSentences))
	if err != nil {
		return models.ContentAnalysis{}, err
	}

	model := c.client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.ContentAnalysis{}, fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return models.ContentAnalysis{}, fmt.Errorf("no candidates returned from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	analysis, err := parseAnalysis(sb.String())
	if err != nil {
		return models.ContentAnalysis{}, err
	}
	analysis.Source = c.Name()

	if c.tracker != nil && resp.UsageMetadata != nil {
		event := costtracker.UsageEvent{
			Provider:     c.Name(),
			Model:        c.model,
			DeckID:       deckID,
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
		if err := c.tracker.RecordUsage(ctx, event); err != nil {
			log.Errorf("Failed to record classifier usage for deck %s: %v", deckID, err)
		}
	}

	return analysis, nil
}

// Close releases the underlying API client.
func (c *GeminiClassifier) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

var _ ContentClassifier = (*GeminiClassifier)(nil)
