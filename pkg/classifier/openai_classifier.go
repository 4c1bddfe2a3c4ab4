package classifier

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"bragi/internal/costtracker"
	"bragi/internal/extract"
	"bragi/internal/models"
)

// ChatCompletionClient is the minimal OpenAI surface the classifier needs.
type ChatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClassifier classifies deck content through an OpenAI-compatible
// chat-completion endpoint.
type OpenAIClassifier struct {
	client         ChatCompletionClient
	model          string
	promptTemplate string
	maxSentences   int

	tracker costtracker.Tracker
}

// NewOpenAIClassifier creates the OpenAI-backed classifier. A nil tracker
// disables usage recording.
func NewOpenAIClassifier(client ChatCompletionClient, model, promptTemplate string, maxSentences int, tracker costtracker.Tracker) *OpenAIClassifier {
	if promptTemplate == "" {
		promptTemplate = DefaultPromptTemplate
	}
	if maxSentences <= 0 {
		maxSentences = extract.DefaultMaxSentences
	}
	return &OpenAIClassifier{
		client:         client,
		model:          model,
		promptTemplate: promptTemplate,
		maxSentences:   maxSentences,
		tracker:        tracker,
	}
}

func (c *OpenAIClassifier) Name() string { return "openai" }

func (c *OpenAIClassifier) Classify(ctx context.Context, deckID uuid.UUID, payload models.ContentPayload) (models.ContentAnalysis, error) {
	if c.client == nil {
		return models.ContentAnalysis{}, fmt.Errorf("openai classifier is not initialized with a client")
	}

	prompt, err := renderPrompt(c.promptTemplate, extract.ClampForPrompt(payload, c.maxSentences))
	if err != nil {
		return models.ContentAnalysis{}, err
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return models.ContentAnalysis{}, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.ContentAnalysis{}, fmt.Errorf("no choices returned from OpenAI")
	}

	analysis, err := parseAnalysis(resp.Choices[0].Message.Content)
	if err != nil {
		return models.ContentAnalysis{}, err
	}
	analysis.Source = c.Name()

	if c.tracker != nil && resp.Usage.TotalTokens > 0 {
		event := costtracker.UsageEvent{
			Provider:     c.Name(),
			Model:        c.model,
			DeckID:       deckID,
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		}
		if err := c.tracker.RecordUsage(ctx, event); err != nil {
			log.Errorf("Failed to record classifier usage for deck %s: %v", deckID, err)
		}
	}

	return analysis, nil
}

var _ ContentClassifier = (*OpenAIClassifier)(nil)
