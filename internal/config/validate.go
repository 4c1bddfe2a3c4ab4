package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	// Classifier config
	switch c.Classifier.Provider {
	case "", "none", "openai", "gemini", "both":
	default:
		return fmt.Errorf("classifier.provider '%s' is not one of none, openai, gemini, both", c.Classifier.Provider)
	}
	if c.Classifier.Provider == "openai" || c.Classifier.Provider == "both" {
		if c.Classifier.OpenaiApiKey == "" {
			return errors.New("classifier.openai_api_key is required when classifier.provider includes openai")
		}
		if c.Classifier.Model == "" {
			return errors.New("classifier.model is required when classifier.provider includes openai")
		}
	}
	// The Gemini key may arrive late through GEMINI_API_KEY; a missing key
	// only disables that provider, so it is not validated here.
	if c.Classifier.TimeoutSeconds <= 0 {
		return errors.New("classifier.timeout_seconds must be a positive integer")
	}
	if c.Classifier.MaxSentences <= 0 {
		return errors.New("classifier.max_sentences must be a positive integer")
	}

	// Styling config
	if c.Styling.SlideConcurrency <= 0 {
		return errors.New("styling.slide_concurrency must be a positive integer")
	}

	// Server config
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}

	// Worker config
	if c.Worker.Concurrency <= 0 {
		return errors.New("worker.concurrency must be a positive integer")
	}
	if len(c.Worker.Queues) == 0 {
		return errors.New("worker.queues must define at least one queue")
	}
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue '%s' must be positive", name)
		}
	}

	return nil
}
