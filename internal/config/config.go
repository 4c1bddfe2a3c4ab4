package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Primary struct {
			// DSN of the deck database. Empty selects the in-memory store,
			// which serves tests and DSN-less dev runs.
			DSN string
		}
	}

	Classifier struct {
		// Provider selects the remote chain ahead of the local heuristic:
		// "openai", "gemini", "both" or "none".
		Provider        string `mapstructure:"provider"`
		Model           string `mapstructure:"model"`
		OpenaiApiKey    string `mapstructure:"openai_api_key"`
		GeminiApiKey    string `mapstructure:"gemini_api_key"`
		GeminiModelName string `mapstructure:"gemini_model_name"`
		PromptTemplate  string `mapstructure:"prompt_template"` // Path to prompt template file
		TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
		MaxSentences    int    `mapstructure:"max_sentences"`
	}

	Styling struct {
		SlideConcurrency int `mapstructure:"slide_concurrency"`
	}

	Server struct {
		Address string `mapstructure:"address"`
	}

	Redis struct {
		Address  string
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	}
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	viper.SetDefault("classifier.provider", "none")
	viper.SetDefault("classifier.model", "gpt-4o-mini")
	viper.SetDefault("classifier.gemini_model_name", "gemini-1.5-flash")
	viper.SetDefault("classifier.timeout_seconds", 12)
	viper.SetDefault("classifier.max_sentences", 4)
	viper.SetDefault("styling.slide_concurrency", 4)
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("worker.concurrency", 5)
	viper.SetDefault("worker.queues", map[string]int{"styling": 10, "default": 1})

	// Allow Viper to read environment variables.
	viper.AutomaticEnv()

	// Explicitly bind the provider key environment variables so they work
	// without a prefix or naming convention.
	viper.BindEnv("classifier.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("classifier.gemini_api_key", "GEMINI_API_KEY")
	viper.BindEnv("database.primary.dsn", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; env vars and defaults may be enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}
