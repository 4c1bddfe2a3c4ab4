package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"bragi/internal/config"
	"bragi/internal/costtracker"
	"bragi/internal/services"
	"bragi/internal/store"
	"bragi/internal/store/memory"
	"bragi/internal/store/primary"
	"bragi/pkg/classifier"
)

// App wires configuration, stores, the classifier chain and the styling
// service together for the CLI, the HTTP server and the worker.
type App struct {
	Config *config.Config

	DeckStore  store.DeckStore
	UsageStore store.UsageStore
	JobStore   store.JobStore
	JobClient  store.JobClient

	Tracker        costtracker.Tracker
	Classifier     classifier.ContentClassifier
	StylingService *services.StylingService

	// primaryStore is retained for shutdown; nil when the memory store is
	// in use.
	primaryStore *primary.StoreImpl
	gemini       *classifier.GeminiClassifier
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{Config: cfg}

	if err := app.initStores(ctx); err != nil {
		return nil, err
	}
	if err := app.initTracker(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	if err := app.initJobClient(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	if err := app.initClassifier(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	app.initStylingService()

	log.Debug("Application initialization complete.")
	return app, nil
}

// --- Private Helper Methods ---

func (a *App) initStores(ctx context.Context) error {
	dsn := a.Config.Database.Primary.DSN
	if dsn == "" {
		log.Info("No database DSN configured, using in-memory deck store")
		mem := memory.NewStore()
		a.DeckStore = mem
		a.UsageStore = mem
		a.JobStore = mem
		return nil
	}

	ps, err := primary.NewPrimaryStore(ctx, dsn)
	if err != nil {
		return fmt.Errorf("init primary store: %w", err)
	}
	a.primaryStore = ps
	a.DeckStore = ps
	a.UsageStore = ps
	a.JobStore = ps
	return nil
}

func (a *App) initTracker() error {
	a.Tracker = costtracker.NewStoreTracker(a.UsageStore)
	return nil
}

func (a *App) initJobClient() error {
	jc, err := store.NewAsynqJobClient(a.Config.Redis.Address, a.JobStore)
	if err != nil {
		return fmt.Errorf("init job client: %w", err)
	}
	a.JobClient = jc
	return nil
}

func (a *App) initClassifier() error {
	cfg := a.Config.Classifier

	promptTemplate := classifier.DefaultPromptTemplate
	if cfg.PromptTemplate != "" {
		loaded, err := config.LoadPromptContent(cfg.PromptTemplate, "classify.txt")
		if err != nil {
			log.Warnf("Failed to load classifier prompt: %v. Falling back to the built-in template.", err)
		} else {
			promptTemplate = loaded
		}
	}

	var providers []classifier.ContentClassifier
	switch cfg.Provider {
	case "", "none":
		log.Info("No remote classifier configured; decks will be styled by the local heuristic")
	case "openai":
		providers = append(providers, a.newOpenAIClassifier(promptTemplate))
	case "gemini":
		gemini, err := a.newGeminiClassifier(promptTemplate)
		if err != nil {
			return err
		}
		providers = append(providers, gemini)
	case "both":
		providers = append(providers, a.newOpenAIClassifier(promptTemplate))
		gemini, err := a.newGeminiClassifier(promptTemplate)
		if err != nil {
			return err
		}
		providers = append(providers, gemini)
	default:
		return fmt.Errorf("unknown classifier provider configured: %s", cfg.Provider)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	a.Classifier = classifier.NewFallbackClassifier(providers, timeout, a.Tracker)
	return nil
}

func (a *App) newOpenAIClassifier(promptTemplate string) *classifier.OpenAIClassifier {
	cfg := a.Config.Classifier
	client := openai.NewClient(cfg.OpenaiApiKey)
	log.Infof("OpenAI classifier initialized with model %s", cfg.Model)
	return classifier.NewOpenAIClassifier(client, cfg.Model, promptTemplate, cfg.MaxSentences, a.Tracker)
}

func (a *App) newGeminiClassifier(promptTemplate string) (*classifier.GeminiClassifier, error) {
	cfg := a.Config.Classifier
	gemini, err := classifier.NewGeminiClassifier(cfg.GeminiApiKey, cfg.GeminiModelName, promptTemplate, cfg.MaxSentences, a.Tracker)
	if err != nil {
		return nil, fmt.Errorf("init gemini classifier: %w", err)
	}
	a.gemini = gemini
	return gemini, nil
}

func (a *App) initStylingService() {
	a.StylingService = services.NewStylingService(services.StylingServiceDeps{
		DeckStore:        a.DeckStore,
		Classifier:       a.Classifier,
		SlideConcurrency: a.Config.Styling.SlideConcurrency,
	})
}

// Close releases held connections. Safe to call after partial init.
func (a *App) Close() {
	a.cleanupPartialInit()
}

func (a *App) cleanupPartialInit() {
	if a.JobClient != nil {
		if err := a.JobClient.Close(); err != nil {
			log.Errorf("Error closing job client: %v", err)
		}
		a.JobClient = nil
	}
	if a.gemini != nil {
		if err := a.gemini.Close(); err != nil {
			log.Errorf("Error closing Gemini client: %v", err)
		}
		a.gemini = nil
	}
	if a.primaryStore != nil {
		a.primaryStore.Close()
		a.primaryStore = nil
	}
}
