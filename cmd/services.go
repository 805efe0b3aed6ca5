package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spigell/resume-matcher/internal/ai"
	"github.com/spigell/resume-matcher/internal/ai/gemini"
	"github.com/spigell/resume-matcher/internal/ai/ollama"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/scoring"
	"github.com/spigell/resume-matcher/internal/secrets"
	"github.com/spigell/resume-matcher/internal/summary"
	"github.com/spigell/resume-matcher/internal/summary/cache"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// services holds the process-wide model clients. They are built on first
// use and shared by every command invocation afterwards.
type services struct {
	config *Config
	logger *zap.Logger

	providerOnce sync.Once
	provider     ai.Provider
	providerErr  error
}

// setup builds the logger and loads the config the way every command needs.
func setup() *services {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.AI == nil {
		logger.Fatal("config is required")
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redactConfig(config), "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return &services{config: config, logger: logger}
}

func redactConfig(config *Config) Config {
	redacted := *config
	if config.AI != nil {
		aiCfg := *config.AI
		if aiCfg.Gemini != nil && aiCfg.Gemini.APIKey != "" {
			g := *aiCfg.Gemini
			g.APIKey = "***"
			aiCfg.Gemini = &g
		}
		if aiCfg.Ollama != nil && aiCfg.Ollama.Token != "" {
			o := *aiCfg.Ollama
			o.Token = "***"
			aiCfg.Ollama = &o
		}
		redacted.AI = &aiCfg
	}
	return redacted
}

func (s *services) aiProvider(ctx context.Context) (ai.Provider, error) {
	s.providerOnce.Do(func() {
		s.provider, s.providerErr = newProvider(ctx, s.config.AI, s.logger)
		if s.providerErr == nil {
			s.logger.Debug("ai provider ready",
				zap.String("provider", s.provider.Name()),
				zap.String("model", s.provider.Model()),
				zap.String("embedding_model", s.provider.EmbeddingModel()),
			)
		}
	})
	return s.provider, s.providerErr
}

func newProvider(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Provider, error) {
	switch strings.TrimSpace(strings.ToLower(cfg.Provider)) {
	case "", "gemini":
		if cfg.Gemini == nil {
			return nil, fmt.Errorf("gemini configuration is required")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name:  "gemini api key",
			File:  cfg.Gemini.APIKeyFile,
			Value: cfg.Gemini.APIKey,
			Env:   "GEMINI_API_KEY",
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
		}

		genLogger := logger.WithCommonFields(log, "gemini", cfg.Gemini.Model).With(
			zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
		)

		provider, err := gemini.NewProvider(ctx, gemini.Config{
			APIKey:         apiKey,
			Model:          cfg.Gemini.Model,
			EmbeddingModel: cfg.Gemini.EmbeddingModel,
			MaxRetries:     cfg.Gemini.MaxRetries,
		}, genLogger)
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "ollama":
		if cfg.Ollama == nil {
			return nil, fmt.Errorf("ollama configuration is required")
		}

		token, err := secrets.Optional(secrets.Source{
			Name:  "ollama token",
			File:  cfg.Ollama.TokenFile,
			Value: cfg.Ollama.Token,
			Env:   "OLLAMA_API_KEY",
		})
		if err != nil {
			return nil, err
		}

		return ollama.New(ollama.Config{
			BaseURL:        cfg.Ollama.BaseURL,
			Model:          cfg.Ollama.Model,
			EmbeddingModel: cfg.Ollama.EmbeddingModel,
			Token:          token,
		}, nil), nil
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}

func (s *services) scorer(ctx context.Context) (*scoring.Scorer, error) {
	provider, err := s.aiProvider(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.WithCommonFields(s.logger, provider.Name(), provider.Model())
	generator := ai.WithTimeout(provider, s.config.AI.RequestTimeout)

	return scoring.NewScorer(provider, generator, log, s.config.AI.MaxLogLength), nil
}

func (s *services) summaryPipeline(ctx context.Context) (*summary.Pipeline, error) {
	provider, err := s.aiProvider(ctx)
	if err != nil {
		return nil, err
	}

	store, err := s.summaryStore(ctx)
	if err != nil {
		return nil, err
	}

	cfg := summary.Config{MaxLogLength: s.config.AI.MaxLogLength}
	if s.config.Summary != nil {
		cfg.BatchSize = s.config.Summary.BatchSize
		cfg.MaxResumeChars = s.config.Summary.MaxResumeChars
	}

	log := logger.WithCommonFields(s.logger, provider.Name(), provider.Model())
	generator := ai.WithTimeout(provider, s.config.AI.RequestTimeout)

	return summary.New(generator, store, cfg, log), nil
}

func (s *services) summaryStore(ctx context.Context) (cache.Store, error) {
	cfg := s.config.Cache
	if cfg == nil {
		return cache.NewFileStore(""), nil
	}

	switch strings.TrimSpace(strings.ToLower(cfg.Backend)) {
	case "", "file":
		return cache.NewFileStore(cfg.Dir), nil
	case "redis":
		if cfg.Redis == nil {
			return nil, fmt.Errorf("redis configuration is required for the redis cache backend")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return cache.NewRedisStore(ctx, client, cfg.Redis.Prefix)
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}
