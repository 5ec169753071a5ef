package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lumenlearn/lesson-engine/internal/config"
	"github.com/lumenlearn/lesson-engine/internal/generation"
	"github.com/lumenlearn/lesson-engine/internal/platform/gemini"
	"github.com/lumenlearn/lesson-engine/internal/platform/groq"
	"github.com/lumenlearn/lesson-engine/internal/platform/mistral"
	"github.com/lumenlearn/lesson-engine/internal/platform/openrouter"
	"github.com/lumenlearn/lesson-engine/internal/platform/piped"
	"github.com/lumenlearn/lesson-engine/internal/platform/rediscache"
	"github.com/lumenlearn/lesson-engine/internal/platform/youtube"
	"github.com/lumenlearn/lesson-engine/internal/service"
	"github.com/lumenlearn/lesson-engine/internal/video"
)

// application holds the wired component graph for the server process.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	orchestrator  *generation.Orchestrator
	lessonService *service.LessonService
	redisClient   *redis.Client // nil when caching is disabled
}

// newApplication wires providers, video backends, the cache, and the lesson
// service from configuration. Providers without credentials are still
// registered; the orchestrator skips them at call time, so adding a key is a
// restart away from taking effect.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	orchestrator := generation.NewOrchestrator(appLogger,
		gemini.New(appLogger, cfg.LLM.GeminiAPIKey, cfg.LLM.GeminiModel),
		groq.New(appLogger, cfg.LLM.GroqAPIKey, cfg.LLM.GroqModel),
		mistral.New(appLogger, cfg.LLM.MistralAPIKey, cfg.LLM.MistralModel),
		openrouter.New(appLogger, cfg.LLM.OpenRouterAPIKey, cfg.LLM.OpenRouterModel),
	)

	ranker := video.NewRanker(appLogger)
	primary := youtube.New(appLogger, cfg.Video.YouTubeAPIKey, ranker, cfg.Video.QualityThreshold)
	fallback := piped.New(appLogger, cfg.Video.PipedBaseURL)

	var resultCache video.ResultCache
	var redisClient *redis.Client
	if cfg.Cache.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		redisClient = redis.NewClient(opts)

		cache, err := rediscache.New(redisClient,
			time.Duration(cfg.Cache.TTLMinutes)*time.Minute, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create video cache: %w", err)
		}
		resultCache = cache
	}

	finder := video.NewFallbackService(primary, fallback, resultCache, appLogger)

	lessonService, err := service.NewLessonService(orchestrator, finder, cfg.Video.MaxResults, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson service: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        appLogger,
		orchestrator:  orchestrator,
		lessonService: lessonService,
		redisClient:   redisClient,
	}, nil
}

// cleanup releases provider clients and the cache connection. Safe to call
// more than once.
func (app *application) cleanup() {
	app.orchestrator.Cleanup()
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Warn("redis close failed", "error", err)
		}
		app.redisClient = nil
	}
}
