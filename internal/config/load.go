package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults double as the key registry for AutomaticEnv: viper only
	// unmarshals keys it has seen.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.gemini_model", "")
	v.SetDefault("llm.groq_api_key", "")
	v.SetDefault("llm.groq_model", "")
	v.SetDefault("llm.mistral_api_key", "")
	v.SetDefault("llm.mistral_model", "")
	v.SetDefault("llm.openrouter_api_key", "")
	v.SetDefault("llm.openrouter_model", "")
	v.SetDefault("video.youtube_api_key", "")
	v.SetDefault("video.piped_base_url", "")
	v.SetDefault("video.max_results", 5)
	v.SetDefault("video.quality_threshold", 50.0)
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl_minutes", 15)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from env vars.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("LESSON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
