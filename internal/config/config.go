package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Video  VideoConfig  `mapstructure:"video"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains credentials and model overrides for the generation
// providers. Every key is optional: a provider without a credential is
// simply skipped by the orchestrator, and the service starts as long as
// at least one is set at runtime.
type LLMConfig struct {
	GeminiAPIKey     string `mapstructure:"gemini_api_key"`
	GeminiModel      string `mapstructure:"gemini_model"`
	GroqAPIKey       string `mapstructure:"groq_api_key"`
	GroqModel        string `mapstructure:"groq_model"`
	MistralAPIKey    string `mapstructure:"mistral_api_key"`
	MistralModel     string `mapstructure:"mistral_model"`
	OpenRouterAPIKey string `mapstructure:"openrouter_api_key"`
	OpenRouterModel  string `mapstructure:"openrouter_model"`
}

// VideoConfig contains video discovery settings.
type VideoConfig struct {
	YouTubeAPIKey    string  `mapstructure:"youtube_api_key"`
	PipedBaseURL     string  `mapstructure:"piped_base_url"`
	MaxResults       int     `mapstructure:"max_results" validate:"gte=0,lte=50"`
	QualityThreshold float64 `mapstructure:"quality_threshold" validate:"gte=0,lte=100"`
}

// CacheConfig contains Redis settings for the video result cache. An empty
// URL disables caching.
type CacheConfig struct {
	RedisURL   string `mapstructure:"redis_url"`
	TTLMinutes int    `mapstructure:"ttl_minutes" validate:"gte=0"`
}
