package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "API_KEY", "LLM_PROVIDER", "OPENAI_MODEL", "OLLAMA_BASE_URL", "LLM_TIMEOUT_SECONDS", "RATE_LIMIT_PER_MINUTE", "REDIS_URL", "OTEL_ENABLED", "OTEL_SAMPLER_RATIO"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.LLM.Provider)
	}
	if cfg.LLM.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q", cfg.LLM.OpenAIModel)
	}
	if cfg.LLM.OllamaBaseURL != "http://localhost:11434" {
		t.Errorf("OllamaBaseURL = %q", cfg.LLM.OllamaBaseURL)
	}
	if cfg.LLM.Timeout != 120*time.Second {
		t.Errorf("Timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.RateLimitPerMinute != 60 {
		t.Errorf("RateLimitPerMinute = %d", cfg.RateLimitPerMinute)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
	if cfg.Tracing.Enabled || cfg.Tracing.SampleRatio != 0.1 {
		t.Errorf("Tracing = %+v", cfg.Tracing)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_KEY", " secret ")
	t.Setenv("LLM_PROVIDER", "Ollama")
	t.Setenv("OLLAMA_BASE_URL", "http://ollama:11434/")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("OTEL_ENABLED", "yes")
	t.Setenv("OTEL_SAMPLER_RATIO", "3")

	cfg := Load()
	if cfg.APIKey != " secret " {
		t.Errorf("APIKey must be kept verbatim, got %q", cfg.APIKey)
	}
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("Provider = %q, want ollama", cfg.LLM.Provider)
	}
	if cfg.LLM.OllamaBaseURL != "http://ollama:11434" {
		t.Errorf("OllamaBaseURL = %q", cfg.LLM.OllamaBaseURL)
	}
	if cfg.RateLimitPerMinute != 60 {
		t.Errorf("invalid int should fall back, got %d", cfg.RateLimitPerMinute)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.SampleRatio != 1 {
		t.Errorf("Tracing = %+v", cfg.Tracing)
	}
}

func TestRateLimitKey(t *testing.T) {
	if got := CacheKey.RateLimitKey("10.0.0.1", 1700000000); got != "ratelimit:10.0.0.1:1700000000" {
		t.Errorf("RateLimitKey = %q", got)
	}
}
