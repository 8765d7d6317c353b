package llm

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/config"
)

// New builds the single provider selected by cfg.Provider.
func New(cfg config.LLMConfig, log zerolog.Logger) (Provider, error) {
	switch cfg.Provider {
	case openAIVendor:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		return NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Timeout, log), nil
	case ollamaVendor:
		return NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.Timeout, log), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want openai or ollama)", cfg.Provider)
	}
}
