package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const openAIVendor = "openai"

// OpenAIProvider talks to the OpenAI chat completions API (or a compatible endpoint).
type OpenAIProvider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewOpenAIProvider creates the OpenAI adapter.
func NewOpenAIProvider(baseURL, apiKey, model string, timeout time.Duration, log zerolog.Logger) *OpenAIProvider {
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "openai_provider").Logger(),
	}
}

type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			Refusal string `json:"refusal,omitempty"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type openAIErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Info reports vendor, model and endpoint.
func (p *OpenAIProvider) Info() Info {
	return Info{Vendor: openAIVendor, Model: p.model, Endpoint: p.baseURL}
}

// Complete sends the exchange to /v1/chat/completions and returns the first choice.
func (p *OpenAIProvider) Complete(ctx context.Context, exchange *Exchange) (*Completion, error) {
	if err := validateExchange(exchange); err != nil {
		return nil, err
	}
	messages := exchange.Messages()

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(chatCompletionRequest{Model: p.model, Messages: messages}); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/chat/completions", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.Error().Err(err).Str("model", p.model).Msg("completion request failed")
		return nil, &Error{Kind: ErrProviderUnavailable, Vendor: openAIVendor, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrProviderUnavailable, Vendor: openAIVendor, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		var body openAIErrorBody
		if json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
			msg = body.Error.Message
		}
		p.log.Error().
			Int("status", resp.StatusCode).
			Str("model", p.model).
			Msg("completion rejected by vendor")
		return nil, &Error{Kind: classifyStatus(resp.StatusCode), Vendor: openAIVendor, StatusCode: resp.StatusCode, Message: msg}
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &Error{Kind: ErrProviderUnavailable, Vendor: openAIVendor, Message: fmt.Sprintf("decode response: %v", err)}
	}
	if len(out.Choices) == 0 {
		return nil, &Error{Kind: ErrProviderUnavailable, Vendor: openAIVendor, Message: "response contained no choices"}
	}

	choice := out.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, &Error{Kind: ErrProviderRejected, Vendor: openAIVendor, Message: "model refused: " + choice.Message.Refusal}
	}
	if choice.FinishReason == "content_filter" {
		return nil, &Error{Kind: ErrProviderRejected, Vendor: openAIVendor, Message: "response blocked by content filter"}
	}

	p.log.Debug().
		Str("model", p.model).
		Int("messages", len(messages)).
		Dur("latency", time.Since(start)).
		Msg("completion received")

	return &Completion{Text: choice.Message.Content, Exchange: messages}, nil
}
