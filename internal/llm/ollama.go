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

const ollamaVendor = "ollama"

// OllamaProvider talks to a local Ollama server through /api/chat.
type OllamaProvider struct {
	baseURL string
	model   string
	client  *http.Client
	log     zerolog.Logger
}

// NewOllamaProvider creates the Ollama adapter.
func NewOllamaProvider(baseURL, model string, timeout time.Duration, log zerolog.Logger) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.2"
	}
	return &OllamaProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "ollama_provider").Logger(),
	}
}

// ollamaChatRequest is the Ollama chat API request.
type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// ollamaChatResponse is the non-streaming Ollama chat API response.
type ollamaChatResponse struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	Done  bool   `json:"done"`
	Error string `json:"error,omitempty"`
}

// Info reports vendor, model and endpoint.
func (a *OllamaProvider) Info() Info {
	return Info{Vendor: ollamaVendor, Model: a.model, Endpoint: a.baseURL}
}

// Complete sends the exchange with streaming disabled and returns the assistant message.
func (a *OllamaProvider) Complete(ctx context.Context, exchange *Exchange) (*Completion, error) {
	if err := validateExchange(exchange); err != nil {
		return nil, err
	}
	messages := exchange.Messages()

	jsonData, err := json.Marshal(ollamaChatRequest{Model: a.model, Messages: messages, Stream: false})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/chat", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Error().Err(err).Str("model", a.model).Msg("calling Ollama failed")
		return nil, &Error{Kind: ErrProviderUnavailable, Vendor: ollamaVendor, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrProviderUnavailable, Vendor: ollamaVendor, Message: fmt.Sprintf("reading response: %v", err)}
	}

	var out ollamaChatResponse
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(raw))
		if decodeErr == nil && out.Error != "" {
			msg = out.Error
		}
		a.log.Error().Int("status", resp.StatusCode).Str("model", a.model).Msg("Ollama returned an error")
		return nil, &Error{Kind: classifyStatus(resp.StatusCode), Vendor: ollamaVendor, StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, &Error{Kind: ErrProviderUnavailable, Vendor: ollamaVendor, Message: fmt.Sprintf("decoding response: %v", decodeErr)}
	}
	if out.Error != "" {
		return nil, &Error{Kind: ErrProviderRejected, Vendor: ollamaVendor, Message: out.Error}
	}

	a.log.Debug().
		Str("model", a.model).
		Int("messages", len(messages)).
		Dur("latency", time.Since(start)).
		Msg("completion received")

	return &Completion{Text: out.Message.Content, Exchange: messages}, nil
}
