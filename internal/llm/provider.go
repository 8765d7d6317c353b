// Package llm is the completion provider port: it sends one ordered exchange of
// role-tagged messages to the configured vendor and returns one generated message.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Role tags a message in an exchange.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is a single role-tagged entry of an exchange.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Exchange is the ordered, append-only message sequence sent for one request.
// It is never shared between requests.
type Exchange struct {
	messages []Message
}

// NewExchange returns an empty exchange.
func NewExchange() *Exchange {
	return &Exchange{}
}

// System appends a system instruction and returns the exchange for chaining.
func (e *Exchange) System(content string) *Exchange {
	e.messages = append(e.messages, Message{Role: RoleSystem, Content: content})
	return e
}

// User appends a user message and returns the exchange for chaining.
func (e *Exchange) User(content string) *Exchange {
	e.messages = append(e.messages, Message{Role: RoleUser, Content: content})
	return e
}

// Messages returns a copy of the messages in order.
func (e *Exchange) Messages() []Message {
	if e == nil {
		return nil
	}
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// Len reports the number of messages.
func (e *Exchange) Len() int {
	if e == nil {
		return 0
	}
	return len(e.messages)
}

// Completion is the generated text together with the exchange that produced it.
type Completion struct {
	Text     string
	Exchange []Message
}

// Info describes the configured vendor for status reporting.
type Info struct {
	Vendor   string
	Model    string
	Endpoint string
}

// Provider generates one message for an exchange.
type Provider interface {
	Complete(ctx context.Context, exchange *Exchange) (*Completion, error)
	Info() Info
}

var (
	// ErrProviderUnavailable covers network, auth, timeout and vendor-side server failures.
	ErrProviderUnavailable = errors.New("completion provider unavailable")
	// ErrProviderRejected covers content, quota and malformed-request rejections.
	ErrProviderRejected = errors.New("completion provider rejected the request")
	// ErrEmptyExchange is returned when Complete is called without messages.
	ErrEmptyExchange = errors.New("exchange has no messages")
)

// Error is a classified provider failure. It unwraps to ErrProviderUnavailable
// or ErrProviderRejected.
type Error struct {
	Kind       error
	Vendor     string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s http %d: %s", e.Vendor, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Vendor, e.Message)
}

func (e *Error) Unwrap() error { return e.Kind }

// classifyStatus maps a vendor HTTP status to a failure kind.
// 400, 413, 422 and 429 are rejections; everything else is unavailability.
func classifyStatus(status int) error {
	switch status {
	case 400, 413, 422, 429:
		return ErrProviderRejected
	default:
		return ErrProviderUnavailable
	}
}

func validateExchange(exchange *Exchange) error {
	if exchange.Len() == 0 {
		return ErrEmptyExchange
	}
	for _, m := range exchange.messages {
		if m.Role != RoleSystem && m.Role != RoleUser {
			return fmt.Errorf("unsupported message role %q", m.Role)
		}
	}
	return nil
}
