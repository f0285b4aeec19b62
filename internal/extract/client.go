// Package extract sends encoded media to the extraction model and recovers
// structured transaction candidates from its free-text responses.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kmlxly/splitit-app-sub001/internal/common"
	"github.com/kmlxly/splitit-app-sub001/internal/media"
)

const (
	// DefaultModel is the primary extraction model identifier.
	DefaultModel = "gemini-2.0-flash"
	// DefaultFallbackModel is tried once when the primary model is unknown
	// to the service.
	DefaultFallbackModel = "gemini-1.5-flash"
)

// ErrModelNotFound indicates the service does not know the requested model
// identifier. It is the only error class that triggers the fallback model.
var ErrModelNotFound = errors.New("model not found")

// TransportError indicates the extraction service could not be reached or
// refused the request after the model fallback was exhausted. It carries the
// original instruction and payload so the caller can retry the identical
// request through an alternate transport instead of failing silently.
type TransportError struct {
	Err         error
	Instruction string
	Payload     media.Payload
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("extraction transport failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Invoker issues a single extraction request against one model identifier
// and returns the raw text of the first candidate.
type Invoker interface {
	Invoke(ctx context.Context, model, instruction string, payload media.Payload) (string, error)
}

// Config holds extraction client settings.
type Config struct {
	// APIKey authenticates against the extraction service.
	APIKey string
	// Model is the primary model identifier; empty selects DefaultModel.
	Model string
	// FallbackModel is tried when the primary is not found; empty selects
	// DefaultFallbackModel.
	FallbackModel string
}

// Client talks to the extraction service with a model fallback chain. It is
// stateless apart from its configuration and safe to retry from the caller.
type Client struct {
	invoker  Invoker
	model    string
	fallback string
}

// NewClient creates a client backed by the Gemini API.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	invoker, err := newGeminiInvoker(ctx, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction client: %w", err)
	}
	return NewClientWithInvoker(invoker, cfg), nil
}

// NewClientWithInvoker creates a client over a caller-supplied invoker.
func NewClientWithInvoker(invoker Invoker, cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	fallback := cfg.FallbackModel
	if fallback == "" {
		fallback = DefaultFallbackModel
	}
	return &Client{invoker: invoker, model: model, fallback: fallback}
}

// Extract sends the payload and instruction to the primary model. When the
// service reports the model as unknown it retries once against the fallback
// model; any other failure is terminal for this attempt and surfaces as a
// *TransportError so the caller can choose an alternate path. An empty
// candidate text is common.ErrEmptyResponse.
func (c *Client) Extract(ctx context.Context, payload media.Payload, instruction string) (string, error) {
	text, err := c.invoker.Invoke(ctx, c.model, instruction, payload)
	if errors.Is(err, ErrModelNotFound) {
		common.LogInfo("primary model unknown, trying fallback", common.Fields{
			"primary":  c.model,
			"fallback": c.fallback,
		})
		text, err = c.invoker.Invoke(ctx, c.fallback, instruction, payload)
	}
	if err != nil {
		return "", &TransportError{Err: err, Instruction: instruction, Payload: payload}
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no candidate content: %w", common.ErrEmptyResponse)
	}

	return text, nil
}
