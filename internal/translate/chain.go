package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Chain tries each translation service in order until one succeeds.
// Transient failures demote to the next service; a missing credential
// on the chat backend aborts immediately with [ErrNotConfigured].
type Chain struct {
	providers []Provider
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// DefaultChain is the configured chat backend, then MyMemory, then the
// static phrase table.
func DefaultChain() (*Chain, error) {
	backend, err := ChatBackend("", "")
	if err != nil {
		return nil, err
	}
	return NewChain(backend, NewMyMemory(), NewPhrases()), nil
}

func (c *Chain) Translate(ctx context.Context, req Request) (Result, error) {
	if req.SourceLanguage == "" {
		req.SourceLanguage = "auto"
	}

	var lastErr error
	for _, provider := range c.providers {
		result, err := provider.Translate(ctx, req)
		if err == nil {
			slog.Info("Translation successful", "service", provider.Name(), "target", req.TargetLanguage)
			return result, nil
		}
		if errors.Is(err, ErrNotConfigured) {
			slog.Error("Translation service not configured", "service", provider.Name())
			return Result{}, err
		}
		lastErr = err
		slog.Warn("Translation service failed, trying next", "service", provider.Name(), "error", err)
	}

	return Result{}, fmt.Errorf("%w: %v", ErrAllFailed, lastErr)
}
