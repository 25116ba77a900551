package ocr

import (
	"context"
	"errors"
	"log/slog"
)

// Result is the final outcome of running the chain. Either text was
// recognized (Text, Method, Confidence, Length, WordCount) or every
// service came up empty and Fallback is set with remediation hints.
type Result struct {
	Text        string
	Method      string
	Confidence  int
	Length      int
	WordCount   int
	Fallback    bool
	Message     string
	Suggestions []string
}

// Chain tries each OCR service in order until one recognizes text.
// Service failures never propagate: they are logged and demoted to
// "try the next one", and exhaustion produces a fallback Result rather
// than an error.
type Chain struct {
	providers []Provider
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// DefaultChain is ocr.space first, Google Vision second.
func DefaultChain() *Chain {
	return NewChain(NewOCRSpace(), NewVision())
}

func (c *Chain) Extract(ctx context.Context, img Image) Result {
	for _, provider := range c.providers {
		extraction, err := provider.Extract(ctx, img)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotConfigured):
				slog.Debug("skipping OCR service (not configured)", "service", provider.Name())
			case errors.Is(err, ErrNoText):
				slog.Info("OCR service recognized no text, trying next", "service", provider.Name())
			default:
				slog.Warn("OCR service failed, trying next", "service", provider.Name(), "error", err)
			}
			continue
		}

		text := Normalize(extraction.Text)
		if text == "" {
			slog.Info("OCR service returned only whitespace, trying next", "service", provider.Name())
			continue
		}

		confidence := extraction.Confidence
		if confidence == 0 {
			confidence = EstimateConfidence(text)
		}

		slog.Info("OCR successful", "service", provider.Name(), "length", len(text))
		return Result{
			Text:       text,
			Method:     extraction.Method,
			Confidence: confidence,
			Length:     len(text),
			WordCount:  WordCount(text),
		}
	}

	slog.Info("All OCR services exhausted, suggesting client-side processing")
	return Result{
		Fallback: true,
		Message:  "Server OCR failed. Falling back to client-side processing.",
		Suggestions: []string{
			"Ensure the image has clear, high-contrast text",
			"Try with better lighting or focus",
			"Use a higher resolution image if possible",
		},
	}
}
