package ocr

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"
)

// MaxImageBytes is the upload size limit enforced before any OCR
// service is called.
const MaxImageBytes = 10 * 1024 * 1024

// Image is the raw upload handed to OCR services.
type Image struct {
	Data     []byte
	MIMEType string
}

// Extraction is a single service's raw result before normalization.
type Extraction struct {
	Text       string
	Method     string
	Confidence int
}

// Provider is one OCR service in the chain.
type Provider interface {
	Name() string
	Extract(ctx context.Context, img Image) (Extraction, error)
}

// ErrNotConfigured marks a provider that is missing its credential and
// should be skipped without noise.
var ErrNotConfigured = errors.New("provider not configured")

// ErrNoText means the service answered but recognized nothing usable.
var ErrNoText = errors.New("no text recognized")

// httpClient is shared by all OCR service calls. The timeout keeps an
// abandoned request from pinning a worker on a stalled upstream.
var httpClient = &http.Client{Timeout: 30 * time.Second}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
