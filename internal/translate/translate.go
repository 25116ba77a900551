package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Request is one translation job. SourceLanguage defaults to "auto".
type Request struct {
	Text           string
	TargetLanguage string
	SourceLanguage string
}

// Result carries the translation and the service that produced it.
type Result struct {
	Translation    string `json:"translation"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Service        string `json:"service"`
}

// Provider is one translation service in the chain.
type Provider interface {
	Name() string
	Translate(ctx context.Context, req Request) (Result, error)
}

// ErrNotConfigured means the selected chat backend is missing its API
// key. Unlike transient failures this aborts the chain: a missing
// credential is an operator problem, not something a fallback fixes.
var ErrNotConfigured = errors.New("API key not configured")

// ErrNoTranslation means the service answered but produced nothing usable.
var ErrNoTranslation = errors.New("no translation produced")

// ErrAllFailed is returned when every service in the chain failed.
var ErrAllFailed = errors.New("all translation services failed")

// httpClient is shared by all translation service calls.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// languageNames resolves ISO-ish codes to the full names used in chat
// backend instructions. A closed table: unknown codes deliberately
// resolve to "Unknown Language" and are still sent to the backend as-is.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese (Simplified)",
	"ar": "Arabic",
	"hi": "Hindi",
}

// LanguageName returns the full English name for a language code, or
// "Unknown Language" for codes outside the table.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "Unknown Language"
}

// systemPrompt is the instruction shared by every chat backend.
func systemPrompt(targetLanguage string) string {
	return fmt.Sprintf("You are a professional translator. Translate the given text to %s. "+
		"Only return the translation, no explanations or additional text. "+
		"If the source language is the same as target language, return the original text. "+
		"Be precise and maintain the original meaning.", LanguageName(targetLanguage))
}

// ChatBackend selects the chat-completion service for the primary
// translation stage. An empty provider falls back to TRANSLATE_PROVIDER,
// then to openrouter.
func ChatBackend(provider, model string) (Provider, error) {
	if provider == "" {
		provider = os.Getenv("TRANSLATE_PROVIDER")
		if provider == "" {
			provider = "openrouter"
		}
	}

	switch provider {
	case "openrouter":
		return NewOpenRouter(model), nil
	case "deepseek":
		return NewDeepSeek(model), nil
	case "gemini":
		return NewGemini(model), nil
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
