package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func myMemoryServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("MYMEMORY_URL", server.URL)
}

func TestMyMemorySuccess(t *testing.T) {
	myMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "thank you" {
			t.Errorf("Expected query text, got %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "Mozilla/5.0 (compatible; AI-Translator/1.0)" {
			t.Errorf("Unexpected User-Agent %q", got)
		}
		fmt.Fprint(w, `{"responseStatus":200,"translatedText":"merci"}`)
	})

	result, err := NewMyMemory().Translate(context.Background(), Request{Text: "thank you", TargetLanguage: "fr"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Translation != "merci" {
		t.Errorf("Expected merci, got %q", result.Translation)
	}
	if result.SourceLanguage != "auto" {
		t.Errorf("Expected source auto, got %q", result.SourceLanguage)
	}
}

func TestMyMemoryInternalFailureStatus(t *testing.T) {
	myMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseStatus":403,"translatedText":"INVALID LANGUAGE PAIR"}`)
	})

	_, err := NewMyMemory().Translate(context.Background(), Request{Text: "hello", TargetLanguage: "xx"})
	if !errors.Is(err, ErrNoTranslation) {
		t.Errorf("Expected ErrNoTranslation, got %v", err)
	}
}

func TestMyMemoryHTTPFailure(t *testing.T) {
	myMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := NewMyMemory().Translate(context.Background(), Request{Text: "hello", TargetLanguage: "fr"})
	if err == nil {
		t.Fatal("Expected error for non-200 status")
	}
}
