package ocr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestOCRSpaceRequestShape(t *testing.T) {
	ocrSpaceServer(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("Expected multipart form: %v", err)
		}
		if got := r.FormValue("base64Image"); !strings.HasPrefix(got, "data:image/png;base64,") {
			t.Errorf("Expected base64 data URI with mime type, got %q", got)
		}
		if got := r.FormValue("language"); got != "eng" {
			t.Errorf("Expected language eng, got %q", got)
		}
		if got := r.FormValue("detectOrientation"); got != "true" {
			t.Errorf("Expected detectOrientation true, got %q", got)
		}
		if got := r.FormValue("scale"); got != "true" {
			t.Errorf("Expected scale true, got %q", got)
		}
		if got := r.FormValue("OCREngine"); got != "2" {
			t.Errorf("Expected OCREngine 2, got %q", got)
		}
		if got := r.Header.Get("apikey"); got != "helloworld" {
			t.Errorf("Expected free-tier apikey header, got %q", got)
		}
		fmt.Fprint(w, `{"ParsedResults":[{"ParsedText":"ok"}]}`)
	})
	t.Setenv("OCRSPACE_API_KEY", "")

	extraction, err := NewOCRSpace().Extract(context.Background(), testImage())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if extraction.Text != "ok" {
		t.Errorf("Expected text ok, got %q", extraction.Text)
	}
}

func TestOCRSpaceProcessingError(t *testing.T) {
	ocrSpaceServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ParsedResults":[],"IsErroredOnProcessing":true,"ErrorMessage":["image too blurry"]}`)
	})

	_, err := NewOCRSpace().Extract(context.Background(), testImage())
	if err == nil {
		t.Fatal("Expected error for IsErroredOnProcessing")
	}
	if !strings.Contains(err.Error(), "image too blurry") {
		t.Errorf("Expected error message detail, got %v", err)
	}
}

func TestOCRSpaceEmptyResult(t *testing.T) {
	ocrSpaceServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ParsedResults":[]}`)
	})

	_, err := NewOCRSpace().Extract(context.Background(), testImage())
	if !errors.Is(err, ErrNoText) {
		t.Errorf("Expected ErrNoText, got %v", err)
	}
}
