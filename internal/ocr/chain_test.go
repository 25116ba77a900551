package ocr

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func testImage() Image {
	return Image{Data: []byte("fake image bytes"), MIMEType: "image/png"}
}

func ocrSpaceServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("OCRSPACE_URL", server.URL)
	return server
}

func TestChainFallbackWhenAllServicesEmpty(t *testing.T) {
	ocrSpaceServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ParsedResults":[{"ParsedText":"  "}],"IsErroredOnProcessing":false}`)
	})
	t.Setenv("GOOGLE_VISION_API_KEY", "")

	result := DefaultChain().Extract(context.Background(), testImage())

	if !result.Fallback {
		t.Fatal("Expected fallback result when every service is empty")
	}
	if result.Text != "" {
		t.Errorf("Expected empty text, got %q", result.Text)
	}
	if result.Message == "" {
		t.Error("Expected a fallback message")
	}
	if len(result.Suggestions) != 3 {
		t.Errorf("Expected 3 suggestions, got %d", len(result.Suggestions))
	}
}

func TestChainFirstServiceSuccess(t *testing.T) {
	ocrSpaceServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ParsedResults":[{"ParsedText":"Hello\r\n\r\nwide   world"}],"IsErroredOnProcessing":false}`)
	})
	t.Setenv("GOOGLE_VISION_API_KEY", "")

	result := DefaultChain().Extract(context.Background(), testImage())

	if result.Fallback {
		t.Fatal("Expected success, got fallback")
	}
	if result.Text != "Hello wide world" {
		t.Errorf("Expected normalized text, got %q", result.Text)
	}
	if result.Method != "ocr.space" {
		t.Errorf("Expected method ocr.space, got %q", result.Method)
	}
	if result.Length != len("Hello wide world") {
		t.Errorf("Expected length %d, got %d", len("Hello wide world"), result.Length)
	}
	if result.WordCount != 3 {
		t.Errorf("Expected word count 3, got %d", result.WordCount)
	}
	if result.Confidence <= 0 || result.Confidence > 100 {
		t.Errorf("Confidence %d outside (0,100]", result.Confidence)
	}
}

func TestChainFallsBackToVision(t *testing.T) {
	ocrSpaceServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	visionServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responses":[{"textAnnotations":[{"description":"Guten Tag"}]}]}`)
	}))
	t.Cleanup(visionServer.Close)
	t.Setenv("GOOGLE_VISION_URL", visionServer.URL)
	t.Setenv("GOOGLE_VISION_API_KEY", "test-key")

	result := DefaultChain().Extract(context.Background(), testImage())

	if result.Fallback {
		t.Fatal("Expected Vision to recover the chain")
	}
	if result.Method != "google-vision" {
		t.Errorf("Expected method google-vision, got %q", result.Method)
	}
	if result.Text != "Guten Tag" {
		t.Errorf("Expected %q, got %q", "Guten Tag", result.Text)
	}
	if result.Confidence != 90 {
		t.Errorf("Expected fixed Vision confidence 90, got %d", result.Confidence)
	}
}

func TestChainStopsAfterFirstSuccess(t *testing.T) {
	ocrSpaceServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ParsedResults":[{"ParsedText":"Recognized"}]}`)
	})

	var visionCalls atomic.Int32
	visionServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visionCalls.Add(1)
		fmt.Fprint(w, `{"responses":[]}`)
	}))
	t.Cleanup(visionServer.Close)
	t.Setenv("GOOGLE_VISION_URL", visionServer.URL)
	t.Setenv("GOOGLE_VISION_API_KEY", "test-key")

	result := DefaultChain().Extract(context.Background(), testImage())

	if result.Text != "Recognized" {
		t.Errorf("Expected first service result, got %q", result.Text)
	}
	if calls := visionCalls.Load(); calls != 0 {
		t.Errorf("Expected Vision to be skipped after a success, got %d calls", calls)
	}
}

func TestChainSkipsUnconfiguredVision(t *testing.T) {
	ocrSpaceServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ParsedResults":[]}`)
	})
	t.Setenv("GOOGLE_VISION_API_KEY", "")
	// Point at a server that fails the test if it is ever reached.
	visionServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Vision must not be called without an API key")
	}))
	t.Cleanup(visionServer.Close)
	t.Setenv("GOOGLE_VISION_URL", visionServer.URL)

	result := DefaultChain().Extract(context.Background(), testImage())

	if !result.Fallback {
		t.Error("Expected fallback result")
	}
}
