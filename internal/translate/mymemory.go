package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// MyMemory is the keyless machine-translation fallback.
type MyMemory struct{}

func NewMyMemory() *MyMemory {
	return &MyMemory{}
}

func (m *MyMemory) Name() string {
	return "mymemory"
}

func (m *MyMemory) Translate(ctx context.Context, req Request) (Result, error) {
	endpoint := getenv("MYMEMORY_URL", "https://api.mymemory.translated.net/get")

	query := url.Values{}
	query.Set("q", req.Text)
	query.Set("langpair", "auto|"+req.TargetLanguage)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create new request: %w", err)
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (compatible; AI-Translator/1.0)")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("failed to call MyMemory API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("myMemory API returned status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		ResponseStatus int    `json:"responseStatus"`
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return Result{}, fmt.Errorf("failed to decode response body: %w", err)
	}

	if response.ResponseStatus != 200 || strings.TrimSpace(response.TranslatedText) == "" {
		return Result{}, ErrNoTranslation
	}

	return Result{
		Translation:    response.TranslatedText,
		SourceLanguage: "auto",
		TargetLanguage: req.TargetLanguage,
		Service:        m.Name(),
	}, nil
}
