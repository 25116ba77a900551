package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DeepSeek is the direct-vendor chat backend. Superseded by the
// OpenRouter default but kept selectable; it exposes the sampling
// controls the vendor endpoint supports.
type DeepSeek struct {
	model string
}

func NewDeepSeek(model string) *DeepSeek {
	if model == "" {
		model = getenv("DEEPSEEK_MODEL", "deepseek-chat")
	}
	return &DeepSeek{model: model}
}

func (d *DeepSeek) Name() string {
	return "deepseek"
}

func (d *DeepSeek) Translate(ctx context.Context, req Request) (Result, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if apiKey == "" {
		return Result{}, ErrNotConfigured
	}

	endpoint := getenv("DEEPSEEK_URL", "https://api.deepseek.com/chat/completions")

	requestBody, err := json.Marshal(map[string]interface{}{
		"model": d.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": systemPrompt(req.TargetLanguage),
			},
			{
				"role":    "user",
				"content": req.Text,
			},
		},
		"temperature": 1.3, // vendor-recommended setting for translation
		"max_tokens":  2000,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("failed to call DeepSeek API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("deepSeek API returned status %d: %s", resp.StatusCode, string(body))
	}

	translation, err := decodeChatCompletion(resp.Body)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Translation:    translation,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Service:        d.Name(),
	}, nil
}
