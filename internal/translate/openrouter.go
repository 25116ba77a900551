package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// OpenRouter is the aggregator-backed chat backend, the default primary
// translation stage. It runs a free-tier DeepSeek model.
type OpenRouter struct {
	model string
}

func NewOpenRouter(model string) *OpenRouter {
	if model == "" {
		model = getenv("OPENROUTER_MODEL", "deepseek/deepseek-r1-0528:free")
	}
	return &OpenRouter{model: model}
}

func (o *OpenRouter) Name() string {
	return "openrouter"
}

func (o *OpenRouter) Translate(ctx context.Context, req Request) (Result, error) {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		// Deployments predating the backend split configured the
		// aggregator with the vendor key name.
		apiKey = os.Getenv("DEEPSEEK_API_KEY")
	}
	if apiKey == "" {
		return Result{}, ErrNotConfigured
	}

	endpoint := getenv("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions")

	requestBody, err := json.Marshal(map[string]interface{}{
		"model": o.model,
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
		return Result{}, fmt.Errorf("failed to call OpenRouter API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("openRouter API returned status %d: %s", resp.StatusCode, string(body))
	}

	translation, err := decodeChatCompletion(resp.Body)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Translation:    translation,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Service:        o.Name(),
	}, nil
}

// decodeChatCompletion pulls the first choice's trimmed content out of
// an OpenAI-style chat completion body.
func decodeChatCompletion(body io.Reader) (string, error) {
	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", ErrNoTranslation
	}

	translation := strings.TrimSpace(response.Choices[0].Message.Content)
	if translation == "" {
		return "", ErrNoTranslation
	}
	return translation, nil
}
