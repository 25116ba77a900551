package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// visionConfidence is the fixed score assigned to Google Vision results,
// reflecting the service's typical reliability rather than a local
// estimate.
const visionConfidence = 90

// Vision calls the Google Vision images:annotate REST API. The whole
// stage is skipped when no API key is configured.
type Vision struct{}

func NewVision() *Vision {
	return &Vision{}
}

func (v *Vision) Name() string {
	return "google-vision"
}

func (v *Vision) Extract(ctx context.Context, img Image) (Extraction, error) {
	apiKey := os.Getenv("GOOGLE_VISION_API_KEY")
	if apiKey == "" {
		return Extraction{}, ErrNotConfigured
	}
	endpoint := getenv("GOOGLE_VISION_URL", "https://vision.googleapis.com/v1/images:annotate")

	requestBody, err := json.Marshal(map[string]interface{}{
		"requests": []map[string]interface{}{
			{
				"image": map[string]string{
					"content": base64.StdEncoding.EncodeToString(img.Data),
				},
				"features": []map[string]interface{}{
					{
						"type":       "TEXT_DETECTION",
						"maxResults": 1,
					},
				},
			},
		},
	})
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to marshal Vision request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint+"?key="+url.QueryEscape(apiKey), bytes.NewBuffer(requestBody))
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to create Vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to call Vision API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return Extraction{}, fmt.Errorf("vision API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Responses []struct {
			TextAnnotations []struct {
				Description string `json:"description"`
			} `json:"textAnnotations"`
		} `json:"responses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Extraction{}, fmt.Errorf("failed to decode Vision response: %w", err)
	}

	if len(parsed.Responses) == 0 || len(parsed.Responses[0].TextAnnotations) == 0 {
		return Extraction{}, ErrNoText
	}

	description := parsed.Responses[0].TextAnnotations[0].Description
	if strings.TrimSpace(description) == "" {
		return Extraction{}, ErrNoText
	}

	return Extraction{
		Text:       description,
		Method:     v.Name(),
		Confidence: visionConfidence,
	}, nil
}
