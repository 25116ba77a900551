package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// OCRSpace calls the ocr.space parse API. It works without a dedicated
// credential via the public free-tier key.
type OCRSpace struct{}

func NewOCRSpace() *OCRSpace {
	return &OCRSpace{}
}

func (o *OCRSpace) Name() string {
	return "ocr.space"
}

// Extract sends the image as a base64 data URI and returns the first
// parsed result. Confidence is estimated locally because ocr.space does
// not report its own.
func (o *OCRSpace) Extract(ctx context.Context, img Image) (Extraction, error) {
	endpoint := getenv("OCRSPACE_URL", "https://api.ocr.space/parse/image")
	apiKey := getenv("OCRSPACE_API_KEY", "helloworld") // public free-tier key

	base64Image := base64.StdEncoding.EncodeToString(img.Data)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	fields := [][2]string{
		{"base64Image", "data:" + img.MIMEType + ";base64," + base64Image},
		{"language", "eng"},
		{"isOverlayRequired", "false"},
		{"detectOrientation", "true"},
		{"scale", "true"},
		{"OCREngine", "2"},
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return Extraction{}, fmt.Errorf("failed to build OCR request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return Extraction{}, fmt.Errorf("failed to build OCR request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to create OCR request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("apikey", apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to call ocr.space API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return Extraction{}, fmt.Errorf("ocr.space API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		ParsedResults []struct {
			ParsedText string `json:"ParsedText"`
		} `json:"ParsedResults"`
		IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
		ErrorMessage          json.RawMessage `json:"ErrorMessage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Extraction{}, fmt.Errorf("failed to decode ocr.space response: %w", err)
	}

	if parsed.IsErroredOnProcessing {
		return Extraction{}, fmt.Errorf("ocr.space processing error: %s", string(parsed.ErrorMessage))
	}

	if len(parsed.ParsedResults) == 0 || strings.TrimSpace(parsed.ParsedResults[0].ParsedText) == "" {
		return Extraction{}, ErrNoText
	}

	text := parsed.ParsedResults[0].ParsedText
	return Extraction{
		Text:       text,
		Method:     o.Name(),
		Confidence: EstimateConfidence(text),
	}, nil
}
