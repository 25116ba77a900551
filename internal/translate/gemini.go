package translate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini is a chat backend using the Google Generative AI SDK.
type Gemini struct {
	model string
}

func NewGemini(model string) *Gemini {
	if model == "" {
		model = getenv("GEMINI_MODEL", "gemini-2.0-flash")
	}
	return &Gemini{model: model}
}

func (g *Gemini) Name() string {
	return "gemini"
}

func (g *Gemini) Translate(ctx context.Context, req Request) (Result, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return Result{}, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0)

	prompt := systemPrompt(req.TargetLanguage) + "\n\n" + req.Text
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return Result{}, ErrNoTranslation
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return Result{}, ErrNoTranslation
	}

	txt, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return Result{}, fmt.Errorf("unexpected response format from Gemini")
	}

	translation := strings.TrimSpace(string(txt))
	if translation == "" {
		return Result{}, ErrNoTranslation
	}

	return Result{
		Translation:    translation,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Service:        g.Name(),
	}, nil
}
