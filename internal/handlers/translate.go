package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/polyglot-tools/lenslate/internal/history"
	"github.com/polyglot-tools/lenslate/internal/models"
	"github.com/polyglot-tools/lenslate/internal/translate"
)

func (h *Handler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request models.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(request.Text) == "" || request.TargetLanguage == "" {
		h.writeError(w, "Text and target language are required", http.StatusBadRequest)
		return
	}

	backend, err := translate.ChatBackend(request.Provider, request.Model)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	chain := translate.NewChain(backend, translate.NewMyMemory(), translate.NewPhrases())

	result, err := chain.Translate(r.Context(), translate.Request{
		Text:           request.Text,
		TargetLanguage: request.TargetLanguage,
		SourceLanguage: request.SourceLanguage,
	})
	if err != nil {
		if errors.Is(err, translate.ErrNotConfigured) {
			h.writeError(w, "API key not configured", http.StatusInternalServerError)
			return
		}
		h.writeServerError(w, "Translation service temporarily unavailable", err)
		return
	}

	h.translationHistory.Add(history.Entry{
		ID:             historyID(),
		Original:       request.Text,
		Translation:    result.Translation,
		TargetLanguage: result.TargetLanguage,
		Service:        result.Service,
		Timestamp:      timestamp(),
	})

	h.writeJSON(w, result)
}
