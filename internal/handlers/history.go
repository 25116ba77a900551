package handlers

import (
	"net/http"

	"github.com/polyglot-tools/lenslate/internal/history"
)

func (h *Handler) HandleTranslationHistory(w http.ResponseWriter, r *http.Request) {
	h.handleHistory(w, r, h.translationHistory)
}

func (h *Handler) HandleExtractionHistory(w http.ResponseWriter, r *http.Request) {
	h.handleHistory(w, r, h.extractionHistory)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request, store *history.Store) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, store.List())
	case "DELETE":
		store.Clear()
		h.writeJSON(w, map[string]any{"message": "History cleared"})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
