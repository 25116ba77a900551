package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/polyglot-tools/lenslate/internal/history"
	"github.com/polyglot-tools/lenslate/internal/models"
	"github.com/polyglot-tools/lenslate/internal/ocr"
)

const (
	translationHistoryCap = 50
	extractionHistoryCap  = 20
)

type Handler struct {
	ocrChain           *ocr.Chain
	translationHistory *history.Store
	extractionHistory  *history.Store
}

func New() *Handler {
	return &Handler{
		ocrChain:           ocr.DefaultChain(),
		translationHistory: history.NewStore(translationHistoryCap),
		extractionHistory:  history.NewStore(extractionHistoryCap),
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: message}); err != nil {
		slog.Error("Unable to encode error response", "err", err)
	}
}

// writeServerError reports a 500 with the underlying error exposed only
// outside production.
func (h *Handler) writeServerError(w http.ResponseWriter, message string, err error) {
	slog.Error(message, "err", err)
	response := models.ErrorResponse{Error: message}
	if err != nil && os.Getenv("APP_ENV") != "production" {
		response.Details = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		slog.Error("Unable to encode error response", "err", encodeErr)
	}
}

func historyID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
