package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/polyglot-tools/lenslate/internal/history"
	"github.com/polyglot-tools/lenslate/internal/models"
	"github.com/polyglot-tools/lenslate/internal/ocr"
)

func (h *Handler) HandleOCR(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Check if this is a JSON request with an image URL
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		h.handleOCRFromURL(w, r)
		return
	}

	h.handleOCRUpload(w, r)
}

func (h *Handler) handleOCRUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		file, header, err = r.FormFile("file")
		if err != nil {
			h.writeError(w, "No image file provided", http.StatusBadRequest)
			return
		}
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		h.writeError(w, "Invalid file type. Please provide an image file.", http.StatusBadRequest)
		return
	}

	// Read one byte past the limit so oversized uploads are detectable
	fileData, err := io.ReadAll(io.LimitReader(file, ocr.MaxImageBytes+1))
	if err != nil {
		h.writeServerError(w, "Failed to read file contents", err)
		return
	}
	if len(fileData) > ocr.MaxImageBytes {
		h.writeError(w, "File too large. Maximum size is 10MB.", http.StatusBadRequest)
		return
	}

	slog.Info("Processing OCR upload", "filename", header.Filename, "size", len(fileData), "type", mimeType)
	h.runExtraction(w, r, ocr.Image{Data: fileData, MIMEType: mimeType})
}

func (h *Handler) handleOCRFromURL(w http.ResponseWriter, r *http.Request) {
	var request models.OCRURLRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if request.ImageURL == "" {
		h.writeError(w, "image_url is required", http.StatusBadRequest)
		return
	}

	img, err := h.downloadImage(request.ImageURL)
	if err != nil {
		h.writeError(w, "Failed to fetch image URL: "+err.Error(), http.StatusBadRequest)
		return
	}

	slog.Info("Processing OCR from URL", "url", request.ImageURL, "size", len(img.Data), "type", img.MIMEType)
	h.runExtraction(w, r, img)
}

func (h *Handler) downloadImage(imageURL string) (ocr.Image, error) {
	resp, err := http.Get(imageURL)
	if err != nil {
		return ocr.Image{}, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ocr.Image{}, fmt.Errorf("failed to download image: HTTP %d", resp.StatusCode)
	}

	mimeType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return ocr.Image{}, fmt.Errorf("URL did not return an image (content type %q)", mimeType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, ocr.MaxImageBytes+1))
	if err != nil {
		return ocr.Image{}, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) > ocr.MaxImageBytes {
		return ocr.Image{}, fmt.Errorf("image too large (max 10MB)")
	}

	return ocr.Image{Data: data, MIMEType: mimeType}, nil
}

func (h *Handler) runExtraction(w http.ResponseWriter, r *http.Request, img ocr.Image) {
	result := h.ocrChain.Extract(r.Context(), img)

	if result.Fallback {
		h.writeJSON(w, models.OCRFallbackResponse{
			Text:        "",
			Fallback:    true,
			Message:     result.Message,
			Suggestions: result.Suggestions,
		})
		return
	}

	h.extractionHistory.Add(history.Entry{
		ID:         historyID(),
		Text:       result.Text,
		Method:     result.Method,
		Confidence: result.Confidence,
		Timestamp:  timestamp(),
	})

	h.writeJSON(w, models.OCRResponse{
		Text:       result.Text,
		Confidence: result.Confidence,
		Method:     result.Method,
		Length:     result.Length,
		WordCount:  result.WordCount,
	})
}
