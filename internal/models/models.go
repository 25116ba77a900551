package models

// TranslateRequest is the JSON body accepted by the translate endpoint.
// Provider and Model optionally override the configured chat backend.
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	Provider       string `json:"provider,omitempty"`
	Model          string `json:"model,omitempty"`
}

// OCRURLRequest is the JSON body accepted by the OCR endpoint when the
// image is fetched from a URL instead of uploaded directly.
type OCRURLRequest struct {
	ImageURL string `json:"image_url"`
}

// OCRResponse is returned when at least one OCR service produced text.
type OCRResponse struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
	Method     string `json:"method"`
	Length     int    `json:"length"`
	WordCount  int    `json:"wordCount"`
}

// OCRFallbackResponse is returned when every OCR service came up empty.
// It is a 200, not an error: the client is expected to fall back to
// local extraction.
type OCRFallbackResponse struct {
	Text        string   `json:"text"`
	Fallback    bool     `json:"fallback"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// ErrorResponse is the body for 4xx/5xx responses. Details is only
// populated outside production.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
