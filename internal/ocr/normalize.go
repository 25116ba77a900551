package ocr

import "strings"

// Normalize canonicalizes OCR output: line endings and whitespace runs
// collapse to single spaces and the result is trimmed. Idempotent.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// WordCount returns the number of whitespace-delimited tokens, empty
// tokens excluded.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
