package ocr

import "strings"

// commonWords is the closed set of high-frequency English words used by
// the confidence heuristic. Matches are case-insensitive and exact.
var commonWords = map[string]bool{
	"the": true, "and": true, "to": true, "of": true, "a": true,
	"in": true, "is": true, "it": true, "you": true, "that": true,
	"he": true, "was": true, "for": true, "on": true, "are": true,
	"as": true, "with": true, "his": true, "they": true, "i": true,
}

// EstimateConfidence scores extracted text quality on a 0-100 scale.
// OCR services that report no confidence of their own get this heuristic
// instead. Pure and deterministic.
func EstimateConfidence(text string) int {
	if len(text) == 0 {
		return 0
	}

	score := 50

	// Length bonus (longer text usually means better recognition)
	if len(text) > 10 {
		score += 10
	}
	if len(text) > 50 {
		score += 10
	}
	if len(text) > 100 {
		score += 10
	}

	words := strings.Fields(text)

	// Word structure bonus
	if len(words) > 0 {
		total := 0
		for _, word := range words {
			total += len(word)
		}
		avgWordLength := float64(total) / float64(len(words))
		if avgWordLength > 3 && avgWordLength < 8 {
			score += 10
		}
	}

	// Common English words bonus, capped at +15
	foundCommonWords := 0
	for _, word := range words {
		if commonWords[strings.ToLower(word)] {
			foundCommonWords++
		}
	}
	if foundCommonWords > 0 {
		score += min(foundCommonWords*2, 15)
	}

	// Penalty for too many special characters or numbers
	specialChars := 0
	for _, r := range text {
		if !isAlphanumeric(r) && !isSpace(r) {
			specialChars++
		}
	}
	if float64(specialChars)/float64(len(text)) > 0.3 {
		score -= 20
	}

	// Penalty for too many single characters
	if len(words) > 0 {
		singleChars := 0
		for _, word := range words {
			if len(word) == 1 {
				singleChars++
			}
		}
		if float64(singleChars) > float64(len(words))*0.3 {
			score -= 15
		}
	}

	return max(0, min(100, score))
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
