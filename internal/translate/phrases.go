package translate

import (
	"context"
	"strings"
)

// phraseTable is the last-resort static fallback: a handful of everyday
// English phrases pre-translated into eleven languages. Lookup is a
// case-insensitive exact match on the trimmed input.
var phraseTable = map[string]map[string]string{
	"hello": {
		"es": "hola", "fr": "bonjour", "de": "hallo", "it": "ciao",
		"pt": "olá", "ru": "привет", "ja": "こんにちは", "ko": "안녕하세요",
		"zh": "你好", "ar": "مرحبا", "hi": "नमस्ते",
	},
	"goodbye": {
		"es": "adiós", "fr": "au revoir", "de": "auf wiedersehen", "it": "ciao",
		"pt": "tchau", "ru": "до свидания", "ja": "さようなら", "ko": "안녕히 가세요",
		"zh": "再见", "ar": "وداعا", "hi": "अलविदा",
	},
	"thank you": {
		"es": "gracias", "fr": "merci", "de": "danke", "it": "grazie",
		"pt": "obrigado", "ru": "спасибо", "ja": "ありがとう", "ko": "감사합니다",
		"zh": "谢谢", "ar": "شكرا", "hi": "धन्यवाद",
	},
	"please": {
		"es": "por favor", "fr": "s'il vous plaît", "de": "bitte", "it": "per favore",
		"pt": "por favor", "ru": "пожалуйста", "ja": "お願いします", "ko": "부탁합니다",
		"zh": "请", "ar": "من فضلك", "hi": "कृपया",
	},
	"yes": {
		"es": "sí", "fr": "oui", "de": "ja", "it": "sì",
		"pt": "sim", "ru": "да", "ja": "はい", "ko": "예",
		"zh": "是", "ar": "نعم", "hi": "हाँ",
	},
	"no": {
		"es": "no", "fr": "non", "de": "nein", "it": "no",
		"pt": "não", "ru": "нет", "ja": "いいえ", "ko": "아니요",
		"zh": "不", "ar": "لا", "hi": "नहीं",
	},
}

// Phrases serves translations out of the static phrase table.
type Phrases struct{}

func NewPhrases() *Phrases {
	return &Phrases{}
}

func (p *Phrases) Name() string {
	return "simple"
}

func (p *Phrases) Translate(ctx context.Context, req Request) (Result, error) {
	phrase := strings.ToLower(strings.TrimSpace(req.Text))

	translations, ok := phraseTable[phrase]
	if !ok {
		return Result{}, ErrNoTranslation
	}
	translation, ok := translations[req.TargetLanguage]
	if !ok {
		return Result{}, ErrNoTranslation
	}

	return Result{
		Translation:    translation,
		SourceLanguage: "auto",
		TargetLanguage: req.TargetLanguage,
		Service:        p.Name(),
	}, nil
}
