package lang

import "strings"

// Detection is heuristic: diacritic sets, interrogative stop words and
// Unicode block membership. It only needs to separate the offline
// dictionary languages; everything without a signal defaults to the
// canonical language.

var (
	spanishChars = "ñáéíóúü¿¡"
	frenchChars  = "àâäéèêëïîôöùûüÿç"
	germanChars  = "äöüß"

	spanishWords = []string{"cómo", "qué", "dónde", "cuándo", "por qué"}
	frenchWords  = []string{"comment", "où", "quand", "pourquoi"}
	germanWords  = []string{"wie", "was", "wo", "wann", "warum"}
)

// Detect guesses the language of text. English is the default when no
// signal fires.
func Detect(text string) Language {
	lower := strings.ToLower(text)

	if containsAnyRune(text, spanishChars) || containsAnyWord(lower, spanishWords) {
		return Spanish
	}
	if containsAnyRune(text, frenchChars) || containsAnyWord(lower, frenchWords) {
		return French
	}
	if containsAnyRune(text, germanChars) || containsAnyWord(lower, germanWords) {
		return German
	}
	if containsCJK(text) {
		return Chinese
	}
	return English
}

func containsAnyRune(text, set string) bool {
	return strings.ContainsAny(text, set)
}

func containsAnyWord(lower string, words []string) bool {
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '?' || r == '!' || r == ',' || r == '.' || r == ';' || r == ':'
	})
	for _, word := range words {
		if strings.Contains(word, " ") {
			if strings.Contains(lower, word) {
				return true
			}
			continue
		}
		for _, token := range tokens {
			if token == word {
				return true
			}
		}
	}
	return false
}

func containsCJK(text string) bool {
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}
