package lang

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"securebank-assist-be/pkg/llm"
	"securebank-assist-be/pkg/textutil"
)

const (
	// Translation calls are short-fused; a slow translation is worse
	// than the offline fallback.
	defaultTimeout       = 10 * time.Second
	translateMaxTokens   = 150
	translateTemperature = 0.3
)

// Translator converts text between supported languages. The external
// completion service is tried first; on any failure the static phrase
// table and then word-by-word substitution take over, so Translate
// always returns usable text and never an error.
type Translator struct {
	provider llm.LLMProvider // nil means offline-only
	dict     *Dictionary
	timeout  time.Duration
}

func NewTranslator(provider llm.LLMProvider, dict *Dictionary) *Translator {
	return &Translator{
		provider: provider,
		dict:     dict,
		timeout:  defaultTimeout,
	}
}

// Dictionary exposes the offline tables, e.g. for the escalation
// scorer's term lookups.
func (t *Translator) Dictionary() *Dictionary {
	return t.dict
}

// Translate converts text from src to dst. Identity when src == dst or
// text is empty.
func (t *Translator) Translate(ctx context.Context, text string, src, dst Language) string {
	if src == dst || strings.TrimSpace(text) == "" {
		return text
	}
	if src == "" || src == "auto" {
		src = Detect(text)
		if src == dst {
			return text
		}
	}

	if translated, ok := t.translateExternal(ctx, text, src, dst); ok {
		return translated
	}
	return t.TranslateOffline(text, src, dst)
}

// TranslateOffline applies the phrase table, then word-by-word
// substitution with punctuation preserved. Unmapped tokens pass through
// unchanged, so output is never empty for non-empty input.
func (t *Translator) TranslateOffline(text string, src, dst Language) string {
	if src == dst {
		return text
	}

	if translated, ok := t.dict.LookupPhrase(text, src, dst); ok {
		return translated
	}

	words := strings.Fields(text)
	translated := make([]string, len(words))
	for i, word := range words {
		core, trailing := splitPunctuation(word)
		if core == "" {
			translated[i] = word
			continue
		}
		if mapped, ok := t.dict.LookupWord(core, src, dst); ok {
			translated[i] = mapped + trailing
		} else {
			translated[i] = word
		}
	}
	return strings.Join(translated, " ")
}

func (t *Translator) translateExternal(ctx context.Context, text string, src, dst Language) (string, bool) {
	if t.provider == nil {
		return "", false
	}

	prompt := fmt.Sprintf(`Translate this text from %s to %s.
Provide ONLY the natural, fluent translation without any explanations, quotes, or additional text.
Maintain the original meaning and tone.

Text to translate: %s

Translation:`, Name(src), Name(dst), text)

	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	translated, err := t.provider.Generate(callCtx, prompt,
		llm.WithTemperature(translateTemperature),
		llm.WithMaxTokens(translateMaxTokens),
	)
	if err != nil {
		return "", false
	}

	translated = strings.Trim(strings.TrimSpace(translated), `"'`)
	translated = textutil.DecodeEntities(translated)
	if translated == "" {
		return "", false
	}
	return translated, true
}

// splitPunctuation separates a token into its alphanumeric core and the
// punctuation attached to it, so "password?" translates the word and
// keeps the "?".
func splitPunctuation(word string) (core, punctuation string) {
	var coreBuilder, punctBuilder strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			coreBuilder.WriteRune(r)
		} else {
			punctBuilder.WriteRune(r)
		}
	}
	return coreBuilder.String(), punctBuilder.String()
}
