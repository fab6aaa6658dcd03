package lang

import (
	"context"
	"errors"
	"testing"

	"securebank-assist-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{"english default", "How do I reset my password?", English},
		{"spanish diacritics", "cómo restablezco mi contraseña", Spanish},
		{"spanish inverted question", "¿Necesito ayuda?", Spanish},
		{"french interrogative", "où est ma banque", French},
		{"german eszett", "mein Konto ist gesperrt, die Straße ist lang", German},
		{"german interrogative", "warum ist mein konto gesperrt", German},
		{"chinese characters", "如何重置我的密码", Chinese},
		{"empty text", "", English},
		{"no false german from english", "I would like help with my account", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestDictionaryLookups(t *testing.T) {
	d := NewDictionary()

	word, ok := d.LookupWord("password", English, Spanish)
	require.True(t, ok)
	assert.Equal(t, "contraseña", word)

	// Reverse direction is derived from the forward table.
	word, ok = d.LookupWord("contraseña", Spanish, English)
	require.True(t, ok)
	assert.Equal(t, "password", word)

	phrase, ok := d.LookupPhrase("I need help", English, French)
	require.True(t, ok)
	assert.Equal(t, "j'ai besoin d'aide", phrase)

	// No entry is distinct from an empty translation.
	_, ok = d.LookupWord("spaceship", English, Spanish)
	assert.False(t, ok)

	// No table at all for this direction.
	_, ok = d.LookupWord("password", English, Japanese)
	assert.False(t, ok)
}

func TestDictionaryLookupTerm(t *testing.T) {
	d := NewDictionary()

	// Multi-word term resolves word by word when no phrase entry exists.
	term, ok := d.LookupTerm("cancel account", English, Spanish)
	require.True(t, ok)
	assert.Contains(t, term, "cuenta")

	_, ok = d.LookupTerm("xyzzy plugh", English, Spanish)
	assert.False(t, ok)
}

func TestTranslateOffline(t *testing.T) {
	tr := NewTranslator(nil, NewDictionary())

	// Phrase table wins over word-by-word.
	got := tr.TranslateOffline("I need help", English, Spanish)
	assert.Equal(t, "necesito ayuda", got)

	// Word-by-word keeps attached punctuation and passes unmapped
	// tokens through.
	got = tr.TranslateOffline("reset password, please!", English, Spanish)
	assert.Equal(t, "restablecer contraseña, please!", got)

	// Identity for same language.
	assert.Equal(t, "hello", tr.TranslateOffline("hello", English, English))
}

func TestTranslateRoundTripTerminates(t *testing.T) {
	tr := NewTranslator(nil, NewDictionary())
	ctx := context.Background()

	es := tr.Translate(ctx, "reset password", English, Spanish)
	require.NotEmpty(t, es)
	en := tr.Translate(ctx, es, Spanish, English)
	require.NotEmpty(t, en, "round trip may be lossy but must return non-empty text")
}

// failingProvider always errors, forcing the offline fallback.
type failingProvider struct{}

func (failingProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", errors.New("service unavailable")
}

func (failingProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return "", errors.New("service unavailable")
}

// cannedProvider returns a fixed completion.
type cannedProvider struct{ reply string }

func (p cannedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.reply, nil
}

func (p cannedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.reply, nil
}

func TestTranslateExternalFailureFallsBack(t *testing.T) {
	tr := NewTranslator(failingProvider{}, NewDictionary())

	got := tr.Translate(context.Background(), "I need help", English, Spanish)
	assert.Equal(t, "necesito ayuda", got)
}

func TestTranslateExternalDecodesEntities(t *testing.T) {
	tr := NewTranslator(cannedProvider{reply: "necesito &quot;ayuda&quot;"}, NewDictionary())

	got := tr.Translate(context.Background(), "I need help", English, Spanish)
	assert.Equal(t, `necesito "ayuda"`, got)
}

func TestSupportedLanguages(t *testing.T) {
	assert.True(t, IsSupported(English))
	assert.True(t, IsSupported(Arabic))
	assert.False(t, IsSupported(Language("xx")))
	assert.Equal(t, "Spanish", Name(Spanish))
	assert.Equal(t, "xx", Name(Language("xx")))
}
