package lang

// Language is an ISO 639-1 code from the closed set this system
// supports.
type Language string

const (
	English    Language = "en"
	Spanish    Language = "es"
	French     Language = "fr"
	German     Language = "de"
	Italian    Language = "it"
	Portuguese Language = "pt"
	Chinese    Language = "zh"
	Japanese   Language = "ja"
	Korean     Language = "ko"
	Arabic     Language = "ar"
)

// Canonical is the language retrieval and scoring operate in.
const Canonical = English

// SupportedLanguages maps every accepted code to its display name.
// Languages outside the offline dictionary set are reachable only
// through the external translation service.
var SupportedLanguages = map[Language]string{
	English:    "English",
	Spanish:    "Spanish",
	French:     "French",
	German:     "German",
	Italian:    "Italian",
	Portuguese: "Portuguese",
	Chinese:    "Chinese",
	Japanese:   "Japanese",
	Korean:     "Korean",
	Arabic:     "Arabic",
}

// IsSupported reports whether code belongs to the closed language set.
func IsSupported(code Language) bool {
	_, ok := SupportedLanguages[code]
	return ok
}

// Name returns the display name for a code, or the code itself for
// anything outside the set.
func Name(code Language) string {
	if name, ok := SupportedLanguages[code]; ok {
		return name
	}
	return string(code)
}
