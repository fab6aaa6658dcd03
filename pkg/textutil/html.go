package textutil

import (
	"html"
	"strings"
)

// The upstream completion service is known to return text with HTML
// entities, sometimes nested (&amp;quot; and worse). A single unescape
// pass is not enough.
const maxDecodePasses = 5

var residualReplacer = strings.NewReplacer(
	"&quot;", `"`,
	"&#39;", "'",
	"&#x27;", "'",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
)

// DecodeEntities removes HTML entity escaping from text, repeating the
// decode until the text is stable so nested encodings are fully resolved.
func DecodeEntities(text string) string {
	if text == "" {
		return text
	}
	for i := 0; i < maxDecodePasses; i++ {
		decoded := html.UnescapeString(text)
		if decoded == text {
			break
		}
		text = decoded
	}
	return residualReplacer.Replace(text)
}

// CollapseWhitespace normalizes runs of whitespace to single spaces and
// trims the result.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
