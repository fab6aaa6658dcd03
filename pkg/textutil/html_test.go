package textutil

import (
	"testing"
)

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "reset your password",
			want:  "reset your password",
		},
		{
			name:  "single level entities",
			input: "go to &quot;settings&quot; &amp; follow the steps",
			want:  `go to "settings" & follow the steps`,
		},
		{
			name:  "nested encoding",
			input: "it&amp;amp;#39;s done",
			want:  "it's done",
		},
		{
			name:  "numeric apostrophe",
			input: "don&#39;t share your PIN",
			want:  "don't share your PIN",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeEntities(tt.input); got != tt.want {
				t.Errorf("DecodeEntities(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("  check \t balance\n now ")
	if got != "check balance now" {
		t.Errorf("CollapseWhitespace = %q", got)
	}
}
