package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "Bouw en logistiek",
			max:   100,
			want:  "Bouw en logistiek",
		},
		{
			name:  "truncates by runes",
			input: "héllo wörld",
			max:   5,
			want:  "héllo",
		},
		{
			name:  "strips script blocks",
			input: "hello<script>alert(1)</script>world",
			max:   100,
			want:  "helloworld",
		},
		{
			name:  "strips unterminated script tag",
			input: "hello<script src=x",
			max:   100,
			want:  "hello",
		},
		{
			name:  "strips event handlers",
			input: `<img onerror="alert(1)" src=x>`,
			max:   100,
			want:  "<img  src=x>",
		},
		{
			name:  "strips javascript protocol",
			input: "javascript:alert(1)",
			max:   100,
			want:  "alert(1)",
		},
		{
			name:  "strips data text html",
			input: "data:text/html,<h1>hi</h1>",
			max:   100,
			want:  ",<h1>hi</h1>",
		},
		{
			name:  "removes null bytes and trims",
			input: "  hi\x00there  ",
			max:   100,
			want:  "hithere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeText(tt.input, tt.max)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeTextNeverLeaksScriptTag(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"<SCRIPT>alert(1)</SCRIPT>",
		"<scr<script>ipt>alert(1)</script>",
		"a<script\tsrc='x'>b</script>c",
		"<script",
	}
	for _, input := range inputs {
		got := SanitizeText(input, 1000)
		assert.NotContains(t, strings.ToLower(got), "<script", "input: %q", input)
	}
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "https allowed", input: "https://example.com/a.png", want: "https://example.com/a.png"},
		{name: "http allowed", input: "http://example.com", want: "http://example.com"},
		{name: "data image allowed", input: "data:image/png;base64,iVBORw0KGgo=", want: "data:image/png;base64,iVBORw0KGgo="},
		{name: "data html rejected", input: "data:text/html;base64,PGgxPg==", want: ""},
		{name: "javascript rejected", input: "javascript:alert(1)", want: ""},
		{name: "relative rejected", input: "/images/a.png", want: ""},
		{name: "whitespace trimmed", input: "  https://example.com  ", want: "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeURL(tt.input))
		})
	}
}
