//go:build slugnounicode && slugnotranslit

package minislug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milchinskiy/minislug"
)

// With both Unicode capabilities compiled out, every non-ASCII character
// is a boundary and AllowUnicode is inert.
func TestNonASCIIDegradesToBoundary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []minislug.Option
		expected string
	}{
		{
			name:     "cyrillic only falls back",
			input:    "Привіт світ",
			expected: "file",
		},
		{
			name:     "allow unicode has no effect",
			input:    "Привіт світ",
			opts:     []minislug.Option{minislug.AllowUnicode(true)},
			expected: "file",
		},
		{
			name:     "diacritics are not transliterated",
			input:    "Crème brûlée",
			expected: "cr-me-br-l-e",
		},
		{
			name:     "ascii unaffected",
			input:    "Hello, world!",
			expected: "hello-world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := minislug.Make(tt.input, tt.opts...)
			assert.Equal(t, tt.expected, result)
		})
	}
}
