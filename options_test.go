package minislug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milchinskiy/minislug"
)

func TestSeparatorAllowList(t *testing.T) {
	tests := []struct {
		name     string
		sep      rune
		expected string
	}{
		{name: "dash", sep: '-', expected: "a-b"},
		{name: "underscore", sep: '_', expected: "a_b"},
		{name: "plus", sep: '+', expected: "a+b"},
		{name: "tilde", sep: '~', expected: "a~b"},
		{name: "slash clamps to dash", sep: '/', expected: "a-b"},
		{name: "space clamps to dash", sep: ' ', expected: "a-b"},
		{name: "dot clamps to dash", sep: '.', expected: "a-b"},
		{name: "nul clamps to dash", sep: 0, expected: "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := minislug.Make("a b", minislug.Separator(tt.sep))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFallbackOption(t *testing.T) {
	t.Run("custom fallback", func(t *testing.T) {
		assert.Equal(t, "untitled", minislug.Make("", minislug.Fallback("untitled")))
	})

	t.Run("empty fallback keeps default", func(t *testing.T) {
		assert.Equal(t, "file", minislug.Make("", minislug.Fallback("")))
	})

	t.Run("fallback unused for non-empty result", func(t *testing.T) {
		assert.Equal(t, "doc", minislug.Make("doc", minislug.Fallback("untitled")))
	})
}

func TestDefaults(t *testing.T) {
	// Defaults: '-' separator, lowercase, 255-byte cap, underscore kept,
	// leading dot avoided, "file" fallback.
	assert.Equal(t, "some_file-name", minislug.Make("Some_File Name!"))
	assert.Equal(t, "file", minislug.Make(""))
	assert.Len(t, minislug.Make(longWord(400)), 255)
}

func longWord(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
