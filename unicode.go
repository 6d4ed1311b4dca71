//go:build !slugnounicode

package minislug

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const unicodeEnabled = true

// unicodeLowerer applies full Unicode lowercasing, including one-to-many
// mappings the simple unicode.ToLower cannot express. A cases.Caser is
// stateful and not safe for concurrent use, so Make builds one per call.
type unicodeLowerer struct {
	c cases.Caser
}

func newUnicodeLowerer() *unicodeLowerer {
	return &unicodeLowerer{c: cases.Lower(language.Und)}
}

func (l *unicodeLowerer) lower(r rune) string {
	return l.c.String(string(r))
}
