//go:build slugnounicode

package minislug

const unicodeEnabled = false

// Stub so the classifier stays a single code path; the unicodeEnabled
// check makes this unreachable.
type unicodeLowerer struct{}

func newUnicodeLowerer() *unicodeLowerer {
	return nil
}

func (l *unicodeLowerer) lower(r rune) string {
	return string(r)
}
