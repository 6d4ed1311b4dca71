package minislug

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Make converts input into a safe filename slug.
//
// Forbidden and control characters, whitespace, and common punctuation
// become separator boundaries; runs of boundaries collapse into a single
// separator and never appear at the edges of the result. Trailing dots and
// spaces are trimmed, Windows reserved device names and (optionally)
// leading dots are escaped with an underscore prefix, and the result is
// truncated to the byte budget without splitting a rune. Inputs that
// reduce to nothing yield the fallback name.
//
// Make is a pure function of its arguments and is safe for concurrent use.
func Make(input string, opts ...Option) string {
	o := resolve(opts)

	var b strings.Builder
	if o.maxLenBytes > 0 {
		b.Grow(min(len(input), o.maxLenBytes))
	}

	var lower *unicodeLowerer
	lastWasSep := true // suppresses leading separators

	for _, r := range input {
		// Hard-forbidden filename chars and control chars become boundaries
		// regardless of options.
		if isForbidden(r) {
			lastWasSep = writeSep(&b, o.separator, lastWasSep)
			continue
		}

		// ASCII fast path.
		if isASCIIAlnum(r) {
			writeASCIIAlnum(&b, r, o.lowercase)
			lastWasSep = false
			continue
		}

		if r == '_' && o.keepUnderscore {
			b.WriteByte('_')
			lastWasSep = false
			continue
		}

		// Unicode keep-as-is takes priority over transliteration: a caller
		// asking for Unicode wants the original characters, not an ASCII
		// approximation.
		if unicodeEnabled && o.allowUnicode && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if o.lowercase {
				if lower == nil {
					lower = newUnicodeLowerer()
				}
				b.WriteString(lower.lower(r))
			} else {
				b.WriteRune(r)
			}
			lastWasSep = false
			continue
		}

		if translitEnabled {
			if repl, ok := transliterate(r, o.lowercase); ok {
				if repl == "" {
					// Soft/hard signs vanish without creating a boundary.
					continue
				}
				kept := false
				for _, t := range repl {
					switch {
					case isASCIIAlnum(t):
						writeASCIIAlnum(&b, t, o.lowercase)
						lastWasSep = false
						kept = true
					case t == '_' && o.keepUnderscore:
						b.WriteByte('_')
						lastWasSep = false
						kept = true
					default:
						lastWasSep = writeSep(&b, o.separator, lastWasSep)
					}
				}
				if kept {
					continue
				}
			}
		}

		// Whitespace, separator-class punctuation (including '.', since
		// Windows forbids trailing dots and dots delimit filename parts),
		// and everything else (unmapped symbols, emoji) become boundaries.
		lastWasSep = writeSep(&b, o.separator, lastWasSep)
	}

	out := trimTrailing(b.String(), o.separator)
	out = trimLeading(out, o.separator)

	if out == "" || out == "." || out == ".." {
		out = o.fallback
	}

	if isReservedName(out) {
		out = "_" + out
	}

	if o.avoidLeadingDot && strings.HasPrefix(out, ".") {
		out = "_" + out
	}

	// Enforce the byte budget by popping whole runes, then re-trim: the cut
	// can expose a trailing dot, space, or separator.
	for len(out) > o.maxLenBytes {
		_, size := utf8.DecodeLastRuneInString(out)
		out = out[:len(out)-size]
	}
	out = trimTrailing(out, o.separator)

	if out == "" || out == "." || out == ".." {
		out = o.fallback
	}

	return out
}

// writeSep emits one separator for a boundary run and reports the new
// lastWasSep state, which is always true afterwards. Separators are never
// written twice in a row, and lastWasSep starting true keeps them off the
// front of the output.
func writeSep(b *strings.Builder, sep rune, lastWasSep bool) bool {
	if !lastWasSep {
		b.WriteRune(sep)
	}
	return true
}

func writeASCIIAlnum(b *strings.Builder, r rune, lowercase bool) {
	if lowercase && r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	b.WriteRune(r)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// isForbidden reports whether r may never appear in a filename on Windows:
// the reserved punctuation set plus NUL and all control characters.
func isForbidden(r rune) bool {
	switch r {
	case '<', '>', ':', '"', '/', '\\', '|', '?', '*', 0:
		return true
	}
	return unicode.IsControl(r)
}

// trimTrailing strips trailing dots, spaces, and separators. Windows
// rejects names ending in '.' or ' '.
func trimTrailing(s string, sep rune) string {
	for len(s) > 0 {
		c := s[len(s)-1]
		if c != '.' && c != ' ' && rune(c) != sep {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}

// trimLeading strips leading separators. The classifier never emits a
// separator first, but underscores kept literally via KeepUnderscore can
// start the output when '_' is also the configured separator.
func trimLeading(s string, sep rune) string {
	for len(s) > 0 && rune(s[0]) == sep {
		s = s[1:]
	}
	return s
}

// Names Windows reserves for devices, forbidden as standalone filenames
// in any case combination.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

func isReservedName(s string) bool {
	_, ok := reservedNames[strings.ToUpper(s)]
	return ok
}
