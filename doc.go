// Package minislug converts arbitrary text into a single safe filesystem
// path component: a filename that is valid and predictable across Windows,
// macOS, and Linux.
//
// The transformation is a pure function of its input and options. It strips
// characters that are forbidden in filenames, collapses runs of whitespace
// and punctuation into a single separator, trims trailing dots and spaces
// (invalid on Windows), escapes reserved device names like CON and COM1,
// optionally avoids hidden-file names starting with a dot, and caps the
// result to a byte budget without splitting a multi-byte rune. The result
// is never empty: inputs that reduce to nothing yield a fallback name.
//
// Basic usage:
//
//	import "github.com/milchinskiy/minislug"
//
//	s := minislug.Make("Hello, world!")
//	// Output: "hello-world"
//
//	s = minislug.Make("a/b\\c")
//	// Output: "a-b-c"
//
//	s = minislug.Make("CON")
//	// Output: "_con"
//
// # Configuration Options
//
// Separator sets the character emitted between words. Only '-', '_', '+',
// and '~' are accepted; anything else falls back to '-':
//
//	minislug.Make("a b c", minislug.Separator('_'), minislug.KeepUnderscore(false))
//	// Output: "a_b_c"
//
// Lowercase controls case folding (default true):
//
//	minislug.Make("Hello World", minislug.Lowercase(false))
//	// Output: "Hello-World"
//
// MaxLenBytes caps the UTF-8 encoded length (default 255, the common
// filesystem limit):
//
//	minislug.Make("abcdef", minislug.MaxLenBytes(5))
//	// Output: "abcde"
//
// KeepUnderscore keeps '_' as a literal character (default true); when
// disabled underscores become separator boundaries:
//
//	minislug.Make("hello_world", minislug.KeepUnderscore(false))
//	// Output: "hello-world"
//
// AvoidLeadingDot prefixes names that would start with '.' (default true),
// so slugs never produce hidden files on Unix.
//
// Fallback sets the name used when the input reduces to nothing
// (default "file"):
//
//	minislug.Make("...", minislug.Fallback("untitled"))
//	// Output: "untitled"
//
// # Unicode Support
//
// By default non-ASCII characters are transliterated to ASCII via a static
// lookup table covering Latin diacritics, common symbols, and Cyrillic:
//
//	minislug.Make("Crème brûlée")  // "creme-brulee"
//	minislug.Make("straße")        // "strasse"
//	minislug.Make("Киев")          // "kiev"
//
// Characters without a mapping become separator boundaries. With
// AllowUnicode(true), Unicode letters and digits are kept as-is instead:
//
//	minislug.Make("Привіт світ", minislug.AllowUnicode(true))
//	// Output: "привіт-світ"
//
// # Build Tags
//
// Both Unicode paths can be compiled out to shrink binaries that only ever
// see ASCII input: the build tag "slugnounicode" removes the AllowUnicode
// keep-as-is path, and "slugnotranslit" removes the transliteration table.
// With a capability compiled out, the affected characters degrade to
// separator boundaries; the rest of the pipeline is unchanged.
package minislug
