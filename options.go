package minislug

// Option configures slug generation.
type Option func(*options)

type options struct {
	separator       rune
	lowercase       bool
	maxLenBytes     int
	allowUnicode    bool
	keepUnderscore  bool
	avoidLeadingDot bool
	fallback        string
}

func defaultOptions() options {
	return options{
		separator:       '-',
		lowercase:       true,
		maxLenBytes:     255, // common filesystem limit
		allowUnicode:    false,
		keepUnderscore:  true,
		avoidLeadingDot: true,
		fallback:        "file",
	}
}

// Separator sets the character emitted between words. Only '-', '_', '+',
// and '~' are accepted; any other value is replaced with '-' so callers
// cannot inject an unsafe separator like '/'.
// Default: '-'.
func Separator(c rune) Option {
	return func(o *options) {
		o.separator = c
	}
}

// Lowercase controls ASCII case folding. Unicode lowercasing applies only
// to characters kept via AllowUnicode.
// Default: true.
func Lowercase(v bool) Option {
	return func(o *options) {
		o.lowercase = v
	}
}

// MaxLenBytes caps the UTF-8 encoded length of the result. Truncation
// removes whole runes, never splitting a multi-byte character. Budgets
// smaller than a single rune degrade to the fallback name; negative
// values are clamped to zero.
// Default: 255.
func MaxLenBytes(n int) Option {
	return func(o *options) {
		o.maxLenBytes = n
	}
}

// AllowUnicode keeps Unicode letters and digits as-is instead of
// transliterating them. Has no effect when the package is built with the
// slugnounicode tag.
// Default: false.
func AllowUnicode(v bool) Option {
	return func(o *options) {
		o.allowUnicode = v
	}
}

// KeepUnderscore keeps '_' as a literal character. When false, underscores
// become separator boundaries like whitespace.
// Default: true.
func KeepUnderscore(v bool) Option {
	return func(o *options) {
		o.keepUnderscore = v
	}
}

// AvoidLeadingDot prefixes results starting with '.' with an underscore,
// so slugs never name hidden files on Unix.
// Default: true.
func AvoidLeadingDot(v bool) Option {
	return func(o *options) {
		o.avoidLeadingDot = v
	}
}

// Fallback sets the name used when the input reduces to nothing. The
// fallback is emitted verbatim and is expected to already be a safe name.
// Default: "file".
func Fallback(s string) Option {
	return func(o *options) {
		if s != "" {
			o.fallback = s
		}
	}
}

// resolve applies opts over the defaults and clamps fields to safe values.
// Resolution never fails: invalid values are replaced, not rejected.
func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.separator {
	case '-', '_', '+', '~':
	default:
		o.separator = '-'
	}
	if o.maxLenBytes < 0 {
		o.maxLenBytes = 0
	}
	return o
}
