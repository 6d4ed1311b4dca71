//go:build slugnotranslit

package minislug

const translitEnabled = false

func transliterate(rune, bool) (string, bool) {
	return "", false
}
