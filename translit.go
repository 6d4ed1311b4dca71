//go:build !slugnotranslit

package minislug

import (
	"strings"
	"unicode"
)

const translitEnabled = true

// transliterate maps a non-ASCII rune to an ASCII replacement, reporting
// whether a mapping exists. Replacements are lowercase; when lowercase is
// false an uppercase source rune title-cases its replacement ("Æ" -> "Ae").
// An empty replacement with ok=true means the rune is dropped entirely
// (Cyrillic soft/hard signs).
func transliterate(r rune, lowercase bool) (string, bool) {
	repl, ok := translitTable[r]
	if !ok {
		return "", false
	}
	if !lowercase && unicode.IsUpper(r) && repl != "" {
		repl = strings.ToUpper(repl[:1]) + repl[1:]
	}
	return repl, true
}

// Static rune-to-ASCII mapping: Latin diacritics, a few common symbols,
// and a practical Cyrillic romanization. Runes absent from the table
// become separator boundaries.
var translitTable = map[rune]string{
	// Latin
	'À': "a", 'Á': "a", 'Â': "a", 'Ã': "a", 'Ä': "a", 'Å': "a", 'Ā': "a", 'Ă': "a", 'Ą': "a",
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'ā': "a", 'ă': "a", 'ą': "a",
	'Ç': "c", 'Ć': "c", 'Ĉ': "c", 'Ċ': "c", 'Č': "c",
	'ç': "c", 'ć': "c", 'ĉ': "c", 'ċ': "c", 'č': "c",
	'Ð': "d", 'Ď': "d", 'Đ': "d", 'ð': "d", 'ď': "d", 'đ': "d",
	'È': "e", 'É': "e", 'Ê': "e", 'Ë': "e", 'Ē': "e", 'Ĕ': "e", 'Ė': "e", 'Ę': "e", 'Ě': "e",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e", 'ē': "e", 'ĕ': "e", 'ė': "e", 'ę': "e", 'ě': "e",
	'Ə': "e", 'ə': "e",
	'Ì': "i", 'Í': "i", 'Î': "i", 'Ï': "i", 'Ĩ': "i", 'Ī': "i", 'Ĭ': "i", 'Į': "i", 'İ': "i",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i", 'ĩ': "i", 'ī': "i", 'ĭ': "i", 'į': "i", 'ı': "i",
	'Ł': "l", 'ł': "l",
	'Ñ': "n", 'Ń': "n", 'Ņ': "n", 'Ň': "n",
	'ñ': "n", 'ń': "n", 'ņ': "n", 'ň': "n",
	'Ò': "o", 'Ó': "o", 'Ô': "o", 'Õ': "o", 'Ö': "o", 'Ø': "o", 'Ō': "o", 'Ŏ': "o", 'Ő': "o",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ø': "o", 'ō': "o", 'ŏ': "o", 'ő': "o",
	'Š': "s", 'š': "s", 'Ś': "s", 'ś': "s",
	'Ù': "u", 'Ú': "u", 'Û': "u", 'Ü': "u", 'Ũ': "u", 'Ū': "u", 'Ŭ': "u", 'Ů': "u", 'Ű': "u", 'Ų': "u",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u", 'ũ': "u", 'ū': "u", 'ŭ': "u", 'ů': "u", 'ű': "u", 'ų': "u",
	'Ý': "y", 'Ÿ': "y", 'ý': "y", 'ÿ': "y",
	'Ž': "z", 'ž': "z", 'Ź': "z", 'ź': "z", 'Ż': "z", 'ż': "z",
	'Þ': "th", 'þ': "th",
	'Æ': "ae", 'æ': "ae",
	'Œ': "oe", 'œ': "oe",
	'ß': "ss",

	// Symbols
	'€': "e", '∂': "o", '∫': "s", 'β': "b",

	// Cyrillic
	'А': "a", 'а': "a",
	'Б': "b", 'б': "b",
	'В': "v", 'в': "v",
	'Г': "g", 'г': "g", 'Ґ': "g", 'ґ': "g",
	'Д': "d", 'д': "d",
	'Е': "e", 'е': "e", 'Ё': "e", 'ё': "e", 'Э': "e", 'э': "e",
	'Ж': "zh", 'ж': "zh",
	'З': "z", 'з': "z",
	'И': "i", 'и': "i", 'І': "i", 'і': "i",
	'Й': "y", 'й': "y", 'Ы': "y", 'ы': "y",
	'К': "k", 'к': "k",
	'Л': "l", 'л': "l",
	'М': "m", 'м': "m",
	'Н': "n", 'н': "n",
	'О': "o", 'о': "o",
	'П': "p", 'п': "p",
	'Р': "r", 'р': "r",
	'С': "s", 'с': "s",
	'Т': "t", 'т': "t",
	'У': "u", 'у': "u",
	'Ф': "f", 'ф': "f",
	'Х': "h", 'х': "h",
	'Ц': "ts", 'ц': "ts",
	'Ч': "ch", 'ч': "ch",
	'Ш': "sh", 'ш': "sh",
	'Щ': "shch", 'щ': "shch",
	'Ю': "yu", 'ю': "yu",
	'Я': "ya", 'я': "ya",
	'Є': "ye", 'є': "ye",
	'Ї': "yi", 'ї': "yi",

	// Soft/hard signs carry no sound: drop without a boundary.
	'Ъ': "", 'ъ': "", 'Ь': "", 'ь': "",
}
