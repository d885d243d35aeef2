package themes

import (
	"regexp"
	"strings"
	"unicode"
)

var nonAlnumRuns = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Roman numerals that appear in theme names (e.g. "moonlight_ii") are kept
// fully upper-case in labels.
var romanNumerals = map[string]string{
	"i": "I", "ii": "II", "iii": "III", "iv": "IV", "v": "V",
	"vi": "VI", "vii": "VII", "viii": "VIII", "ix": "IX", "x": "X",
}

// Unslugify turns a theme file name into a human-readable label: the
// extension is stripped, runs of non-alphanumeric characters collapse to a
// single space, the first character of each word is upper-cased (the rest of
// the word is left as-is) and Roman numerals I through X are fully
// upper-cased.
func Unslugify(filename string) string {
	name := strings.TrimSuffix(filename, Extension)
	name = strings.TrimSpace(nonAlnumRuns.ReplaceAllString(name, " "))
	if name == "" {
		return ""
	}

	words := strings.Split(name, " ")
	for i, word := range words {
		if numeral, ok := romanNumerals[strings.ToLower(word)]; ok {
			words[i] = numeral
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
