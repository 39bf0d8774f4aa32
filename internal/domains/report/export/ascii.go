package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var strokeLetters = strings.NewReplacer("đ", "d", "Đ", "D")

// ASCII folds Vietnamese diacritics for the PDF core fonts, which only carry
// Latin-1 glyphs. Anything still outside ASCII is dropped.
func ASCII(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(fold, strokeLetters.Replace(s))
	if err != nil {
		out = s
	}

	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, out)
}
