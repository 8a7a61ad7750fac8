package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes free text for matching: diacritics are folded
// ("café" -> "cafe"), letters are lower-cased, every character that is not a
// letter, digit or whitespace is dropped, and whitespace runs collapse to a
// single space with no leading or trailing space.
//
// ':' and '/' survive only when both neighbours are digits so clock times
// ("3:30") and numeric dates ("1/15") stay recognizable.
//
// Normalize is total and idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Transformers and casers are stateful, so build them per call.
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, text); err == nil {
		text = folded
	}
	rs := []rune(cases.Lower(language.Und).String(text))

	var b strings.Builder
	b.Grow(len(rs))
	pendingSpace := false

	for i, r := range rs {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		case isDigitSeparator(rs, i):
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isDigitSeparator(rs []rune, i int) bool {
	if rs[i] != ':' && rs[i] != '/' {
		return false
	}
	return i > 0 && i+1 < len(rs) && unicode.IsDigit(rs[i-1]) && unicode.IsDigit(rs[i+1])
}
