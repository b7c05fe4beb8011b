package anonymize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// extraMap covers letters whose NFKD decomposition carries no ASCII
// base character.
var extraMap = map[rune]string{
	'Ð': "D", 'ð': "d",
	'Þ': "Th", 'þ': "th",
	'ß': "ss",
	'Æ': "AE", 'æ': "ae",
	'Œ': "OE", 'œ': "oe",
	'Š': "S", 'š': "s",
	'Ž': "Z", 'ž': "z",
}

// Transliterate replaces every non-ASCII character with its closest
// ASCII equivalent: NFKD decomposition with combining marks stripped,
// a manual table for letters that do not decompose, and "?" for
// anything left over.
func Transliterate(text string) string {
	if isASCII(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, ch := range text {
		if ch < 128 {
			b.WriteRune(ch)
			continue
		}
		if repl, ok := extraMap[ch]; ok {
			b.WriteString(repl)
			continue
		}
		decomposed := norm.NFKD.String(string(ch))
		wrote := false
		for _, d := range decomposed {
			if d < 128 && !unicode.Is(unicode.Mn, d) {
				b.WriteRune(d)
				wrote = true
			}
		}
		if !wrote {
			b.WriteByte('?')
		}
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}
