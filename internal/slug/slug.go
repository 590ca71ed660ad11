// Package slug derives URL-safe identifiers from human titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, recomposes to NFC.
// "Üretim" becomes "Uretim", "Çözüm" becomes "Cozum".
var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Turkish dotless/dotted i and a few letters NFD does not decompose.
var replacer = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ß", "ss",
	"æ", "ae", "Æ", "ae",
	"ø", "o", "Ø", "o",
	"đ", "d", "Đ", "d",
	"ł", "l", "Ł", "l",
)

// Make derives a slug from a title: lowercase, diacritics folded,
// non-alphanumeric runs collapsed to single hyphens, leading/trailing
// hyphens trimmed. Deterministic and idempotent: Make(Make(s)) == Make(s).
func Make(title string) string {
	folded, _, err := transform.String(stripMarks, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(replacer.Replace(folded))

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress leading hyphen
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
