// Package textutil folds display names into file-name-safe slugs.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldAccents strips combining marks, so "Açaí" becomes "Acai".
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Slug lowercases s, folds accents and joins runs of letters and digits with
// underscores. An empty result becomes "unknown".
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(FoldAccents(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}

// Unslug turns a slug back into a readable title, "pizza_palace" into "Pizza Palace".
func Unslug(slug string) string {
	words := strings.Fields(strings.ReplaceAll(slug, "_", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
