package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds a free-text district name onto the key space used by the
// alias table: decomposed with combining marks dropped, non-ASCII remnants
// removed, lowercased, whitespace collapsed. Decomposition is canonical
// (NFD), so compatibility symbols such as ™ stay composed and fall to the
// ASCII filter instead of expanding into letters. Lowercasing runs last;
// the output is always lowercase ASCII, a fixed point of every step, so
// normalized keys can be re-normalized safely.
func Normalize(name string) string {
	decomposed := norm.NFD.String(name)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
	}
	lowered := strings.ToLower(b.String())
	return strings.Join(strings.Fields(lowered), " ")
}
