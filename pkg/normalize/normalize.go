// Package normalize canonicalizes text before word matching.
//
// Pipeline, applied to every source rune on its own:
//  1. confusable table lookup
//  2. otherwise compatibility fold (NFKD, strip non-spacing marks, width fold,
//     NFC) with the table applied to the folded runes
//  3. lowercase, then the table once more for runes the lowercasing produced
//
// Working rune by rune keeps track of which source rune every normalized rune
// came from, which is what lets censoring map results back to the input.
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"wordguard/pkg/confusables"
)

// Text is a normalized string together with the alignment back to its source.
type Text struct {
	// Runes holds the normalized characters.
	Runes []rune
	// Source holds, for every entry of Runes, the index of the source rune it
	// was derived from. It is non-decreasing.
	Source []int
	// SourceLen is the rune count of the source text.
	SourceLen int
}

// String returns the normalized characters as a string.
func (t Text) String() string {
	return string(t.Runes)
}

// Aligned reports whether every source rune produced exactly one normalized
// rune, i.e. positions in Runes and in the source are interchangeable.
func (t Text) Aligned() bool {
	return len(t.Runes) == t.SourceLen
}

// foldPool holds transformer chains; a chain keeps state and must not be
// shared between goroutines.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			runes.Remove(runes.In(unicode.Mn)),
			width.Fold,
			norm.NFC,
		)
	},
}

// Normalize returns the canonical form of s.
func Normalize(s string) string {
	return NormalizeText(s).String()
}

// NormalizeText returns the canonical form of s with its source alignment.
func NormalizeText(s string) Text {
	t := Text{
		Runes:  make([]rune, 0, len(s)),
		Source: make([]int, 0, len(s)),
	}
	lower := cases.Lower(language.Und)

	i := 0
	for _, r := range s {
		for _, c := range lowerPiece(lower, mapRune(r)) {
			t.Runes = append(t.Runes, c)
			t.Source = append(t.Source, i)
		}
		i++
	}
	t.SourceLen = i

	return t
}

// mapRune applies the confusable table and the compatibility fold to r.
func mapRune(r rune) string {
	if repl, ok := confusables.Lookup(r); ok {
		return repl
	}
	if r < utf8.RuneSelf {
		return string(r)
	}

	folded := fold(r)
	if folded == "" {
		// Lone combining marks and the like fold to nothing; keep them so they
		// still occupy a position.
		return string(r)
	}

	return confusables.Replace(folded)
}

func fold(r rune) string {
	tr := foldPool.Get().(transform.Transformer)
	defer foldPool.Put(tr)

	out, _, err := transform.String(tr, string(r))
	if err != nil {
		return ""
	}

	return out
}

// lowerPiece lowercases piece and maps runes produced by lowercasing through
// the table, so upper and lower case forms land on the same canonical text.
func lowerPiece(lower cases.Caser, piece string) string {
	if isLowerASCII(piece) {
		return piece
	}

	lowered := lower.String(piece)
	if lowered == piece {
		return piece
	}

	var sb strings.Builder
	sb.Grow(len(lowered))
	for _, c := range lowered {
		if repl, ok := confusables.Lookup(c); ok {
			sb.WriteString(repl)
			continue
		}
		sb.WriteRune(c)
	}

	return sb.String()
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf || ('A' <= s[i] && s[i] <= 'Z') {
			return false
		}
	}

	return true
}
