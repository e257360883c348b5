package censor

import (
	"slices"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"wordguard/pkg/normalize"
)

// Word is a compiled pattern.
//
// Pattern syntax, applied after normalization:
//
//	[abc]    any one of a, b, c
//	\c       the character c taken literally
//	*        any one character
//	**       any run of characters; leading or trailing, it lets the match
//	         start or end inside a word
//
// Everything else is a literal character.
type Word struct {
	parts      []Part
	boundLeft  bool
	boundRight bool
	minLen     int

	// exceptions are normalized whole words that are never marked, even
	// when the pattern matches inside them.
	exceptions []string
}

// NewWord normalizes pattern and compiles it. Errors unwrap to one of
// ErrEmptyWord, ErrUnterminatedGroup, ErrTrailingEscape or ErrWildcardOnly.
func NewWord(pattern string) (*Word, error) {
	parts, err := parseParts([]rune(normalize.Normalize(pattern)))
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	if len(parts) == 0 {
		return nil, &PatternError{Pattern: pattern, Err: ErrEmptyWord}
	}

	w := &Word{boundLeft: true, boundRight: true}
	for len(parts) > 0 && parts[0].Kind == PartAnyWildcard {
		parts = parts[1:]
		w.boundLeft = false
	}
	for len(parts) > 0 && parts[len(parts)-1].Kind == PartAnyWildcard {
		parts = parts[:len(parts)-1]
		w.boundRight = false
	}
	if len(parts) == 0 {
		return nil, &PatternError{Pattern: pattern, Err: ErrWildcardOnly}
	}

	w.parts = parts
	for _, p := range parts {
		if !p.skippable() {
			w.minLen++
		}
	}

	return w, nil
}

// MustWord is like NewWord but panics on error.
func MustWord(pattern string) *Word {
	w, err := NewWord(pattern)
	if err != nil {
		panic(err)
	}
	return w
}

// Except returns a copy of w that leaves the given words alone. A match is
// dropped when the word around it, extended to the nearest non-word
// characters, equals one of them after normalization.
func (w *Word) Except(words ...string) *Word {
	cp := *w
	cp.exceptions = slices.Clone(w.exceptions)
	for _, e := range words {
		if e = normalize.Normalize(strings.TrimSpace(e)); e != "" {
			cp.exceptions = append(cp.exceptions, e)
		}
	}
	return &cp
}

func parseParts(src []rune) ([]Part, error) {
	parts := make([]Part, 0, len(src))

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case wildcard:
			if i+1 < len(src) && src[i+1] == wildcard {
				parts = append(parts, Part{Kind: PartAnyWildcard})
				i++
				continue
			}
			parts = append(parts, Part{Kind: PartSingleWildcard})

		case groupStart:
			group, end, err := parseGroup(src, i+1)
			if err != nil {
				return nil, err
			}
			i = end

			switch len(group) {
			case 0:
			case 1:
				parts = append(parts, Part{Kind: PartSingle, Char: group[0]})
			default:
				parts = append(parts, Part{Kind: PartGroup, Group: group})
			}

		case escape:
			if i+1 >= len(src) {
				return nil, ErrTrailingEscape
			}
			i++
			parts = append(parts, Part{Kind: PartSingle, Char: src[i]})

		default:
			parts = append(parts, Part{Kind: PartSingle, Char: c})
		}
	}

	return parts, nil
}

// parseGroup reads a character group starting at src[from], right after the
// opening bracket. It returns the distinct characters and the index of the
// closing bracket.
func parseGroup(src []rune, from int) ([]rune, int, error) {
	set := linkedhashset.New()

	for i := from; i < len(src); i++ {
		switch src[i] {
		case groupEnd:
			group := make([]rune, 0, set.Size())
			for _, v := range set.Values() {
				group = append(group, v.(rune))
			}
			return group, i, nil
		case escape:
			if i+1 < len(src) {
				i++
				set.Add(src[i])
			}
		default:
			set.Add(src[i])
		}
	}

	return nil, 0, ErrUnterminatedGroup
}

// Parts returns a copy of the compiled parts, without the leading and
// trailing any-wildcards that became the bound flags.
func (w *Word) Parts() []Part {
	parts := make([]Part, len(w.parts))
	for i, p := range w.parts {
		p.Group = slices.Clone(p.Group)
		parts[i] = p
	}
	return parts
}

// BoundLeft reports whether a match must start at the start of a word.
func (w *Word) BoundLeft() bool { return w.boundLeft }

// BoundRight reports whether a match must end at the end of a word.
func (w *Word) BoundRight() bool { return w.boundRight }

// Len returns the number of compiled parts.
func (w *Word) Len() int { return len(w.parts) }

// String renders the word back into pattern syntax. Compiling the result
// yields the same word.
func (w *Word) String() string {
	var sb strings.Builder
	if !w.boundLeft {
		sb.WriteString("**")
	}
	for _, p := range w.parts {
		p.writeTo(&sb)
	}
	if !w.boundRight {
		sb.WriteString("**")
	}
	return sb.String()
}

// Matches finds every occurrence of w in s and marks it. It reports whether
// anything was marked. Already marked text is never matched again.
func (w *Word) Matches(s *Sentence) bool {
	if s == nil || w.minLen == 0 {
		return false
	}

	m := w.matcher(s)
	matched := false
	for _, sp := range s.Spans() {
		if sp.Len() < w.minLen {
			continue
		}
		if m.scan(sp) {
			matched = true
		}
	}

	return matched
}
