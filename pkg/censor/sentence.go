package censor

import (
	"fmt"
	"slices"
	"strings"

	"wordguard/pkg/normalize"
)

// DefaultCharacter replaces censored characters when no other is configured.
const DefaultCharacter = "*"

// Span is a half-open range [Start, End) of a Sentence that is still eligible
// for matching.
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// CensorOptions controls ToCensoredString.
type CensorOptions struct {
	// Character replaces every marked character. Defaults to DefaultCharacter.
	Character string
	// Original supplies the unmarked characters. It must have exactly as many
	// characters as the sentence.
	Original string
}

// Sentence is a normalized text with per-character boundaries and the spans
// still eligible for matching. Matching a Word against a Sentence records
// matches in it, so a Sentence must not be shared between goroutines.
type Sentence struct {
	contents   []rune
	boundaries []Boundary
	spans      []Span

	source  []rune
	origin  []int
	aligned bool
}

// NewSentence normalizes text and classifies every resulting character.
// A non-empty sentence starts with one span covering all of it.
func NewSentence(text string) *Sentence {
	nt := normalize.NormalizeText(text)

	s := &Sentence{
		contents:   nt.Runes,
		boundaries: classify(nt.Runes),
		source:     []rune(text),
		origin:     nt.Source,
		aligned:    nt.Aligned(),
	}
	if len(s.contents) > 0 {
		s.spans = []Span{{Start: 0, End: len(s.contents)}}
	}

	return s
}

// Len returns the number of normalized characters.
func (s *Sentence) Len() int {
	return len(s.contents)
}

// String returns the normalized text.
func (s *Sentence) String() string {
	return string(s.contents)
}

// Boundaries returns a copy of the per-character boundaries.
func (s *Sentence) Boundaries() []Boundary {
	return slices.Clone(s.boundaries)
}

// Spans returns a copy of the spans still eligible for matching.
func (s *Sentence) Spans() []Span {
	return slices.Clone(s.spans)
}

// Checked returns one flag per character, true where the character is marked.
func (s *Sentence) Checked() []bool {
	checked := make([]bool, len(s.boundaries))
	for i, b := range s.boundaries {
		checked[i] = b == BoundaryMarked
	}
	return checked
}

// Marked reports whether any character has been marked.
func (s *Sentence) Marked() bool {
	return slices.Contains(s.boundaries, BoundaryMarked)
}

// ToCensoredString renders opts.Original with every character at a marked
// position replaced. It fails with ErrLengthMismatch unless opts.Original has
// as many characters as the sentence.
func (s *Sentence) ToCensoredString(opts CensorOptions) (string, error) {
	char := opts.Character
	if char == "" {
		char = DefaultCharacter
	}

	text := []rune(opts.Original)
	if len(text) != len(s.contents) {
		return "", fmt.Errorf("%w: original has %d characters, sentence has %d",
			ErrLengthMismatch, len(text), len(s.contents))
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for i, c := range text {
		if s.boundaries[i] == BoundaryMarked {
			sb.WriteString(char)
			continue
		}
		sb.WriteRune(c)
	}

	return sb.String(), nil
}

// Redact renders the text the sentence was built from, with every source
// character that produced a marked character replaced by character. Unlike
// ToCensoredString it works when normalization changed the character count.
func (s *Sentence) Redact(character string) string {
	if s.aligned {
		if out, err := s.ToCensoredString(CensorOptions{Character: character, Original: string(s.source)}); err == nil {
			return out
		}
	}

	if character == "" {
		character = DefaultCharacter
	}

	censored := make([]bool, len(s.source))
	for i, b := range s.boundaries {
		if b == BoundaryMarked {
			censored[s.origin[i]] = true
		}
	}

	var sb strings.Builder
	sb.Grow(len(s.source))
	for i, c := range s.source {
		if censored[i] {
			sb.WriteString(character)
			continue
		}
		sb.WriteRune(c)
	}

	return sb.String()
}

// mark records [start, end) as a match. The range must lie within one span;
// anything else is a bug in the caller and panics.
func (s *Sentence) mark(start, end int) {
	if start < 0 || end > len(s.contents) || start >= end {
		panic(fmt.Sprintf("censor: mark [%d, %d) out of range for sentence of length %d", start, end, len(s.contents)))
	}

	start, end = s.markSpans(start, end)
	s.markBoundaries(start, end)
}

// markSpans removes [start, end) from its span, after widening it over
// adjacent non-word characters of the same span. It returns the widened range.
func (s *Sentence) markSpans(start, end int) (int, int) {
	idx := slices.IndexFunc(s.spans, func(sp Span) bool {
		return sp.Start <= start && end <= sp.End
	})
	if idx < 0 {
		panic(fmt.Sprintf("censor: mark [%d, %d) is not contained in any span of %v", start, end, s.spans))
	}
	cur := s.spans[idx]

	for start > cur.Start && s.boundaries[start-1] == BoundaryNoContent {
		start--
	}
	for end < cur.End && s.boundaries[end] == BoundaryNoContent {
		end++
	}

	rest := make([]Span, 0, 2)
	if cur.Start < start {
		rest = append(rest, Span{Start: cur.Start, End: start})
	}
	if end < cur.End {
		rest = append(rest, Span{Start: end, End: cur.End})
	}
	s.spans = slices.Replace(s.spans, idx, idx+1, rest...)
	s.coalesce()

	return start, end
}

// coalesce merges spans that touch. Spans separated by marked characters
// never touch, so marked text never re-enters a span.
func (s *Sentence) coalesce() {
	for i := 1; i < len(s.spans); {
		if s.spans[i-1].End == s.spans[i].Start {
			s.spans[i-1].End = s.spans[i].End
			s.spans = slices.Delete(s.spans, i, i+1)
			continue
		}
		i++
	}
}

// markBoundaries marks the word characters of [start, end) and turns the
// characters right around the range into word edges.
func (s *Sentence) markBoundaries(start, end int) {
	for i := start; i < end; i++ {
		if s.boundaries[i] != BoundaryNoContent {
			s.boundaries[i] = BoundaryMarked
		}
	}

	if start > 0 {
		s.boundaries[start-1] = s.boundaries[start-1].beforeMarked()
	}
	if end < len(s.boundaries) {
		s.boundaries[end] = s.boundaries[end].afterMarked()
	}
}
