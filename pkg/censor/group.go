package censor

import "fmt"

// WordGroup is an ordered list of words matched together against a Sentence.
type WordGroup struct {
	words []*Word
}

// NewWordGroup compiles every pattern. It fails on the first pattern that
// does not compile.
func NewWordGroup(patterns []string) (*WordGroup, error) {
	words := make([]*Word, 0, len(patterns))
	for i, p := range patterns {
		w, err := NewWord(p)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		words = append(words, w)
	}

	return &WordGroup{words: words}, nil
}

// Len returns the number of words in the group.
func (g *WordGroup) Len() int {
	if g == nil {
		return 0
	}
	return len(g.words)
}

// Words returns the words in the group.
func (g *WordGroup) Words() []*Word {
	if g == nil {
		return nil
	}
	return append([]*Word(nil), g.words...)
}

// Matches runs every word against s and reports whether any of them marked
// something. All words run even after a hit so that s ends up with every
// match marked.
func (g *WordGroup) Matches(s *Sentence) bool {
	return len(g.Match(s)) > 0
}

// Match runs every word against s and returns the words that marked
// something, in group order.
func (g *WordGroup) Match(s *Sentence) []*Word {
	if g == nil {
		return nil
	}

	var matched []*Word
	for _, w := range g.words {
		if w.Matches(s) {
			matched = append(matched, w)
		}
	}

	return matched
}
