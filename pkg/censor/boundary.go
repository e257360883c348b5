package censor

import (
	"strconv"
	"unicode"
)

// Boundary classifies one character of a Sentence.
type Boundary uint8

const (
	// BoundaryStart is the first character of a word with two or more characters.
	BoundaryStart Boundary = iota
	// BoundaryWord is a character inside a word.
	BoundaryWord
	// BoundaryEnd is the last character of a word with two or more characters.
	BoundaryEnd
	// BoundaryMixed is a one-character word, both its start and its end.
	BoundaryMixed
	// BoundaryNoContent is a non-word character such as whitespace or punctuation.
	// Matching skips it.
	BoundaryNoContent
	// BoundaryMarked is a character that belongs to a recorded match.
	BoundaryMarked
)

var boundaryNames = [...]string{
	BoundaryStart:     "Start",
	BoundaryWord:      "Word",
	BoundaryEnd:       "End",
	BoundaryMixed:     "Mixed",
	BoundaryNoContent: "NoContent",
	BoundaryMarked:    "Marked",
}

func (b Boundary) String() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return "Boundary(" + strconv.Itoa(int(b)) + ")"
}

// IsStart reports whether a word starts at this character.
func (b Boundary) IsStart() bool {
	return b == BoundaryStart || b == BoundaryMixed
}

// IsEnd reports whether a word ends at this character.
func (b Boundary) IsEnd() bool {
	return b == BoundaryEnd || b == BoundaryMixed
}

// IsContent reports whether the character is an unmarked word character.
func (b Boundary) IsContent() bool {
	switch b {
	case BoundaryStart, BoundaryWord, BoundaryEnd, BoundaryMixed:
		return true
	case BoundaryNoContent, BoundaryMarked:
		return false
	}
	return false
}

// beforeMarked is the new value of a boundary right before a marked range:
// the word it belongs to now ends here.
func (b Boundary) beforeMarked() Boundary {
	switch b {
	case BoundaryStart, BoundaryMixed:
		return BoundaryMixed
	case BoundaryWord:
		return BoundaryEnd
	case BoundaryEnd, BoundaryNoContent, BoundaryMarked:
		return b
	}
	return b
}

// afterMarked is the new value of a boundary right after a marked range:
// the word it belongs to now starts here.
func (b Boundary) afterMarked() Boundary {
	switch b {
	case BoundaryEnd, BoundaryMixed:
		return BoundaryMixed
	case BoundaryWord:
		return BoundaryStart
	case BoundaryStart, BoundaryNoContent, BoundaryMarked:
		return b
	}
	return b
}

// isWordRune reports whether r is part of a word: letters, numbers and the
// combining signs that belong to alphabetic scripts.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// classify produces one Boundary per character of contents.
func classify(contents []rune) []Boundary {
	boundaries := make([]Boundary, len(contents))

	for i := 0; i < len(contents); {
		if !isWordRune(contents[i]) {
			boundaries[i] = BoundaryNoContent
			i++
			continue
		}

		j := i + 1
		for j < len(contents) && isWordRune(contents[j]) {
			j++
		}

		if j-i == 1 {
			boundaries[i] = BoundaryMixed
		} else {
			boundaries[i] = BoundaryStart
			for k := i + 1; k < j-1; k++ {
				boundaries[k] = BoundaryWord
			}
			boundaries[j-1] = BoundaryEnd
		}
		i = j
	}

	return boundaries
}
