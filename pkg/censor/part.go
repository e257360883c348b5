package censor

import (
	"slices"
	"strings"
)

// PartKind is the kind of one element of a compiled Word.
type PartKind uint8

const (
	// PartSingle matches one literal character.
	PartSingle PartKind = iota
	// PartGroup matches any character of a set.
	PartGroup
	// PartSingleWildcard matches any one character.
	PartSingleWildcard
	// PartAnyWildcard matches any run of characters, including none.
	PartAnyWildcard
)

func (k PartKind) String() string {
	switch k {
	case PartSingle:
		return "Single"
	case PartGroup:
		return "Group"
	case PartSingleWildcard:
		return "SingleWildcard"
	case PartAnyWildcard:
		return "AnyWildcard"
	}
	return "PartKind(?)"
}

// Pattern syntax.
const (
	wildcard   = '*'
	groupStart = '['
	groupEnd   = ']'
	escape     = '\\'
)

// Part is one element of a compiled Word.
type Part struct {
	Kind PartKind
	// Char is set for PartSingle.
	Char rune
	// Group is set for PartGroup: distinct characters in first-seen order.
	Group []rune
}

// Matches reports whether c can be consumed by the part.
func (p Part) Matches(c rune) bool {
	switch p.Kind {
	case PartSingle:
		return p.Char == c
	case PartGroup:
		return slices.Contains(p.Group, c)
	case PartSingleWildcard, PartAnyWildcard:
		return true
	}
	return false
}

// Repeats reports whether c may be absorbed as a duplicate by a part that has
// just consumed previous. Literal parts absorb any character they match, so
// "bar" also finds "bbaarr". A single wildcard only absorbs a repetition of
// the character it consumed.
func (p Part) Repeats(c, previous rune) bool {
	switch p.Kind {
	case PartSingle, PartGroup:
		return p.Matches(c)
	case PartSingleWildcard:
		return c == previous
	case PartAnyWildcard:
		return true
	}
	return false
}

// skippable reports whether matching may move past the part without
// consuming a character: an any-wildcard can match nothing, and a literal
// that is not a word character never sees one because matching skips them.
func (p Part) skippable() bool {
	switch p.Kind {
	case PartAnyWildcard:
		return true
	case PartSingle:
		return !isWordRune(p.Char)
	case PartGroup:
		return !slices.ContainsFunc(p.Group, isWordRune)
	case PartSingleWildcard:
		return false
	}
	return false
}

// String renders the part in pattern syntax.
func (p Part) String() string {
	var sb strings.Builder
	p.writeTo(&sb)
	return sb.String()
}

func (p Part) writeTo(sb *strings.Builder) {
	switch p.Kind {
	case PartSingle:
		if p.Char == wildcard || p.Char == groupStart || p.Char == escape {
			sb.WriteRune(escape)
		}
		sb.WriteRune(p.Char)
	case PartGroup:
		sb.WriteRune(groupStart)
		for _, c := range p.Group {
			if c == groupEnd || c == escape {
				sb.WriteRune(escape)
			}
			sb.WriteRune(c)
		}
		sb.WriteRune(groupEnd)
	case PartSingleWildcard:
		sb.WriteRune(wildcard)
	case PartAnyWildcard:
		sb.WriteRune(wildcard)
		sb.WriteRune(wildcard)
	}
}
