// Package confusables maps Unicode look-alike characters to the canonical
// text they are read as.
//
// The lookup table is generated from data/confusables.txt and is read-only,
// so every function in this package is safe for concurrent use.
package confusables

import "strings"

//go:generate go run ./internal/generator -data data/confusables.txt -o table.go

// Lookup returns the replacement text for r and whether r is a known
// confusable.
func Lookup(r rune) (string, bool) {
	s, ok := table[r]
	return s, ok
}

// Contains reports whether s holds at least one confusable character.
func Contains(s string) bool {
	for _, r := range s {
		if _, ok := table[r]; ok {
			return true
		}
	}

	return false
}

// Replace returns s with every confusable character replaced by its
// canonical text. Other characters are copied unchanged.
func Replace(s string) string {
	if !Contains(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if repl, ok := table[r]; ok {
			sb.WriteString(repl)
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// Len returns the number of code points in the table.
func Len() int {
	return len(table)
}
