// Package wordlist reads word lists in the formats the service accepts.
//
// Text lists hold one pattern per line. Blank lines and lines starting with
// "#" are ignored; a pattern that starts with a literal "#" is written "\#".
//
// JSON lists are an array whose items are either a pattern string or an
// object with "pattern", an optional "text" label and optional "exceptions":
// whole words the pattern matches that are nevertheless allowed.
//
// TOML lists use one [[word]] table per entry with the same keys.
package wordlist

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownFormat is returned for a file extension no parser handles.
	ErrUnknownFormat = errors.New("unknown word list format")
	// ErrEmptyList is returned when a list has no entries.
	ErrEmptyList = errors.New("word list is empty")
	// ErrFetch is returned when a remote list cannot be downloaded.
	ErrFetch = errors.New("failed to fetch word list")
)

// Format is a word list encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Entry is one word of a list.
type Entry struct {
	// Text is an optional human readable label, e.g. the word the pattern
	// was written for.
	Text       string   `json:"text,omitempty" toml:"text"`
	Pattern    string   `json:"pattern" toml:"pattern"`
	Exceptions []string `json:"exceptions,omitempty" toml:"exceptions"`
}

// FormatOf guesses the format from a file name or URL path.
func FormatOf(name string) (Format, error) {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}

	dot := strings.LastIndexByte(name, '.')
	if dot < 0 || strings.ContainsRune(name[dot:], '/') {
		return FormatText, nil
	}

	switch strings.ToLower(name[dot+1:]) {
	case "txt", "list", "words":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", ErrUnknownFormat
}
