package wordlist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Parse reads a list in the given format.
func Parse(r io.Reader, format Format) ([]Entry, error) {
	switch format {
	case FormatText:
		return ParseText(r)
	case FormatJSON, FormatTOML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read word list: %w", err)
		}
		if format == FormatJSON {
			return ParseJSON(data)
		}
		return ParseTOML(data)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ParseText reads a plain text list, one pattern per line.
func ParseText(r io.Reader) ([]Entry, error) {
	s := bufio.NewScanner(r)
	entries := make([]Entry, 0, 16)

	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entries = append(entries, Entry{Pattern: line})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyList
	}

	return entries, nil
}

// ParseTextString parses a plain text list from string input.
func ParseTextString(src string) ([]Entry, error) {
	return ParseText(strings.NewReader(src))
}

// ParseJSON reads a JSON array of pattern strings or entry objects.
func ParseJSON(data []byte) ([]Entry, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode word list: %w", err)
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)

		var e Entry
		if len(item) > 0 && item[0] == '"' {
			if err := json.Unmarshal(item, &e.Pattern); err != nil {
				return nil, fmt.Errorf("decode word list item %d: %w", i, err)
			}
		} else if err := json.Unmarshal(item, &e); err != nil {
			return nil, fmt.Errorf("decode word list item %d: %w", i, err)
		}

		if e.Pattern == "" {
			return nil, fmt.Errorf("word list item %d has no pattern", i)
		}
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyList
	}

	return entries, nil
}

type tomlList struct {
	Word []Entry `toml:"word"`
}

// ParseTOML reads a TOML document with one [[word]] table per entry.
func ParseTOML(data []byte) ([]Entry, error) {
	var list tomlList
	if _, err := toml.Decode(string(data), &list); err != nil {
		return nil, fmt.Errorf("decode word list: %w", err)
	}

	for i, e := range list.Word {
		if e.Pattern == "" {
			return nil, fmt.Errorf("word list item %d has no pattern", i)
		}
	}
	if len(list.Word) == 0 {
		return nil, ErrEmptyList
	}

	return list.Word, nil
}
