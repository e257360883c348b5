package wordlist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	fetchTimeout = 10 * time.Second
	maxListSize  = 8 << 20
)

// LoadFile reads and parses the list stored at path. The format follows the
// file extension; files without one are read as text.
func LoadFile(path string) ([]Entry, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", path, err)
	}

	return entries, nil
}

// LoadFiles reads and merges lists from files in the given order.
func LoadFiles(paths ...string) ([]Entry, error) {
	out := make([]Entry, 0, len(paths)*16)
	for _, path := range paths {
		entries, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, entries...)
	}

	return out, nil
}

// LoadURL downloads and parses a list. The format comes from the response
// Content-Type, falling back to the URL path extension.
func LoadURL(ctx context.Context, url string) ([]Entry, error) {
	defer timeTrack(time.Now(), url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json, application/toml, text/plain")

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetch, url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxListSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	format, err := formatOfResponse(resp.Header.Get("Content-Type"), url)
	if err != nil {
		return nil, err
	}

	entries, err := Parse(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", url, err)
	}

	return entries, nil
}

func formatOfResponse(contentType, url string) (Format, error) {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "application/json":
			return FormatJSON, nil
		case "application/toml":
			return FormatTOML, nil
		}
	}

	format, err := FormatOf(url)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, url)
	}
	return format, nil
}

func timeTrack(start time.Time, url string) {
	log.Debugf("[wordlist] fetched %s in %v", url, time.Since(start))
}
