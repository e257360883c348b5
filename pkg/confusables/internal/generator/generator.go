/*
Generator for the confusables lookup table.

The table is generated from the companion file "data/confusables.txt". Every
non-blank, non-comment line holds two whitespace separated fields: the target
text and a run of source characters that all read as that target. A source
listed twice keeps the mapping of the later line.

Usage

	generator [-v] [-data data/confusables.txt] [-o table.go]

It is designed to be called from the "confusables" directory through
go:generate.
*/
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// mapping is one source code point and its replacement text.
type mapping struct {
	Source rune
	Target string
}

var tableTemplate = `// Code generated by generator from data/confusables.txt; DO NOT EDIT.

package confusables

// table maps a confusable code point to the text it is read as.
var table = map[rune]string{
{{range .}}	{{printf "%+q" .Source}}: {{printf "%q" .Target}},
{{end}}}
`

func main() {
	var (
		verbose  bool
		dataPath string
		outPath  string
	)

	flag.BoolVar(&verbose, "v", false, "Verbose output.")
	flag.StringVar(&dataPath, "data", "data/confusables.txt", "Path to the confusables data file.")
	flag.StringVar(&outPath, "o", "table.go", "Path of the generated Go file.")
	flag.Parse()

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	mappings, err := loadMappings(dataPath)
	if err != nil {
		log.Fatalf("[generator] failed to load %s: %v", dataPath, err)
	}

	src, err := render(mappings)
	if err != nil {
		log.Fatalf("[generator] failed to render table: %v", err)
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		log.Fatalf("[generator] failed to write %s: %v", outPath, err)
	}
	log.Infof("[generator] wrote %d confusables to %s", len(mappings), outPath)
}

func loadMappings(path string) ([]mapping, error) {
	defer timeTrack(time.Now(), "loading "+path)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table := make(map[rune]string)
	s := bufio.NewScanner(f)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 fields, got %d", lineNo, len(fields))
		}
		if !utf8.ValidString(fields[1]) {
			return nil, fmt.Errorf("line %d: invalid UTF-8 in sources", lineNo)
		}

		for _, r := range fields[1] {
			if prev, ok := table[r]; ok && prev != fields[0] {
				log.Debugf("[generator] line %d: %+q remapped from %q to %q", lineNo, r, prev, fields[0])
			}
			table[r] = fields[0]
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	mappings := make([]mapping, 0, len(table))
	for r, target := range table {
		mappings = append(mappings, mapping{Source: r, Target: target})
	}
	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].Source < mappings[j].Source
	})

	return mappings, nil
}

func render(mappings []mapping) ([]byte, error) {
	t := template.Must(template.New("table").Parse(tableTemplate))

	var buf bytes.Buffer
	if err := t.Execute(&buf, mappings); err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}

func timeTrack(start time.Time, name string) {
	log.Debugf("[generator] %s took %s", name, time.Since(start))
}
