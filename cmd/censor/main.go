// Command censor masks listed words in text read from stdin, line by line.
//
//	censor -words words.txt < comments.txt
//	censor -words https://lists.example.com/words.json -check < comment.txt
//
// With -check nothing is printed and the exit status is 1 when any line
// contains a listed word.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"wordguard/pkg/censor"
)

const loadTimeout = 30 * time.Second

func main() {
	var (
		words     string
		character string
		check     bool
		logLevel  string
	)

	flag.StringVar(&words, "words", "", "Word list file path or http(s) URL.")
	flag.StringVar(&character, "char", censor.DefaultCharacter, "Replacement character for censored text.")
	flag.BoolVar(&check, "check", false, "Only report through the exit status whether any line matched.")
	flag.StringVar(&logLevel, "log", "warn", "Log level: debug, info, warn, error.")
	flag.Parse()

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("[censor] %v", err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if words == "" {
		fmt.Fprintln(os.Stderr, "censor: -words is required")
		flag.Usage()
		os.Exit(2)
	}

	c := censor.New()
	c.SetCharacter(character)

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	if strings.HasPrefix(words, "http://") || strings.HasPrefix(words, "https://") {
		err = c.LoadURL(ctx, words)
	} else {
		err = c.LoadFile(words)
	}
	if err != nil {
		log.Fatalf("[censor] failed to load word list %s: %v", words, err)
	}
	log.Debugf("[censor] loaded %d words from %s", c.Len(), words)

	matched, err := filter(c, os.Stdin, os.Stdout, check)
	if err != nil {
		log.Fatalf("[censor] %v", err)
	}
	if check && matched {
		os.Exit(1)
	}
}

// filter copies lines from r to w with listed words masked. When checkOnly is
// set nothing is written. It reports whether any line matched.
func filter(c *censor.Censor, r io.Reader, w io.Writer, checkOnly bool) (bool, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)

	out := bufio.NewWriter(w)
	defer out.Flush()

	matched := false
	for s.Scan() {
		line := s.Text()
		if checkOnly {
			if c.Check(line) {
				return true, nil
			}
			continue
		}

		res := c.Censor(line)
		if len(res.Matched) > 0 {
			matched = true
		}
		if _, err := fmt.Fprintln(out, res.Text); err != nil {
			return matched, fmt.Errorf("write output: %w", err)
		}
	}

	if err := s.Err(); err != nil {
		return matched, fmt.Errorf("read input: %w", err)
	}

	return matched, nil
}
