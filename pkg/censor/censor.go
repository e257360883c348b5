// Package censor finds and masks words in free text.
//
// Text is normalized first (see package normalize), so look-alike letters
// from other scripts, accents, fullwidth forms and letter case do not hide a
// word. Words are written in a small pattern language (see Word) and are
// matched on word boundaries unless the pattern says otherwise. Repeated
// letters and non-word characters between letters are tolerated.
//
// Test word lists in test_data only contain harmless placeholder words.
package censor

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"wordguard/pkg/wordlist"
)

// Censor holds the active word list. It is safe for concurrent use and the
// word list can be replaced while requests are served.
type Censor struct {
	mu        sync.RWMutex
	group     *WordGroup
	patterns  []string
	character string
}

// Result is the outcome of censoring one text.
type Result struct {
	// Text is the input with every matched character replaced.
	Text string
	// Matched lists the patterns that matched, in list order.
	Matched []string
}

// New returns an empty Censor instance.
func New() *Censor {
	return &Censor{}
}

// SetCharacter sets the replacement used by Censor. An empty string restores
// DefaultCharacter.
func (c *Censor) SetCharacter(character string) {
	c.mu.Lock()
	c.character = character
	c.mu.Unlock()
}

// Load compiles patterns and makes them the active word list. The previous
// list stays active if any pattern fails to compile.
func (c *Censor) Load(patterns []string) error {
	group, err := NewWordGroup(patterns)
	if err != nil {
		return err
	}

	c.activate(group)
	return nil
}

// LoadEntries is like Load for word list entries, whose exceptions are kept
// with their words.
func (c *Censor) LoadEntries(entries []wordlist.Entry) error {
	words := make([]*Word, 0, len(entries))
	for i, e := range entries {
		w, err := NewWord(e.Pattern)
		if err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
		if len(e.Exceptions) > 0 {
			w = w.Except(e.Exceptions...)
		}
		words = append(words, w)
	}

	c.activate(&WordGroup{words: words})
	return nil
}

func (c *Censor) activate(group *WordGroup) {
	rendered := make([]string, 0, group.Len())
	for _, w := range group.Words() {
		rendered = append(rendered, w.String())
	}

	c.mu.Lock()
	c.group = group
	c.patterns = rendered
	c.mu.Unlock()

	log.Debugf("[censor] loaded %d words", group.Len())
}

// LoadFile loads the word list stored at path. The format follows the file
// extension (see wordlist.LoadFile).
func (c *Censor) LoadFile(path string) error {
	entries, err := wordlist.LoadFile(path)
	if err != nil {
		return err
	}

	return c.LoadEntries(entries)
}

// LoadURL fetches a word list over HTTP and makes it active.
func (c *Censor) LoadURL(ctx context.Context, url string) error {
	entries, err := wordlist.LoadURL(ctx, url)
	if err != nil {
		return err
	}

	return c.LoadEntries(entries)
}

func (c *Censor) snapshot() (*WordGroup, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.group, c.character
}

// Check reports whether text contains any word of the active list.
func (c *Censor) Check(text string) bool {
	group, _ := c.snapshot()
	return group.Matches(NewSentence(text))
}

// Censor masks every word of the active list found in text with the
// configured replacement character.
func (c *Censor) Censor(text string) Result {
	_, character := c.snapshot()
	return c.CensorWith(text, character)
}

// CensorWith is like Censor with an explicit replacement character.
func (c *Censor) CensorWith(text, character string) Result {
	group, _ := c.snapshot()

	s := NewSentence(text)
	words := group.Match(s)
	if !s.Marked() {
		return Result{Text: text}
	}

	matched := make([]string, 0, len(words))
	for _, w := range words {
		matched = append(matched, w.String())
	}

	return Result{Text: s.Redact(character), Matched: matched}
}

// Patterns returns the active word list in canonical pattern syntax.
func (c *Censor) Patterns() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.patterns...)
}

// Len returns the number of active words.
func (c *Censor) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.group.Len()
}
