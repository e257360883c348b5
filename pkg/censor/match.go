package censor

import "slices"

// matcher scans the spans of one Sentence for one Word.
//
// An attempt starts at a candidate character and follows every way the parts
// can consume the characters after it at once: state k means the first k
// parts are done. A part that just consumed a character may absorb the next
// one too (see Part.Repeats), which is how letter duplication is tolerated.
// Non-word characters are skipped and a marked character ends the attempt.
type matcher struct {
	s      *Sentence
	parts  []Part
	step   int
	except []string

	// head and tail are the boundary conditions on the first and the last
	// character of a match, in scan order. nil means no condition.
	head func(Boundary) bool
	tail func(Boundary) bool

	cur  []bool
	next []bool
}

func (w *Word) matcher(s *Sentence) *matcher {
	m := &matcher{
		s:      s,
		parts:  w.parts,
		step:   1,
		except: w.exceptions,
		cur:    make([]bool, len(w.parts)+1),
		next:   make([]bool, len(w.parts)+1),
	}

	switch {
	case w.boundLeft && w.boundRight:
		m.head, m.tail = Boundary.IsStart, Boundary.IsEnd
	case w.boundLeft:
		m.head = Boundary.IsStart
	case w.boundRight:
		// Anchored at the end only: scan right to left with the parts reversed.
		m.parts = slices.Clone(w.parts)
		slices.Reverse(m.parts)
		m.step = -1
		m.head = Boundary.IsEnd
	}

	return m
}

func (m *matcher) within(i int, sp Span) bool {
	return sp.Start <= i && i < sp.End
}

// scan marks every match inside sp and reports whether there was one.
func (m *matcher) scan(sp Span) bool {
	first := sp.Start
	if m.step < 0 {
		first = sp.End - 1
	}

	matched := false
	for i := first; m.within(i, sp); i += m.step {
		last, ok := m.attempt(i, sp)
		if !ok {
			continue
		}

		lo, hi := i, last
		if lo > hi {
			lo, hi = hi, lo
		}
		if m.excepted(lo, hi) {
			continue
		}
		m.s.mark(lo, hi+1)
		matched = true
		i = last
	}

	return matched
}

// excepted reports whether the text around the match [lo, hi], widened to
// the surrounding unmarked word characters, is an exception word.
func (m *matcher) excepted(lo, hi int) bool {
	if len(m.except) == 0 {
		return false
	}

	b := m.s.boundaries
	for lo > 0 && b[lo-1].IsContent() {
		lo--
	}
	for hi+1 < len(b) && b[hi+1].IsContent() {
		hi++
	}

	return slices.Contains(m.except, string(m.s.contents[lo:hi+1]))
}

// attempt tries a match starting at i and returns the index of its last
// character. The longest match wins.
func (m *matcher) attempt(i int, sp Span) (int, bool) {
	b := m.s.boundaries[i]
	if !b.IsContent() || (m.head != nil && !m.head(b)) {
		return 0, false
	}

	clear(m.cur)
	m.cur[0] = true
	m.closure(m.cur)

	var (
		prev    rune
		hasPrev bool
		best    = -1
		done    = len(m.parts)
	)
	for j := i; m.within(j, sp); j += m.step {
		b := m.s.boundaries[j]
		if b == BoundaryNoContent {
			continue
		}
		if b == BoundaryMarked {
			break
		}

		c := m.s.contents[j]
		if !m.advance(c, prev, hasPrev) {
			break
		}
		prev, hasPrev = c, true

		if m.cur[done] && (m.tail == nil || m.tail(b)) {
			best = j
		}
	}

	return best, best >= 0
}

// advance moves every live state over c. It reports whether any state
// survived.
func (m *matcher) advance(c, prev rune, hasPrev bool) bool {
	clear(m.next)

	alive := false
	for k, live := range m.cur {
		if !live {
			continue
		}
		if k < len(m.parts) && m.parts[k].Matches(c) {
			m.next[k+1] = true
			alive = true
		}
		if k > 0 && hasPrev && m.parts[k-1].Repeats(c, prev) {
			m.next[k] = true
			alive = true
		}
	}

	m.closure(m.next)
	m.cur, m.next = m.next, m.cur

	return alive
}

// closure adds the states reachable by skipping parts that need no character.
func (m *matcher) closure(states []bool) {
	for k, p := range m.parts {
		if states[k] && p.skippable() {
			states[k+1] = true
		}
	}
}
