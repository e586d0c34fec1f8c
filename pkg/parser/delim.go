package parser

import (
	"unicode"
	"unicode/utf8"
)

// Emphasis and strong are matched with a forward scan from the opener.
// The scan skips escapes, complete links and complete nested spans, so a
// span opened later always closes before the one enclosing it
// (innermost-first). Markers that find no closer stay literal.
//
// A scanner memoizes every decision for one run of Inline: whether a
// marker opens a span, and where a scan continuing from a position ends.
// Each position is then scanned at most once per variant set, which keeps
// parsing linear in the input however many markers stay unmatched.

type openKey struct {
	offset int
	active variant
}

type opened struct {
	v      variant
	closer int
	ok     bool
}

type scanKey struct {
	pos    int
	c      byte
	v      variant
	active variant
}

type scanner struct {
	data  []byte
	runs  []int // index past the marker run covering each position
	opens map[openKey]opened
	scans map[scanKey]int
	links *linkIndex
}

func newScanner(data []byte) *scanner {
	return &scanner{data: data}
}

// runLength counts the marker characters starting at i.
func (s *scanner) runLength(i int) int {
	if s.runs == nil {
		s.runs = make([]int, len(s.data))
		for j := len(s.data) - 1; j >= 0; j-- {
			if j+1 < len(s.data) && s.data[j+1] == s.data[j] {
				s.runs[j] = s.runs[j+1]
			} else {
				s.runs[j] = j + 1
			}
		}
	}
	return s.runs[i] - i
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// canOpen reports whether the run of n markers c at i is followed by text.
// An underscore run may not open inside a word.
func canOpen(data []byte, i, n int, c byte) bool {
	if i+n >= len(data) {
		return false
	}
	next, _ := utf8.DecodeRune(data[i+n:])
	if unicode.IsSpace(next) {
		return false
	}
	if c == '_' && i > 0 {
		prev, _ := utf8.DecodeLastRune(data[:i])
		if isAlnum(prev) {
			return false
		}
	}
	return true
}

// canClose reports whether the run of n markers c at i follows text.
// An underscore run may not close inside a word.
func canClose(data []byte, i, n int, c byte) bool {
	if i == 0 {
		return false
	}
	prev, _ := utf8.DecodeLastRune(data[:i])
	if unicode.IsSpace(prev) {
		return false
	}
	if c == '_' && i+n < len(data) {
		next, _ := utf8.DecodeRune(data[i+n:])
		if isAlnum(next) {
			return false
		}
	}
	return true
}

// open decides whether the marker at offset opens a span, given the
// variants already active. It returns the variant and the index of its
// closing markers.
func (s *scanner) open(offset int, active variant) (variant, int, bool) {
	key := openKey{offset, active}
	if o, ok := s.opens[key]; ok {
		return o.v, o.closer, o.ok
	}
	v, closer, ok := s.tryOpen(offset, active)
	if s.opens == nil {
		s.opens = make(map[openKey]opened)
	}
	s.opens[key] = opened{v, closer, ok}
	return v, closer, ok
}

// tryOpen tries strong on the first two markers of a run, then emphasis.
// Emphasis takes the first marker of a longer run only when the rest of
// the run opens a strong nested in it (***a** b*); otherwise it is left
// to the last marker of the run.
func (s *scanner) tryOpen(offset int, active variant) (variant, int, bool) {
	data := s.data
	c := data[offset]
	n := s.runLength(offset)
	if !canOpen(data, offset, n, c) {
		return 0, 0, false
	}
	if n >= 2 && active&strongVar == 0 {
		if closer := s.scanCloser(offset+2, c, strongVar, active|strongVar); closer >= 0 {
			return strongVar, closer, true
		}
	}
	if active&emphVar != 0 {
		return 0, 0, false
	}
	if n >= 3 {
		if v, _, ok := s.open(offset+1, active|emphVar); !ok || v != strongVar {
			return 0, 0, false
		}
	} else if n != 1 {
		return 0, 0, false
	}
	if closer := s.scanCloser(offset+1, c, emphVar, active|emphVar); closer >= 0 {
		return emphVar, closer, true
	}
	return 0, 0, false
}

// scanCloser looks for the markers closing a span of variant v opened
// with c, starting at from. active includes v. It returns -1 if the span
// is never closed.
//
// Past from, the outcome only depends on the position, so every position
// the scan passes is recorded with the final result and later scans stop
// as soon as they reach one of them.
func (s *scanner) scanCloser(from int, c byte, v variant, active variant) int {
	key := scanKey{c: c, v: v, active: active}
	var passed []int
	res := -1
	i := from
	for i < len(s.data) {
		if i > from {
			key.pos = i
			if r, ok := s.scans[key]; ok {
				res = r
				break
			}
			passed = append(passed, i)
		}
		next, closer := s.step(i, from, c, v, active)
		if closer >= 0 {
			res = closer
			break
		}
		i = next
	}

	if len(passed) > 0 && s.scans == nil {
		s.scans = make(map[scanKey]int)
	}
	for _, pos := range passed {
		key.pos = pos
		s.scans[key] = res
	}
	return res
}

// step examines position i of a scan and returns either the closer found
// there or the position to continue from.
func (s *scanner) step(i, from int, c byte, v variant, active variant) (int, int) {
	data := s.data
	ch := data[i]
	switch {
	case ch == '\\':
		return i + 2, -1

	case ch == '[' && active&linkVar == 0:
		if ls, ok := s.link(i); ok {
			return i + ls.end, -1
		}
		return i + 1, -1

	case ch == '*' || ch == '_':
		n := s.runLength(i)
		exact := n == v.width()
		if ch == c && exact && i > from && canClose(data, i, n, c) {
			return 0, i
		}
		if end, ok := s.skipNested(i, n, active); ok {
			return end, -1
		}
		if ch == c && !exact && i > from && canClose(data, i, n, c) && leavesEnough(n, v, active) {
			return 0, i
		}
		return i + n, -1
	}
	return i + 1, -1
}

// skipNested tries to open a span at each marker of the run the way
// Inline would and returns the index past the first complete span.
func (s *scanner) skipNested(i, n int, active variant) (int, bool) {
	for k := 0; k < n; k++ {
		if v, closer, ok := s.open(i+k, active); ok {
			return closer + v.width(), true
		}
	}
	return 0, false
}

// leavesEnough reports whether closing v with the first markers of a
// longer run leaves enough markers to close the other active variant.
// Without it an emphasis nested in strong would split the strong closer.
func leavesEnough(n int, v variant, active variant) bool {
	if n < v.width() {
		return false
	}
	other := active &^ v & (emphVar | strongVar)
	if other == 0 {
		return true
	}
	return n-v.width() >= other.width()
}
