package lisplang

import (
	"strings"
	"unicode"
)

type Scanner struct {
	cursor int
	source []rune
	loc    Location
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: []rune(source),
		loc:    startLocation,
	}
}

func (s *Scanner) Index() int {
	return s.cursor
}

func (s *Scanner) Location() Location {
	return s.loc
}

func (s *Scanner) Len() int {
	return len(s.source) - s.cursor
}

func (s *Scanner) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Scanner) NotEmpty() bool {
	return s.Len() > 0
}

func (s *Scanner) Peek() (rune, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.source[s.cursor], true
}

func (s *Scanner) Next() (rune, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	r := s.source[s.cursor]
	s.cursor++
	if r == '\n' {
		s.loc.Line++
		s.loc.Column = 1
	} else {
		s.loc.Column++
	}
	return r, true
}

func (s *Scanner) NextIs(r rune) bool {
	c, ok := s.Peek()
	return ok && c == r
}

func (s *Scanner) NextIsOneOf(chars string) bool {
	c, ok := s.Peek()
	return ok && strings.ContainsRune(chars, c)
}

func (s *Scanner) NextMatches(pred func(rune) bool) bool {
	c, ok := s.Peek()
	return ok && pred(c)
}

func (s *Scanner) Take(r rune) (rune, bool) {
	if !s.NextIs(r) {
		return 0, false
	}
	return s.Next()
}

func (s *Scanner) TakeIf(pred func(rune) bool) (rune, bool) {
	if !s.NextMatches(pred) {
		return 0, false
	}
	return s.Next()
}

// TakeWhile consumes the longest run of runes matching pred.
// ok is false if the run is empty.
func (s *Scanner) TakeWhile(pred func(rune) bool) (text string, ok bool) {
	start := s.cursor
	for s.NextMatches(pred) {
		s.Next()
	}
	if s.cursor == start {
		return "", false
	}
	return string(s.source[start:s.cursor]), true
}

func (s *Scanner) TakeUntil(pred func(rune) bool) (string, bool) {
	return s.TakeWhile(func(r rune) bool {
		return !pred(r)
	})
}

// Skip consumes exactly n runes, or nothing if fewer remain.
func (s *Scanner) Skip(n int) (string, bool) {
	if n <= 0 || s.Len() < n {
		return "", false
	}
	start := s.cursor
	for range n {
		s.Next()
	}
	return string(s.source[start:s.cursor]), true
}

const reservedChars = "'.,`()\\\""

func IsSymbolic(r rune) bool {
	return !strings.ContainsRune(reservedChars, r) && !unicode.IsSpace(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')'
}
