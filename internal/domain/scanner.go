// Package domain implements the conversion pipeline core: trace and
// metadata parsing, index correlation, cross-target aggregation and report
// rendering.
package domain

import (
	"bytes"
	"fmt"
	"strconv"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// scanner is a single-pass cursor over an artifact's bytes. Both artifact
// grammars are token-level compatible (keywords, quoted strings, unsigned
// decimals, bracketed lists), so the parsers share it.
type scanner struct {
	path  m.Path
	input []byte
	pos   int
}

func newScanner(path m.Path, input []byte) *scanner {
	return &scanner{path: path, input: input}
}

// errf builds a ParseError carrying the 1-based line/column of the cursor.
func (s *scanner) errf(format string, args ...any) *m.ParseError {
	line := 1 + bytes.Count(s.input[:s.pos], []byte{'\n'})
	column := s.pos - bytes.LastIndexByte(s.input[:s.pos], '\n')

	return &m.ParseError{
		Path:   s.path,
		Line:   line,
		Column: column,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.input[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.input[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// expect consumes the given byte after skipping whitespace.
func (s *scanner) expect(c byte) error {
	s.skipSpace()

	if s.eof() {
		return s.errf("expected %q, got end of input", string(c))
	}

	if s.input[s.pos] != c {
		return s.errf("expected %q, got %q", string(c), string(s.input[s.pos]))
	}

	s.pos++

	return nil
}

// expectEOF requires that only whitespace remains.
func (s *scanner) expectEOF() error {
	s.skipSpace()

	if !s.eof() {
		return s.errf("unexpected trailing content")
	}

	return nil
}

// word consumes a run of letters. An empty run is reported against the
// caller-supplied description.
func (s *scanner) word(what string) (string, error) {
	s.skipSpace()

	start := s.pos
	for !s.eof() && isLetter(s.input[s.pos]) {
		s.pos++
	}

	if s.pos == start {
		return "", s.errf("expected %s", what)
	}

	return string(s.input[start:s.pos]), nil
}

// keyword consumes one specific word.
func (s *scanner) keyword(want string) error {
	got, err := s.word(fmt.Sprintf("keyword %q", want))
	if err != nil {
		return err
	}

	if got != want {
		return s.errf("expected keyword %q, got %q", want, got)
	}

	return nil
}

// boolean consumes a True or False keyword.
func (s *scanner) boolean() (bool, error) {
	got, err := s.word("True or False")
	if err != nil {
		return false, err
	}

	switch got {
	case "True":
		return true, nil
	case "False":
		return false, nil
	}

	return false, s.errf("expected True or False, got %q", got)
}

// uint consumes an unsigned decimal. Tick counts, hashes and positions are
// all non-negative, so a minus sign is malformed input, not a value.
func (s *scanner) uint(what string) (uint64, error) {
	s.skipSpace()

	start := s.pos
	for !s.eof() && isDigit(s.input[s.pos]) {
		s.pos++
	}

	if s.pos == start {
		return 0, s.errf("expected %s", what)
	}

	value, err := strconv.ParseUint(string(s.input[start:s.pos]), 10, 64)
	if err != nil {
		return 0, s.errf("invalid %s: %v", what, err)
	}

	return value, nil
}

// quotedString consumes a double-quoted string with backslash escapes.
func (s *scanner) quotedString(what string) (string, error) {
	if err := s.expect('"'); err != nil {
		return "", s.errf("expected %s", what)
	}

	var out []byte

	for {
		if s.eof() {
			return "", s.errf("unterminated %s", what)
		}

		c := s.input[s.pos]
		s.pos++

		switch c {
		case '"':
			return string(out), nil
		case '\\':
			if s.eof() {
				return "", s.errf("unterminated escape in %s", what)
			}

			out = append(out, s.input[s.pos])
			s.pos++
		default:
			out = append(out, c)
		}
	}
}

// stringList consumes a bracketed, comma-separated list of quoted strings.
func (s *scanner) stringList(what string) ([]string, error) {
	if err := s.expect('['); err != nil {
		return nil, err
	}

	s.skipSpace()

	if s.peek() == ']' {
		s.pos++
		return nil, nil
	}

	var items []string

	for {
		item, err := s.quotedString(what)
		if err != nil {
			return nil, err
		}

		items = append(items, item)

		s.skipSpace()

		switch s.peek() {
		case ',':
			s.pos++
		case ']':
			s.pos++
			return items, nil
		default:
			return nil, s.errf("expected \",\" or \"]\" in %s list", what)
		}
	}
}

// skipUntil advances to the next occurrence of c without consuming it and
// returns the skipped run.
func (s *scanner) skipUntil(c byte) ([]byte, bool) {
	offset := bytes.IndexByte(s.input[s.pos:], c)
	if offset < 0 {
		return nil, false
	}

	skipped := s.input[s.pos : s.pos+offset]
	s.pos += offset

	return skipped, true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
