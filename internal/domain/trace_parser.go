package domain

import (
	m "tixcov.dev/pkg/tixcov/internal/model"
)

// ParseTrace decodes a tick-count (.tix) file into its per-module tick
// arrays, in file order. The grammar is a single expression
//
//	Tix [ TixModule "<name>" <hash> <count> [t0,t1,...], ... ]
//
// with insignificant whitespace between tokens. A declared count that does
// not match the actual tick array length is malformed input. Parsing is one
// deterministic pass with no recovery: any structural fault aborts with a
// ParseError, never an empty or partial result.
func ParseTrace(path m.Path, content []byte) ([]m.TraceModule, error) {
	s := newScanner(path, content)

	if err := s.keyword("Tix"); err != nil {
		return nil, err
	}

	if err := s.expect('['); err != nil {
		return nil, err
	}

	modules := []m.TraceModule{}

	s.skipSpace()

	if s.peek() == ']' {
		s.pos++

		if err := s.expectEOF(); err != nil {
			return nil, err
		}

		return modules, nil
	}

	for {
		module, err := parseTraceModule(s)
		if err != nil {
			return nil, err
		}

		modules = append(modules, module)

		s.skipSpace()

		switch s.peek() {
		case ',':
			s.pos++
		case ']':
			s.pos++

			if err := s.expectEOF(); err != nil {
				return nil, err
			}

			return modules, nil
		default:
			return nil, s.errf("expected \",\" or \"]\" after module entry")
		}
	}
}

func parseTraceModule(s *scanner) (m.TraceModule, error) {
	if err := s.keyword("TixModule"); err != nil {
		return m.TraceModule{}, err
	}

	name, err := s.quotedString("module name")
	if err != nil {
		return m.TraceModule{}, err
	}

	if name == "" {
		return m.TraceModule{}, s.errf("empty module name")
	}

	hash, err := s.uint("module hash")
	if err != nil {
		return m.TraceModule{}, err
	}

	count, err := s.uint("tick count length")
	if err != nil {
		return m.TraceModule{}, err
	}

	ticks, err := parseTickList(s)
	if err != nil {
		return m.TraceModule{}, err
	}

	if uint64(len(ticks)) != count {
		return m.TraceModule{}, s.errf(
			"module %s declares %d regions but lists %d tick counts", name, count, len(ticks))
	}

	return m.TraceModule{Name: name, Hash: hash, Ticks: ticks}, nil
}

func parseTickList(s *scanner) ([]int64, error) {
	if err := s.expect('['); err != nil {
		return nil, err
	}

	ticks := []int64{}

	s.skipSpace()

	if s.peek() == ']' {
		s.pos++
		return ticks, nil
	}

	for {
		tick, err := s.uint("tick count")
		if err != nil {
			return nil, err
		}

		ticks = append(ticks, int64(tick))

		s.skipSpace()

		switch s.peek() {
		case ',':
			s.pos++
		case ']':
			s.pos++
			return ticks, nil
		default:
			return nil, s.errf("expected \",\" or \"]\" in tick count list")
		}
	}
}
