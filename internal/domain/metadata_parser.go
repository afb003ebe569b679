package domain

import (
	"bytes"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// ParseMetadata decodes a module metadata (.mix) file: the source file the
// module was compiled from and one (position, region kind) descriptor per
// instrumented region, in instrumentation index order. The grammar is
//
//	Mix "<source>" <timestamp...> <hash> <tabstop> [ (<pos>,<kind>), ... ]
//
// The timestamp/hash/tabstop run between the source path and the entry list
// is checked for presence but not interpreted; none of it feeds the
// conversion. Entry order is the correlation key with the module's tick
// array and is preserved exactly.
func ParseMetadata(path m.Path, content []byte) (m.MetadataFile, error) {
	s := newScanner(path, content)

	if err := s.keyword("Mix"); err != nil {
		return m.MetadataFile{}, err
	}

	source, err := s.quotedString("source path")
	if err != nil {
		return m.MetadataFile{}, err
	}

	if source == "" {
		return m.MetadataFile{}, s.errf("empty source path")
	}

	header, ok := s.skipUntil('[')
	if !ok {
		return m.MetadataFile{}, s.errf("missing entry list")
	}

	if len(bytes.TrimSpace(header)) == 0 {
		return m.MetadataFile{}, s.errf("missing timestamp and hash fields")
	}

	entries, err := parseEntryList(s)
	if err != nil {
		return m.MetadataFile{}, err
	}

	if err := s.expectEOF(); err != nil {
		return m.MetadataFile{}, err
	}

	return m.MetadataFile{Source: m.Path(source), Entries: entries}, nil
}

func parseEntryList(s *scanner) ([]m.MetadataEntry, error) {
	if err := s.expect('['); err != nil {
		return nil, err
	}

	entries := []m.MetadataEntry{}

	s.skipSpace()

	if s.peek() == ']' {
		s.pos++
		return entries, nil
	}

	for {
		entry, err := parseEntry(s)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)

		s.skipSpace()

		switch s.peek() {
		case ',':
			s.pos++
		case ']':
			s.pos++
			return entries, nil
		default:
			return nil, s.errf("expected \",\" or \"]\" after metadata entry")
		}
	}
}

func parseEntry(s *scanner) (m.MetadataEntry, error) {
	if err := s.expect('('); err != nil {
		return m.MetadataEntry{}, err
	}

	pos, err := parsePosition(s)
	if err != nil {
		return m.MetadataEntry{}, err
	}

	if err := s.expect(','); err != nil {
		return m.MetadataEntry{}, err
	}

	entry, err := parseRegionKind(s)
	if err != nil {
		return m.MetadataEntry{}, err
	}

	entry.Pos = pos

	if err := s.expect(')'); err != nil {
		return m.MetadataEntry{}, err
	}

	return entry, nil
}

// parsePosition consumes a startLine:startCol-endLine:endCol extent.
func parsePosition(s *scanner) (m.Position, error) {
	startLine, err := s.uint("start line")
	if err != nil {
		return m.Position{}, err
	}

	if err := s.expect(':'); err != nil {
		return m.Position{}, err
	}

	startCol, err := s.uint("start column")
	if err != nil {
		return m.Position{}, err
	}

	if err := s.expect('-'); err != nil {
		return m.Position{}, err
	}

	endLine, err := s.uint("end line")
	if err != nil {
		return m.Position{}, err
	}

	if err := s.expect(':'); err != nil {
		return m.Position{}, err
	}

	endCol, err := s.uint("end column")
	if err != nil {
		return m.Position{}, err
	}

	pos := m.Position{
		StartLine: int(startLine),
		StartCol:  int(startCol),
		EndLine:   int(endLine),
		EndCol:    int(endCol),
	}

	if pos.StartLine < 1 || pos.StartCol < 1 {
		return m.Position{}, s.errf("source span %s starts before 1:1", pos)
	}

	if pos.EndLine < pos.StartLine || (pos.EndLine == pos.StartLine && pos.EndCol < pos.StartCol) {
		return m.Position{}, s.errf("source span %s ends before it starts", pos)
	}

	return pos, nil
}

func parseRegionKind(s *scanner) (m.MetadataEntry, error) {
	kind, err := s.word("region kind")
	if err != nil {
		return m.MetadataEntry{}, err
	}

	switch kind {
	case "ExpBox":
		alt, err := s.boolean()
		if err != nil {
			return m.MetadataEntry{}, err
		}

		if alt {
			return m.MetadataEntry{Kind: m.RegionAlternative}, nil
		}

		return m.MetadataEntry{Kind: m.RegionExpression}, nil

	case "TopLevelBox":
		names, err := s.stringList("binding name")
		if err != nil {
			return m.MetadataEntry{}, err
		}

		return m.MetadataEntry{Kind: m.RegionTopLevel, Names: names}, nil

	case "LocalBox":
		names, err := s.stringList("binding name")
		if err != nil {
			return m.MetadataEntry{}, err
		}

		return m.MetadataEntry{Kind: m.RegionLocal, Names: names}, nil

	case "BinBox":
		flavor, err := parseBranchFlavor(s)
		if err != nil {
			return m.MetadataEntry{}, err
		}

		taken, err := s.boolean()
		if err != nil {
			return m.MetadataEntry{}, err
		}

		branchKind := m.RegionBranchFalse
		if taken {
			branchKind = m.RegionBranchTrue
		}

		return m.MetadataEntry{Kind: branchKind, Flavor: flavor}, nil
	}

	return m.MetadataEntry{}, s.errf("unknown region kind %q", kind)
}

func parseBranchFlavor(s *scanner) (m.BranchFlavor, error) {
	flavor, err := s.word("branch flavor")
	if err != nil {
		return m.BranchNone, err
	}

	switch flavor {
	case "GuardBinBox":
		return m.BranchGuard, nil
	case "CondBinBox":
		return m.BranchCond, nil
	case "QualBinBox":
		return m.BranchQual, nil
	}

	return m.BranchNone, s.errf("unknown branch flavor %q", flavor)
}
