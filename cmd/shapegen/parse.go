package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maskSize = 5

// Kind is one parsed catalog entry.
type Kind struct {
	Name    string
	R, G, B uint8
	Masks   [][maskSize][maskSize]bool
	line    int
}

// ParseError locates a problem in the catalog source.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func errorf(line int, format string, args ...any) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Parse reads a catalog. Each kind starts with a `kind <Name> <r> <g> <b>`
// header followed by its rotation states, each a block of five rows of '.'
// and '0' separated by blank lines. Lines starting with '#' are comments.
func Parse(r io.Reader) ([]Kind, error) {
	var (
		kinds   []Kind
		current *Kind
		rows    []string
		start   int
		lineNo  int
		seen    = make(map[string]bool)
		scanner = bufio.NewScanner(r)
	)

	flushMask := func() error {
		if len(rows) == 0 {
			return nil
		}
		if len(rows) != maskSize {
			return errorf(start, "mask has %d rows, want %d", len(rows), maskSize)
		}
		var mask [maskSize][maskSize]bool
		cells := 0
		for y, row := range rows {
			for x, ch := range row {
				if ch == '0' {
					mask[y][x] = true
					cells++
				}
			}
		}
		if cells == 0 {
			return errorf(start, "mask is empty")
		}
		current.Masks = append(current.Masks, mask)
		rows = rows[:0]
		return nil
	}

	finishKind := func() error {
		if current == nil {
			return nil
		}
		if err := flushMask(); err != nil {
			return err
		}
		switch len(current.Masks) {
		case 1, 2, 4:
		default:
			return errorf(current.line, "kind %s has %d rotation states, want 1, 2 or 4", current.Name, len(current.Masks))
		}
		kinds = append(kinds, *current)
		current = nil
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "#"):
			continue
		case line == "":
			if current != nil {
				if err := flushMask(); err != nil {
					return nil, err
				}
			}
		case strings.HasPrefix(line, "kind "):
			if err := finishKind(); err != nil {
				return nil, err
			}
			k, err := parseHeader(lineNo, line)
			if err != nil {
				return nil, err
			}
			if seen[k.Name] {
				return nil, errorf(lineNo, "duplicate kind %s", k.Name)
			}
			seen[k.Name] = true
			current = &k
		default:
			if current == nil {
				return nil, errorf(lineNo, "mask row outside of a kind")
			}
			if len(line) != maskSize || strings.Trim(line, ".0") != "" {
				return nil, errorf(lineNo, "mask row %q must be %d characters of '.' or '0'", line, maskSize)
			}
			if len(rows) == 0 {
				start = lineNo
			}
			rows = append(rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if err := finishKind(); err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		return nil, errorf(lineNo, "no kinds defined")
	}
	return kinds, nil
}

func parseHeader(lineNo int, line string) (Kind, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return Kind{}, errorf(lineNo, "kind header needs a name and three color components")
	}

	k := Kind{Name: fields[1], line: lineNo}
	for i, dst := range []*uint8{&k.R, &k.G, &k.B} {
		v, err := strconv.ParseUint(fields[2+i], 10, 8)
		if err != nil {
			return Kind{}, errorf(lineNo, "color component %q: %v", fields[2+i], err)
		}
		*dst = uint8(v)
	}
	return k, nil
}
