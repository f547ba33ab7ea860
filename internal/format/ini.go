package format

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

/*
 * INI-style puzzle files:
 *
 *   [clues]
 *   columns =
 *       1
 *       3 1
 *   rows =
 *       2
 *       1 1
 *
 *   [colors]
 *   red = (ff0000) %
 *
 * Clue lines under "columns" / "rows" hold one line of the puzzle each.
 * Everything after '#' or ';' is a comment. The [colors] section is only
 * present in colored puzzles; values pair an RGB code in parentheses with
 * a terminal symbol.
 */

var colorValueRe = regexp.MustCompile(`^\((.+)\)\s+(.+)$`)

// ReadINI parses the text puzzle format.
func ReadINI(r io.Reader) (*Definition, error) {
	def := &Definition{}

	var (
		section string
		key     string
	)
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := stripComment(scanner.Text())
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.ToLower(trimmed[1 : len(trimmed)-1])
			key = ""
			continue
		}

		name, value, hasEq := strings.Cut(trimmed, "=")
		if !hasEq {
			// continuation line of a multi-line value
			if key == "" {
				return nil, fmt.Errorf("line %d: value outside any key", lineNo)
			}
			if err := def.apply(section, key, trimmed); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		key = strings.ToLower(strings.TrimSpace(name))
		if value = strings.TrimSpace(value); value != "" {
			if err := def.apply(section, key, value); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(def.Rows) == 0 || len(def.Cols) == 0 {
		return nil, fmt.Errorf("puzzle needs both rows and columns clues")
	}
	return def, nil
}

func (d *Definition) apply(section, key, value string) error {
	switch section {
	case "clues":
		tokens, err := parseClueLine(value)
		if err != nil {
			return err
		}
		switch key {
		case "rows":
			d.Rows = append(d.Rows, tokens)
		case "columns":
			d.Cols = append(d.Cols, tokens)
		default:
			return fmt.Errorf("unknown clues key %q", key)
		}
	case "colors":
		m := colorValueRe.FindStringSubmatch(value)
		if m == nil {
			return fmt.Errorf("bad color %q, want \"(rgb) symbol\"", value)
		}
		d.Colors = append(d.Colors, nonogram.Color{
			Name:   key,
			RGB:    m[1],
			Symbol: m[2][0],
		})
	default:
		return fmt.Errorf("unknown section %q", section)
	}
	return nil
}

func stripComment(line string) string {
	for _, prefix := range "#;" {
		if pos := strings.IndexRune(line, prefix); pos != -1 {
			line = line[:pos]
		}
	}
	return line
}
