package format

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

/*
 * The XML format of webpbn.com exports:
 *
 *   <puzzleset>
 *     <puzzle type="grid" defaultcolor="black">
 *       <color name="white" char=".">fff</color>
 *       <color name="black" char="X">000</color>
 *       <clues type="columns">
 *         <line><count>2</count><count color="red">1</count></line>
 *       </clues>
 *       <clues type="rows">...</clues>
 *     </puzzle>
 *   </puzzleset>
 */

type xmlPuzzleSet struct {
	XMLName xml.Name    `xml:"puzzleset"`
	Puzzles []xmlPuzzle `xml:"puzzle"`
}

type xmlPuzzle struct {
	Type         string     `xml:"type,attr"`
	DefaultColor string     `xml:"defaultcolor,attr"`
	Colors       []xmlColor `xml:"color"`
	Clues        []xmlClues `xml:"clues"`
}

type xmlColor struct {
	Name string `xml:"name,attr"`
	Char string `xml:"char,attr"`
	RGB  string `xml:",chardata"`
}

type xmlClues struct {
	Type  string    `xml:"type,attr"`
	Lines []xmlLine `xml:"line"`
}

type xmlLine struct {
	Counts []xmlCount `xml:"count"`
}

type xmlCount struct {
	Color string `xml:"color,attr"`
	Value string `xml:",chardata"`
}

// ReadXML parses a webpbn-style XML export. Only grid puzzles are
// supported.
func ReadXML(r io.Reader) (*Definition, error) {
	var set xmlPuzzleSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("bad puzzle xml: %w", err)
	}

	var puzzle *xmlPuzzle
	for i := range set.Puzzles {
		if set.Puzzles[i].Type == "grid" {
			puzzle = &set.Puzzles[i]
			break
		}
	}
	if puzzle == nil {
		return nil, fmt.Errorf("no grid puzzle in file")
	}

	defaultColor := puzzle.DefaultColor
	if defaultColor == "" {
		defaultColor = defaultColorName
	}

	def := &Definition{}
	for _, c := range puzzle.Colors {
		color := nonogram.Color{
			Name: c.Name,
			RGB:  strings.TrimSpace(c.RGB),
		}
		if c.Char != "" {
			color.Symbol = c.Char[0]
		}
		def.Colors = append(def.Colors, color)
	}

	for _, clues := range puzzle.Clues {
		lines, err := countLines(clues.Lines, defaultColor)
		if err != nil {
			return nil, fmt.Errorf("%s clues: %w", clues.Type, err)
		}
		switch clues.Type {
		case "rows":
			def.Rows = lines
		case "columns":
			def.Cols = lines
		default:
			return nil, fmt.Errorf("unknown clues type %q", clues.Type)
		}
	}
	if len(def.Rows) == 0 || len(def.Cols) == 0 {
		return nil, fmt.Errorf("puzzle needs both rows and columns clues")
	}
	return def, nil
}

func countLines(lines []xmlLine, defaultColor string) ([][]clueToken, error) {
	out := make([][]clueToken, len(lines))
	for i, line := range lines {
		tokens := make([]clueToken, 0, len(line.Counts))
		for _, count := range line.Counts {
			length, err := strconv.Atoi(strings.TrimSpace(count.Value))
			if err != nil {
				return nil, fmt.Errorf("line %d: bad count %q", i, count.Value)
			}
			color := count.Color
			if color == "" {
				color = defaultColor
			}
			tokens = append(tokens, clueToken{length: length, color: color})
		}
		out[i] = tokens
	}
	return out, nil
}
