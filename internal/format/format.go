// Package format reads nonogram puzzle definitions. Three encodings are
// supported: an INI-style text format with a [clues] section, a JSON
// variant of the same model and the XML format used by webpbn.com
// exports.
package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

// Read dispatches on a format name: "ini" (or "txt"), "json" or "xml".
func Read(r io.Reader, kind string) (*Definition, error) {
	switch strings.ToLower(kind) {
	case "ini", "txt", "":
		return ReadINI(r)
	case "json":
		return ReadJSON(r)
	case "xml":
		return ReadXML(r)
	default:
		return nil, fmt.Errorf("unknown puzzle format %q", kind)
	}
}

// Definition is a parsed puzzle: the palette and the clue tables, ready to
// be turned into a board.
type Definition struct {
	Colors []nonogram.Color // declared colors as read; Board drops white and puts black first
	Rows   [][]clueToken
	Cols   [][]clueToken
}

// clueToken is one block before color resolution: a run length plus the
// color name it was written with.
type clueToken struct {
	length int
	color  string
}

const defaultColorName = "black"

// Board resolves color names and builds a validated board.
func (d *Definition) Board() (*nonogram.Board, error) {
	palette, err := nonogram.NewPalette(d.inks()...)
	if err != nil {
		return nil, err
	}

	rows, err := resolveClues(palette, d.Rows)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	cols, err := resolveClues(palette, d.Cols)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	return nonogram.NewBoard(palette, rows, cols)
}

// inks returns the declared colors with black prepended (the color
// unqualified clue numbers refer to) and white dropped (it is always the
// implicit background).
func (d *Definition) inks() []nonogram.Color {
	inks := []nonogram.Color{{Name: defaultColorName, RGB: "000000", Symbol: 'X'}}
	for _, c := range d.Colors {
		switch c.Name {
		case "white":
			continue
		case defaultColorName:
			inks[0] = c
			continue
		}
		inks = append(inks, c)
	}
	return inks
}

func resolveClues(p *nonogram.Palette, lines [][]clueToken) ([]nonogram.Clue, error) {
	clues := make([]nonogram.Clue, len(lines))
	for i, tokens := range lines {
		clue := make(nonogram.Clue, 0, len(tokens))
		for _, tok := range tokens {
			color, ok := p.ByName(tok.color)
			if !ok {
				return nil, fmt.Errorf("line %d: unknown color %q", i, tok.color)
			}
			clue = append(clue, nonogram.Block{Length: tok.length, Color: color.Code})
		}
		clues[i] = clue
	}
	return clues, nil
}

// sortColors fixes a deterministic palette order for encodings that carry
// colors in unordered containers.
func sortColors(colors []nonogram.Color) {
	sort.Slice(colors, func(i, j int) bool {
		return colors[i].Name < colors[j].Name
	})
}

// parseClueLine splits a space-separated clue description such as
// "2 1red 3" into tokens. A lone "0" stands for the empty clue.
func parseClueLine(s string) ([]clueToken, error) {
	fields := strings.Fields(s)
	if len(fields) == 1 && fields[0] == "0" {
		return []clueToken{}, nil
	}
	tokens := make([]clueToken, 0, len(fields))
	for _, f := range fields {
		tok, err := parseClueToken(f)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// parseClueToken parses a single block description: digits optionally
// followed by a color name, e.g. "4" or "2red".
func parseClueToken(s string) (clueToken, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return clueToken{}, fmt.Errorf("bad clue block %q", s)
	}
	length := 0
	for _, d := range s[:i] {
		length = length*10 + int(d-'0')
	}
	color := s[i:]
	if color == "" {
		color = defaultColorName
	}
	return clueToken{length: length, color: color}, nil
}
