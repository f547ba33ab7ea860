package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

/*
 * JSON puzzle files mirror the INI model:
 *
 *   {
 *     "colors": {"red": {"rgb": "ff0000", "symbol": "%"}},
 *     "rows": [[2], ["1red", 1]],
 *     "columns": [[1, 1], [2]]
 *   }
 *
 * A clue block is either a bare number (a run of the default black) or a
 * string such as "2red".
 */

type jsonPuzzle struct {
	Colors  map[string]jsonColor `json:"colors"`
	Rows    [][]jsonBlock        `json:"rows"`
	Columns [][]jsonBlock        `json:"columns"`
}

type jsonColor struct {
	RGB    string `json:"rgb"`
	Symbol string `json:"symbol"`
}

type jsonBlock struct {
	token clueToken
}

func (b *jsonBlock) UnmarshalJSON(data []byte) error {
	var asNumber int
	if err := json.Unmarshal(data, &asNumber); err == nil {
		b.token = clueToken{length: asNumber, color: defaultColorName}
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("clue block must be a number or a string: %s", data)
	}
	tok, err := parseClueToken(asString)
	if err != nil {
		return err
	}
	b.token = tok
	return nil
}

// ReadJSON parses the JSON puzzle format.
func ReadJSON(r io.Reader) (*Definition, error) {
	var puzzle jsonPuzzle
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&puzzle); err != nil {
		return nil, fmt.Errorf("bad puzzle json: %w", err)
	}
	if len(puzzle.Rows) == 0 || len(puzzle.Columns) == 0 {
		return nil, fmt.Errorf("puzzle needs both rows and columns clues")
	}

	def := &Definition{
		Rows: tokenLines(puzzle.Rows),
		Cols: tokenLines(puzzle.Columns),
	}
	for name, c := range puzzle.Colors {
		color := nonogram.Color{Name: name, RGB: c.RGB}
		if c.Symbol != "" {
			color.Symbol = c.Symbol[0]
		}
		def.Colors = append(def.Colors, color)
	}
	sortColors(def.Colors)
	return def, nil
}

func tokenLines(blocks [][]jsonBlock) [][]clueToken {
	lines := make([][]clueToken, len(blocks))
	for i, line := range blocks {
		tokens := make([]clueToken, 0, len(line))
		for _, b := range line {
			tokens = append(tokens, b.token)
		}
		lines[i] = tokens
	}
	return lines
}
