package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

const iniMono = `
# the 2x2 xor square
[clues]
columns =
    1
    1
rows =
    1  ; first row
    1
`

const iniColored = `
[clues]
columns =
    2black
    1 1red
rows =
    1 1red
    2
[colors]
red = (ff0000) %
`

func TestReadINI(t *testing.T) {
	t.Parallel()

	def, err := ReadINI(strings.NewReader(iniMono))
	require.NoError(t, err)

	b, err := def.Board()
	require.NoError(t, err)
	assert.Equal(t, 2, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.True(t, b.Palette().Monochrome())
	assert.Equal(t, nonogram.Clue{{Length: 1, Color: 1 << 1}}, b.RowClue(0))
}

func TestReadINIColored(t *testing.T) {
	t.Parallel()

	def, err := ReadINI(strings.NewReader(iniColored))
	require.NoError(t, err)

	b, err := def.Board()
	require.NoError(t, err)
	assert.False(t, b.Palette().Monochrome())

	red, ok := b.Palette().ByName("red")
	require.True(t, ok)
	assert.Equal(t, byte('%'), red.Symbol)
	assert.Equal(t, "ff0000", red.RGB)

	black, ok := b.Palette().ByName("black")
	require.True(t, ok)
	assert.Equal(t, nonogram.Clue{
		{Length: 1, Color: black.Code},
		{Length: 1, Color: red.Code},
	}, b.RowClue(0))
}

func TestReadINIRejectsGarbage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: ""},
		{name: "no columns", body: "[clues]\nrows =\n 1\n"},
		{name: "bad block", body: "[clues]\nrows =\n x\ncolumns =\n 1\n"},
		{name: "unknown section", body: "[what]\nrows = 1\n"},
		{name: "bad color", body: iniMono + "[colors]\nred = ff0000\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadINI(strings.NewReader(test.body))
			assert.Error(t, err)
		})
	}
}

func TestReadINIUnknownClueColor(t *testing.T) {
	t.Parallel()

	def, err := ReadINI(strings.NewReader(
		"[clues]\nrows =\n 1blue\ncolumns =\n 1\n",
	))
	require.NoError(t, err)
	_, err = def.Board()
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	t.Parallel()

	body := `{
		"colors": {"red": {"rgb": "ff0000", "symbol": "%"}},
		"rows": [[1, "1red"], [2]],
		"columns": [["2black"], ["1", "1red"]]
	}`
	def, err := ReadJSON(strings.NewReader(body))
	require.NoError(t, err)

	b, err := def.Board()
	require.NoError(t, err)
	assert.Equal(t, 2, b.Width())
	assert.Equal(t, 2, b.Height())

	red, ok := b.Palette().ByName("red")
	require.True(t, ok)
	assert.Equal(t, nonogram.Clue{
		{Length: 1, Color: 1 << 1},
		{Length: 1, Color: red.Code},
	}, b.RowClue(0))
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"not json":      "puzzle",
		"unknown field": `{"rows": [[1]], "columns": [[1]], "spam": 1}`,
		"bad block":     `{"rows": [[true]], "columns": [[1]]}`,
		"no rows":       `{"columns": [[1]]}`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadJSON(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

const xmlPuzzleXML = `<?xml version="1.0"?>
<puzzleset>
  <puzzle type="grid" defaultcolor="black">
    <color name="white" char=".">fff</color>
    <color name="black" char="X">000</color>
    <color name="red" char="%">f00</color>
    <clues type="columns">
      <line><count>2</count></line>
      <line><count>1</count><count color="red">1</count></line>
    </clues>
    <clues type="rows">
      <line><count>2</count></line>
      <line><count>1</count><count color="red">1</count></line>
    </clues>
  </puzzle>
</puzzleset>`

func TestReadXML(t *testing.T) {
	t.Parallel()

	def, err := ReadXML(strings.NewReader(xmlPuzzleXML))
	require.NoError(t, err)

	b, err := def.Board()
	require.NoError(t, err)
	assert.Equal(t, 2, b.Width())
	assert.Equal(t, 2, b.Height())

	red, ok := b.Palette().ByName("red")
	require.True(t, ok)
	assert.Equal(t, "f00", red.RGB)
	assert.Equal(t, nonogram.Clue{
		{Length: 1, Color: 1 << 1},
		{Length: 1, Color: red.Code},
	}, b.RowClue(1))
}

func TestReadDispatch(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader(iniMono), "")
	assert.NoError(t, err)
	_, err = Read(strings.NewReader(xmlPuzzleXML), "xml")
	assert.NoError(t, err)
	_, err = Read(strings.NewReader(iniMono), "yaml")
	assert.Error(t, err)
}
