package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, p *Palette, rows, cols []Clue) *Board {
	t.Helper()
	b, err := NewBoard(p, rows, cols)
	require.NoError(t, err)
	return b
}

func monoBoard(t *testing.T, rows, cols [][]int) *Board {
	t.Helper()
	p := BlackAndWhite()
	rowClues := make([]Clue, len(rows))
	for i, r := range rows {
		rowClues[i] = Blocks(ink, r...)
	}
	colClues := make([]Clue, len(cols))
	for i, c := range cols {
		colClues[i] = Blocks(ink, c...)
	}
	return mustBoard(t, p, rowClues, colClues)
}

func TestNewBoardValidation(t *testing.T) {
	t.Parallel()

	p := BlackAndWhite()

	tests := []struct {
		name string
		rows []Clue
		cols []Clue
	}{
		{
			name: "no rows",
			rows: nil,
			cols: []Clue{Blocks(ink, 1)},
		},
		{
			name: "clue exceeds line",
			rows: []Clue{Blocks(ink, 3)},
			cols: []Clue{{}, {}},
		},
		{
			name: "zero length block",
			rows: []Clue{Blocks(ink, 0)},
			cols: []Clue{{}},
		},
		{
			name: "negative length block",
			rows: []Clue{Blocks(ink, -2)},
			cols: []Clue{{}},
		},
		{
			name: "color not in palette",
			rows: []Clue{{{1, 1 << 5}}},
			cols: []Clue{{}},
		},
		{
			name: "space as block color",
			rows: []Clue{{{1, Space}}},
			cols: []Clue{{}},
		},
		{
			name: "separators exceed line",
			rows: []Clue{Blocks(ink, 1, 1, 1)},
			cols: []Clue{{}, {}, {}, {}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewBoard(p, test.rows, test.cols)
			assert.Error(t, err)
		})
	}
}

func TestBoardSetIsMonotone(t *testing.T) {
	t.Parallel()

	b := monoBoard(t, [][]int{{1}, {1}}, [][]int{{1}, {1}})

	changed, err := b.Set(0, 0, ink)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, Cell(ink), b.Get(0, 0))

	// same mask again is a no-op
	changed, err = b.Set(0, 0, ink)
	require.NoError(t, err)
	assert.False(t, changed)

	// a wider mask cannot grow the cell back
	changed, err = b.Set(0, 0, Space|ink)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, Cell(ink), b.Get(0, 0))

	// an incompatible mask is a contradiction and keeps the old value
	_, err = b.Set(0, 0, Space)
	assert.ErrorIs(t, err, ErrContradiction)
	assert.Equal(t, Cell(ink), b.Get(0, 0))
}

func TestBoardCloneIndependence(t *testing.T) {
	t.Parallel()

	b := monoBoard(t, [][]int{{1}, {1}}, [][]int{{1}, {1}})
	clone := b.Clone()

	_, err := clone.Set(1, 1, ink)
	require.NoError(t, err)

	assert.Equal(t, Space|ink, b.Get(1, 1))
	assert.Equal(t, Cell(ink), clone.Get(1, 1))
	assert.False(t, b.SameCells(clone))
}

func TestBoardRowColViews(t *testing.T) {
	t.Parallel()

	b := monoBoard(t, [][]int{{2}, {}}, [][]int{{1}, {1}})
	_, err := b.Set(0, 1, ink)
	require.NoError(t, err)

	assert.Equal(t, []Cell{Space | ink, ink}, b.Row(0, nil))
	assert.Equal(t, []Cell{ink, Space | ink}, b.Col(1, nil))

	// views are copies, not aliases
	row := b.Row(0, nil)
	row[0] = Space
	assert.Equal(t, Space|ink, b.Get(0, 0))
}

func TestBoardTerminalStates(t *testing.T) {
	t.Parallel()

	b := monoBoard(t, [][]int{{1}}, [][]int{{1}})
	assert.False(t, b.Solved())
	assert.False(t, b.Contradictory())
	assert.Equal(t, 1, b.Unresolved())

	_, err := b.Set(0, 0, ink)
	require.NoError(t, err)
	assert.True(t, b.Solved())
	assert.Equal(t, 0, b.Unresolved())
}
