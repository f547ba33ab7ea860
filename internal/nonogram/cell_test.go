package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellResolved(t *testing.T) {
	assert.False(t, Cell(0).Resolved())
	assert.True(t, Space.Resolved())
	assert.True(t, Cell(1<<4).Resolved())
	assert.False(t, Cell(Space|1<<1).Resolved())
}

func TestCellEmpty(t *testing.T) {
	assert.True(t, Cell(0).Empty())
	assert.False(t, Space.Empty())
}

func TestCellAlgebra(t *testing.T) {
	a := Cell(0b0110)
	b := Cell(0b0011)
	assert.Equal(t, Cell(0b0010), a.Intersect(b))
	assert.Equal(t, Cell(0b0111), a.Union(b))
	assert.True(t, a.Has(1<<1))
	assert.False(t, a.Has(1<<0))
	assert.Equal(t, 2, a.Count())
}

func TestCellColors(t *testing.T) {
	assert.Empty(t, Cell(0).Colors())
	assert.Equal(t, []Cell{1 << 0, 1 << 2, 1 << 3}, Cell(0b1101).Colors())
}

func TestPalette(t *testing.T) {
	p, err := NewPalette(
		Color{Name: "red", RGB: "ff0000", Symbol: '%'},
		Color{Name: "green", RGB: "00ff00"},
	)
	assert.NoError(t, err)
	assert.Equal(t, 3, p.Size())
	assert.Equal(t, Cell(0b111), p.All())
	assert.False(t, p.Monochrome())

	red, ok := p.ByName("red")
	assert.True(t, ok)
	assert.Equal(t, Cell(1<<1), red.Code)

	green, ok := p.ByCode(1 << 2)
	assert.True(t, ok)
	assert.Equal(t, "green", green.Name)

	bySym, ok := p.BySymbol('%')
	assert.True(t, ok)
	assert.Equal(t, "red", bySym.Name)

	_, ok = p.ByName("blue")
	assert.False(t, ok)
}

func TestPaletteRejectsDuplicates(t *testing.T) {
	_, err := NewPalette(
		Color{Name: "red", RGB: "f00"},
		Color{Name: "red", RGB: "e00"},
	)
	assert.Error(t, err)
}

func TestBlackAndWhite(t *testing.T) {
	p := BlackAndWhite()
	assert.True(t, p.Monochrome())
	black, ok := p.ByName("black")
	assert.True(t, ok)
	assert.Equal(t, Cell(1<<1), black.Code)
}

func TestClueMinSpan(t *testing.T) {
	red, blue := Cell(1<<1), Cell(1<<2)

	tests := []struct {
		name string
		clue Clue
		want int
	}{
		{name: "empty", clue: Clue{}, want: 0},
		{name: "single", clue: Blocks(red, 4), want: 4},
		{name: "same color", clue: Blocks(red, 2, 2), want: 5},
		{name: "different colors abut", clue: Clue{{2, red}, {2, blue}}, want: 4},
		{name: "mixed", clue: Clue{{1, red}, {1, red}, {1, blue}}, want: 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.clue.MinSpan())
		})
	}
}
