package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

func crossBoard(t *testing.T) *nonogram.Board {
	t.Helper()
	p := nonogram.BlackAndWhite()
	black, _ := p.ByName("black")
	one := nonogram.Blocks(black.Code, 1)
	three := nonogram.Blocks(black.Code, 3)
	b, err := nonogram.NewBoard(p,
		[]nonogram.Clue{one, three, one},
		[]nonogram.Clue{one, three, one},
	)
	require.NoError(t, err)
	return b
}

func TestTextUnsolved(t *testing.T) {
	t.Parallel()

	out := Text(crossBoard(t))
	assert.Contains(t, out, "?")
	assert.Contains(t, out, "3")
	// one header line plus one line per row
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 4)
}

func TestTextSolved(t *testing.T) {
	t.Parallel()

	res := nonogram.Solve(context.Background(), crossBoard(t), nonogram.Options{})
	require.Equal(t, nonogram.StatusSolvedUnique, res.Status)

	out := Text(res.Solutions[0])
	assert.NotContains(t, out, "?")
	assert.Contains(t, out, "X X X")
	assert.Contains(t, out, ". X .")
}

func TestSVG(t *testing.T) {
	t.Parallel()

	res := nonogram.Solve(context.Background(), crossBoard(t), nonogram.Options{})
	require.Equal(t, nonogram.StatusSolvedUnique, res.Status)

	out := SVG(res.Solutions[0])
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "#000000")
	// five inked cells in the cross
	assert.Equal(t, 5, strings.Count(out, "#000000"))
}
