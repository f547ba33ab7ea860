package nonogram

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSolution verifies a solved board against every row and column clue.
func checkSolution(t *testing.T, b *Board) {
	t.Helper()
	require.True(t, b.Solved())
	for r := 0; r < b.Height(); r++ {
		line := b.Row(r, nil)
		assert.True(t, clueEqual(b.RowClue(r), lineRuns(line)),
			"row %d: got runs %v, want %v", r, lineRuns(line), b.RowClue(r))
	}
	for c := 0; c < b.Width(); c++ {
		line := b.Col(c, nil)
		assert.True(t, clueEqual(b.ColClue(c), lineRuns(line)),
			"column %d: got runs %v, want %v", c, lineRuns(line), b.ColClue(c))
	}
}

func TestSolveUniqueByPropagation(t *testing.T) {
	t.Parallel()

	b := monoBoard(t,
		[][]int{{1}, {3}, {1}},
		[][]int{{1}, {3}, {1}},
	)
	res := Solve(context.Background(), b, Options{})

	assert.Equal(t, StatusSolvedUnique, res.Status)
	require.Len(t, res.Solutions, 1)
	checkSolution(t, res.Solutions[0])

	// the caller's board is untouched
	assert.Equal(t, 9, b.Unresolved())
}

func TestSolveAmbiguous2x2(t *testing.T) {
	t.Parallel()

	// the XOR square: diagonal and anti-diagonal both work
	b := monoBoard(t,
		[][]int{{1}, {1}},
		[][]int{{1}, {1}},
	)
	res := Solve(context.Background(), b, Options{MaxSolutions: 2})

	assert.Equal(t, StatusSolvedMultiple, res.Status)
	require.Len(t, res.Solutions, 2)
	for _, s := range res.Solutions {
		checkSolution(t, s)
	}
	assert.False(t, res.Solutions[0].SameCells(res.Solutions[1]))
	assert.GreaterOrEqual(t, res.Stats.ProbeRounds, 1)
}

func TestSolveEnumeratesAllSolutions(t *testing.T) {
	t.Parallel()

	// one ink per row and column: the six 3x3 permutation matrices
	b := monoBoard(t,
		[][]int{{1}, {1}, {1}},
		[][]int{{1}, {1}, {1}},
	)
	res := Solve(context.Background(), b, Options{MaxSolutions: 10})

	assert.Equal(t, StatusSolvedMultiple, res.Status)
	require.Len(t, res.Solutions, 6)
	for i, s := range res.Solutions {
		checkSolution(t, s)
		for j := i + 1; j < len(res.Solutions); j++ {
			assert.False(t, s.SameCells(res.Solutions[j]))
		}
	}
}

func TestSolveMaxSolutionsOne(t *testing.T) {
	t.Parallel()

	b := monoBoard(t,
		[][]int{{1}, {1}},
		[][]int{{1}, {1}},
	)
	res := Solve(context.Background(), b, Options{MaxSolutions: 1})

	// with a cap of one the run stops at the first solution; uniqueness
	// is not probed any further
	assert.Equal(t, StatusSolvedUnique, res.Status)
	require.Len(t, res.Solutions, 1)
	checkSolution(t, res.Solutions[0])
}

func TestSolveContradictory(t *testing.T) {
	t.Parallel()

	b := monoBoard(t,
		[][]int{{3}, {3}, {3}},
		[][]int{{2}, {3}, {2}},
	)
	res := Solve(context.Background(), b, Options{})

	assert.Equal(t, StatusContradictory, res.Status)
	assert.Empty(t, res.Solutions)
	assert.GreaterOrEqual(t, res.Stats.Contradictions, 1)
}

func TestSolveColored(t *testing.T) {
	t.Parallel()

	p, err := NewPalette(
		Color{Name: "red", RGB: "ff0000"},
		Color{Name: "blue", RGB: "0000ff"},
	)
	require.NoError(t, err)
	red, blue := Cell(1<<1), Cell(1<<2)

	b := mustBoard(t, p,
		[]Clue{
			{{1, red}, {1, blue}},
			{{1, red}, {1, blue}},
		},
		[]Clue{
			{{2, red}},
			{{2, blue}},
		},
	)
	res := Solve(context.Background(), b, Options{})

	assert.Equal(t, StatusSolvedUnique, res.Status)
	require.Len(t, res.Solutions, 1)
	s := res.Solutions[0]
	checkSolution(t, s)
	assert.Equal(t, red, s.Get(0, 0))
	assert.Equal(t, blue, s.Get(0, 1))
	assert.Equal(t, red, s.Get(1, 0))
	assert.Equal(t, blue, s.Get(1, 1))
}

func TestSolveTimeout(t *testing.T) {
	t.Parallel()

	b := monoBoard(t,
		[][]int{{1}, {1}},
		[][]int{{1}, {1}},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Solve(ctx, b, Options{})
	assert.Equal(t, StatusTimeout, res.Status)
	assert.Empty(t, res.Solutions)
	assert.NotNil(t, res.Partial)
}

func TestSolveDepthLimit(t *testing.T) {
	t.Parallel()

	b := monoBoard(t,
		[][]int{{1}, {1}, {1}},
		[][]int{{1}, {1}, {1}},
	)
	res := Solve(context.Background(), b, Options{
		MaxDepth:       1,
		DisableProbing: true,
	})

	assert.Equal(t, StatusExhausted, res.Status)
	assert.Empty(t, res.Solutions)
	assert.NotNil(t, res.Partial)
}

func TestSolveWithoutProbing(t *testing.T) {
	t.Parallel()

	b := monoBoard(t,
		[][]int{{1}, {1}},
		[][]int{{1}, {1}},
	)
	res := Solve(context.Background(), b, Options{DisableProbing: true})

	assert.Equal(t, StatusSolvedMultiple, res.Status)
	assert.Len(t, res.Solutions, 2)
	assert.Zero(t, res.Stats.ProbeRounds)
	assert.GreaterOrEqual(t, res.Stats.Nodes, 1)
}

func TestSolveProgressEvents(t *testing.T) {
	t.Parallel()

	b := monoBoard(t,
		[][]int{{1}, {1}},
		[][]int{{1}, {1}},
	)

	var kinds []EventKind
	Solve(context.Background(), b, Options{
		Progress: func(e Event) { kinds = append(kinds, e.Kind) },
	})

	assert.Contains(t, kinds, EventPropagated)
	assert.Contains(t, kinds, EventProbeRound)
	assert.Contains(t, kinds, EventSolution)
}
