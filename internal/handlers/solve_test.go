package handlers

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

func TestParseSolveParamsDTO(t *testing.T) {
	t.Parallel()

	query, err := url.ParseQuery(
		"max_solutions=4&max_depth=10&timeout_ms=1500&disable_probing=true&spam=1",
	)
	require.NoError(t, err)

	dto, err := ParseSolveParamsDTO(query)
	require.NoError(t, err)

	assert.Equal(t, 4, dto.MaxSolutions)
	assert.Equal(t, 10, dto.MaxDepth)
	assert.True(t, dto.DisableProbing)
	assert.Equal(t, 1500*time.Millisecond, dto.Timeout())

	opts := dto.Options()
	assert.Equal(t, 4, opts.MaxSolutions)
	assert.True(t, opts.DisableProbing)
}

func TestSolveParamsDTOTimeoutBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultSolveTimeout, SolveParamsDTO{}.Timeout())
	assert.Equal(t, maxSolveTimeout,
		SolveParamsDTO{TimeoutMs: int64(time.Hour / time.Millisecond)}.Timeout())
}

func TestNewSolveResultDTO(t *testing.T) {
	t.Parallel()

	p := nonogram.BlackAndWhite()
	black, _ := p.ByName("black")
	one := nonogram.Blocks(black.Code, 1)
	three := nonogram.Blocks(black.Code, 3)
	board, err := nonogram.NewBoard(p,
		[]nonogram.Clue{one, three, one},
		[]nonogram.Clue{one, three, one},
	)
	require.NoError(t, err)

	res := nonogram.Solve(context.Background(), board, nonogram.Options{})
	dto := newSolveResultDTO(res)

	assert.Equal(t, "solved-unique", dto.Status)
	require.Len(t, dto.Solutions, 1)
	assert.Contains(t, dto.Solutions[0].Text, "X X X")
	assert.Contains(t, dto.Solutions[0].SVG, "<svg")
	assert.Nil(t, dto.Partial)
}
