package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

// SolveRecord is one solver run over a stored puzzle.
type SolveRecord struct {
	SolveRecordId  int64
	PuzzleId       int64
	Status         string
	Solutions      int
	Contradictions int
	ProbeRounds    int
	Depth          int
	Nodes          int
	DurationMs     int64
	CreatedAt      pgtype.Timestamptz
}

func (q *Queries) CreateSolveRecord(
	ctx context.Context, puzzleId int64, res *nonogram.Result,
) (*SolveRecord, error) {
	args := pgx.NamedArgs{
		"puzzle_id":      puzzleId,
		"status":         res.Status.String(),
		"solutions":      len(res.Solutions),
		"contradictions": res.Stats.Contradictions,
		"probe_rounds":   res.Stats.ProbeRounds,
		"depth":          res.Stats.Depth,
		"nodes":          res.Stats.Nodes,
		"duration_ms":    res.Stats.Duration.Milliseconds(),
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_record (
			puzzle_id, status, solutions, contradictions,
			probe_rounds, depth, nodes, duration_ms
		)
		VALUES (
			@puzzle_id, @status, @solutions, @contradictions,
			@probe_rounds, @depth, @nodes, @duration_ms
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRecord])
}

func (q *Queries) ListSolveRecords(
	ctx context.Context, puzzleId int64,
) ([]*SolveRecord, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM solve_record WHERE puzzle_id = $1 ORDER BY solve_record_id",
		puzzleId,
	)
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[SolveRecord])
}
