package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Puzzle keeps the uploaded definition verbatim next to the dimensions
// parsed out of it; solving re-reads Source with the stored Format.
type Puzzle struct {
	PuzzleId  int64
	Title     string
	Width     int
	Height    int
	Colored   bool
	Format    string
	Source    string
	CreatedBy *int64
	CreatedAt pgtype.Timestamptz
}

type CreatePuzzleParams struct {
	Title     string
	Width     int
	Height    int
	Colored   bool
	Format    string
	Source    string
	CreatedBy *int64
}

func (q *Queries) CreatePuzzle(
	ctx context.Context, params CreatePuzzleParams,
) (*Puzzle, error) {
	args := pgx.NamedArgs{
		"title":   params.Title,
		"width":   params.Width,
		"height":  params.Height,
		"colored": params.Colored,
		"format":  params.Format,
		"source":  params.Source,
	}
	if params.CreatedBy != nil {
		args["created_by"] = *params.CreatedBy
	} else {
		args["created_by"] = nil
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO puzzle (title, width, height, colored, format, source, created_by)
		VALUES (@title, @width, @height, @colored, @format, @source, @created_by)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

func (q *Queries) FetchPuzzle(ctx context.Context, id int64) (*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM puzzle WHERE puzzle_id = $1", id,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

func (q *Queries) ListPuzzles(ctx context.Context) ([]*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM puzzle ORDER BY puzzle_id",
	)
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[Puzzle])
}
