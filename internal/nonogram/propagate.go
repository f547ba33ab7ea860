package nonogram

import "context"

// lineSet is a deterministic work set of dirty line indexes. Pop order is
// always the smallest index first, which keeps whole solver runs
// reproducible.
type lineSet struct {
	dirty []bool
	count int
}

func newLineSet(size int) *lineSet {
	return &lineSet{dirty: make([]bool, size)}
}

func (s *lineSet) add(i int) {
	if !s.dirty[i] {
		s.dirty[i] = true
		s.count++
	}
}

func (s *lineSet) pop() (int, bool) {
	if s.count == 0 {
		return 0, false
	}
	for i, d := range s.dirty {
		if d {
			s.dirty[i] = false
			s.count--
			return i, true
		}
	}
	return 0, false
}

// propagator drives the line solver to a fixed point. It keeps two work
// sets, dirty rows and dirty columns, and alternates between them (rows
// first). Whenever a line write refines a cell, the perpendicular line
// through that cell becomes dirty. Masks only ever shrink, so the loop
// always terminates.
type propagator struct {
	board  *Board
	rows   *lineSet
	cols   *lineSet
	solver *lineSolver
	buf    []Cell
	stats  *Stats
}

// newPropagator builds a propagator over the board. The line solver is
// shared between propagators of one solve run so its scratch tables are
// allocated once, not per probe or per search node.
func newPropagator(b *Board, stats *Stats, solver *lineSolver) *propagator {
	return &propagator{
		board:  b,
		rows:   newLineSet(b.Height()),
		cols:   newLineSet(b.Width()),
		solver: solver,
		stats:  stats,
	}
}

// markAll queues every line, the initial state of a fresh solve.
func (p *propagator) markAll() {
	for r := 0; r < p.board.Height(); r++ {
		p.rows.add(r)
	}
	for c := 0; c < p.board.Width(); c++ {
		p.cols.add(c)
	}
}

// markCell queues both lines through (r, c), used after a single trial
// assignment on an otherwise settled board.
func (p *propagator) markCell(r, c int) {
	p.rows.add(r)
	p.cols.add(c)
}

// run solves dirty lines until both work sets drain. Returns
// ErrContradiction as soon as any line or cell write fails, or the
// context error when the deadline expires.
func (p *propagator) run(ctx context.Context) error {
	rowTurn := true
	for p.rows.count > 0 || p.cols.count > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		if rowTurn {
			if r, ok := p.rows.pop(); ok {
				err = p.solveRow(r)
			} else if c, ok := p.cols.pop(); ok {
				err = p.solveCol(c)
			}
		} else {
			if c, ok := p.cols.pop(); ok {
				err = p.solveCol(c)
			} else if r, ok := p.rows.pop(); ok {
				err = p.solveRow(r)
			}
		}
		rowTurn = !rowTurn
		if err != nil {
			p.stats.Contradictions++
			return err
		}
	}
	return nil
}

func (p *propagator) solveRow(r int) error {
	p.buf = p.board.Row(r, p.buf)
	if err := p.solver.solve(p.board.RowClue(r), p.buf); err != nil {
		return err
	}
	for c, mask := range p.buf {
		changed, err := p.board.Set(r, c, mask)
		if err != nil {
			return err
		}
		if changed {
			p.cols.add(c)
		}
	}
	return nil
}

func (p *propagator) solveCol(c int) error {
	p.buf = p.board.Col(c, p.buf)
	if err := p.solver.solve(p.board.ColClue(c), p.buf); err != nil {
		return err
	}
	for r, mask := range p.buf {
		changed, err := p.board.Set(r, c, mask)
		if err != nil {
			return err
		}
		if changed {
			p.rows.add(r)
		}
	}
	return nil
}
