package nonogram

import (
	"context"
	"errors"
)

// searcher is the depth-first backtracker used when propagation and
// probing leave cells unresolved. Boards are cloned on every branch, so a
// node never observes writes made below it.
type searcher struct {
	opts  Options
	found *solutions
	stats *Stats
	ls    *lineSolver
}

// search explores the subtree rooted at b, which must already be at a
// propagation fixed point and not solved. Candidate colors are tried in
// ascending bit order; branch cells are picked by the same heuristic as
// probing. Returns errEnough once MaxSolutions solutions are collected,
// errDepthLimit when MaxDepth pruned any part of the subtree, or the
// context error on deadline.
func (s *searcher) search(ctx context.Context, b *Board, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.stats.Nodes++
	if depth > s.stats.Depth {
		s.stats.Depth = depth
	}
	if s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
		return errDepthLimit
	}

	r, c, ok := chooseBranchCell(b)
	if !ok {
		return nil
	}

	limited := false
	for _, color := range b.Get(r, c).Colors() {
		clone := b.Clone()
		if _, err := clone.Set(r, c, color); err != nil {
			return err
		}
		prop := newPropagator(clone, s.stats, s.ls)
		prop.markCell(r, c)

		err := prop.run(ctx)
		switch {
		case errors.Is(err, ErrContradiction):
			// dead branch, try the next color
			continue
		case err != nil:
			return err
		}

		if clone.Solved() {
			if s.found.add(clone) {
				emit(s.opts, Event{
					Kind:      EventSolution,
					Solutions: len(s.found.boards),
				})
				Log.WithFields(map[string]interface{}{
					"depth":     depth,
					"solutions": len(s.found.boards),
				}).Debug("search found a solution")
			}
			if s.found.full() {
				return errEnough
			}
			continue
		}

		err = s.search(ctx, clone, depth+1)
		switch {
		case errors.Is(err, errDepthLimit):
			limited = true
		case err != nil:
			return err
		}
	}

	if limited {
		return errDepthLimit
	}
	return nil
}

// chooseBranchCell picks the unresolved cell with the fewest remaining
// colors, breaking ties by the number of resolved neighbors and then by
// grid order.
func chooseBranchCell(b *Board) (int, int, bool) {
	bestR, bestC := -1, -1
	bestColors, bestNeighbors := 0, 0
	for r := 0; r < b.Height(); r++ {
		for c := 0; c < b.Width(); c++ {
			mask := b.Get(r, c)
			if mask.Resolved() {
				continue
			}
			colors := mask.Count()
			neighbors := b.resolvedNeighbors(r, c)
			if bestR < 0 || colors < bestColors ||
				(colors == bestColors && neighbors > bestNeighbors) {
				bestR, bestC = r, c
				bestColors, bestNeighbors = colors, neighbors
			}
		}
	}
	return bestR, bestC, bestR >= 0
}
