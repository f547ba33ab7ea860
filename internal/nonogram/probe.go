package nonogram

import (
	"context"
	"errors"
	"sort"
)

// prober runs contradiction rounds once plain propagation stalls. Each
// round walks every unresolved cell and tries every color it still
// admits on a clone of the board; a clone that contradicts proves the
// color impossible, so it is eliminated from the real board and the
// deduction propagated. Rounds repeat while they keep eliminating.
type prober struct {
	board *Board
	opts  Options
	found *solutions
	stats *Stats
	ls    *lineSolver
}

func (p *prober) run(ctx context.Context) error {
	for round := 1; ; round++ {
		if p.opts.ProbeMaxRounds > 0 && round > p.opts.ProbeMaxRounds {
			return nil
		}

		eliminated, err := p.round(ctx)
		if err != nil {
			return err
		}
		p.stats.ProbeRounds++
		emit(p.opts, Event{
			Kind:       EventProbeRound,
			Round:      round,
			Solutions:  len(p.found.boards),
			Unresolved: p.board.Unresolved(),
		})
		Log.WithFields(map[string]interface{}{
			"round":      round,
			"eliminated": eliminated,
			"unresolved": p.board.Unresolved(),
		}).Debug("contradiction round done")

		if eliminated == 0 || p.board.Solved() || p.found.full() {
			return nil
		}
	}
}

type probeCandidate struct {
	r, c      int
	colors    int
	neighbors int
}

// candidates snapshots the unresolved cells, cheapest first: fewest
// remaining colors, then most resolved neighbors, then grid order. The
// order only affects speed, but it must be deterministic.
func (p *prober) candidates() []probeCandidate {
	var cands []probeCandidate
	for r := 0; r < p.board.Height(); r++ {
		for c := 0; c < p.board.Width(); c++ {
			mask := p.board.Get(r, c)
			if mask.Resolved() {
				continue
			}
			cands = append(cands, probeCandidate{
				r: r, c: c,
				colors:    mask.Count(),
				neighbors: p.board.resolvedNeighbors(r, c),
			})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.colors != b.colors {
			return a.colors < b.colors
		}
		if a.neighbors != b.neighbors {
			return a.neighbors > b.neighbors
		}
		if a.r != b.r {
			return a.r < b.r
		}
		return a.c < b.c
	})
	return cands
}

func (p *prober) round(ctx context.Context) (int, error) {
	eliminated := 0
	for _, cand := range p.candidates() {
		mask := p.board.Get(cand.r, cand.c)
		if mask.Resolved() {
			// settled by an earlier elimination in this round
			continue
		}
		for _, color := range mask.Colors() {
			if err := ctx.Err(); err != nil {
				return eliminated, err
			}
			if !p.board.Get(cand.r, cand.c).Has(color) {
				continue
			}

			clone := p.board.Clone()
			if _, err := clone.Set(cand.r, cand.c, color); err != nil {
				return eliminated, err
			}
			prop := newPropagator(clone, p.stats, p.ls)
			prop.markCell(cand.r, cand.c)
			err := prop.run(ctx)

			switch {
			case errors.Is(err, ErrContradiction):
				if err := p.eliminate(ctx, cand.r, cand.c, color); err != nil {
					return eliminated, err
				}
				eliminated++
			case err != nil:
				return eliminated, err
			case clone.Solved():
				if p.found.add(clone) {
					emit(p.opts, Event{
						Kind:      EventSolution,
						Solutions: len(p.found.boards),
					})
					Log.WithField("solutions", len(p.found.boards)).
						Debug("probe hit a full solution")
				}
				if p.found.full() {
					return eliminated, nil
				}
			}
		}
	}
	return eliminated, nil
}

// eliminate removes a disproven color from a cell of the real board and
// propagates the refinement. A contradiction here is a root contradiction:
// the eliminated color was the cell's last consistent option.
func (p *prober) eliminate(ctx context.Context, r, c int, color Cell) error {
	mask := p.board.Get(r, c) &^ color
	if _, err := p.board.Set(r, c, mask); err != nil {
		return err
	}
	prop := newPropagator(p.board, p.stats, p.ls)
	prop.markCell(r, c)
	return prop.run(ctx)
}
