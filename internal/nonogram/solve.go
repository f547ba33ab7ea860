package nonogram

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Log is the package logger. Callers may swap formatters or levels; probe
// and search details are emitted at debug level.
var Log = logrus.New()

// Status is the terminal state of a solve run.
type Status int8

const (
	// StatusContradictory means the clues admit no coloring at all.
	StatusContradictory Status = iota - 1
	// StatusSolvedUnique means exactly one solution was found and, with
	// MaxSolutions >= 2, proven unique.
	StatusSolvedUnique
	// StatusSolvedMultiple means at least two distinct solutions exist.
	StatusSolvedMultiple
	// StatusTimeout means the deadline expired; Partial holds the best
	// board deduced so far.
	StatusTimeout
	// StatusExhausted means a depth limit pruned the search tree before
	// any solution was found.
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusContradictory:
		return "contradictory"
	case StatusSolvedUnique:
		return "solved-unique"
	case StatusSolvedMultiple:
		return "solved-multiple"
	case StatusTimeout:
		return "unsolved-timeout"
	case StatusExhausted:
		return "unsolved-exhausted"
	default:
		return "status " + strconv.Itoa(int(s))
	}
}

// Options tune a solve run. The zero value asks for up to two solutions
// (enough to detect non-uniqueness), unlimited depth, unlimited probe
// rounds and probing enabled. Deadlines arrive through the context.
type Options struct {
	// MaxSolutions stops the run once this many distinct solutions have
	// been collected. 0 means the default of 2.
	MaxSolutions int
	// MaxDepth bounds the search recursion; 0 means unlimited.
	MaxDepth int
	// ProbeMaxRounds caps contradiction rounds; 0 means until stalled.
	ProbeMaxRounds int
	// DisableProbing skips contradiction rounds and goes straight from
	// propagation to search.
	DisableProbing bool
	// Progress, when set, receives solve lifecycle events.
	Progress func(Event)
}

func (o Options) withDefaults() Options {
	if o.MaxSolutions <= 0 {
		o.MaxSolutions = 2
	}
	return o
}

// EventKind tags a progress event.
type EventKind int8

const (
	// EventPropagated fires after the initial propagation fixed point.
	EventPropagated EventKind = iota
	// EventProbeRound fires after each contradiction round.
	EventProbeRound
	// EventSolution fires whenever a new distinct solution is recorded.
	EventSolution
)

// Event is a snapshot of solver progress delivered to Options.Progress.
type Event struct {
	Kind       EventKind
	Round      int
	Solutions  int
	Unresolved int
}

// Stats are the counters accumulated over a solve run.
type Stats struct {
	// Contradictions counts line-solver contradictions hit anywhere:
	// at the root, during probing and during search.
	Contradictions int
	// ProbeRounds counts completed contradiction rounds.
	ProbeRounds int
	// Depth is the deepest search node entered.
	Depth int
	// Nodes counts search nodes entered.
	Nodes int
	// Duration is the wall time of the whole run.
	Duration time.Duration
}

// Result is the outcome of a solve run.
type Result struct {
	// Solutions holds the distinct solved boards found, at most
	// MaxSolutions of them, in discovery order.
	Solutions []*Board
	Status    Status
	Stats     Stats
	// Partial is the root board as far as propagation and probing refined
	// it. It is set only when Status is StatusTimeout or StatusExhausted.
	Partial *Board
}

// solutions collects distinct solved boards up to a cap. Probing and
// search may reach the same solution through different branches, so every
// candidate is checked against the ones already recorded.
type solutions struct {
	max    int
	boards []*Board
}

func (s *solutions) add(b *Board) bool {
	for _, seen := range s.boards {
		if seen.SameCells(b) {
			return false
		}
	}
	s.boards = append(s.boards, b)
	return true
}

func (s *solutions) full() bool {
	return len(s.boards) >= s.max
}

var (
	// errEnough aborts the search once MaxSolutions solutions exist.
	errEnough = errors.New("enough solutions")
	// errDepthLimit unwinds a search branch cut off by MaxDepth.
	errDepthLimit = errors.New("depth limit reached")
)

// Solve runs the full pipeline on a copy of the board: propagation to a
// fixed point, contradiction rounds while they keep eliminating colors,
// then depth-first search. The caller's board is never mutated. Resource
// exhaustion (deadline, depth limit) is reported through Result.Status,
// never as an error.
func Solve(ctx context.Context, board *Board, opts Options) *Result {
	opts = opts.withDefaults()
	start := time.Now()

	res := &Result{}
	work := board.Clone()
	found := &solutions{max: opts.MaxSolutions}

	res.Status = solve(ctx, work, opts, found, &res.Stats)
	res.Solutions = found.boards
	res.Stats.Duration = time.Since(start)
	if res.Status == StatusTimeout || res.Status == StatusExhausted {
		res.Partial = work
	}
	return res
}

func solve(
	ctx context.Context,
	work *Board,
	opts Options,
	found *solutions,
	stats *Stats,
) Status {
	ls := &lineSolver{}

	p := newPropagator(work, stats, ls)
	p.markAll()
	if err := p.run(ctx); err != nil {
		return statusForError(err)
	}
	emit(opts, Event{Kind: EventPropagated, Unresolved: work.Unresolved()})

	if work.Solved() {
		// Full propagation alone resolved every cell. The line solver
		// only removes colors that appear in no completion, so the
		// solution is necessarily unique.
		found.add(work.Clone())
		return StatusSolvedUnique
	}

	if !opts.DisableProbing {
		pr := prober{board: work, opts: opts, found: found, stats: stats, ls: ls}
		if err := pr.run(ctx); err != nil {
			return statusForError(err)
		}
		if work.Solved() {
			found.add(work.Clone())
			return solvedStatus(found)
		}
		if found.full() {
			return solvedStatus(found)
		}
	}

	s := searcher{opts: opts, found: found, stats: stats, ls: ls}
	err := s.search(ctx, work, 0)
	switch {
	case err == nil:
	case errors.Is(err, errEnough):
	case errors.Is(err, errDepthLimit):
		if len(found.boards) == 0 {
			return StatusExhausted
		}
	default:
		return statusForError(err)
	}

	if len(found.boards) == 0 {
		// The tree was exhausted without limits and produced nothing:
		// a proof by search that the clues are unsatisfiable.
		return StatusContradictory
	}
	return solvedStatus(found)
}

func solvedStatus(found *solutions) Status {
	if len(found.boards) > 1 {
		return StatusSolvedMultiple
	}
	return StatusSolvedUnique
}

func statusForError(err error) Status {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return StatusTimeout
	}
	return StatusContradictory
}

func emit(opts Options, e Event) {
	if opts.Progress != nil {
		opts.Progress(e)
	}
}
