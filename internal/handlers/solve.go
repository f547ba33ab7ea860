package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/nonogram-server/internal/format"
	"github.com/vancomm/nonogram-server/internal/nonogram"
	"github.com/vancomm/nonogram-server/internal/render"
	"github.com/vancomm/nonogram-server/internal/repository"
)

// SolveParamsDTO are the solver options decoded from the query string.
type SolveParamsDTO struct {
	MaxSolutions   int   `schema:"max_solutions"`
	MaxDepth       int   `schema:"max_depth"`
	ProbeMaxRounds int   `schema:"probe_max_rounds"`
	DisableProbing bool  `schema:"disable_probing"`
	TimeoutMs      int64 `schema:"timeout_ms"`
}

func ParseSolveParamsDTO(src map[string][]string) (SolveParamsDTO, error) {
	var dto SolveParamsDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto SolveParamsDTO) Options() nonogram.Options {
	return nonogram.Options{
		MaxSolutions:   dto.MaxSolutions,
		MaxDepth:       dto.MaxDepth,
		ProbeMaxRounds: dto.ProbeMaxRounds,
		DisableProbing: dto.DisableProbing,
	}
}

const (
	defaultSolveTimeout = 30 * time.Second
	maxSolveTimeout     = 5 * time.Minute
)

func (dto SolveParamsDTO) Timeout() time.Duration {
	timeout := time.Duration(dto.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		return defaultSolveTimeout
	}
	return min(timeout, maxSolveTimeout)
}

type StatsDTO struct {
	Contradictions int   `json:"contradictions"`
	ProbeRounds    int   `json:"probe_rounds"`
	Depth          int   `json:"depth"`
	Nodes          int   `json:"nodes"`
	DurationMs     int64 `json:"duration_ms"`
}

type SolveResultDTO struct {
	Status    string     `json:"status"`
	Stats     StatsDTO   `json:"stats"`
	Solutions []BoardDTO `json:"solutions"`
	Partial   *BoardDTO  `json:"partial,omitempty"`
}

type BoardDTO struct {
	Text string `json:"text"`
	SVG  string `json:"svg"`
}

func newBoardDTO(b *nonogram.Board) BoardDTO {
	return BoardDTO{
		Text: render.Text(b),
		SVG:  render.SVG(b),
	}
}

func newSolveResultDTO(res *nonogram.Result) *SolveResultDTO {
	dto := &SolveResultDTO{
		Status: res.Status.String(),
		Stats: StatsDTO{
			Contradictions: res.Stats.Contradictions,
			ProbeRounds:    res.Stats.ProbeRounds,
			Depth:          res.Stats.Depth,
			Nodes:          res.Stats.Nodes,
			DurationMs:     res.Stats.Duration.Milliseconds(),
		},
		Solutions: make([]BoardDTO, 0, len(res.Solutions)),
	}
	for _, s := range res.Solutions {
		dto.Solutions = append(dto.Solutions, newBoardDTO(s))
	}
	if res.Partial != nil {
		partial := newBoardDTO(res.Partial)
		dto.Partial = &partial
	}
	return dto
}

// Solve runs the solver over a stored puzzle and records the outcome.
func (h PuzzleHandler) Solve(w http.ResponseWriter, r *http.Request) {
	puzzle := h.fetch(w, r)
	if puzzle == nil {
		return
	}

	dto, err := ParseSolveParamsDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	board, err := boardOf(puzzle)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("stored puzzle does not parse",
			slog.Int64("puzzle_id", puzzle.PuzzleId), slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dto.Timeout())
	defer cancel()

	res := nonogram.Solve(ctx, board, dto.Options())

	if _, err = h.repo.CreateSolveRecord(r.Context(), puzzle.PuzzleId, res); err != nil {
		h.logger.Error("unable to record solve", slog.Any("error", err))
	}

	sendJSONOrLog(w, h.logger, newSolveResultDTO(res))
}

// Records lists past solver runs for a puzzle.
func (h PuzzleHandler) Records(w http.ResponseWriter, r *http.Request) {
	puzzle := h.fetch(w, r)
	if puzzle == nil {
		return
	}
	records, err := h.repo.ListSolveRecords(r.Context(), puzzle.PuzzleId)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list solve records", slog.Any("error", err))
		return
	}
	sendJSONOrLog(w, h.logger, records)
}

func boardOf(puzzle *repository.Puzzle) (*nonogram.Board, error) {
	def, err := format.Read(strings.NewReader(puzzle.Source), puzzle.Format)
	if err != nil {
		return nil, err
	}
	return def.Board()
}
