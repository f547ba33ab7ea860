package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vancomm/nonogram-server/internal/nonogram"
)

type solveEventDTO struct {
	Event      string `json:"event"`
	Round      int    `json:"round,omitempty"`
	Solutions  int    `json:"solutions"`
	Unresolved int    `json:"unresolved"`
}

func eventName(kind nonogram.EventKind) string {
	switch kind {
	case nonogram.EventPropagated:
		return "propagated"
	case nonogram.EventProbeRound:
		return "probe_round"
	case nonogram.EventSolution:
		return "solution"
	default:
		return "unknown"
	}
}

// SolveWS streams solver progress over a websocket: one JSON event per
// lifecycle step, then the final result in the same shape as the plain
// solve endpoint, then a normal close.
func (h PuzzleHandler) SolveWS(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(r.Context(), dto.Timeout())
	defer cancel()

	// the progress callback runs on the solver goroutine, which is this
	// one; writes are therefore never concurrent
	opts := dto.Options()
	opts.Progress = func(e nonogram.Event) {
		err := c.WriteJSON(solveEventDTO{
			Event:      eventName(e.Kind),
			Round:      e.Round,
			Solutions:  e.Solutions,
			Unresolved: e.Unresolved,
		})
		if err != nil {
			h.logger.Warn("unable to stream event", slog.Any("error", err))
			cancel()
		}
	}

	res := nonogram.Solve(ctx, board, opts)

	if _, err = h.repo.CreateSolveRecord(r.Context(), puzzle.PuzzleId, res); err != nil {
		h.logger.Error("unable to record solve", slog.Any("error", err))
	}

	if err := c.WriteJSON(newSolveResultDTO(res)); err != nil {
		h.logger.Warn("unable to send result", slog.Any("error", err))
		return
	}
	c.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
