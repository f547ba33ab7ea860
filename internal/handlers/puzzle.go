package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/nonogram-server/internal/config"
	"github.com/vancomm/nonogram-server/internal/format"
	"github.com/vancomm/nonogram-server/internal/middleware"
	"github.com/vancomm/nonogram-server/internal/repository"
)

const maxPuzzleSource = 1 << 20

type PuzzleHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
}

func NewPuzzleHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
) *PuzzleHandler {
	return &PuzzleHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
	}
}

type PuzzleDTO struct {
	PuzzleId string `json:"puzzle_id"`
	Title    string `json:"title"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Colored  bool   `json:"colored"`
	Format   string `json:"format"`
	Source   string `json:"source,omitempty"`
}

func newPuzzleDTO(p *repository.Puzzle, withSource bool) *PuzzleDTO {
	dto := &PuzzleDTO{
		PuzzleId: strconv.FormatInt(p.PuzzleId, 10),
		Title:    p.Title,
		Width:    p.Width,
		Height:   p.Height,
		Colored:  p.Colored,
		Format:   p.Format,
	}
	if withSource {
		dto.Source = p.Source
	}
	return dto
}

// Create stores a puzzle definition posted in the request body. The
// format comes from the "format" query parameter (default ini); the
// definition is parsed up front so malformed puzzles are rejected here,
// not at solve time.
func (h PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	kind := query.Get("format")
	if kind == "" {
		kind = "ini"
	}

	source, err := io.ReadAll(io.LimitReader(r.Body, maxPuzzleSource))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	def, err := format.Read(strings.NewReader(string(source)), kind)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	board, err := def.Board()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	title := query.Get("title")
	if title == "" {
		title = fmt.Sprintf("%dx%d", board.Height(), board.Width())
	}

	var createdBy *int64
	if claims, ok := middleware.PlayerClaims(r); ok {
		createdBy = &claims.PlayerId
	}

	puzzle, err := h.repo.CreatePuzzle(r.Context(), repository.CreatePuzzleParams{
		Title:     title,
		Width:     board.Width(),
		Height:    board.Height(),
		Colored:   !board.Palette().Monochrome(),
		Format:    strings.ToLower(kind),
		Source:    string(source),
		CreatedBy: createdBy,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to insert puzzle", slog.Any("error", err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	sendJSONOrLog(w, h.logger, newPuzzleDTO(puzzle, true))
}

func (h PuzzleHandler) fetch(w http.ResponseWriter, r *http.Request) *repository.Puzzle {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil
	}
	puzzle, err := h.repo.FetchPuzzle(r.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch puzzle", slog.Any("error", err))
		return nil
	}
	return puzzle
}

func (h PuzzleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	puzzle := h.fetch(w, r)
	if puzzle == nil {
		return
	}
	sendJSONOrLog(w, h.logger, newPuzzleDTO(puzzle, true))
}

func (h PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	puzzles, err := h.repo.ListPuzzles(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list puzzles", slog.Any("error", err))
		return
	}
	dtos := make([]*PuzzleDTO, 0, len(puzzles))
	for _, p := range puzzles {
		dtos = append(dtos, newPuzzleDTO(p, false))
	}
	sendJSONOrLog(w, h.logger, dtos)
}
