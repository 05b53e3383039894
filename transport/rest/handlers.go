package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var errBadRequestBody = errors.New("invalid request body")

type GameHandlers interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
	LeaveGame(w http.ResponseWriter, r *http.Request)

	GetResult(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type gameUseCase interface {
	CreateGame(ctx context.Context, gameType, computerMark string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, error)
	LeaveGame(ctx context.Context, id string) error

	GetResult(ctx context.Context, id string) (*entity.Result, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
}

type createGameRequest struct {
	Mode         string `json:"mode"`
	ComputerMark string `json:"computer_mark"`
}

type turnRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type gameHandlers struct {
	logger *slog.Logger
	game   gameUseCase
}

func NewGameHandlers(logger *slog.Logger, game gameUseCase) GameHandlers {
	return &gameHandlers{
		logger: logger.With("component", "gameHandlers"),
		game:   game,
	}
}

func (that *gameHandlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, "CreateGame", errBadRequestBody)
		return
	}

	if req.Mode == "" {
		req.Mode = entity.TwoPlayerType
	}

	game, err := that.game.CreateGame(r.Context(), req.Mode, req.ComputerMark)
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *gameHandlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeError(w, "MakeTurn", errBadRequestBody)
		return
	}

	game, err := that.game.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) LeaveGame(w http.ResponseWriter, r *http.Request) {
	if err := that.game.LeaveGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "LeaveGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *gameHandlers) GetResult(w http.ResponseWriter, r *http.Request) {
	result, err := that.game.GetResult(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetResult", err)
		return
	}

	that.writeJSON(w, http.StatusOK, result)
}

func (that *gameHandlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.game.GetStats(r.Context())
	if err != nil {
		that.writeError(w, "GetStats", err)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

func (that *gameHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *gameHandlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, apperror.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, errBadRequestBody),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidBoardSize),
		errors.Is(err, apperror.ErrBoardTooLarge),
		errors.Is(err, apperror.ErrUnknownGameType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
