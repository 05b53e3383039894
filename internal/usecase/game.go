package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type GameUseCase interface {
	CreateGame(ctx context.Context, gameType, computerMark string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, error)
	LeaveGame(ctx context.Context, id string) error

	GetResult(ctx context.Context, id string) (*entity.Result, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
}

type sessionDep interface {
	CreateSession(ctx context.Context, gameType, computerMark string) (*entity.Game, error)
	GetSession(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, error)
	DeleteSession(ctx context.Context, id string) error
}

type resultRepoDep interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
}

type gameUseCase struct {
	logger *slog.Logger

	sessions   sessionDep
	resultRepo resultRepoDep

	now func() time.Time
}

func NewGameUseCase(logger *slog.Logger, sessions sessionDep, resultRepo resultRepoDep) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "gameUseCase"),
		sessions:   sessions,
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context, gameType, computerMark string) (*entity.Game, error) {
	game, err := that.sessions.CreateSession(ctx, gameType, computerMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

// GetGame - returns the live game, or the recorded outcome once it has finished.
func (that *gameUseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.sessions.GetSession(ctx, id)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	result, resultErr := that.resultRepo.GetByID(ctx, id)
	if resultErr != nil {
		if errors.Is(resultErr, apperror.ErrResultNotFound) {
			return nil, fmt.Errorf("failed to get game: %w", err)
		}

		return nil, fmt.Errorf("failed to get game result: %w", resultErr)
	}

	return &entity.Game{
		ID:     result.GameID,
		Board:  result.Board,
		Winner: result.Winner,
		Status: entity.StatusFinished,
		Type:   result.Type,
	}, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, error) {
	game, err := that.sessions.MakeTurn(ctx, id, row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.cleanupGame(ctx, game)
	}

	return game, nil
}

func (that *gameUseCase) LeaveGame(ctx context.Context, id string) error {
	if err := that.sessions.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed to leave game: %w", err)
	}

	return nil
}

func (that *gameUseCase) GetResult(ctx context.Context, id string) (*entity.Result, error) {
	result, err := that.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return result, nil
}

func (that *gameUseCase) GetStats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.resultRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

// cleanupGame - records the outcome and drops the finished session.
func (that *gameUseCase) cleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	result := &entity.Result{
		GameID:     game.ID,
		Type:       game.Type,
		Winner:     game.Winner,
		Board:      game.Board,
		FinishedAt: that.now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
	}

	if err := that.sessions.DeleteSession(ctx, game.ID); err != nil {
		log.Error("failed to delete session", "error", err)
	}

	log.Info("game finished", "winner", game.Winner)
}
