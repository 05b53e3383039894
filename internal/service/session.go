package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var errMoveRejected = errors.New("move rejected")

type SessionService interface {
	CreateSession(ctx context.Context, gameType, computerMark string) (*entity.Game, error)
	GetSession(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, error)
	DeleteSession(ctx context.Context, id string) error
}

// record is a live session; mu serializes moves on it.
type record struct {
	mu       sync.Mutex
	id       string
	gameType string
	session  tictactoe.Session
	players  []*entity.Player
}

type sessionService struct {
	logger *slog.Logger

	boardSize       int
	maxComputerSize int

	mu       sync.RWMutex
	sessions map[string]*record
}

func NewSessionService(logger *slog.Logger, conf config.Game) SessionService {
	return &sessionService{
		logger:          logger.With("component", "sessionService"),
		boardSize:       conf.BoardSize,
		maxComputerSize: conf.MaxComputerBoardSize,
		sessions:        make(map[string]*record),
	}
}

func (that *sessionService) CreateSession(_ context.Context, gameType, computerMark string) (*entity.Game, error) {
	log := that.logger.With("method", "CreateSession", "type", gameType)

	rec := &record{
		id:       uuid.NewString(),
		gameType: gameType,
	}

	switch gameType {
	case entity.TwoPlayerType:
		session, err := tictactoe.NewTwoPlayer(that.boardSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create two-player session: %w", err)
		}

		rec.session = session
		rec.players = []*entity.Player{{Mark: entity.PlayerX.Label()}, {Mark: entity.PlayerO.Label()}}
	case entity.ComputerType:
		if that.boardSize > that.maxComputerSize {
			return nil, fmt.Errorf("%w: %d > %d", apperror.ErrBoardTooLarge, that.boardSize, that.maxComputerSize)
		}

		mark, err := entity.ParseMark(computerMark)
		if err != nil {
			return nil, fmt.Errorf("failed to parse computer mark: %w", err)
		}

		session, err := tictactoe.NewComputerOpponent(that.boardSize, mark)
		if err != nil {
			return nil, fmt.Errorf("failed to create computer session: %w", err)
		}

		rec.session = session
		rec.players = []*entity.Player{
			{Mark: entity.PlayerX.Label(), IsBot: mark == entity.PlayerX},
			{Mark: entity.PlayerO.Label(), IsBot: mark == entity.PlayerO},
		}
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, gameType)
	}

	that.mu.Lock()
	that.sessions[rec.id] = rec
	that.mu.Unlock()

	log.Info("session created", "gameID", rec.id)

	return rec.snapshot(), nil
}

func (that *sessionService) GetSession(_ context.Context, id string) (*entity.Game, error) {
	rec, err := that.getRecord(id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	return rec.snapshot(), nil
}

func (that *sessionService) MakeTurn(_ context.Context, id string, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	rec, err := that.getRecord(id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if err = rec.session.CheckMove(row, col); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if !rec.session.RequestMove(row, col) {
		return nil, fmt.Errorf("%w: row %d col %d", errMoveRejected, row, col)
	}

	log.Debug("turn made", "row", row, "col", col, "remaining", rec.session.RemainingEmpty())

	return rec.snapshot(), nil
}

func (that *sessionService) DeleteSession(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	delete(that.sessions, id)

	return nil
}

func (that *sessionService) getRecord(id string) (*record, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	rec, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return rec, nil
}

// snapshot - builds the outward view of the session. Caller holds rec.mu.
func (that *record) snapshot() *entity.Game {
	session := that.session
	size := session.Size()

	board := make([][]string, size)
	for row := range board {
		board[row] = make([]string, size)
		for col := range board[row] {
			if mark, _ := session.OccupantAt(row, col); mark.IsPlayer() {
				board[row][col] = mark.Label()
			}
		}
	}

	players := make([]*entity.Player, 0, len(that.players))
	for _, player := range that.players {
		p := *player
		players = append(players, &p)
	}

	game := &entity.Game{
		ID:      that.id,
		Board:   board,
		Status:  entity.StatusOngoing,
		Turn:    session.CurrentPlayer().Label(),
		Players: players,
		Type:    that.gameType,
	}

	if session.IsOver() {
		game.Status = entity.StatusFinished
		game.Turn = ""
		game.Winner = entity.PlayerTie

		if winner := session.Winner(); winner.IsPlayer() {
			game.Winner = winner.Label()
		}
	}

	return game
}
