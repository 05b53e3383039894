package rest

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	mockedRest "github.com/rocketscienceinc/tictactoe-minimax/mocks/rest"
)

var errRedisDown = errors.New("redis down")

func newTestRouter(t *testing.T) (http.Handler, *mockedRest.MockgameUseCase) {
	t.Helper()

	mockGame := mockedRest.NewMockgameUseCase(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewRouter(NewPingHandler(), NewGameHandlers(logger, mockGame)), mockGame
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, reader))

	return rec
}

func TestPingHandler(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestGameHandlers_CreateGame(t *testing.T) {
	t.Run("Computer game", func(t *testing.T) {
		// Given: a use case that creates the game
		router, mockGame := newTestRouter(t)

		game := &entity.Game{
			ID:     "g1",
			Board:  [][]string{{"X", "", ""}, {"", "", ""}, {"", "", ""}},
			Status: entity.StatusOngoing,
			Turn:   "O",
			Type:   entity.ComputerType,
		}
		mockGame.EXPECT().CreateGame(mock.Anything, entity.ComputerType, "X").Return(game, nil).Once()

		// When: POST /games is called
		rec := serve(router, http.MethodPost, "/games", `{"mode":"computer","computer_mark":"X"}`)

		// Then: the snapshot is returned with 201
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{
			"id": "g1",
			"board": [["X","",""],["","",""],["","",""]],
			"winner": "",
			"status": "ongoing",
			"player_turn": "O",
			"type": "computer"
		}`, rec.Body.String())
	})

	t.Run("Mode defaults to two players", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			CreateGame(mock.Anything, entity.TwoPlayerType, "").
			Return(&entity.Game{ID: "g1"}, nil).
			Once()

		rec := serve(router, http.MethodPost, "/games", `{}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := serve(router, http.MethodPost, "/games", `{"mode":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
	})

	t.Run("Board too large", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			CreateGame(mock.Anything, entity.ComputerType, "O").
			Return((*entity.Game)(nil), apperror.ErrBoardTooLarge).
			Once()

		rec := serve(router, http.MethodPost, "/games", `{"mode":"computer","computer_mark":"O"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGameHandlers_GetGame(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			GetGame(mock.Anything, "g1").
			Return(&entity.Game{ID: "g1", Status: entity.StatusOngoing}, nil).
			Once()

		rec := serve(router, http.MethodGet, "/games/g1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"g1"`)
	})

	t.Run("Not found", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			GetGame(mock.Anything, "missing").
			Return((*entity.Game)(nil), apperror.ErrGameNotFound).
			Once()

		rec := serve(router, http.MethodGet, "/games/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"game not found"}`, rec.Body.String())
	})
}

func TestGameHandlers_MakeTurn(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		// Given: a use case that applies the turn
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			MakeTurn(mock.Anything, "g1", 0, 2).
			Return(&entity.Game{ID: "g1", Status: entity.StatusFinished, Winner: "X"}, nil).
			Once()

		// When: a turn is posted
		rec := serve(router, http.MethodPost, "/games/g1/turns", `{"row":0,"col":2}`)

		// Then: the updated snapshot is returned
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"winner":"X"`)
	})

	t.Run("Row zero is a valid coordinate", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().MakeTurn(mock.Anything, "g1", 0, 0).Return(&entity.Game{ID: "g1"}, nil).Once()

		rec := serve(router, http.MethodPost, "/games/g1/turns", `{"row":0,"col":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing coordinate", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := serve(router, http.MethodPost, "/games/g1/turns", `{"row":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Refusals map to status codes", func(t *testing.T) {
		cases := map[error]int{
			apperror.ErrCellOccupied: http.StatusConflict,
			apperror.ErrGameFinished: http.StatusConflict,
			apperror.ErrInvalidCell:  http.StatusBadRequest,
			apperror.ErrGameNotFound: http.StatusNotFound,
			errRedisDown:             http.StatusInternalServerError,
		}

		for refusal, status := range cases {
			t.Run(refusal.Error(), func(t *testing.T) {
				router, mockGame := newTestRouter(t)

				mockGame.EXPECT().
					MakeTurn(mock.Anything, "g1", 1, 1).
					Return((*entity.Game)(nil), refusal).
					Once()

				rec := serve(router, http.MethodPost, "/games/g1/turns", `{"row":1,"col":1}`)

				assert.Equal(t, status, rec.Code)
			})
		}
	})

	t.Run("Internal errors are not leaked", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			MakeTurn(mock.Anything, "g1", 1, 1).
			Return((*entity.Game)(nil), errRedisDown).
			Once()

		rec := serve(router, http.MethodPost, "/games/g1/turns", `{"row":1,"col":1}`)

		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	})
}

func TestGameHandlers_LeaveGame(t *testing.T) {
	router, mockGame := newTestRouter(t)

	mockGame.EXPECT().LeaveGame(mock.Anything, "g1").Return(nil).Once()

	rec := serve(router, http.MethodDelete, "/games/g1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGameHandlers_Results(t *testing.T) {
	t.Run("GetResult", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			GetResult(mock.Anything, "g1").
			Return(&entity.Result{GameID: "g1", Winner: entity.PlayerTie}, nil).
			Once()

		rec := serve(router, http.MethodGet, "/results/g1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"winner":"-"`)
	})

	t.Run("GetResult not found", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			GetResult(mock.Anything, "g1").
			Return((*entity.Result)(nil), apperror.ErrResultNotFound).
			Once()

		rec := serve(router, http.MethodGet, "/results/g1", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("GetStats", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			GetStats(mock.Anything).
			Return(&entity.Stats{XWins: 2, OWins: 1, Ties: 5}, nil).
			Once()

		rec := serve(router, http.MethodGet, "/stats", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"x_wins":2,"o_wins":1,"ties":5}`, rec.Body.String())
	})
}
