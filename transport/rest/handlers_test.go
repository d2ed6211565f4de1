package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/service"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-arcade/mocks/usecase"
)

func newTestRouter(t *testing.T) (http.Handler, *mockedUseCase.MockstatsRepo) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockStatsRepo := mockedUseCase.NewMockstatsRepo(t)

	manager := usecase.NewGameManager(logger, mockStatsRepo, nil, service.NewBotService(rand.New(rand.NewSource(1))), usecase.Options{
		ComputerDelay: time.Millisecond,
		PollInterval:  time.Hour,
	})
	t.Cleanup(manager.Close)

	return NewRouter(logger, manager), mockStatsRepo
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		payload = bytes.NewReader(raw)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, payload))

	return rec
}

func decodeGame(t *testing.T, rec *httptest.ResponseRecorder) usecase.Snapshot {
	t.Helper()

	var game usecase.Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&game))

	return game
}

func startLocalGame(t *testing.T, router http.Handler) usecase.Snapshot {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/games", map[string]string{"mode": "local"})
	require.Equal(t, http.StatusCreated, rec.Code)

	return decodeGame(t, rec)
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandlers_StartGame(t *testing.T) {
	t.Run("Computer game", func(t *testing.T) {
		// Given: a router
		router, _ := newTestRouter(t)

		// When: a hard computer game is requested
		rec := doRequest(t, router, http.MethodPost, "/games", map[string]string{"mode": "computer", "difficulty": "Hard"})

		// Then: the new game is returned
		require.Equal(t, http.StatusCreated, rec.Code)
		game := decodeGame(t, rec)
		assert.Equal(t, entity.HardDifficulty, game.Difficulty)
		assert.Equal(t, entity.ComputerMode, game.Mode)
	})

	t.Run("Unknown difficulty", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/games", map[string]string{"mode": "computer", "difficulty": "impossible"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/games", bytes.NewBufferString("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_MakeTurn(t *testing.T) {
	t.Run("Accepted move", func(t *testing.T) {
		// Given: a local game
		router, _ := newTestRouter(t)
		game := startLocalGame(t, router)

		// When: X plays the center
		rec := doRequest(t, router, http.MethodPost, "/games/"+game.ID+"/moves", map[string]int{"cell": 4})

		// Then: the board shows the move and O is next
		require.Equal(t, http.StatusOK, rec.Code)
		updated := decodeGame(t, rec)
		assert.Equal(t, entity.PlayerX, updated.State.Board[4])
		assert.Equal(t, entity.PlayerO, updated.State.Turn)
	})

	t.Run("Occupied cell is unprocessable", func(t *testing.T) {
		// Given: a game with the center taken
		router, _ := newTestRouter(t)
		game := startLocalGame(t, router)
		doRequest(t, router, http.MethodPost, "/games/"+game.ID+"/moves", map[string]int{"cell": 4})

		// When: O plays the center too
		rec := doRequest(t, router, http.MethodPost, "/games/"+game.ID+"/moves", map[string]int{"cell": 4})

		// Then: the move is rejected and the current game is attached
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body errorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.NotEmpty(t, body.Error)
		require.NotNil(t, body.Game)
		assert.Equal(t, 1, body.Game.State.MoveCount)
	})

	t.Run("Finished game conflicts", func(t *testing.T) {
		// Given: a game X has won
		router, mockStatsRepo := newTestRouter(t)
		mockStatsRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()

		game := startLocalGame(t, router)
		for _, cell := range []int{0, 3, 1, 4, 2} {
			rec := doRequest(t, router, http.MethodPost, "/games/"+game.ID+"/moves", map[string]int{"cell": cell})
			require.Equal(t, http.StatusOK, rec.Code)
		}

		// When: another move arrives
		rec := doRequest(t, router, http.MethodPost, "/games/"+game.ID+"/moves", map[string]int{"cell": 8})

		// Then: it conflicts with the finished game
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Missing cell", func(t *testing.T) {
		router, _ := newTestRouter(t)
		game := startLocalGame(t, router)

		rec := doRequest(t, router, http.MethodPost, "/games/"+game.ID+"/moves", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown game", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/games/missing/moves", map[string]int{"cell": 0})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandlers_RoundsAndLeave(t *testing.T) {
	// Given: a local game with one move
	router, _ := newTestRouter(t)
	game := startLocalGame(t, router)
	doRequest(t, router, http.MethodPost, "/games/"+game.ID+"/moves", map[string]int{"cell": 0})

	// When: a new round is requested
	rec := doRequest(t, router, http.MethodPost, "/games/"+game.ID+"/rounds", nil)

	// Then: the board is empty
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, decodeGame(t, rec).State.MoveCount)

	// When: the game is left
	rec = doRequest(t, router, http.MethodDelete, "/games/"+game.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Then: it can no longer be read
	rec = doRequest(t, router, http.MethodGet, "/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlers_Stats(t *testing.T) {
	t.Run("GetStats", func(t *testing.T) {
		router, mockStatsRepo := newTestRouter(t)
		mockStatsRepo.EXPECT().Get(mock.Anything).Return(&entity.Stats{Total: 2, P2Wins: 1, Draws: 1}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/stats", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var stats entity.Stats
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
		assert.Equal(t, entity.Stats{Total: 2, P2Wins: 1, Draws: 1}, stats)
	})

	t.Run("ResetStats", func(t *testing.T) {
		router, mockStatsRepo := newTestRouter(t)
		mockStatsRepo.EXPECT().Reset(mock.Anything).Return(nil).Once()

		rec := doRequest(t, router, http.MethodDelete, "/stats", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestHandlers_OnlineUnavailable(t *testing.T) {
	// Given: a manager without a room store
	router, _ := newTestRouter(t)

	// When: an online game is requested
	rec := doRequest(t, router, http.MethodPost, "/online", map[string]string{"name": "alice"})

	// Then: the service is unavailable
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
