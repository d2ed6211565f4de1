package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
)

var errBadRequest = errors.New("malformed request body")

type handlers struct {
	logger  *slog.Logger
	manager gameManager
}

type startGameRequest struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
	P1Name     string `json:"p1_name"`
	P2Name     string `json:"p2_name"`
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type errorResponse struct {
	Error string            `json:"error"`
	Game  *usecase.Snapshot `json:"game,omitempty"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *handlers) startGame(w http.ResponseWriter, r *http.Request) {
	var body startGameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		that.writeError(w, errBadRequest, nil)
		return
	}

	req := usecase.StartRequest{
		Mode:   entity.Mode(body.Mode),
		P1Name: body.P1Name,
		P2Name: body.P2Name,
	}

	if req.Mode == entity.ComputerMode {
		difficulty, err := entity.ParseDifficulty(body.Difficulty)
		if err != nil {
			that.writeError(w, apperror.ErrInvalidDifficulty, nil)
			return
		}

		req.Difficulty = difficulty
	}

	game, err := that.manager.StartGame(r.Context(), req)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.manager.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var body moveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Cell == nil {
		that.writeError(w, errBadRequest, nil)
		return
	}

	game, err := that.manager.MakeTurn(r.Context(), chi.URLParam(r, "id"), *body.Cell)
	if err != nil {
		that.writeError(w, err, game)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) newRound(w http.ResponseWriter, r *http.Request) {
	game, err := that.manager.NewRound(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) leaveGame(w http.ResponseWriter, r *http.Request) {
	if err := that.manager.LeaveGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) createOnlineGame(w http.ResponseWriter, r *http.Request) {
	var body nameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		that.writeError(w, errBadRequest, nil)
		return
	}

	game, err := that.manager.CreateOnlineGame(r.Context(), body.Name)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) joinOnlineGame(w http.ResponseWriter, r *http.Request) {
	var body nameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		that.writeError(w, errBadRequest, nil)
		return
	}

	game, err := that.manager.JoinOnlineGame(r.Context(), chi.URLParam(r, "code"), body.Name)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.manager.GetStats(r.Context())
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

func (that *handlers) resetStats(w http.ResponseWriter, r *http.Request) {
	if err := that.manager.ResetStats(r.Context()); err != nil {
		that.writeError(w, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

// writeError - game is attached to rejected moves so the client can redraw without another request.
func (that *handlers) writeError(w http.ResponseWriter, err error, game *usecase.Snapshot) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error(), Game: game})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrRoomInProgress):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, apperror.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, apperror.ErrInvalidName),
		errors.Is(err, apperror.ErrInvalidCode),
		errors.Is(err, apperror.ErrInvalidDifficulty),
		errors.Is(err, apperror.ErrInvalidMode):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrOnlineUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
