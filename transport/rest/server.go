package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
)

type gameManager interface {
	StartGame(ctx context.Context, req usecase.StartRequest) (*usecase.Snapshot, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*usecase.Snapshot, error)
	GetGame(ctx context.Context, sessionID string) (*usecase.Snapshot, error)
	NewRound(ctx context.Context, sessionID string) (*usecase.Snapshot, error)
	LeaveGame(ctx context.Context, sessionID string) error
	CreateOnlineGame(ctx context.Context, name string) (*usecase.Snapshot, error)
	JoinOnlineGame(ctx context.Context, code, name string) (*usecase.Snapshot, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
	ResetStats(ctx context.Context) error
}

// NewRouter wires routes and returns an http.Handler.
func NewRouter(logger *slog.Logger, manager gameManager) http.Handler {
	h := &handlers{
		logger:  logger.With("component", "rest"),
		manager: manager,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger))

	r.Get("/ping", h.ping)

	r.Post("/games", h.startGame)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.getGame)
		r.Delete("/", h.leaveGame)
		r.Post("/moves", h.makeTurn)
		r.Post("/rounds", h.newRound)
	})

	r.Post("/online", h.createOnlineGame)
	r.Post("/online/{code}/join", h.joinOnlineGame)

	r.Get("/stats", h.getStats)
	r.Delete("/stats", h.resetStats)

	return r
}

func NewServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"requestID", middleware.GetReqID(r.Context()),
			)
		})
	}
}
