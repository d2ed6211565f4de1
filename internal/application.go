package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrg/xdg"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/config"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/service"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/ui"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-arcade/transport/rest"
)

const shutdownTimeout = 5 * time.Second

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown run mode")
)

// RunApp - runs the application in the configured mode until it is stopped.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	options := usecase.Options{
		ComputerDelay: conf.Game.ComputerDelay,
		PollInterval:  conf.Game.PollInterval,
	}
	botService := service.NewBotService(rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint: gosec // game moves

	switch conf.Mode {
	case config.ModeServer:
		return runServer(ctx, logger, conf, botService, options)
	case config.ModeTerminal:
		return runTerminal(ctx, logger, conf, botService, options)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func runServer(ctx context.Context, logger *slog.Logger, conf *config.Config, botService service.BotService, options usecase.Options) error {
	log := logger.With("component", "app")

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	statsRepo := repository.NewStatsRepository(redisStorage)
	roomRepo := repository.NewRoomRepository(redisStorage)

	gameManager := usecase.NewGameManager(logger, statsRepo, roomRepo, botService, options)
	defer gameManager.Close()

	server := rest.NewServer(conf.HTTPPort, rest.NewRouter(logger, gameManager))

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := server.ListenAndServe(); httpErr != nil && !errors.Is(httpErr, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	return nil
}

func runTerminal(ctx context.Context, logger *slog.Logger, conf *config.Config, botService service.BotService, options usecase.Options) error {
	statsPath, err := xdg.DataFile(conf.StatsFile)
	if err != nil {
		return fmt.Errorf("could not resolve stats file: %w", err)
	}

	statsRepo := repository.NewFileStatsRepository(statsPath)

	gameManager := usecase.NewGameManager(logger, statsRepo, nil, botService, options)
	defer gameManager.Close()

	return ui.NewTerminal(logger, gameManager).Run(ctx)
}
