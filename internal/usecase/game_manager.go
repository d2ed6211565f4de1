package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/pkg"
)

const (
	storageTimeout      = 5 * time.Second
	defaultPollInterval = time.Second
)

type statsRepo interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (*entity.Stats, error)
	Reset(ctx context.Context) error
}

type roomRepo interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByCode(ctx context.Context, code string) (*entity.Room, error)
	Join(ctx context.Context, code, guest string) (*entity.Room, error)
	DeleteByCode(ctx context.Context, code string) error
}

type Options struct {
	ComputerDelay time.Duration
	PollInterval  time.Duration
}

type StartRequest struct {
	Mode       entity.Mode       `json:"mode"`
	Difficulty entity.Difficulty `json:"difficulty,omitempty"`
	P1Name     string            `json:"p1_name,omitempty"`
	P2Name     string            `json:"p2_name,omitempty"`
}

type GameManager struct {
	logger *slog.Logger

	statsRepo  statsRepo
	roomRepo   roomRepo
	botService botService
	options    Options

	// ctx bounds every session loop and room poller
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.RWMutex
	sessions  map[string]*Session
	listeners []func(Update)

	// pending holds the last local online move per session that could not be written to its room
	pendingMu sync.Mutex
	pending   map[string]Update

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewGameManager - roomRepo may be nil, online games are then unavailable.
func NewGameManager(logger *slog.Logger, statsRepo statsRepo, roomRepo roomRepo, botService botService, options Options) *GameManager {
	if options.ComputerDelay < 0 {
		options.ComputerDelay = 0
	}

	if options.PollInterval <= 0 {
		options.PollInterval = defaultPollInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &GameManager{
		logger: logger.With("component", "gameManager"),

		statsRepo:  statsRepo,
		roomRepo:   roomRepo,
		botService: botService,
		options:    options,

		ctx:    ctx,
		cancel: cancel,

		sessions: make(map[string]*Session),
		pending:  make(map[string]Update),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())), //nolint: gosec // room codes are not secrets
	}
}

// OnUpdate - registers fn for every accepted move of every session. fn runs on the session goroutine
// and must not call back into the session.
func (that *GameManager) OnUpdate(fn func(Update)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, fn)
}

func (that *GameManager) StartGame(ctx context.Context, req StartRequest) (*Snapshot, error) {
	var (
		players    [2]entity.Player
		difficulty entity.Difficulty
	)

	switch req.Mode {
	case entity.ComputerMode:
		if !req.Difficulty.IsValid() {
			return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, req.Difficulty)
		}

		difficulty = req.Difficulty
		players = [2]entity.Player{
			{Name: nameOrDefault(req.P1Name, entity.DefaultP1Name), Mark: entity.PlayerX, Kind: entity.HumanPlayer},
			{Name: entity.DefaultComputerName, Mark: entity.PlayerO, Kind: entity.ComputerPlayer},
		}
	case entity.LocalMode:
		players = [2]entity.Player{
			{Name: nameOrDefault(req.P1Name, entity.DefaultP1Name), Mark: entity.PlayerX, Kind: entity.HumanPlayer},
			{Name: nameOrDefault(req.P2Name, entity.DefaultP2Name), Mark: entity.PlayerO, Kind: entity.HumanPlayer},
		}
	case entity.OnlineMode:
		return nil, fmt.Errorf("%w: online games are created through a room", apperror.ErrInvalidMode)
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, req.Mode)
	}

	session := that.startSession(sessionParams{
		id:         pkg.GenerateSessionID(),
		mode:       req.Mode,
		difficulty: difficulty,
		players:    players,
	})

	snapshot, err := session.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read new game: %w", err)
	}

	that.logger.Info("game started", "sessionID", session.ID(), "mode", req.Mode, "difficulty", difficulty)

	return &snapshot, nil
}

func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, cell int) (*Snapshot, error) {
	session, err := that.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	result, snapshot, err := session.Submit(ctx, cell, HumanMove)
	if err != nil {
		return nil, fmt.Errorf("failed to submit move: %w", err)
	}

	if result.Err != nil {
		return &snapshot, fmt.Errorf("failed to make turn: %w", result.Err)
	}

	return &snapshot, nil
}

func (that *GameManager) GetGame(ctx context.Context, sessionID string) (*Snapshot, error) {
	session, err := that.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	snapshot, err := session.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read game: %w", err)
	}

	return &snapshot, nil
}

// NewRound - starts the next game of the match. Online rooms only play a single game.
func (that *GameManager) NewRound(ctx context.Context, sessionID string) (*Snapshot, error) {
	session, err := that.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.mode == entity.OnlineMode {
		return nil, fmt.Errorf("%w: online games can not be restarted", apperror.ErrInvalidMode)
	}

	snapshot, err := session.NewRound(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start new round: %w", err)
	}

	return &snapshot, nil
}

// LeaveGame - stops the session and removes its online room, if any.
func (that *GameManager) LeaveGame(ctx context.Context, sessionID string) error {
	log := that.logger.With("method", "LeaveGame", "sessionID", sessionID)

	that.mu.Lock()
	session, ok := that.sessions[sessionID]
	delete(that.sessions, sessionID)
	that.mu.Unlock()

	if !ok {
		return apperror.ErrGameNotFound
	}

	session.Close()
	that.dropPendingMove(sessionID)

	if session.roomCode != "" && that.roomRepo != nil {
		if err := that.roomRepo.DeleteByCode(ctx, session.roomCode); err != nil && !errors.Is(err, apperror.ErrRoomNotFound) {
			log.Error("failed to delete room", "code", session.roomCode, "error", err)
		}
	}

	log.Info("game left")

	return nil
}

func (that *GameManager) GetStats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.statsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (that *GameManager) ResetStats(ctx context.Context) error {
	if err := that.statsRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}

	return nil
}

// Close - stops every session and poller.
func (that *GameManager) Close() {
	that.cancel()

	that.mu.Lock()
	defer that.mu.Unlock()

	for id, session := range that.sessions {
		session.Close()
		delete(that.sessions, id)
	}
}

func (that *GameManager) startSession(params sessionParams) *Session {
	session := newSession(that.logger, params, that.botService, that.options.ComputerDelay, that.handleUpdate)

	that.mu.Lock()
	that.sessions[session.ID()] = session
	that.mu.Unlock()

	go session.run(that.ctx)

	return session
}

func (that *GameManager) getSession(sessionID string) (*Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, sessionID)
	}

	return session, nil
}

// handleUpdate - runs on the session goroutine after each accepted move. A move that could not be published is kept
// for the room poller to retry, stats failures are logged only.
func (that *GameManager) handleUpdate(update Update) {
	log := that.logger.With("method", "handleUpdate", "sessionID", update.Snapshot.ID)

	ctx, cancel := context.WithTimeout(that.ctx, storageTimeout)
	defer cancel()

	if update.Snapshot.Mode == entity.OnlineMode && update.Source == HumanMove {
		if err := that.publishMove(ctx, update); err != nil {
			log.Error("failed to publish move, will retry", "cell", update.Result.Position, "error", err)
			that.storePendingMove(update)
		}
	}

	// in online games both clients see the end, the one that made the last move counts it
	if update.Result.State.IsFinished() && update.Source != RemoteMove {
		if err := that.statsRepo.Record(ctx, update.Result.State.Outcome); err != nil {
			log.Error("failed to record stats", "error", err)
		}
	}

	that.mu.RLock()
	listeners := that.listeners
	that.mu.RUnlock()

	for _, listener := range listeners {
		listener(update)
	}
}

func nameOrDefault(name, fallback string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}

	return fallback
}
