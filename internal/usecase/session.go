package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/tictactoe"
)

var ErrSessionClosed = errors.New("game session is closed")

type MoveSource string

const (
	HumanMove    MoveSource = "human"
	ComputerMove MoveSource = "computer"
	RemoteMove   MoveSource = "remote"
)

// Snapshot is a read-only view of a session.
type Snapshot struct {
	ID         string            `json:"id"`
	Mode       entity.Mode       `json:"mode"`
	Difficulty entity.Difficulty `json:"difficulty,omitempty"`
	Players    [2]entity.Player  `json:"players"`
	State      entity.TurnState  `json:"state"`
	Scores     entity.Scores     `json:"scores"`
	Round      int               `json:"round"`

	RoomCode  string      `json:"room_code,omitempty"`
	LocalMark entity.Mark `json:"local_mark,omitempty"`
	Waiting   bool        `json:"waiting,omitempty"`
}

// Update is published after every accepted move.
type Update struct {
	Snapshot Snapshot
	Result   tictactoe.TransitionResult
	Source   MoveSource
}

type botService interface {
	MakeTurn(coordinator *tictactoe.Coordinator) (int, error)
}

// Session runs one game. Everything touching the coordinator happens on the session goroutine,
// other goroutines hand work over through requests.
type Session struct {
	logger *slog.Logger

	id          string
	mode        entity.Mode
	players     [2]entity.Player
	scores      entity.Scores
	round       int
	roomCode    string
	localMark   entity.Mark
	waiting     bool
	coordinator *tictactoe.Coordinator

	bot           botService
	computerDelay time.Duration
	computerTimer *time.Timer
	onUpdate      func(Update)

	requests  chan func()
	closed    chan struct{}
	closeOnce sync.Once
}

type sessionParams struct {
	id         string
	mode       entity.Mode
	difficulty entity.Difficulty
	players    [2]entity.Player
	roomCode   string
	localMark  entity.Mark
	waiting    bool
}

func newSession(logger *slog.Logger, params sessionParams, bot botService, computerDelay time.Duration, onUpdate func(Update)) *Session {
	computer := entity.EmptyCell
	for _, player := range params.players {
		if player.IsComputer() {
			computer = player.Mark
		}
	}

	return &Session{
		logger: logger.With("component", "session", "sessionID", params.id),

		id:          params.id,
		mode:        params.mode,
		players:     params.players,
		roomCode:    params.roomCode,
		localMark:   params.localMark,
		waiting:     params.waiting,
		coordinator: tictactoe.NewCoordinator(computer, params.difficulty),

		bot:           bot,
		computerDelay: computerDelay,
		onUpdate:      onUpdate,

		requests: make(chan func()),
		closed:   make(chan struct{}),
	}
}

func (that *Session) ID() string {
	return that.id
}

// Done is closed once the session stops.
func (that *Session) Done() <-chan struct{} {
	return that.closed
}

// run - the event loop. Returns when the session is closed or ctx is canceled.
func (that *Session) run(ctx context.Context) {
	defer that.Close()

	for {
		var computerC <-chan time.Time
		if that.computerTimer != nil {
			computerC = that.computerTimer.C
		}

		select {
		case <-ctx.Done():
			that.stopComputer()
			return
		case <-that.closed:
			that.stopComputer()
			return
		case request := <-that.requests:
			request()
		case <-computerC:
			that.computerTimer = nil
			that.playComputer()
		}
	}
}

func (that *Session) Close() {
	that.closeOnce.Do(func() {
		close(that.closed)
	})
}

// Submit - hands a move to the session. The returned error is only set when the session could not run the
// request; a rejected move is reported through TransitionResult.Err.
func (that *Session) Submit(ctx context.Context, position int, source MoveSource) (tictactoe.TransitionResult, Snapshot, error) {
	var (
		result   tictactoe.TransitionResult
		snapshot Snapshot
	)

	err := that.exec(ctx, func() {
		result = that.submit(position, source)
		snapshot = that.snapshot()
	})

	return result, snapshot, err
}

func (that *Session) Snapshot(ctx context.Context) (Snapshot, error) {
	var snapshot Snapshot

	err := that.exec(ctx, func() {
		snapshot = that.snapshot()
	})

	return snapshot, err
}

// NewRound - clears the board, names and scores stay.
func (that *Session) NewRound(ctx context.Context) (Snapshot, error) {
	var snapshot Snapshot

	err := that.exec(ctx, func() {
		that.stopComputer()
		that.coordinator.Reset()
		that.round++
		snapshot = that.snapshot()
	})

	return snapshot, err
}

// StartOnline - the opponent arrived, moves are accepted from now on.
func (that *Session) StartOnline(ctx context.Context, opponent string) (Snapshot, error) {
	var snapshot Snapshot

	err := that.exec(ctx, func() {
		that.waiting = false
		for i := range that.players {
			if that.players[i].Kind == entity.RemotePlayer {
				that.players[i].Name = opponent
			}
		}
		snapshot = that.snapshot()
	})

	return snapshot, err
}

func (that *Session) exec(ctx context.Context, fn func()) error {
	select {
	case <-that.closed:
		return ErrSessionClosed
	default:
	}

	done := make(chan struct{})

	select {
	case that.requests <- func() {
		fn()
		close(done)
	}:
	case <-that.closed:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-that.closed:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (that *Session) submit(position int, source MoveSource) tictactoe.TransitionResult {
	state := that.coordinator.State()

	if err := that.gate(state, source); err != nil {
		return tictactoe.TransitionResult{
			Position: position,
			Mark:     state.Turn,
			State:    state,
			Err:      err,
		}
	}

	return that.apply(position, source)
}

// gate - decides whether source may act now. This sits above the coordinator, which knows nothing about clients.
func (that *Session) gate(state entity.TurnState, source MoveSource) error {
	if state.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.waiting {
		return apperror.ErrGameIsNotStarted
	}

	switch source {
	case HumanMove:
		if that.coordinator.IsComputerTurn() {
			return apperror.ErrNotYourTurn
		}
		if that.mode == entity.OnlineMode && state.Turn != that.localMark {
			return apperror.ErrNotYourTurn
		}
	case RemoteMove:
		if that.mode != entity.OnlineMode || state.Turn == that.localMark {
			return apperror.ErrNotYourTurn
		}
	case ComputerMove:
		if !that.coordinator.IsComputerTurn() {
			return apperror.ErrNotYourTurn
		}
	}

	return nil
}

func (that *Session) apply(position int, source MoveSource) tictactoe.TransitionResult {
	result := that.coordinator.SubmitMove(position)
	if !result.Accepted {
		return result
	}

	if result.State.IsFinished() {
		that.scores.Apply(result.State.Outcome)
		that.logger.Info("game over", "outcome", result.State.Outcome.String(), "scores", that.scores.String())
	}

	if result.ComputerTurn {
		that.scheduleComputer()
	}

	if that.onUpdate != nil {
		that.onUpdate(Update{
			Snapshot: that.snapshot(),
			Result:   result,
			Source:   source,
		})
	}

	return result
}

// scheduleComputer - the computer answers after a short pause instead of inside the human's move.
func (that *Session) scheduleComputer() {
	that.stopComputer()
	that.computerTimer = time.NewTimer(that.computerDelay)
}

func (that *Session) stopComputer() {
	if that.computerTimer == nil {
		return
	}

	that.computerTimer.Stop()
	that.computerTimer = nil
}

func (that *Session) playComputer() {
	log := that.logger.With("method", "playComputer")

	move, err := that.bot.MakeTurn(that.coordinator)
	if err != nil {
		log.Warn("computer skipped its turn", "error", err)
		return
	}

	result := that.submit(move, ComputerMove)
	if result.Err != nil {
		log.Error("computer move rejected", "cell", move, "error", result.Err)
		return
	}

	log.Debug("computer moved", "cell", move)
}

func (that *Session) snapshot() Snapshot {
	return Snapshot{
		ID:         that.id,
		Mode:       that.mode,
		Difficulty: that.coordinator.Difficulty(),
		Players:    that.players,
		State:      that.coordinator.State(),
		Scores:     that.scores,
		Round:      that.round,
		RoomCode:   that.roomCode,
		LocalMark:  that.localMark,
		Waiting:    that.waiting,
	}
}
