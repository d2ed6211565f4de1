package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/pkg"
)

const maxRoomCodeAttempts = 10

var (
	ErrOnlineUnavailable = errors.New("online games are not available")
	ErrRoomCodeExhausted = errors.New("could not find a free room code")
)

// CreateOnlineGame - opens a room and waits for a guest. The host plays X.
func (that *GameManager) CreateOnlineGame(ctx context.Context, name string) (*Snapshot, error) {
	log := that.logger.With("method", "CreateOnlineGame")

	if that.roomRepo == nil {
		return nil, ErrOnlineUnavailable
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ErrInvalidName
	}

	code, err := that.freeRoomCode(ctx)
	if err != nil {
		return nil, err
	}

	if err = that.roomRepo.CreateOrUpdate(ctx, entity.NewRoom(code, name)); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	session := that.startSession(sessionParams{
		id:   pkg.GenerateSessionID(),
		mode: entity.OnlineMode,
		players: [2]entity.Player{
			{Name: name, Mark: entity.PlayerX, Kind: entity.HumanPlayer},
			{Name: entity.DefaultP2Name, Mark: entity.PlayerO, Kind: entity.RemotePlayer},
		},
		roomCode:  code,
		localMark: entity.PlayerX,
		waiting:   true,
	})

	go that.pollRoom(session)

	snapshot, err := session.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read new game: %w", err)
	}

	log.Info("room created", "code", code, "sessionID", session.ID())

	return &snapshot, nil
}

// JoinOnlineGame - takes the guest seat of a waiting room. The guest plays O.
func (that *GameManager) JoinOnlineGame(ctx context.Context, code, name string) (*Snapshot, error) {
	log := that.logger.With("method", "JoinOnlineGame")

	if that.roomRepo == nil {
		return nil, ErrOnlineUnavailable
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ErrInvalidName
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != entity.RoomCodeLength {
		return nil, apperror.ErrInvalidCode
	}

	room, err := that.roomRepo.Join(ctx, code, name)
	if err != nil {
		return nil, fmt.Errorf("failed to join room: %w", err)
	}

	session := that.startSession(sessionParams{
		id:   pkg.GenerateSessionID(),
		mode: entity.OnlineMode,
		players: [2]entity.Player{
			{Name: room.Host, Mark: entity.PlayerX, Kind: entity.RemotePlayer},
			{Name: name, Mark: entity.PlayerO, Kind: entity.HumanPlayer},
		},
		roomCode:  code,
		localMark: entity.PlayerO,
	})

	go that.pollRoom(session)

	snapshot, err := session.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read joined game: %w", err)
	}

	log.Info("room joined", "code", code, "sessionID", session.ID())

	return &snapshot, nil
}

func (that *GameManager) freeRoomCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxRoomCodeAttempts; attempt++ {
		that.rngMu.Lock()
		code := pkg.GenerateRoomCode(that.rng, entity.RoomCodeLength)
		that.rngMu.Unlock()

		_, err := that.roomRepo.GetByCode(ctx, code)
		if errors.Is(err, apperror.ErrRoomNotFound) {
			return code, nil
		}

		if err != nil {
			return "", fmt.Errorf("failed to check room code: %w", err)
		}
	}

	return "", ErrRoomCodeExhausted
}

// publishMove - writes a local move into the shared room so the other client can pick it up.
func (that *GameManager) publishMove(ctx context.Context, update Update) error {
	code := update.Snapshot.RoomCode

	room, err := that.roomRepo.GetByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to read room %s: %w", code, err)
	}

	room.RecordMove(update.Result.State.Board, update.Result.Position, update.Snapshot.LocalMark == entity.PlayerX)
	room.Timestamp = time.Now().UnixMilli()

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return fmt.Errorf("failed to write room %s: %w", code, err)
	}

	return nil
}

// pollRoom - watches the room of an online session until the game ends, the session stops or the room disappears.
func (that *GameManager) pollRoom(session *Session) {
	log := that.logger.With("method", "pollRoom", "sessionID", session.ID(), "code", session.roomCode)

	ticker := time.NewTicker(that.options.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-that.ctx.Done():
			return
		case <-session.Done():
			return
		case <-ticker.C:
			if !that.pollOnce(session) {
				log.Info("polling stopped")
				return
			}
		}
	}
}

// pollOnce - reports false once there is nothing left to watch: the room is gone, which also closes the session,
// or the game is over.
func (that *GameManager) pollOnce(session *Session) bool {
	log := that.logger.With("method", "pollOnce", "sessionID", session.ID())

	ctx, cancel := context.WithTimeout(that.ctx, storageTimeout)
	defer cancel()

	if err := that.flushPendingMove(ctx, session.ID()); err != nil {
		if errors.Is(err, apperror.ErrRoomNotFound) {
			session.Close()
			return false
		}

		log.Warn("failed to publish pending move", "error", err)
		return true
	}

	room, err := that.roomRepo.GetByCode(ctx, session.roomCode)
	if errors.Is(err, apperror.ErrRoomNotFound) {
		session.Close()
		return false
	}

	if err != nil {
		log.Warn("failed to read room", "error", err)
		return true
	}

	snapshot, err := session.Snapshot(ctx)
	if err != nil {
		return !errors.Is(err, ErrSessionClosed)
	}

	if snapshot.Waiting {
		if !room.IsPlaying() {
			return true
		}

		if snapshot, err = session.StartOnline(ctx, room.Guest); err != nil {
			return !errors.Is(err, ErrSessionClosed)
		}

		log.Info("opponent joined", "opponent", room.Guest)
	}

	if snapshot.State.IsFinished() {
		return false
	}

	if snapshot.State.Turn == snapshot.LocalMark {
		return true
	}

	move, ok := room.OpponentMove(snapshot.LocalMark == entity.PlayerX)
	if !ok || move < 0 || move >= entity.BoardSize || snapshot.State.Board[move] != entity.EmptyCell {
		return true
	}

	result, snapshot, err := session.Submit(ctx, move, RemoteMove)
	if err != nil {
		return !errors.Is(err, ErrSessionClosed)
	}

	if result.Err != nil {
		log.Warn("opponent move rejected", "cell", move, "error", result.Err)
		return true
	}

	return !snapshot.State.IsFinished()
}

func (that *GameManager) storePendingMove(update Update) {
	that.pendingMu.Lock()
	defer that.pendingMu.Unlock()

	that.pending[update.Snapshot.ID] = update
}

func (that *GameManager) pendingMove(sessionID string) (Update, bool) {
	that.pendingMu.Lock()
	defer that.pendingMu.Unlock()

	update, ok := that.pending[sessionID]

	return update, ok
}

func (that *GameManager) dropPendingMove(sessionID string) {
	that.pendingMu.Lock()
	defer that.pendingMu.Unlock()

	delete(that.pending, sessionID)
}

// flushPendingMove - writes a local move that failed to publish. Until it lands the opponent can not see it.
func (that *GameManager) flushPendingMove(ctx context.Context, sessionID string) error {
	update, ok := that.pendingMove(sessionID)
	if !ok {
		return nil
	}

	if err := that.publishMove(ctx, update); err != nil {
		return err
	}

	that.pendingMu.Lock()
	defer that.pendingMu.Unlock()

	// a newer move may have been stored meanwhile
	if current, ok := that.pending[sessionID]; ok && current.Result.State.MoveCount == update.Result.State.MoveCount {
		delete(that.pending, sessionID)
	}

	that.logger.Info("pending move published", "sessionID", sessionID, "cell", update.Result.Position)

	return nil
}
