package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const (
	roomTTL        = 24 * time.Hour
	maxJoinRetries = 5
)

var ErrJoinConflict = errors.New("room changed while joining")

type RoomRepository interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByCode(ctx context.Context, code string) (*entity.Room, error)
	Join(ctx context.Context, code, guest string) (*entity.Room, error)
	DeleteByCode(ctx context.Context, code string) error
}

type dbRoom struct {
	client *redis.Client
}

func NewRoomRepository(client *redis.Client) RoomRepository {
	return &dbRoom{
		client: client,
	}
}

func roomKey(code string) string {
	return "game:" + code
}

func (that *dbRoom) CreateOrUpdate(ctx context.Context, room *entity.Room) error {
	roomJSON, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("could not marshal room: %w", err)
	}

	if err = that.client.Set(ctx, roomKey(room.Code), roomJSON, roomTTL).Err(); err != nil {
		return fmt.Errorf("failed to set room: %w", err)
	}

	return nil
}

func (that *dbRoom) GetByCode(ctx context.Context, code string) (*entity.Room, error) {
	response, err := that.client.Get(ctx, roomKey(code)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrRoomNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get room by code: %w", err)
	}

	return decodeRoom(response)
}

// Join - claims the guest seat of a waiting room. The read and write run in one optimistic transaction.
func (that *dbRoom) Join(ctx context.Context, code, guest string) (*entity.Room, error) {
	key := roomKey(code)

	var joined *entity.Room

	join := func(tx *redis.Tx) error {
		response, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return apperror.ErrRoomNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to get room by code: %w", err)
		}

		room, err := decodeRoom(response)
		if err != nil {
			return err
		}

		if !room.IsWaiting() {
			return apperror.ErrRoomInProgress
		}

		room.Guest = guest
		room.Status = entity.RoomStatusPlaying

		roomJSON, err := json.Marshal(room)
		if err != nil {
			return fmt.Errorf("could not marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, roomJSON, roomTTL)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to store joined room: %w", err)
		}

		joined = room

		return nil
	}

	for attempt := 0; attempt < maxJoinRetries; attempt++ {
		err := that.client.Watch(ctx, join, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, err
		}

		return joined, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrJoinConflict, code)
}

func (that *dbRoom) DeleteByCode(ctx context.Context, code string) error {
	deleted, err := that.client.Del(ctx, roomKey(code)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete room by code: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrRoomNotFound
	}

	return nil
}

func decodeRoom(response string) (*entity.Room, error) {
	var room entity.Room
	if err := json.Unmarshal([]byte(response), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}
