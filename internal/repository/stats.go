package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const statsKey = "stats"

const (
	fieldTotal  = "total"
	fieldP1Wins = "p1_wins"
	fieldP2Wins = "p2_wins"
	fieldDraws  = "draws"
)

type StatsRepository interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (*entity.Stats, error)
	Reset(ctx context.Context) error
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

// Record - increments the counters for a finished game in one transaction.
func (that *dbStats) Record(ctx context.Context, outcome entity.Outcome) error {
	delta := entity.Stats{}
	delta.Apply(outcome)

	if delta.Total == 0 {
		return nil
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, statsKey, fieldTotal, delta.Total)
		pipe.HIncrBy(ctx, statsKey, fieldP1Wins, delta.P1Wins)
		pipe.HIncrBy(ctx, statsKey, fieldP2Wins, delta.P2Wins)
		pipe.HIncrBy(ctx, statsKey, fieldDraws, delta.Draws)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record stats: %w", err)
	}

	return nil
}

func (that *dbStats) Get(ctx context.Context) (*entity.Stats, error) {
	fields, err := that.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := &entity.Stats{}
	targets := map[string]*int64{
		fieldTotal:  &stats.Total,
		fieldP1Wins: &stats.P1Wins,
		fieldP2Wins: &stats.P2Wins,
		fieldDraws:  &stats.Draws,
	}

	for field, target := range targets {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stats field %s: %w", field, err)
		}

		*target = value
	}

	return stats, nil
}

func (that *dbStats) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, statsKey).Err(); err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}

	return nil
}
