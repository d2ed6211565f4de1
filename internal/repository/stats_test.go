package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository(t *testing.T) {
	t.Run("Empty store reads as zero", func(t *testing.T) {
		ctx, st := suite.New(t)

		stats, err := NewStatsRepository(st.Storage).Get(ctx)

		require.NoError(t, err)
		assert.Equal(t, &entity.Stats{}, stats)
	})

	t.Run("Record counts finished games", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage)

		// When: an X win, an O win, a draw and an unfinished game are recorded
		require.NoError(t, statsRepo.Record(ctx, entity.Win(entity.PlayerX, entity.WinCombos[0])))
		require.NoError(t, statsRepo.Record(ctx, entity.Win(entity.PlayerO, entity.WinCombos[1])))
		require.NoError(t, statsRepo.Record(ctx, entity.Draw()))
		require.NoError(t, statsRepo.Record(ctx, entity.InProgress()))

		// Then: only finished games are counted
		stats, err := statsRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, &entity.Stats{Total: 3, P1Wins: 1, P2Wins: 1, Draws: 1}, stats)
	})

	t.Run("Reset clears the counters", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage)
		require.NoError(t, statsRepo.Record(ctx, entity.Draw()))

		require.NoError(t, statsRepo.Reset(ctx))

		stats, err := statsRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, &entity.Stats{}, stats)
	})
}
