package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Chooses a move on the computer's turn", func(t *testing.T) {
		// Given: a hard computer playing O after X took the center
		coordinator := tictactoe.NewCoordinator(entity.PlayerO, entity.HardDifficulty)
		coordinator.SubmitMove(4)
		bot := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot makes its turn
		move, err := bot.MakeTurn(coordinator)

		// Then: it answers with the first corner and leaves the board alone
		require.NoError(t, err)
		assert.Equal(t, 0, move)
		assert.Equal(t, 1, coordinator.State().MoveCount)
	})

	t.Run("Easy moves stay on empty cells", func(t *testing.T) {
		coordinator := tictactoe.NewCoordinator(entity.PlayerO, entity.EasyDifficulty)
		coordinator.SubmitMove(0)
		bot := NewBotService(rand.New(rand.NewSource(42)))

		move, err := bot.MakeTurn(coordinator)

		require.NoError(t, err)
		assert.Contains(t, tictactoe.AvailablePositions(coordinator.State().Board), move)
	})

	t.Run("Error on the human's turn", func(t *testing.T) {
		coordinator := tictactoe.NewCoordinator(entity.PlayerO, entity.HardDifficulty)
		bot := NewBotService(rand.New(rand.NewSource(1)))

		_, err := bot.MakeTurn(coordinator)

		assert.ErrorIs(t, err, ErrNotComputerTurn)
	})
}
