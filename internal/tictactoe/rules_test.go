package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestIsOccupied(t *testing.T) {
	board := entity.Board{x, e, e, e, o, e, e, e, e}

	assert.True(t, IsOccupied(board, 0))
	assert.True(t, IsOccupied(board, 4))
	assert.False(t, IsOccupied(board, 1))
	assert.False(t, IsOccupied(board, -1))
	assert.False(t, IsOccupied(board, 9))
}

func TestApplyMove(t *testing.T) {
	t.Run("Places the mark on a copy", func(t *testing.T) {
		// Given: an empty board
		board := entity.Board{}

		// When: X is placed at the center
		next, err := ApplyMove(board, 4, x)

		// Then: the new board holds the mark and the input is untouched
		require.NoError(t, err)
		assert.Equal(t, x, next[4])
		assert.Equal(t, e, board[4])
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with X at 0
		board := entity.Board{x}

		// When: O tries the same cell
		next, err := ApplyMove(board, 0, o)

		// Then: ErrCellOccupied is returned and it is an invalid move
		require.ErrorIs(t, err, ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, board, next)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		_, err := ApplyMove(entity.Board{}, 9, x)

		assert.ErrorIs(t, err, ErrInvalidCell)
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		_, err := ApplyMove(entity.Board{}, -1, x)

		assert.ErrorIs(t, err, ErrInvalidCell)
	})
}

func TestCheckWin(t *testing.T) {
	t.Run("Completing the top row wins", func(t *testing.T) {
		// Given: X to move with two in the top row
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: X plays the last cell of the row
		next, err := ApplyMove(board, 2, x)
		require.NoError(t, err)

		// Then: X wins with [0, 1, 2]
		combo, ok := CheckWin(next, x)
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 1, 2}, combo)

		_, ok = CheckWin(next, o)
		assert.False(t, ok)
	})

	t.Run("Winner X in a column", func(t *testing.T) {
		board := entity.Board{x, o, e, x, o, e, x, e, e}

		combo, ok := CheckWin(board, x)

		require.True(t, ok)
		assert.Equal(t, [3]int{0, 3, 6}, combo)
	})

	t.Run("First combination in definition order is reported", func(t *testing.T) {
		// Given: X holds both the top row and the left column
		board := entity.Board{
			x, x, x,
			x, o, o,
			x, o, o,
		}

		// When: checking for a win
		combo, ok := CheckWin(board, x)

		// Then: the row comes first
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 1, 2}, combo)
	})

	t.Run("Empty mark never wins", func(t *testing.T) {
		_, ok := CheckWin(entity.Board{}, e)

		assert.False(t, ok)
	})
}

func TestIsDraw(t *testing.T) {
	t.Run("Tie", func(t *testing.T) {
		// Given: a full board without a line
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, o,
		}

		// Then: it is a draw
		assert.True(t, IsDraw(board))
	})

	t.Run("Full board with a winner is not a draw", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, x,
			x, o, o,
		}

		assert.False(t, IsDraw(board))
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		board := entity.Board{x, o, x, e, o, e, x, e, e}

		assert.False(t, IsDraw(board))
	})
}

func TestAvailablePositions(t *testing.T) {
	t.Run("Ascending empty cells", func(t *testing.T) {
		board := entity.Board{x, e, o, e, x, e, e, o, e}

		assert.Equal(t, []int{1, 3, 5, 6, 8}, AvailablePositions(board))
	})

	t.Run("Full board has none", func(t *testing.T) {
		board := entity.Board{x, o, x, o, x, o, o, x, o}

		assert.Empty(t, AvailablePositions(board))
	})
}

func TestRules_ArePure(t *testing.T) {
	// Given: a mid-game board
	board := entity.Board{x, o, e, e, x, e, e, e, o}
	snapshot := board

	// When: the queries run repeatedly
	firstCombo, firstWin := CheckWin(board, x)
	firstDraw := IsDraw(board)
	firstAvailable := AvailablePositions(board)

	for i := 0; i < 5; i++ {
		combo, win := CheckWin(board, x)
		assert.Equal(t, firstCombo, combo)
		assert.Equal(t, firstWin, win)
		assert.Equal(t, firstDraw, IsDraw(board))
		assert.Equal(t, firstAvailable, AvailablePositions(board))
	}

	// Then: the board never changed
	assert.Equal(t, snapshot, board)
}

func TestReachableBoards(t *testing.T) {
	boards := reachableBoards()

	// 5478 distinct legal positions exist in tic-tac-toe
	require.Len(t, boards, 5478)

	for board := range boards {
		_, xWins := CheckWin(board, x)
		_, oWins := CheckWin(board, o)

		assert.False(t, xWins && oWins, "two winners on %v", board)
		assert.Equal(t, entity.BoardSize, len(AvailablePositions(board))+CountOccupied(board))

		xs, os := countMarks(board)
		assert.LessOrEqual(t, xs-os, 1)
		assert.GreaterOrEqual(t, xs-os, 0)
	}
}

// reachableBoards - every board reachable by alternating legal play from the empty board.
func reachableBoards() map[entity.Board]struct{} {
	seen := make(map[entity.Board]struct{})

	var walk func(board entity.Board, mark entity.Mark)
	walk = func(board entity.Board, mark entity.Mark) {
		if _, ok := seen[board]; ok {
			return
		}
		seen[board] = struct{}{}

		if isTerminal(board) {
			return
		}

		for _, position := range AvailablePositions(board) {
			next, _ := ApplyMove(board, position, mark)
			walk(next, Opponent(mark))
		}
	}

	walk(entity.Board{}, x)

	return seen
}

func isTerminal(board entity.Board) bool {
	_, xWins := CheckWin(board, x)
	_, oWins := CheckWin(board, o)

	return xWins || oWins || len(AvailablePositions(board)) == 0
}

func countMarks(board entity.Board) (int, int) {
	xs, os := 0, 0
	for _, cell := range board {
		switch cell {
		case x:
			xs++
		case o:
			os++
		}
	}

	return xs, os
}
