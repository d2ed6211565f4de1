package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

var (
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", apperror.ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", apperror.ErrInvalidMove)
)

// IsOccupied - reports whether a mark already exists at position. Out of range positions are never occupied.
func IsOccupied(board entity.Board, position int) bool {
	if !inRange(position) {
		return false
	}

	return board[position] != entity.EmptyCell
}

// ApplyMove - returns a copy of board with mark placed at position.
func ApplyMove(board entity.Board, position int, mark entity.Mark) (entity.Board, error) {
	if !inRange(position) {
		return board, fmt.Errorf("%w: cell %d", ErrInvalidCell, position)
	}

	if board[position] != entity.EmptyCell {
		return board, fmt.Errorf("%w: cell %d", ErrCellOccupied, position)
	}

	board[position] = mark

	return board, nil
}

// CheckWin - returns the first combination, in WinCombos order, fully held by mark.
func CheckWin(board entity.Board, mark entity.Mark) ([3]int, bool) {
	if mark == entity.EmptyCell {
		return [3]int{}, false
	}

	for _, combo := range entity.WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return combo, true
		}
	}

	return [3]int{}, false
}

func IsDraw(board entity.Board) bool {
	if CountOccupied(board) != entity.BoardSize {
		return false
	}

	_, xWins := CheckWin(board, entity.PlayerX)
	_, oWins := CheckWin(board, entity.PlayerO)

	return !xWins && !oWins
}

// AvailablePositions - empty cells in ascending order.
func AvailablePositions(board entity.Board) []int {
	positions := make([]int, 0, entity.BoardSize)
	for i, cell := range board {
		if cell == entity.EmptyCell {
			positions = append(positions, i)
		}
	}

	return positions
}

func CountOccupied(board entity.Board) int {
	count := 0
	for _, cell := range board {
		if cell != entity.EmptyCell {
			count++
		}
	}

	return count
}

func Opponent(mark entity.Mark) entity.Mark {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}

	return entity.PlayerX
}

func inRange(position int) bool {
	return position >= 0 && position < entity.BoardSize
}
