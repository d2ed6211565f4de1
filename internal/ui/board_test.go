package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
)

func computerSnapshot() usecase.Snapshot {
	return usecase.Snapshot{
		Mode: entity.ComputerMode,
		Players: [2]entity.Player{
			{Name: entity.DefaultP1Name, Mark: entity.PlayerX, Kind: entity.HumanPlayer},
			{Name: entity.DefaultComputerName, Mark: entity.PlayerO, Kind: entity.ComputerPlayer},
		},
		State: entity.NewTurnState(),
	}
}

func TestBoardView_Render(t *testing.T) {
	t.Run("Empty cells show their digit, marks show themselves", func(t *testing.T) {
		// Given: a board with X in the center
		view := NewBoardView()
		snapshot := computerSnapshot()
		snapshot.State.Board[4] = entity.PlayerX

		// When: it is rendered
		view.Render(snapshot)

		// Then: the table mirrors the board
		assert.Equal(t, " 1 ", view.Table().GetCell(0, 0).Text)
		assert.Equal(t, " X ", view.Table().GetCell(1, 1).Text)
		assert.Equal(t, " 9 ", view.Table().GetCell(2, 2).Text)
	})

	t.Run("Winning line is highlighted", func(t *testing.T) {
		view := NewBoardView()
		snapshot := computerSnapshot()
		snapshot.State.Board = entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerO}
		snapshot.State.Outcome = entity.Win(entity.PlayerX, [3]int{0, 1, 2})

		view.Render(snapshot)

		assert.Equal(t, boardColors.WinLine, view.Table().GetCell(0, 1).BackgroundColor)
		assert.Equal(t, tcell.ColorDefault, view.Table().GetCell(1, 0).BackgroundColor)
	})
}

func TestBoardView_MoveCursor(t *testing.T) {
	// Given: the cursor starts in the center
	view := NewBoardView()
	require.Equal(t, 4, view.Cursor())

	// When: it moves up-left twice
	view.MoveCursor(-1, 0)
	view.MoveCursor(0, -1)
	view.MoveCursor(-1, 0)

	// Then: it stops at the top-left corner
	assert.Equal(t, 0, view.Cursor())

	view.MoveCursor(1, 1)
	assert.Equal(t, 4, view.Cursor())
}

func TestCellForRune(t *testing.T) {
	for r := '1'; r <= '9'; r++ {
		cell, ok := cellForRune(r)

		require.True(t, ok)
		assert.Equal(t, int(r-'1'), cell)
	}

	_, ok := cellForRune('0')
	assert.False(t, ok)
}

func TestStatusLine(t *testing.T) {
	t.Run("Human turn", func(t *testing.T) {
		assert.Equal(t, "Player one's turn (X)", statusLine(computerSnapshot()))
	})

	t.Run("Computer turn", func(t *testing.T) {
		snapshot := computerSnapshot()
		snapshot.State.Turn = entity.PlayerO

		assert.Equal(t, "Computer is thinking...", statusLine(snapshot))
	})

	t.Run("Win and draw", func(t *testing.T) {
		snapshot := computerSnapshot()
		snapshot.State.Outcome = entity.Win(entity.PlayerO, [3]int{2, 4, 6})
		assert.Equal(t, "Computer wins!", statusLine(snapshot))

		snapshot.State.Outcome = entity.Draw()
		assert.Equal(t, "It's a draw!", statusLine(snapshot))
	})

	t.Run("Score", func(t *testing.T) {
		snapshot := computerSnapshot()
		snapshot.Scores = entity.Scores{P1: 2, P2: 1}

		assert.Equal(t, "Player one 2:1 Computer", scoreLine(snapshot))
	})
}

func TestRejectMessage(t *testing.T) {
	assert.Equal(t, "Wait for your turn", rejectMessage(fmt.Errorf("failed to make turn: %w", apperror.ErrNotYourTurn)))
	assert.Equal(t, "That cell is taken", rejectMessage(fmt.Errorf("failed to make turn: %w", apperror.ErrInvalidMove)))
	assert.Equal(t, "Move failed", rejectMessage(errors.New("boom")))
}

func TestStatsText(t *testing.T) {
	text := statsText(&entity.Stats{Total: 4, P1Wins: 2, P2Wins: 1, Draws: 1})

	assert.True(t, strings.HasPrefix(text, "Games played: 4\n"))
	assert.Contains(t, text, "Draws: 1")
}

func TestIsStale(t *testing.T) {
	current := computerSnapshot()
	current.Round = 1
	current.State.MoveCount = 2

	t.Run("Update from an earlier round", func(t *testing.T) {
		// Given: the last move of the previous round
		update := computerSnapshot()
		update.State.MoveCount = 5

		// Then: it is not drawn over the new round
		assert.True(t, isStale(current, update))
	})

	t.Run("Update behind a later move", func(t *testing.T) {
		update := current
		update.State.MoveCount = 1

		assert.True(t, isStale(current, update))
	})

	t.Run("Newer or same update", func(t *testing.T) {
		update := current
		assert.False(t, isStale(current, update))

		update.State.MoveCount = 3
		assert.False(t, isStale(current, update))

		update = computerSnapshot()
		update.Round = 2
		assert.False(t, isStale(current, update))
	})
}
