// Package ui is the terminal front end: a menu and a 3x3 board drawn with tview.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
)

const boardSide = 3

var boardColors = struct {
	X       tcell.Color
	O       tcell.Color
	Empty   tcell.Color
	Cursor  tcell.Color
	WinLine tcell.Color
	Status  tcell.Color
}{
	X:       tcell.PaletteColor(109),
	O:       tcell.PaletteColor(173),
	Empty:   tcell.PaletteColor(245),
	Cursor:  tcell.PaletteColor(60),
	WinLine: tcell.PaletteColor(108),
	Status:  tcell.PaletteColor(250),
}

// BoardView draws a game into a table and keeps the cursor.
type BoardView struct {
	table    *tview.Table
	cursor   int
	snapshot usecase.Snapshot
}

func NewBoardView() *BoardView {
	table := tview.NewTable().
		SetBorders(true).
		SetSelectable(false, false)
	table.SetBorder(true)
	table.SetTitle(" Tic-Tac-Toe ")

	view := &BoardView{
		table:  table,
		cursor: 4,
	}
	view.Render(usecase.Snapshot{State: entity.NewTurnState()})

	return view
}

func (that *BoardView) Table() *tview.Table {
	return that.table
}

func (that *BoardView) Cursor() int {
	return that.cursor
}

// MoveCursor - shifts the cursor by a row and column delta, stopping at the edges.
func (that *BoardView) MoveCursor(dRow, dCol int) {
	row := that.cursor/boardSide + dRow
	col := that.cursor%boardSide + dCol

	if row < 0 || row >= boardSide || col < 0 || col >= boardSide {
		return
	}

	that.cursor = row*boardSide + col
	that.Render(that.snapshot)
}

func (that *BoardView) Render(snapshot usecase.Snapshot) {
	that.snapshot = snapshot

	var combo map[int]bool
	if snapshot.State.Outcome.Combo != nil {
		combo = make(map[int]bool, len(snapshot.State.Outcome.Combo))
		for _, position := range snapshot.State.Outcome.Combo {
			combo[position] = true
		}
	}

	for position, mark := range snapshot.State.Board {
		cell := tview.NewTableCell(cellText(position, mark)).
			SetAlign(tview.AlignCenter).
			SetExpansion(1).
			SetTextColor(markColor(mark))

		switch {
		case combo[position]:
			cell.SetBackgroundColor(boardColors.WinLine)
		case position == that.cursor && !snapshot.State.IsFinished():
			cell.SetBackgroundColor(boardColors.Cursor)
		default:
			cell.SetBackgroundColor(tcell.ColorDefault)
		}

		that.table.SetCell(position/boardSide, position%boardSide, cell)
	}
}

// isStale - update was taken before current, in an earlier round or behind a later move.
func isStale(current, update usecase.Snapshot) bool {
	if update.Round != current.Round {
		return update.Round < current.Round
	}

	return update.State.MoveCount < current.State.MoveCount
}

// cellText - empty cells show the digit that plays them.
func cellText(position int, mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return fmt.Sprintf(" %d ", position+1)
	}

	return fmt.Sprintf(" %s ", mark)
}

func markColor(mark entity.Mark) tcell.Color {
	switch mark {
	case entity.PlayerX:
		return boardColors.X
	case entity.PlayerO:
		return boardColors.O
	default:
		return boardColors.Empty
	}
}

// cellForRune - maps the digits 1-9 to board positions.
func cellForRune(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}

	return int(r - '1'), true
}

// statusLine - whose turn it is or how the game ended.
func statusLine(snapshot usecase.Snapshot) string {
	state := snapshot.State

	switch state.Outcome.Kind {
	case entity.OutcomeWin:
		return fmt.Sprintf("%s wins!", playerName(snapshot, state.Outcome.Winner))
	case entity.OutcomeDraw:
		return "It's a draw!"
	}

	if snapshot.Waiting {
		return "Waiting for an opponent..."
	}

	player := playerFor(snapshot, state.Turn)
	if player.IsComputer() {
		return fmt.Sprintf("%s is thinking...", player.Name)
	}

	return fmt.Sprintf("%s's turn (%s)", player.Name, state.Turn)
}

func scoreLine(snapshot usecase.Snapshot) string {
	return fmt.Sprintf("%s %s %s", snapshot.Players[0].Name, snapshot.Scores.String(), snapshot.Players[1].Name)
}

func playerFor(snapshot usecase.Snapshot, mark entity.Mark) entity.Player {
	for _, player := range snapshot.Players {
		if player.Mark == mark {
			return player
		}
	}

	return entity.Player{Name: string(mark), Mark: mark}
}

func playerName(snapshot usecase.Snapshot, mark entity.Mark) string {
	return playerFor(snapshot, mark).Name
}
