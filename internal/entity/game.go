package entity

import "fmt"

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const BoardSize = 9

// Board is the 3x3 grid stored row-major.
type Board [BoardSize]Mark

// WinCombos - all rows, columns and diagonals, in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type OutcomeKind string

const (
	OutcomeInProgress OutcomeKind = "in_progress"
	OutcomeWin        OutcomeKind = "win"
	OutcomeDraw       OutcomeKind = "draw"
)

type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Mark        `json:"winner,omitempty"`
	Combo  *[3]int     `json:"combo,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Kind: OutcomeInProgress}
}

func Win(mark Mark, combo [3]int) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: mark, Combo: &combo}
}

func Draw() Outcome {
	return Outcome{Kind: OutcomeDraw}
}

func (that Outcome) IsOver() bool {
	return that.Kind != OutcomeInProgress
}

func (that Outcome) String() string {
	switch that.Kind {
	case OutcomeWin:
		return fmt.Sprintf("win(%s, %v)", that.Winner, *that.Combo)
	case OutcomeDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// TurnState is owned by a single coordinator; everyone else works on copies.
type TurnState struct {
	Board     Board   `json:"board"`
	Turn      Mark    `json:"turn"`
	Outcome   Outcome `json:"outcome"`
	MoveCount int     `json:"move_count"`
}

func NewTurnState() TurnState {
	return TurnState{
		Turn:    PlayerX,
		Outcome: InProgress(),
	}
}

func (that TurnState) Clone() TurnState {
	clone := that
	if that.Outcome.Combo != nil {
		combo := *that.Outcome.Combo
		clone.Outcome.Combo = &combo
	}

	return clone
}

func (that TurnState) IsFinished() bool {
	return that.Outcome.IsOver()
}
