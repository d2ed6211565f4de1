package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

// TransitionResult describes what a single SubmitMove did.
type TransitionResult struct {
	Accepted bool
	Position int
	Mark     entity.Mark
	State    entity.TurnState

	// ComputerTurn is set when the side to act next is played by the computer.
	ComputerTurn bool

	Err error
}

// Coordinator is the turn state machine. It is not safe for concurrent use; a single owner drives it.
type Coordinator struct {
	state      entity.TurnState
	computer   entity.Mark
	difficulty entity.Difficulty
}

// NewCoordinator - computer is the mark played by the computer, or entity.EmptyCell when both sides are people.
func NewCoordinator(computer entity.Mark, difficulty entity.Difficulty) *Coordinator {
	return &Coordinator{
		state:      entity.NewTurnState(),
		computer:   computer,
		difficulty: difficulty,
	}
}

func (that *Coordinator) SubmitMove(position int) TransitionResult {
	if that.state.IsFinished() {
		return that.reject(position, apperror.ErrGameFinished)
	}

	side := that.state.Turn

	board, err := ApplyMove(that.state.Board, position, side)
	if err != nil {
		return that.reject(position, err)
	}

	that.state.Board = board
	that.state.MoveCount++

	if combo, ok := CheckWin(board, side); ok {
		that.state.Outcome = entity.Win(side, combo)
		that.state.Turn = entity.EmptyCell
	} else if IsDraw(board) {
		that.state.Outcome = entity.Draw()
		that.state.Turn = entity.EmptyCell
	} else {
		that.state.Turn = Opponent(side)
	}

	return TransitionResult{
		Accepted:     true,
		Position:     position,
		Mark:         side,
		State:        that.state.Clone(),
		ComputerTurn: that.IsComputerTurn(),
	}
}

// ComputerMove - asks the decision engine for the acting computer side. Reports false when it is not the computer's turn.
func (that *Coordinator) ComputerMove(rng Rand) (int, bool) {
	if !that.IsComputerTurn() {
		return 0, false
	}

	return ChooseMove(that.state.Board, that.state.Turn, that.difficulty, rng), true
}

func (that *Coordinator) IsComputerTurn() bool {
	return !that.state.IsFinished() && that.IsComputer(that.state.Turn)
}

func (that *Coordinator) IsComputer(mark entity.Mark) bool {
	return that.computer != entity.EmptyCell && that.computer == mark
}

// State - a copy of the live state.
func (that *Coordinator) State() entity.TurnState {
	return that.state.Clone()
}

func (that *Coordinator) Difficulty() entity.Difficulty {
	return that.difficulty
}

// Reset - starts a new game with the same sides.
func (that *Coordinator) Reset() {
	that.state = entity.NewTurnState()
}

func (that *Coordinator) reject(position int, err error) TransitionResult {
	return TransitionResult{
		Position: position,
		Mark:     that.state.Turn,
		State:    that.state.Clone(),
		Err:      err,
	}
}
