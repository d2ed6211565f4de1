package tictactoe

import (
	"errors"
	"math"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

// ErrIllegalInvocation is the panic value of ChooseMove on a full board.
var ErrIllegalInvocation = errors.New("choose move called on a board without available positions")

const (
	// The computer plays O and maximizes.
	maximizingMark = entity.PlayerO

	winScore  = 10
	lossScore = -10
	drawScore = 0

	// medium tier plays the optimal move only when the draw is strictly above this.
	mediumThreshold = 0.5
)

// Rand is the source of randomness for the easy and medium tiers. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type scoredMove struct {
	position int
	score    int
}

// ChooseMove - picks the next position for mark. Unknown difficulties play like hard.
func ChooseMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty, rng Rand) int {
	available := AvailablePositions(board)
	if len(available) == 0 {
		panic(ErrIllegalInvocation)
	}

	switch difficulty {
	case entity.EasyDifficulty:
		return randomMove(available, rng)
	case entity.MediumDifficulty:
		if rng.Float64() > mediumThreshold {
			return bestMove(board, mark)
		}
		return randomMove(available, rng)
	case entity.HardDifficulty:
		return bestMove(board, mark)
	default:
		return bestMove(board, mark)
	}
}

func randomMove(available []int, rng Rand) int {
	return available[rng.Intn(len(available))]
}

// bestMove searches a copy, the caller's board is passed by value.
func bestMove(board entity.Board, mark entity.Mark) int {
	return minimax(&board, mark).position
}

// minimax - exhaustive search without pruning. Scores are not discounted by depth.
func minimax(board *entity.Board, mark entity.Mark) scoredMove {
	if _, ok := CheckWin(*board, entity.PlayerX); ok {
		return scoredMove{position: -1, score: lossScore}
	}

	if _, ok := CheckWin(*board, entity.PlayerO); ok {
		return scoredMove{position: -1, score: winScore}
	}

	available := AvailablePositions(*board)
	if len(available) == 0 {
		return scoredMove{position: -1, score: drawScore}
	}

	maximizing := mark == maximizingMark

	best := scoredMove{position: -1, score: math.MaxInt}
	if maximizing {
		best.score = math.MinInt
	}

	for _, position := range available {
		board[position] = mark
		score := minimax(board, Opponent(mark)).score
		board[position] = entity.EmptyCell

		// strict comparison keeps the first position reaching the best score
		if (maximizing && score > best.score) || (!maximizing && score < best.score) {
			best = scoredMove{position: position, score: score}
		}
	}

	return best
}
