package service

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/tictactoe"
)

var ErrNotComputerTurn = errors.New("it's not the computer's turn")

type BotService interface {
	MakeTurn(coordinator *tictactoe.Coordinator) (int, error)
}

// botService shares one random source between sessions, so draws are serialized.
type botService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewBotService(rng *rand.Rand) BotService {
	return &botService{
		rng: rng,
	}
}

// MakeTurn - chooses the computer's move on a copy of the board and returns it without submitting it.
func (that *botService) MakeTurn(coordinator *tictactoe.Coordinator) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	move, ok := coordinator.ComputerMove(that.rng)
	if !ok {
		return 0, ErrNotComputerTurn
	}

	return move, nil
}
