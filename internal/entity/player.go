package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultP1Name       = "Player one"
	DefaultP2Name       = "Player two"
	DefaultComputerName = "Computer"
)

type PlayerKind string

const (
	HumanPlayer    PlayerKind = "human"
	ComputerPlayer PlayerKind = "computer"
	RemotePlayer   PlayerKind = "remote"
)

type Player struct {
	Name string     `json:"name"`
	Mark Mark       `json:"mark"`
	Kind PlayerKind `json:"kind"`
}

func (that *Player) IsComputer() bool {
	return that.Kind == ComputerPlayer
}

type Mode string

const (
	ComputerMode Mode = "computer"
	LocalMode    Mode = "local"
	OnlineMode   Mode = "online"
)

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

func ParseDifficulty(value string) (Difficulty, error) {
	difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value)))
	if !difficulty.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}

	return difficulty, nil
}

func (that Difficulty) IsValid() bool {
	switch that {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return true
	default:
		return false
	}
}

// Scores counts wins within one match; X wins go to P1, O wins to P2.
type Scores struct {
	P1 int `json:"p1"`
	P2 int `json:"p2"`
}

func (that *Scores) Apply(outcome Outcome) {
	if outcome.Kind != OutcomeWin {
		return
	}

	if outcome.Winner == PlayerX {
		that.P1++
	} else {
		that.P2++
	}
}

func (that Scores) String() string {
	return fmt.Sprintf("%d:%d", that.P1, that.P2)
}
