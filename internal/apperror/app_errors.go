package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")

	ErrGameIsNotStarted = errors.New("game is not started")

	ErrGameNotFound   = errors.New("game not found")
	ErrRoomNotFound   = errors.New("game not found! please check the code")
	ErrRoomInProgress = errors.New("this game is already in progress")

	ErrInvalidName       = errors.New("please enter your name")
	ErrInvalidCode       = errors.New("please enter a valid 6-character game code")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidMode       = errors.New("invalid game mode")
)
