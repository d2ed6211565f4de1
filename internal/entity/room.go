package entity

import "time"

const (
	RoomStatusWaiting = "waiting"
	RoomStatusPlaying = "playing"
)

const RoomCodeLength = 6

// Room is the record both online clients read and write in the shared store.
type Room struct {
	Code          string `json:"code"`
	Host          string `json:"host"`
	Guest         string `json:"guest,omitempty"`
	Board         Board  `json:"board"`
	CurrentPlayer Mark   `json:"current_player"`
	Status        string `json:"status"`
	HostMove      *int   `json:"host_move"`
	GuestMove     *int   `json:"guest_move"`
	Timestamp     int64  `json:"timestamp"`
}

func NewRoom(code, host string) *Room {
	return &Room{
		Code:          code,
		Host:          host,
		CurrentPlayer: PlayerX,
		Status:        RoomStatusWaiting,
		Timestamp:     time.Now().UnixMilli(),
	}
}

func (that *Room) IsWaiting() bool {
	return that.Status == RoomStatusWaiting
}

func (that *Room) IsPlaying() bool {
	return that.Status == RoomStatusPlaying && that.Guest != ""
}

// RecordMove stores the board after a local move and hands the turn over.
func (that *Room) RecordMove(board Board, cell int, isHost bool) {
	that.Board = board
	if that.CurrentPlayer == PlayerX {
		that.CurrentPlayer = PlayerO
	} else {
		that.CurrentPlayer = PlayerX
	}

	move := cell
	if isHost {
		that.HostMove = &move
		that.GuestMove = nil
	} else {
		that.GuestMove = &move
		that.HostMove = nil
	}
}

// OpponentMove returns the last move written by the other side, if any.
func (that *Room) OpponentMove(isHost bool) (int, bool) {
	move := that.HostMove
	if isHost {
		move = that.GuestMove
	}

	if move == nil {
		return 0, false
	}

	return *move, true
}
