package pkg

import (
	"math/rand"

	"github.com/google/uuid"
)

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSessionID - new random id for a game session.
func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateRoomCode - 6 characters from A-Z and 0-9.
func GenerateRoomCode(rng *rand.Rand, length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = roomCodeAlphabet[rng.Intn(len(roomCodeAlphabet))]
	}

	return string(code)
}
