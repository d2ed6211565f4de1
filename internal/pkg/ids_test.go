package pkg

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoomCode(t *testing.T) {
	// Given: a seeded source
	rng := rand.New(rand.NewSource(1))

	// When: a code is generated
	code := GenerateRoomCode(rng, 6)

	// Then: it has six upper case letters or digits
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), code)
	assert.Equal(t, code, GenerateRoomCode(rand.New(rand.NewSource(1)), 6))
}

func TestGenerateSessionID(t *testing.T) {
	id := GenerateSessionID()

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, GenerateSessionID())
}
