package utils

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"

	"github.com/google/uuid"
	"github.com/verdict-game/verdict-backend/internal"
)

// CodeGenerator draws short room codes from a fixed alphabet. Alphabet and
// length are injectable so tests can shrink the code space and force
// collisions.
type CodeGenerator struct {
	Alphabet string
	Length   int
}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		Alphabet: internal.RoomCodeAlphabet,
		Length:   internal.RoomCodeLength,
	}
}

// NewCode returns one candidate code. It does not check liveness; the room
// registry redraws on collision with an existing room.
func (g *CodeGenerator) NewCode() string {
	code := make([]byte, g.Length)
	for i := range code {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(g.Alphabet))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = g.Alphabet[rand.Intn(len(g.Alphabet))]
			continue
		}
		code[i] = g.Alphabet[n.Int64()]
	}
	return string(code)
}

// NewPlayerID returns an identifier unique with overwhelming probability for
// the life of the process. Uniqueness across restarts is not needed.
func NewPlayerID() string {
	return uuid.NewString()
}

func NewEvidenceID() string {
	return uuid.NewString()
}
