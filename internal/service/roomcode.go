package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/quickdeal/api/internal/model"
)

// roomCodeAlphabet excludes nothing: all uppercase letters and digits
// are valid, matching the published code format.
const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxCodeAttempts bounds the collision retry loop when creating a room.
// With 36^6 possible codes, hitting the cap means something is badly wrong.
const maxCodeAttempts = 10

// CodeFunc produces a candidate room code. The default implementation
// draws from crypto/rand; tests inject deterministic sequences.
type CodeFunc func() (string, error)

// RandomRoomCode generates a uniformly random room code. Each character
// is drawn independently so no code is more likely than another.
func RandomRoomCode() (string, error) {
	var sb strings.Builder
	sb.Grow(model.RoomCodeLength)

	alphabetSize := big.NewInt(int64(len(roomCodeAlphabet)))
	for i := 0; i < model.RoomCodeLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}
		sb.WriteByte(roomCodeAlphabet[n.Int64()])
	}

	return sb.String(), nil
}
