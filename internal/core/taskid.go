package core

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const (
	// DefaultTaskIDLength is the number of hex characters in a generated ID.
	DefaultTaskIDLength = 8
	minTaskIDLength     = 4
	maxTaskIDLength     = 32
	maxIDAttempts       = 32
)

// TaskIDGenerator defines the interface for generating unique task IDs.
// taken reports whether a candidate is already in use.
type TaskIDGenerator interface {
	GenerateTaskID(taken func(id string) bool) (string, error)
}

// randomTaskIDGenerator derives IDs from the leading hex digits of a
// random (version 4) UUID.
type randomTaskIDGenerator struct {
	length int
	source func() (uuid.UUID, error)
}

// NewTaskIDGenerator creates a TaskIDGenerator producing IDs of the given
// number of hex characters. Lengths outside [4, 32] fall back to the default.
func NewTaskIDGenerator(length int) TaskIDGenerator {
	if length < minTaskIDLength || length > maxTaskIDLength {
		length = DefaultTaskIDLength
	}
	return &randomTaskIDGenerator{length: length, source: uuid.NewRandom}
}

// GenerateTaskID draws candidates until one is not taken, giving up after a
// bounded number of collisions.
func (g *randomTaskIDGenerator) GenerateTaskID(taken func(id string) bool) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		u, err := g.source()
		if err != nil {
			return "", fmt.Errorf("generating task id: %w", err)
		}
		id := hex.EncodeToString(u[:])[:g.length]
		if taken == nil || !taken(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("generating task id: no free id after %d attempts", maxIDAttempts)
}
