// internal/store/memory.go
//
// In-memory implementation of the Scoreboard interface.
// Used for --ephemeral sessions and in tests.
//
// Characteristics:
//   - One score per player, keyed by name.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory map-based Scoreboard implementation.
type memory struct {
	mu     sync.RWMutex   // guards scores map
	player string         // player this view reads and writes
	scores map[string]int // keyed by player
}

// NewMemory constructs a new in-memory Scoreboard for player.
func NewMemory(player string) Scoreboard {
	return &memory{player: player, scores: make(map[string]int)}
}

// ReadScore returns the stored score, 0 for a new player.
func (m *memory) ReadScore(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scores[m.player], nil
}

// WriteScore replaces the player's score.
func (m *memory) WriteScore(ctx context.Context, score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[m.player] = score
	return nil
}

// Close is a no-op.
func (m *memory) Close() error { return nil }
