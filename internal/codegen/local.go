package codegen

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Local generates codes in-process with uniformly distributed digits.
type Local struct {
	shape Shape
	mu    sync.Mutex // guards rng
	rng   *rand.Rand
}

// NewLocal returns a Local seeded from crypto/rand, or from the clock if that fails.
func NewLocal(shape Shape) *Local {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return NewLocalWithSeed(shape, seed)
}

// NewLocalWithSeed returns a deterministic Local, for tests and replays.
func NewLocalWithSeed(shape Shape, seed int64) *Local {
	return &Local{shape: shape, rng: rand.New(rand.NewSource(seed))}
}

// Generate returns length digits in [0, Radix-1].
func (l *Local) Generate(length int) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := make([]byte, length)
	for i := range b {
		b[i] = byte('0' + l.rng.Intn(l.shape.Radix))
	}
	return string(b)
}

// FetchCode implements the session's CodeSource; it never fails.
func (l *Local) FetchCode(_ context.Context, difficulty int) (string, error) {
	return l.Generate(l.shape.Length(difficulty)), nil
}
