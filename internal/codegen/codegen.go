// internal/codegen/codegen.go
//
// Secret code sources for the game.
//
// Sources:
//   - RandomOrg: remote true-random service (random.org, or the local rng-serve).
//   - Local:     math/rand generator seeded from crypto/rand; the offline fallback.
//   - Daily:     deterministic code shared by all players for the current UTC date.
//
// Every source returns a string of decimal digits. The session validates the
// length and digit range itself and falls back to Local on any failure, so a
// source only has to report errors, never repair them.

package codegen

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrBadResponse is returned when the remote service answers with something
// other than the requested digits.
var ErrBadResponse = errors.New("codegen: bad response")

// Shape describes the codes a source must produce.
type Shape struct {
	BaseLength int // length at difficulty 0
	Radix      int // digits are in [0, Radix-1]
}

// Length is the code length at difficulty d.
func (s Shape) Length(difficulty int) int { return s.BaseLength + difficulty }

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
