// Package store persists the player's running score.
package store

import (
	"context"
	"errors"
)

// ErrNegativeScore is returned when asked to persist a score below zero.
var ErrNegativeScore = errors.New("store: negative score")

// Scoreboard defines the persistence interface for the running score.
// Implementations may be backed by memory (NewMemory) or SQLite (OpenSQLite).
type Scoreboard interface {
	// ReadScore returns the persisted score. A player with no record has score 0.
	ReadScore(ctx context.Context) (int, error)

	// WriteScore persists score, replacing the previous value.
	WriteScore(ctx context.Context, score int) error

	// Close releases the underlying resources.
	Close() error
}

// unavailable is a Scoreboard whose backing medium could not be opened.
type unavailable struct{ err error }

// Unavailable returns a Scoreboard that reports err from every call.
func Unavailable(err error) Scoreboard { return unavailable{err: err} }

func (u unavailable) ReadScore(context.Context) (int, error) { return 0, u.err }
func (u unavailable) WriteScore(context.Context, int) error  { return u.err }
func (u unavailable) Close() error                           { return nil }
