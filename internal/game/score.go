// internal/game/score.go
//
// Classic Mastermind scoring.
//
// Unlike Wordle's two-pass marking, feedback here is aggregate:
//   - LocationMatches: positions where code and guess hold the same digit.
//   - NumberMatches:   size of the multiset intersection of digit values. It includes
//     the positional matches, so a guess equal to the code yields len(code) for both.
//
// A result with no overlap at all is reported as the FeedbackAllIncorrect sentinel.

package game

import "errors"

var (
	// ErrLengthMismatch is returned when code and guess differ in length.
	ErrLengthMismatch = errors.New("game: code and guess lengths differ")
	// ErrNotDigit is returned when code or guess holds a non-decimal character.
	ErrNotDigit = errors.New("game: non-digit character")
)

// Score compares guess against code.
func Score(code, guess string) (Feedback, error) {
	if len(code) != len(guess) {
		return Feedback{}, ErrLengthMismatch
	}

	// Digit frequency per sequence, one bucket per decimal digit.
	var inCode, inGuess [10]int
	location := 0
	for i := 0; i < len(code); i++ {
		c, g := digit(code[i]), digit(guess[i])
		if c < 0 || g < 0 {
			return Feedback{}, ErrNotDigit
		}
		if c == g {
			location++
		}
		inCode[c]++
		inGuess[g]++
	}

	number := 0
	for d := range inCode {
		number += min(inCode[d], inGuess[d])
	}

	if number == 0 && location == 0 {
		return Feedback{Kind: FeedbackAllIncorrect}, nil
	}
	return Feedback{Kind: FeedbackScored, NumberMatches: number, LocationMatches: location}, nil
}

// digit maps an ASCII decimal digit to 0..9, or -1.
func digit(b byte) int {
	if b < '0' || b > '9' {
		return -1
	}
	return int(b - '0')
}
