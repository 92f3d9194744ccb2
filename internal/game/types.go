// internal/game/types.go
//
// Core type definitions for the Mastermind engine.
// Defines:
//   - Difficulty: the player's chosen level and the rules derived from it.
//   - Rules: fixed per-session parameters (base length, radix, guess budget, keywords).
//   - Feedback / Record: the scored comparison of a guess against the code.
//   - State: the session state machine's states.
//   - Message: structured output emitted by the session for the presentation layer.

package game

import "strings"

// Difficulty is the player's chosen level: 0 (hard), 1 (harder) or 2 (hardest).
type Difficulty int

const (
	Hard Difficulty = iota
	Harder
	Hardest
)

// difficultyNames is the accepted vocabulary, indexed by Difficulty.
var difficultyNames = [...]string{"hard", "harder", "hardest"}

// ParseDifficulty matches s case-insensitively against the difficulty vocabulary.
func ParseDifficulty(s string) (Difficulty, bool) {
	for i, name := range difficultyNames {
		if strings.EqualFold(s, name) {
			return Difficulty(i), true
		}
	}
	return 0, false
}

// String returns the vocabulary word for d.
func (d Difficulty) String() string {
	if d < Hard || d > Hardest {
		return "unknown"
	}
	return difficultyNames[d]
}

// Rules holds the parameters that stay fixed for a whole session.
type Rules struct {
	BaseLength int      // code length at difficulty 0
	Radix      int      // digits are drawn from [0, Radix-1]
	MaxGuesses int      // scored guesses allowed per round
	BaseHints  int      // hints available at difficulty 0
	Keywords   []string // reserved in-band command tokens
}

// Default rule values.
const (
	DefaultBaseLength = 4
	DefaultRadix      = 8
	DefaultMaxGuesses = 10
	DefaultBaseHints  = 3
)

// DefaultKeywords are the reserved commands understood by the session.
var DefaultKeywords = []string{CmdHint, CmdGuessHistory, CmdHintHistory, CmdScore}

// Command keywords with a handler in the session.
const (
	CmdHint         = "/hint"
	CmdGuessHistory = "/guess_history"
	CmdHintHistory  = "/hint_history"
	CmdScore        = "/score"
)

// DefaultRules returns the classic game parameters.
func DefaultRules() Rules {
	return Rules{
		BaseLength: DefaultBaseLength,
		Radix:      DefaultRadix,
		MaxGuesses: DefaultMaxGuesses,
		BaseHints:  DefaultBaseHints,
		Keywords:   append([]string(nil), DefaultKeywords...),
	}
}

// CodeLength is the number of digits in a code at difficulty d.
func (r Rules) CodeLength(d Difficulty) int { return r.BaseLength + int(d) }

// MaxHints is the number of hints available at difficulty d, never negative.
func (r Rules) MaxHints(d Difficulty) int {
	if n := r.BaseHints - int(d); n > 0 {
		return n
	}
	return 0
}

// FeedbackKind distinguishes a scored result from the "all incorrect" sentinel.
// The zero value is neither.
type FeedbackKind int

const (
	FeedbackScored FeedbackKind = iota + 1
	FeedbackAllIncorrect
)

// Feedback is the result of scoring one guess against the code.
type Feedback struct {
	Kind            FeedbackKind
	NumberMatches   int // multiset intersection of digit values
	LocationMatches int // positions where guess and code agree
}

// AllIncorrect reports whether f is the "all incorrect" sentinel.
func (f Feedback) AllIncorrect() bool { return f.Kind == FeedbackAllIncorrect }

// Record pairs a scored guess with its feedback in the guess history.
type Record struct {
	Guess    string
	Feedback Feedback
}

// State is a node of the session state machine.
type State int

const (
	AwaitingDifficulty State = iota
	RoundActive
	RoundWon
	RoundLost
	AwaitingReplayAnswer
	SessionEnded
)

var stateNames = [...]string{
	"awaiting_difficulty",
	"round_active",
	"round_won",
	"round_lost",
	"awaiting_replay_answer",
	"session_ended",
}

func (s State) String() string {
	if s < AwaitingDifficulty || s > SessionEnded {
		return "unknown"
	}
	return stateNames[s]
}

// MessageKind identifies a structured message emitted by the session.
type MessageKind int

const (
	MsgDifficultyPrompt  MessageKind = iota // ask for hard/harder/hardest
	MsgDifficultyInvalid                    // unrecognised difficulty word
	MsgRoundStarted                         // DigitCount, Radix, GuessesRemaining
	MsgDebugCode                            // Code (debug flag only)
	MsgSourceFallback                       // secret source failed, local code used
	MsgScoreUnavailable                     // score read failed, defaulted to 0
	MsgTurnPrompt                           // HintsRemaining, GuessesRemaining
	MsgInvalidGuess                         // Reason, DigitCount, Radix, Text
	MsgFeedback                             // Record
	MsgHint                                 // Hint
	MsgHintsExhausted
	MsgHintHistory  // Hints (may be empty)
	MsgGuessHistory // History
	MsgScore        // Score
	MsgWon          // Score
	MsgScoreNotSaved
	MsgLost // Score
	MsgReplayPrompt
	MsgReplayInvalid
	MsgGoodbye
	MsgRetry // a turn failed unexpectedly and will be retried
)

// Message is one piece of structured output. Only the fields relevant to Kind are set.
type Message struct {
	Kind             MessageKind
	Text             string // raw player input echoed back (invalid guess)
	Code             string
	DigitCount       int
	Radix            int
	GuessesRemaining int
	HintsRemaining   int
	Score            int
	Reason           InvalidReason
	Record           Record
	Hint             Hint
	Hints            []Hint
	History          []Record
}
