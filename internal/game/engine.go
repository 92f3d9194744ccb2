// internal/game/engine.go
//
// Session state machine for a Mastermind game.
// Responsibilities:
//   - Own all per-session state (score) and per-round state (code, counters, history).
//   - Drive the turn loop: classify input, dispatch to a command handler or the scorer,
//     and transition between states.
//   - Recover from collaborator failures (secret source, scoreboard) with fallbacks.
//
// State transitions:
//   AwaitingDifficulty → RoundActive → {RoundWon, RoundLost} → AwaitingReplayAnswer
//   AwaitingReplayAnswer → AwaitingDifficulty (replay) | SessionEnded
//
// Notes:
//   - Output is structured (Message); the caller renders it.
//   - Each call to Handle is one turn. A panic inside a turn restores the round
//     snapshot taken before it, so counters are never left half-updated.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// ErrInputClosed is returned by Run when the input ends before the session does.
	ErrInputClosed = errors.New("game: input closed")
	// errMalformedCode marks a code from the secret source that breaks the rules.
	errMalformedCode = errors.New("game: malformed code")
)

// maxReadFailures bounds consecutive non-EOF read errors in Run.
const maxReadFailures = 16

// CodeSource supplies the secret code for a round.
type CodeSource interface {
	FetchCode(ctx context.Context, difficulty int) (string, error)
}

// CodeGenerator produces a code locally; used when the CodeSource fails.
type CodeGenerator interface {
	Generate(length int) string
}

// Scoreboard persists the player's running score.
type Scoreboard interface {
	ReadScore(ctx context.Context) (int, error)
	WriteScore(ctx context.Context, score int) error
}

// LineReader blocks until the player submits a line.
type LineReader interface {
	ReadLine() (string, error)
}

// Presenter renders session output.
type Presenter interface {
	Present(m Message)
}

// Option configures a Session.
type Option func(*Session)

// WithRules overrides DefaultRules.
func WithRules(r Rules) Option { return func(s *Session) { s.rules = r } }

// WithRand sets the random source used for hint selection and the built-in fallback.
func WithRand(rng *rand.Rand) Option { return func(s *Session) { s.rng = rng } }

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Session) { s.log = l } }

// WithDebug reveals the code at the start of every round.
func WithDebug(on bool) Option { return func(s *Session) { s.debug = on } }

// WithFallback sets the local generator used when the CodeSource fails.
func WithFallback(g CodeGenerator) Option { return func(s *Session) { s.fallback = g } }

// round is the state reset on every replay.
type round struct {
	id               string
	difficulty       Difficulty
	code             string
	guessesRemaining int
	hints            *HintBank
	history          []Record
}

// Session is a single player's game across any number of rounds.
type Session struct {
	rules    Rules
	source   CodeSource
	fallback CodeGenerator
	board    Scoreboard
	rng      *rand.Rand
	log      zerolog.Logger
	debug    bool
	commands map[string]func(*Session) []Message

	state State
	score int
	round round
}

// NewSession constructs a session in AwaitingDifficulty. Call Start (or Run) to begin.
func NewSession(source CodeSource, board Scoreboard, opts ...Option) *Session {
	s := &Session{
		rules:  DefaultRules(),
		source: source,
		board:  board,
		log:    log.Logger,
		state:  AwaitingDifficulty,
		commands: map[string]func(*Session) []Message{
			CmdHint:         (*Session).cmdHint,
			CmdHintHistory:  (*Session).cmdHintHistory,
			CmdGuessHistory: (*Session).cmdGuessHistory,
			CmdScore:        (*Session).cmdScore,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.fallback == nil {
		s.fallback = randCode{s.rng, s.rules.Radix}
	}
	return s
}

// State reports the current state.
func (s *Session) State() State { return s.state }

// Score reports the in-memory running score.
func (s *Session) Score() int { return s.score }

// Difficulty reports the current round's difficulty.
func (s *Session) Difficulty() Difficulty { return s.round.difficulty }

// RoundID identifies the current round in logs.
func (s *Session) RoundID() string { return s.round.id }

// GuessesRemaining reports the current round's remaining guess budget.
func (s *Session) GuessesRemaining() int { return s.round.guessesRemaining }

// HintsRevealed reports how many hints were revealed this round.
func (s *Session) HintsRevealed() int {
	if s.round.hints == nil {
		return 0
	}
	return s.round.hints.Revealed()
}

// History returns the current round's scored guesses in submission order.
func (s *Session) History() []Record {
	return append([]Record(nil), s.round.history...)
}

// Start reads the persisted score and asks for a difficulty.
func (s *Session) Start(ctx context.Context) []Message {
	s.state = AwaitingDifficulty
	msgs := s.readScore(ctx)
	return append(msgs, Message{Kind: MsgDifficultyPrompt})
}

// Run drives the session until SessionEnded, reading one line per turn.
// Transient read errors are reported and the prompt repeated; end of input
// returns ErrInputClosed.
func (s *Session) Run(ctx context.Context, in LineReader, out Presenter) error {
	present := func(msgs []Message) {
		for _, m := range msgs {
			out.Present(m)
		}
	}

	present(s.Start(ctx))
	failures := 0
	for s.state != SessionEnded {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrInputClosed
			}
			failures++
			if failures >= maxReadFailures {
				return fmt.Errorf("%w: %v", ErrInputClosed, err)
			}
			s.log.Warn().Err(err).Str("state", s.state.String()).Msg("read input")
			present(append([]Message{{Kind: MsgRetry}}, s.prompt()...))
			continue
		}
		failures = 0
		present(s.Handle(ctx, line))
	}
	return nil
}

// Handle applies one line of input to the current state and returns the output.
func (s *Session) Handle(ctx context.Context, line string) (msgs []Message) {
	snap := s.snapshot()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("state", snap.state.String()).
				Str("round", snap.round.id).Msg("turn failed, state restored")
			s.restore(snap)
			msgs = append([]Message{{Kind: MsgRetry}}, s.prompt()...)
		}
	}()

	switch s.state {
	case AwaitingDifficulty:
		return s.handleDifficulty(ctx, line)
	case RoundActive:
		return s.handleTurn(ctx, line)
	case AwaitingReplayAnswer:
		return s.handleReplay(ctx, line)
	}
	return nil
}

// ------------------------------- states ------------------------------------

func (s *Session) handleDifficulty(ctx context.Context, line string) []Message {
	d, ok := ParseDifficulty(line)
	if !ok {
		return []Message{{Kind: MsgDifficultyInvalid}, {Kind: MsgDifficultyPrompt}}
	}
	return s.startRound(ctx, d)
}

// startRound fetches a code, precomputes hints and resets the round counters.
func (s *Session) startRound(ctx context.Context, d Difficulty) []Message {
	length := s.rules.CodeLength(d)
	var msgs []Message

	code, err := s.source.FetchCode(ctx, int(d))
	if err == nil {
		err = s.checkCode(code, length)
	}
	if err != nil {
		s.log.Warn().Err(err).Int("length", length).Msg("secret source unavailable, generating code locally")
		code = s.fallback.Generate(length)
		msgs = append(msgs, Message{Kind: MsgSourceFallback})
	}

	s.round = round{
		id:               ulid.Make().String(),
		difficulty:       d,
		code:             code,
		guessesRemaining: s.rules.MaxGuesses,
		hints:            NewHintBank(GenerateHints(code, s.rules.MaxHints(d), s.rules.Radix, s.rng)),
	}
	s.state = RoundActive
	s.log.Info().Str("round", s.round.id).Str("difficulty", d.String()).
		Int("length", length).Int("hints", s.round.hints.Max()).Msg("round started")

	msgs = append(msgs, Message{
		Kind:             MsgRoundStarted,
		DigitCount:       length,
		Radix:            s.rules.Radix,
		GuessesRemaining: s.round.guessesRemaining,
	})
	if s.debug {
		msgs = append(msgs, Message{Kind: MsgDebugCode, Code: code})
	}
	return append(msgs, s.turnPrompt())
}

// handleTurn is one RoundActive step.
// Commands and invalid input never touch the guess budget; a winning guess is not
// recorded or counted; any other guess is scored, recorded and counted.
func (s *Session) handleTurn(ctx context.Context, line string) []Message {
	c := Validate(line, len(s.round.code), s.rules.Radix, s.rules.Keywords)
	switch c.Kind {
	case ClassCommand:
		var msgs []Message
		if h, ok := s.commands[c.Text]; ok {
			msgs = h(s)
		}
		return append(msgs, s.turnPrompt())
	case ClassInvalid:
		return []Message{{
			Kind:       MsgInvalidGuess,
			Text:       c.Text,
			Reason:     c.Reason,
			DigitCount: len(s.round.code),
			Radix:      s.rules.Radix,
		}, s.turnPrompt()}
	}

	if c.Text == s.round.code {
		return s.win(ctx)
	}

	fb, err := Score(s.round.code, c.Text)
	if err != nil {
		s.log.Error().Err(err).Str("round", s.round.id).Msg("score guess")
		return []Message{{Kind: MsgRetry}, s.turnPrompt()}
	}
	rec := Record{Guess: c.Text, Feedback: fb}
	s.round.history = append(s.round.history, rec)
	s.round.guessesRemaining--

	msgs := []Message{{Kind: MsgFeedback, Record: rec}}
	if s.round.guessesRemaining == 0 {
		return append(msgs, s.lose()...)
	}
	return append(msgs, s.turnPrompt())
}

func (s *Session) win(ctx context.Context) []Message {
	s.state = RoundWon
	s.score++
	msgs := []Message{{Kind: MsgWon, Score: s.score}}
	if err := s.board.WriteScore(ctx, s.score); err != nil {
		s.log.Warn().Err(err).Int("score", s.score).Msg("write score")
		msgs = append(msgs, Message{Kind: MsgScoreNotSaved})
	}
	s.log.Info().Str("round", s.round.id).Int("guesses", len(s.round.history)+1).
		Int("score", s.score).Msg("round won")

	s.state = AwaitingReplayAnswer
	return append(msgs, Message{Kind: MsgReplayPrompt})
}

func (s *Session) lose() []Message {
	s.state = RoundLost
	s.log.Info().Str("round", s.round.id).Int("score", s.score).Msg("round lost")

	s.state = AwaitingReplayAnswer
	return []Message{{Kind: MsgLost, Score: s.score}, {Kind: MsgReplayPrompt}}
}

func (s *Session) handleReplay(ctx context.Context, line string) []Message {
	switch strings.ToLower(line) {
	case "y", "yes":
		s.round = round{}
		s.state = AwaitingDifficulty
		msgs := s.readScore(ctx)
		return append(msgs, Message{Kind: MsgDifficultyPrompt})
	case "n", "no":
		s.state = SessionEnded
		s.log.Info().Int("score", s.score).Msg("session ended")
		return []Message{{Kind: MsgGoodbye}}
	}
	return []Message{{Kind: MsgReplayInvalid}, {Kind: MsgReplayPrompt}}
}

// ------------------------------ commands -----------------------------------

func (s *Session) cmdHint() []Message {
	h, ok := s.round.hints.RevealNext()
	if !ok {
		return []Message{{Kind: MsgHintsExhausted}}
	}
	return []Message{{Kind: MsgHint, Hint: h}}
}

func (s *Session) cmdHintHistory() []Message {
	return []Message{{Kind: MsgHintHistory, Hints: s.round.hints.History()}}
}

func (s *Session) cmdGuessHistory() []Message {
	return []Message{{Kind: MsgGuessHistory, History: s.History()}}
}

func (s *Session) cmdScore() []Message {
	return []Message{{Kind: MsgScore, Score: s.score}}
}

// ------------------------------- helpers -----------------------------------

func (s *Session) readScore(ctx context.Context) []Message {
	n, err := s.board.ReadScore(ctx)
	if err != nil || n < 0 {
		s.log.Warn().Err(err).Int("score", n).Msg("read score, defaulting to 0")
		s.score = 0
		return []Message{{Kind: MsgScoreUnavailable}}
	}
	s.score = n
	return nil
}

func (s *Session) checkCode(code string, length int) error {
	if Validate(code, length, s.rules.Radix, nil).Kind != ClassGuess {
		return fmt.Errorf("%w: %q", errMalformedCode, code)
	}
	return nil
}

func (s *Session) turnPrompt() Message {
	return Message{
		Kind:             MsgTurnPrompt,
		HintsRemaining:   s.round.hints.Remaining(),
		GuessesRemaining: s.round.guessesRemaining,
	}
}

// prompt repeats the question for the current state.
func (s *Session) prompt() []Message {
	switch s.state {
	case AwaitingDifficulty:
		return []Message{{Kind: MsgDifficultyPrompt}}
	case RoundActive:
		return []Message{s.turnPrompt()}
	case AwaitingReplayAnswer:
		return []Message{{Kind: MsgReplayPrompt}}
	}
	return nil
}

// sessionSnapshot is the mutable state captured before each turn.
type sessionSnapshot struct {
	state    State
	score    int
	round    round
	revealed int
}

func (s *Session) snapshot() sessionSnapshot {
	snap := sessionSnapshot{state: s.state, score: s.score, round: s.round}
	snap.round.history = s.round.history[:len(s.round.history):len(s.round.history)]
	if s.round.hints != nil {
		snap.revealed = s.round.hints.revealed
	}
	return snap
}

func (s *Session) restore(snap sessionSnapshot) {
	s.state, s.score, s.round = snap.state, snap.score, snap.round
	if s.round.hints != nil {
		s.round.hints.revealed = snap.revealed
	}
}

// randCode is the built-in fallback generator.
type randCode struct {
	rng   *rand.Rand
	radix int
}

func (g randCode) Generate(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte('0' + g.rng.Intn(g.radix))
	}
	return string(b)
}
