// internal/cli/render.go
//
// Text presentation of session messages, in the Mastermind's voice.
// The session emits structured game.Message values; everything the player
// reads is phrased here.

package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/robalobadob/mastermind/assets"
	"github.com/robalobadob/mastermind/internal/game"
)

const clearScreen = "\033[H\033[2J"

// renderer writes messages to out. It implements game.Presenter.
type renderer struct {
	out io.Writer
	tty bool // out is an interactive terminal
}

func newRenderer(out io.Writer) *renderer {
	r := &renderer{out: out}
	if f, ok := out.(*os.File); ok {
		r.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return r
}

// intro shows the welcome banner. Pauses and screen clearing only happen on a terminal.
func (r *renderer) intro(delay time.Duration) {
	r.clear()
	r.println("Welcome! You have entered the lair of the...")
	r.pause(delay)
	r.println(assets.Banner())
	r.println("")
	r.pause(delay)
	r.clear()
}

// Present renders one message.
func (r *renderer) Present(m game.Message) {
	switch m.Kind {
	case game.MsgDifficultyPrompt:
		r.println("MASTERMIND: Enter a difficulty (hard, harder, or hardest):")
	case game.MsgDifficultyInvalid:
		r.println("\nMASTERMIND: Ugh! I said choose between hard, harder, or hardest!!!\n")
	case game.MsgRoundStarted:
		r.printf("\nMASTERMIND: I'm thinking of a %d digit number using digits between 0 and %d. Try and guess it, if you dare!\n\n",
			m.DigitCount, m.Radix-1)
	case game.MsgDebugCode:
		r.printf("SYS_MESSAGE: ~Cheater, cheater, pumpkin eater: %s\n\n", m.Code)
	case game.MsgSourceFallback:
		r.println("SYS_MESSAGE: The random number service is unreachable; this round's number was generated locally.")
	case game.MsgScoreUnavailable:
		r.println("SYS_MESSAGE: Your score could not be read; counting from 0.")
	case game.MsgTurnPrompt:
		r.printf("Hints Remaining (type /hint to see a hint): %d\n", m.HintsRemaining)
		r.printf("Guesses Remaining (type /guess_history to see Guess History): %d\n", m.GuessesRemaining)
		r.printf("Guess:\t")
	case game.MsgInvalidGuess:
		if m.Reason == game.ReasonNotDigit {
			r.printf("\nMASTERMIND: You fool - what do you mean, %q?! I demand that you only enter digits between 0-%d, inclusive.\n\n",
				m.Text, m.Radix-1)
			return
		}
		r.printf("\nMASTERMIND: I tire of your ignorance! Your guess must be %d digits, each between 0 and %d, inclusive!\n\n",
			m.DigitCount, m.Radix-1)
	case game.MsgFeedback:
		r.printf("%s\n\n", feedbackText(m.Record))
	case game.MsgHint:
		r.printf("\n%s\n\n", hintText(m.Hint))
	case game.MsgHintsExhausted:
		r.println("\nMASTERMIND: YOU HAVE NO MORE HINTS!\n")
	case game.MsgHintHistory:
		if len(m.Hints) == 0 {
			r.println("\nYou haven't asked for any hints yet; enter the command /hint to ask for a hint.\n")
			return
		}
		r.println("\nHint History:")
		for _, h := range m.Hints {
			r.println(hintText(h))
		}
		r.println("")
	case game.MsgGuessHistory:
		r.println("\nGuess History:")
		if len(m.History) == 0 {
			r.println("(no guesses yet)")
		}
		for i, rec := range m.History {
			r.printf("%d: %s\n", i+1, feedbackText(rec))
		}
		r.println("")
	case game.MsgScore:
		r.printf("\nscore: %d\n\n", m.Score)
	case game.MsgWon:
		r.printf("\nVICTORY\n\nscore: %d\n", m.Score)
	case game.MsgScoreNotSaved:
		r.println("SYS_MESSAGE: Your score could not be saved.")
	case game.MsgLost:
		r.printf("\nYOU LOSE\n\nscore: %d\n", m.Score)
	case game.MsgReplayPrompt:
		r.println("\nMASTERMIND: Dare to play again? (y/n):")
	case game.MsgReplayInvalid:
		r.println("\nMASTERMIND: Yes or no, mortal! y or n!")
	case game.MsgGoodbye:
		r.println("\nMASTERMIND: Flee, then. I'll be here, thinking of numbers.")
	case game.MsgRetry:
		r.println("\nTry again...")
	}
}

// feedbackText formats a scored guess.
func feedbackText(rec game.Record) string {
	if rec.Feedback.AllIncorrect() {
		return fmt.Sprintf("Feedback for %s: all incorrect", rec.Guess)
	}
	return fmt.Sprintf("Feedback for %s: {correct number: %d, correct location: %d}",
		rec.Guess, rec.Feedback.NumberMatches, rec.Feedback.LocationMatches)
}

// hintText phrases a hint.
func hintText(h game.Hint) string {
	switch h.Kind {
	case game.HintLastDigit:
		return fmt.Sprintf("MASTERMIND: A hint?! Really?! You need a hint?! Fine. The last digit of the number in my head is %d", h.Value)
	case game.HintSum:
		return fmt.Sprintf("MASTERMIND: FINE. The sum of the digits for the number in my head is %d", h.Value)
	case game.HintLowCount:
		return fmt.Sprintf("MASTERMIND: There are %d digits in the number in my head that are less than or equal to 3", h.Value)
	case game.HintProduct:
		return fmt.Sprintf("MASTERMIND: FINE. The product of the digits for the number in my head is %d", h.Value)
	case game.HintAbsentDigit:
		return fmt.Sprintf("MASTERMIND: %d is not a digit in the number I am thinking of", h.Value)
	}
	return ""
}

func (r *renderer) printf(format string, args ...any) { _, _ = fmt.Fprintf(r.out, format, args...) }
func (r *renderer) println(s string)                 { _, _ = fmt.Fprintln(r.out, s) }

func (r *renderer) clear() {
	if r.tty {
		_, _ = io.WriteString(r.out, clearScreen)
	}
}

func (r *renderer) pause(d time.Duration) {
	if r.tty && d > 0 {
		time.Sleep(d)
	}
}
