// internal/game/hints.go
//
// Hint bank: a per-round, fixed-order list of facts about the code.
//
// Templates (each evaluated against the code):
//   - HintLastDigit:   the code's last digit.
//   - HintSum:         sum of all digits.
//   - HintLowCount:    number of digits <= 3.
//   - HintProduct:     product of all digits.
//   - HintAbsentDigit: a digit value in [0, radix-1] that does not occur in the code.
//
// GenerateHints picks templates from a random permutation and keeps them in the
// order picked. The bank never regenerates or reshuffles during a round.

package game

import "math/rand"

// HintKind identifies a hint template.
type HintKind int

const (
	HintLastDigit HintKind = iota
	HintSum
	HintLowCount
	HintProduct
	HintAbsentDigit

	hintTemplates = int(HintAbsentDigit) + 1
)

// lowDigitMax is the inclusive bound used by HintLowCount.
const lowDigitMax = 3

// Hint is one evaluated template.
type Hint struct {
	Kind  HintKind
	Value int
}

// GenerateHints evaluates up to maxHints distinct templates against code, chosen
// uniformly at random without replacement. If the absent-digit template has no
// candidate (the code uses every digit of the radix) the next template in the
// permutation takes its place, so fewer hints than maxHints are only possible
// when maxHints exceeds the templates that apply.
func GenerateHints(code string, maxHints, radix int, rng *rand.Rand) []Hint {
	if maxHints <= 0 || len(code) == 0 {
		return nil
	}
	if maxHints > hintTemplates {
		maxHints = hintTemplates
	}

	hints := make([]Hint, 0, maxHints)
	for _, idx := range rng.Perm(hintTemplates) {
		if len(hints) == maxHints {
			break
		}
		if h, ok := evalHint(HintKind(idx), code, radix, rng); ok {
			hints = append(hints, h)
		}
	}
	return hints
}

// evalHint computes a single template. ok is false when the template cannot apply.
func evalHint(kind HintKind, code string, radix int, rng *rand.Rand) (Hint, bool) {
	switch kind {
	case HintLastDigit:
		return Hint{Kind: kind, Value: digit(code[len(code)-1])}, true
	case HintSum:
		sum := 0
		for i := 0; i < len(code); i++ {
			sum += digit(code[i])
		}
		return Hint{Kind: kind, Value: sum}, true
	case HintLowCount:
		n := 0
		for i := 0; i < len(code); i++ {
			if digit(code[i]) <= lowDigitMax {
				n++
			}
		}
		return Hint{Kind: kind, Value: n}, true
	case HintProduct:
		product := 1
		for i := 0; i < len(code); i++ {
			product *= digit(code[i])
		}
		return Hint{Kind: kind, Value: product}, true
	case HintAbsentDigit:
		var present [10]bool
		for i := 0; i < len(code); i++ {
			present[digit(code[i])] = true
		}
		var absent []int
		for d := 0; d < radix && d < len(present); d++ {
			if !present[d] {
				absent = append(absent, d)
			}
		}
		if len(absent) == 0 {
			return Hint{}, false
		}
		return Hint{Kind: kind, Value: absent[rng.Intn(len(absent))]}, true
	}
	return Hint{}, false
}

// HintBank reveals precomputed hints one at a time, in order.
type HintBank struct {
	hints    []Hint
	revealed int
}

// NewHintBank wraps a precomputed hint list.
func NewHintBank(hints []Hint) *HintBank {
	return &HintBank{hints: hints}
}

// RevealNext returns the next unrevealed hint. Once all are revealed it returns
// ok=false on every call and leaves the counter unchanged.
func (b *HintBank) RevealNext() (Hint, bool) {
	if b.revealed >= len(b.hints) {
		return Hint{}, false
	}
	h := b.hints[b.revealed]
	b.revealed++
	return h, true
}

// History returns the hints revealed so far, oldest first.
func (b *HintBank) History() []Hint {
	return append([]Hint(nil), b.hints[:b.revealed]...)
}

// Revealed is the number of hints revealed this round.
func (b *HintBank) Revealed() int { return b.revealed }

// Max is the number of hints in the bank.
func (b *HintBank) Max() int { return len(b.hints) }

// Remaining is the number of hints still available.
func (b *HintBank) Remaining() int { return len(b.hints) - b.revealed }
