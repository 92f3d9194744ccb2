package game

// ClassKind is the outcome of classifying one line of player input.
type ClassKind int

const (
	ClassInvalid ClassKind = iota
	ClassCommand
	ClassGuess
)

// InvalidReason explains why input was rejected as a guess.
type InvalidReason int

const (
	ReasonNone       InvalidReason = iota
	ReasonLength                   // wrong number of characters
	ReasonNotDigit                 // contains a non-digit character
	ReasonOutOfRange               // contains a digit >= radix
)

// Classified is the result of Validate: a command, a well-formed guess, or invalid input.
type Classified struct {
	Kind   ClassKind
	Text   string
	Reason InvalidReason
}

// Validate classifies raw input. Keywords are matched first since they are never
// digit strings; anything else must be exactly digitCount digits in [0, radix-1].
func Validate(raw string, digitCount, radix int, keywords []string) Classified {
	for _, k := range keywords {
		if raw == k {
			return Classified{Kind: ClassCommand, Text: raw}
		}
	}
	if len(raw) != digitCount {
		return Classified{Kind: ClassInvalid, Text: raw, Reason: ReasonLength}
	}
	for i := 0; i < len(raw); i++ {
		d := digit(raw[i])
		if d < 0 {
			return Classified{Kind: ClassInvalid, Text: raw, Reason: ReasonNotDigit}
		}
		if d >= radix {
			return Classified{Kind: ClassInvalid, Text: raw, Reason: ReasonOutOfRange}
		}
	}
	return Classified{Kind: ClassGuess, Text: raw}
}
