package wordle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/hint"
)

const unknownLetter = alphabet.MachineLetter(0xFF)

// ErrContradictoryHint means no word at all can satisfy the hint together
// with the earlier hints of the round.
var ErrContradictoryHint = errors.New("hint contradicts earlier hints")

// GuessState is everything learned about the secret word during a round:
// the letters known per position, the letters ruled out per position and
// a lower and upper bound on the number of occurrences of every letter.
type GuessState struct {
	length   int
	known    []alphabet.MachineLetter
	excluded []alphabet.LetterSet
	lower    alphabet.LetterCounts
	upper    alphabet.LetterCounts
}

func (gs *GuessState) reset(n int) {
	gs.length = n
	gs.known = make([]alphabet.MachineLetter, n)
	for i := range gs.known {
		gs.known[i] = unknownLetter
	}
	gs.excluded = make([]alphabet.LetterSet, n)
	gs.lower.Reset()
	gs.upper.Fill(n)
}

func (gs *GuessState) clone() GuessState {
	c := *gs
	c.known = slices.Clone(gs.known)
	c.excluded = slices.Clone(gs.excluded)
	return c
}

// apply narrows the state with the feedback for one guess. Bounds only
// ever tighten, so feedback from earlier guesses is never lost. On error
// the state may be partially updated.
func (gs *GuessState) apply(h hint.Hint, guess string) error {
	if len(h) != gs.length || len(guess) != gs.length {
		return fmt.Errorf("round has %d letters, hint %d and guess %q %d: %w",
			gs.length, len(h), guess, len(guess), alphabet.ErrLengthMismatch)
	}
	if err := alphabet.ValidateWord(guess); err != nil {
		return err
	}
	var green, yellow, gray alphabet.LetterCounts
	for i := 0; i < len(guess); i++ {
		ml := alphabet.FromByte(guess[i])
		switch h[i] {
		case hint.Correct:
			if k := gs.known[i]; k != unknownLetter && k != ml {
				return fmt.Errorf("%c then %c at position %d: %w", k.Byte(), ml.Byte(), i+1, ErrContradictoryHint)
			}
			gs.known[i] = ml
			green.Add(ml)
		case hint.Present:
			gs.excluded[i] = gs.excluded[i].Add(ml)
			yellow.Add(ml)
		default:
			// a gray letter can't be the secret's letter here, or it
			// would have been green
			gs.excluded[i] = gs.excluded[i].Add(ml)
			gray.Add(ml)
		}
	}
	for c := range gs.lower {
		matched := green[c] + yellow[c]
		gs.lower[c] = max(gs.lower[c], matched)
		if gray[c] > 0 {
			gs.upper[c] = min(gs.upper[c], matched)
		}
	}
	return gs.check()
}

// check verifies that the state still admits some letter assignment.
func (gs *GuessState) check() error {
	var known alphabet.LetterCounts
	for i, ml := range gs.known {
		if ml == unknownLetter {
			continue
		}
		if gs.excluded[i].Contains(ml) {
			return fmt.Errorf("%c both fits and is ruled out at position %d: %w", ml.Byte(), i+1, ErrContradictoryHint)
		}
		known.Add(ml)
	}
	for c := range gs.lower {
		if gs.lower[c] > gs.upper[c] || known[c] > gs.upper[c] {
			return fmt.Errorf("%c occurs at least %d and at most %d times: %w",
				alphabet.MachineLetter(c).Byte(), max(gs.lower[c], known[c]), gs.upper[c], ErrContradictoryHint)
		}
	}
	if gs.lower.Sum() > gs.length {
		return fmt.Errorf("more than %d letters required: %w", gs.length, ErrContradictoryHint)
	}
	return nil
}

// missing returns how many more letters a word with the given letter
// counts needs to reach every lower bound, or false if a count is already
// over its upper bound.
func (gs *GuessState) missing(found *alphabet.LetterCounts) (int, bool) {
	m := 0
	for c, cnt := range found {
		if cnt > gs.upper[c] {
			return 0, false
		}
		if d := gs.lower[c] - cnt; d > 0 {
			m += d
		}
	}
	return m, true
}

// Length returns the word length of the round.
func (gs *GuessState) Length() int {
	return gs.length
}

// KnownLetter returns the letter at pos if it is known.
func (gs *GuessState) KnownLetter(pos int) (alphabet.MachineLetter, bool) {
	ml := gs.known[pos]
	return ml, ml != unknownLetter
}

// Excluded returns the letters known not to be at pos.
func (gs *GuessState) Excluded(pos int) alphabet.LetterSet {
	return gs.excluded[pos]
}

// LowerBound returns the minimum number of occurrences of ml.
func (gs *GuessState) LowerBound(ml alphabet.MachineLetter) int {
	return gs.lower[ml]
}

// UpperBound returns the maximum number of occurrences of ml.
func (gs *GuessState) UpperBound(ml alphabet.MachineLetter) int {
	return gs.upper[ml]
}

// Pattern renders the known letters, with '.' for unknown positions.
func (gs *GuessState) Pattern() string {
	b := make([]byte, gs.length)
	for i, ml := range gs.known {
		if ml == unknownLetter {
			b[i] = '.'
		} else {
			b[i] = ml.Byte()
		}
	}
	return string(b)
}
