// Package hint computes wordle feedback for a guess against a secret word.
package hint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/wordgraph/alphabet"
)

// Code classifies one position of a guess.
type Code uint8

const (
	Absent Code = iota
	Present
	Correct
)

var ErrBadHint = errors.New("hint must consist of the digits 0, 1 and 2")

func (c Code) String() string {
	switch c {
	case Correct:
		return "correct"
	case Present:
		return "present"
	}
	return "absent"
}

// Hint is the feedback for every position of a guess.
type Hint []Code

// Compute returns the hint for guess against secret. Greens are assigned
// first; the remaining letter budget of the secret is then handed out as
// yellows from left to right, so surplus copies of a letter are absent.
func Compute(secret, guess string) (Hint, error) {
	if len(secret) != len(guess) {
		return nil, fmt.Errorf("secret has %d letters, guess %q has %d: %w",
			len(secret), guess, len(guess), alphabet.ErrLengthMismatch)
	}
	h := make(Hint, len(guess))
	var budget alphabet.LetterCounts
	budget.SetFromString(secret)
	for i := 0; i < len(guess); i++ {
		if guess[i] == secret[i] {
			h[i] = Correct
			budget.Take(alphabet.FromByte(guess[i]))
		}
	}
	for i := 0; i < len(guess); i++ {
		if h[i] == Correct {
			continue
		}
		ml := alphabet.FromByte(guess[i])
		if budget.Count(ml) > 0 {
			h[i] = Present
			budget.Take(ml)
		}
	}
	return h, nil
}

// AllCorrect returns the hint of a solved word of length n.
func AllCorrect(n int) Hint {
	h := make(Hint, n)
	for i := range h {
		h[i] = Correct
	}
	return h
}

// Parse reads a hint written as digits, e.g. "20010".
func Parse(s string) (Hint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrBadHint
	}
	h := make(Hint, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '2' {
			return nil, fmt.Errorf("%q: %w", s, ErrBadHint)
		}
		h[i] = Code(s[i] - '0')
	}
	return h, nil
}

// String writes the hint as digits.
func (h Hint) String() string {
	var sb strings.Builder
	for _, c := range h {
		sb.WriteByte('0' + byte(c))
	}
	return sb.String()
}

func (h Hint) IsSolved() bool {
	for _, c := range h {
		if c != Correct {
			return false
		}
	}
	return len(h) > 0
}

// Equal reports whether both hints have the same codes.
func (h Hint) Equal(o Hint) bool {
	if len(h) != len(o) {
		return false
	}
	for i := range h {
		if h[i] != o[i] {
			return false
		}
	}
	return true
}

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[1;30;42m"
	ansiYellow = "\033[1;30;43m"
	ansiGray   = "\033[1;37;100m"
)

// Colorize renders word with the hint as terminal background colors.
func (h Hint) Colorize(word string) string {
	var sb strings.Builder
	for i := 0; i < len(word); i++ {
		color := ansiGray
		if i < len(h) {
			switch h[i] {
			case Correct:
				color = ansiGreen
			case Present:
				color = ansiYellow
			}
		}
		sb.WriteString(color)
		sb.WriteByte(' ')
		sb.WriteByte(word[i] - 'a' + 'A')
		sb.WriteByte(' ')
	}
	sb.WriteString(ansiReset)
	return sb.String()
}
