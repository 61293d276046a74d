package alphabet

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyWord      = errors.New("word is empty")
	ErrWordTooLong    = fmt.Errorf("word is longer than %d letters", MaxWordLength)
	ErrIllegalLetter  = errors.New("word is not full lowercase in [a-z]")
	ErrLengthMismatch = errors.New("words have different lengths")
)

// ValidateWord checks that word only consists of letters of the alphabet
// and respects the maximum length. The returned error wraps one of the
// sentinel errors above and names the offending word.
func ValidateWord(word string) error {
	if len(word) == 0 {
		return ErrEmptyWord
	}
	if len(word) > MaxWordLength {
		return fmt.Errorf("%s: %w", word, ErrWordTooLong)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return fmt.Errorf("%s: %w", word, ErrIllegalLetter)
		}
	}
	return nil
}
