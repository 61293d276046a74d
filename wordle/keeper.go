package wordle

import (
	"errors"
	"fmt"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/hint"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
)

var (
	ErrNotInDictionary = errors.New("word is not in the dictionary")
	ErrNoSecret        = errors.New("no secret word chosen")
)

// Keeper holds the secret word of a round and answers guesses.
type Keeper struct {
	lex    *lexicon.Lexicon
	secret string
}

func NewKeeper(lex *lexicon.Lexicon) *Keeper {
	return &Keeper{lex: lex}
}

// SetSecret makes word the secret. It must be in the dictionary.
func (k *Keeper) SetSecret(word string) error {
	if err := alphabet.ValidateWord(word); err != nil {
		return err
	}
	if _, ok := k.lex.Lookup(word); !ok {
		return fmt.Errorf("%s: %w", word, ErrNotInDictionary)
	}
	k.secret = word
	return nil
}

// ChooseSecret picks a random secret of length n.
func (k *Keeper) ChooseSecret(gen *rng.Generator, n int) error {
	ws := k.lex.WordsOfLength(n)
	if len(ws) == 0 {
		return fmt.Errorf("length %d: %w", n, ErrNoWordsOfLength)
	}
	k.secret = k.lex.Word(rng.Element(gen, ws))
	return nil
}

func (k *Keeper) Secret() string {
	return k.secret
}

// Check validates a guess and returns its hint. Guesses must have the
// length of the secret and be dictionary words.
func (k *Keeper) Check(guess string) (hint.Hint, error) {
	if k.secret == "" {
		return nil, ErrNoSecret
	}
	if err := alphabet.ValidateWord(guess); err != nil {
		return nil, err
	}
	if len(guess) != len(k.secret) {
		return nil, fmt.Errorf("%s has %d letters, expected %d: %w",
			guess, len(guess), len(k.secret), alphabet.ErrLengthMismatch)
	}
	if _, ok := k.lex.Lookup(guess); !ok {
		return nil, fmt.Errorf("%s: %w", guess, ErrNotInDictionary)
	}
	return hint.Compute(k.secret, guess)
}
