package wordle

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/rng"
)

func TestKeeper(t *testing.T) {
	is := is.New(t)
	lex := mustLexicon(t, []string{"bat", "cat", "hat", "mat", "at"})
	k := NewKeeper(lex)
	_, err := k.Check("bat")
	is.True(errors.Is(err, ErrNoSecret))

	is.True(errors.Is(k.SetSecret("zat"), ErrNotInDictionary))
	is.True(errors.Is(k.SetSecret("Cat"), alphabet.ErrIllegalLetter))
	is.NoErr(k.SetSecret("cat"))
	is.Equal(k.Secret(), "cat")

	h, err := k.Check("bat")
	is.NoErr(err)
	is.Equal(h.String(), "022")
	h, err = k.Check("cat")
	is.NoErr(err)
	is.True(h.IsSolved())

	_, err = k.Check("at")
	is.True(errors.Is(err, alphabet.ErrLengthMismatch))
	_, err = k.Check("tab")
	is.True(errors.Is(err, ErrNotInDictionary))
	_, err = k.Check("b4t")
	is.True(errors.Is(err, alphabet.ErrIllegalLetter))
}

func TestKeeperChooseSecret(t *testing.T) {
	is := is.New(t)
	lex := mustLexicon(t, []string{"bat", "cat", "at"})
	k := NewKeeper(lex)
	gen := rng.New(2)
	for i := 0; i < 20; i++ {
		is.NoErr(k.ChooseSecret(gen, 3))
		is.Equal(len(k.Secret()), 3)
	}
	is.True(errors.Is(k.ChooseSecret(gen, 5), ErrNoWordsOfLength))
}
