package hint

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordgraph/alphabet"
)

func TestComputeRepeatedLetters(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		secret, guess, want string
	}{
		{"eabcd", "eexyz", "20000"},
		{"eeabc", "exyee", "20010"},
		{"cat", "bat", "022"},
		{"abbey", "babes", "11220"},
		{"crane", "nacre", "11112"},
		{"speed", "eerie", "11000"},
		{"erase", "speed", "10110"},
		{"llama", "hello", "00110"},
	}
	for _, tc := range cases {
		h, err := Compute(tc.secret, tc.guess)
		is.NoErr(err)
		is.Equal(h.String(), tc.want) // secret, guess
	}
}

func TestComputeIdentical(t *testing.T) {
	is := is.New(t)
	for _, w := range []string{"a", "apple", "mississippi", "zzzzz"} {
		h, err := Compute(w, w)
		is.NoErr(err)
		is.True(h.IsSolved())
		is.True(h.Equal(AllCorrect(len(w))))
	}
}

func TestComputeLengthMismatch(t *testing.T) {
	is := is.New(t)
	_, err := Compute("apple", "app")
	is.True(errors.Is(err, alphabet.ErrLengthMismatch))
}

func TestParse(t *testing.T) {
	is := is.New(t)
	h, err := Parse(" 20010\n")
	is.NoErr(err)
	is.Equal(h, Hint{Correct, Absent, Absent, Present, Absent})
	is.Equal(h.String(), "20010")
	is.True(!h.IsSolved())

	for _, bad := range []string{"", "2301", "ab", "2 0"} {
		_, err := Parse(bad)
		is.True(errors.Is(err, ErrBadHint))
	}
}

func TestColorize(t *testing.T) {
	is := is.New(t)
	h, _ := Parse("210")
	out := h.Colorize("cab")
	is.Equal(out, ansiGreen+" C "+ansiYellow+" A "+ansiGray+" B "+ansiReset)
}

func BenchmarkCompute(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Compute("eeabc", "exyee")
	}
}
