package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/config"
	"github.com/domino14/wordgraph/hint"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"auto wordle -threads 4",
			&shellcmd{"auto", []string{"wordle"}, CmdOptions{"threads": {"4"}}},
			nil},
		{"words retains",
			&shellcmd{"words", []string{"retains"}, CmdOptions{}},
			nil},
		{`load "/path/with space/words.txt" -x 1 -x 2`,
			&shellcmd{"load", []string{"/path/with space/words.txt"}, CmdOptions{"x": {"1", "2"}}},
			nil},
		{"beststart -pool",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

var testWords = []string{"bat", "cat", "hat", "mat", "tab", "act", "at", "a"}

func newTestController(t *testing.T) (*ShellController, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigWordLength, 3)
	cfg.Set(config.ConfigMaxGuesses, 10)
	lex, err := lexicon.New(testWords, lexicon.WithName("test"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	sc := &ShellController{cfg: cfg, ctx: context.Background(), gen: rng.New(1), out: &buf}
	sc.SetLexicon(lex)
	return sc, &buf
}

func run(t *testing.T, sc *ShellController, line string) string {
	t.Helper()
	resp, err := sc.dispatch(line)
	if err != nil {
		return "Error: " + err.Error()
	}
	if resp == nil {
		return ""
	}
	return resp.message
}

func TestWords(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	out := run(t, sc, "words tabc")
	is.Equal(out, " 1: a\n 2: at\n 3: act bat cat tab\n6 words")
	is.True(strings.HasPrefix(run(t, sc, "words T4"), "Error: "))
}

func TestCheck(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	is.Equal(run(t, sc, "check bat zzz"), "bat: valid\nzzz: not in the dictionary")
}

func TestChallengeMode(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	out := run(t, sc, "challenge tab")
	is.True(strings.Contains(out, "4 words can be built"))
	is.Equal(sc.curMode, ChallengeMode)

	is.Equal(run(t, sc, "bat"), "bat is valid (1/4)")
	is.Equal(run(t, sc, "bat"), "bat was already found")
	is.True(strings.Contains(run(t, sc, "cat"), "cannot be built"))
	is.True(strings.Contains(run(t, sc, "tba"), "not in the dictionary"))
	is.True(strings.Contains(run(t, sc, "b@t"), "lowercase"))

	out = run(t, sc, "solve")
	is.True(strings.Contains(out, "you found 1 of 4 words"))
	is.True(strings.Contains(out, "3: tab"))
	is.Equal(sc.curMode, StandardMode)
}

func TestGuesserMode(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	run(t, sc, "guesser")
	is.Equal(sc.curMode, GuesserMode)
	secret := sc.keeper.Secret()
	is.Equal(len(secret), 3)

	is.Equal(run(t, sc, "at"), "Error: the guess must have 3 letters")
	is.True(strings.Contains(run(t, sc, "zzz"), "not in the dictionary"))
	is.Equal(sc.numGuesses, 0)

	out := run(t, sc, secret)
	is.True(strings.Contains(out, "found secret word after 1 guesses"))
	is.Equal(sc.curMode, StandardMode)
}

func TestKeeperMode(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	secret := "mat"
	out := run(t, sc, "keeper")
	is.True(strings.Contains(out, "guess 1:"))
	is.Equal(sc.curMode, KeeperMode)

	is.True(strings.Contains(run(t, sc, "2201"), "is not a hint"))
	is.True(strings.Contains(run(t, sc, "abc"), "is not a hint"))

	for i := 0; i < 10 && sc.curMode == KeeperMode; i++ {
		h, err := hint.Compute(secret, sc.lastGuess)
		is.NoErr(err)
		out = run(t, sc, h.String())
	}
	is.True(strings.Contains(out, "found secret word"))
	is.Equal(sc.curMode, StandardMode)
}

func TestKeeperRejectsContradictoryHints(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	run(t, sc, "keeper")
	out := run(t, sc, "000")
	is.True(strings.Contains(out, "no word in the dictionary matches"))
	is.Equal(sc.numGuesses, 2)

	// every three-letter test word has an a, which was just ruled out
	prev := sc.lastGuess
	h := []byte("000")
	h[strings.IndexByte(prev, 'a')] = '2'
	out = run(t, sc, string(h))
	is.True(strings.Contains(out, "does not fit your earlier hints"))
	is.Equal(sc.curMode, KeeperMode)
	is.Equal(sc.lastGuess, prev)
	is.Equal(sc.numGuesses, 2)
}

func TestScramble(t *testing.T) {
	is := is.New(t)
	gen := rng.New(3)
	for _, w := range []string{"a", "tab", "bookkeeper"} {
		s := scramble(gen, w)
		is.Equal(alphabet.CountsFromString(s), alphabet.CountsFromString(w))
	}
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	is.Equal(run(t, sc, "set word-length 2"), "word-length set to 2")
	is.Equal(sc.wordLength(), 2)
	is.True(strings.HasPrefix(run(t, sc, "set word-length 0"), "Error: "))
	is.Equal(sc.wordLength(), 2)
	is.True(strings.HasPrefix(run(t, sc, "set dictionary foo"), "Error: "))
	is.Equal(run(t, sc, "set wordle-strategy random_candidate"), "wordle-strategy set to random_candidate")
	is.True(sc.solver == nil)
}

func TestStatsAndHelp(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	out := run(t, sc, "stats")
	is.True(strings.Contains(out, "words:        8"))
	is.True(strings.Contains(out, "degree"))
	is.True(strings.Contains(out, "repeat"))
	is.Equal(mostRepeated(alphabet.CountsFromString("bookkeeper")), "e:3")
	is.Equal(mostRepeated(alphabet.CountsFromString("tab")), "a:1")
	is.True(strings.Contains(run(t, sc, "help"), "beststart"))
	is.True(strings.Contains(run(t, sc, "help keeper"), "20010"))
	is.True(strings.HasPrefix(run(t, sc, "help nothing"), "Error: "))
	is.True(strings.HasPrefix(run(t, sc, "frobnicate"), "Error: unknown command"))
}

func TestAuto(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	out := run(t, sc, "auto wordle -repeats 5 -format yaml")
	is.True(strings.Contains(out, "solved: 5"))
	out = run(t, sc, "auto challenge -repeats 3")
	is.True(strings.Contains(out, "mean words found"))
}

func TestNoLexicon(t *testing.T) {
	is := is.New(t)
	sc := &ShellController{cfg: config.DefaultConfig(), gen: rng.New(1)}
	is.Equal(run(t, sc, "words abc"), "Error: "+errNoLexicon.Error())
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	c := NewShellCompleter(sc)
	m, n := c.Do([]rune("gue"), 3)
	is.Equal(n, 3)
	is.Equal(m, [][]rune{[]rune("sser")})
	m, _ = c.Do([]rune("auto wordle -strategy l"), 23)
	is.Equal(m, [][]rune{[]rune("etter_frequency")})
}
