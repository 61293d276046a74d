package automatic

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordgraph/config"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
	"github.com/domino14/wordgraph/wordle"
)

func testLexicon(t testing.TB) *lexicon.Lexicon {
	gen := rng.New(17)
	seen := map[string]bool{}
	var words []string
	for len(words) < 400 {
		w := make([]byte, 5)
		for i := range w {
			w[i] = "abcdeilnorst"[gen.Intn(12)]
		}
		if !seen[string(w)] {
			seen[string(w)] = true
			words = append(words, string(w))
		}
	}
	words = append(words, "at", "tab", "bat")
	lex, err := lexicon.New(words, lexicon.WithName("test"))
	if err != nil {
		t.Fatal(err)
	}
	return lex
}

func TestOptionsFromConfig(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	is.NoErr(cfg.Load([]string{"--threads", "3", "--seed", "9", "--wordle-strategy", "random_candidate"}))
	opts, err := OptionsFromConfig(cfg)
	is.NoErr(err)
	is.Equal(opts.Threads, 3)
	is.Equal(opts.Seed, int64(9))
	is.Equal(opts.Strategy, wordle.RandomCandidate)
	is.Equal(opts.WordLength, 5)
}

func TestRunWordChallenge(t *testing.T) {
	is := is.New(t)
	lex := testLexicon(t)
	r, err := RunWordChallenge(context.Background(), lex, Options{WordLength: 5, Repeats: 20, Threads: 3, Seed: 1})
	is.NoErr(err)
	is.Equal(len(r.Rounds), 20)
	for _, rd := range r.Rounds {
		// every word finds at least itself
		is.True(rd.WordsFound >= 1)
		is.True(rd.VisitedNodes > 0)
	}
	is.True(r.MeanWordsFound >= 1)

	_, err = RunWordChallenge(context.Background(), lex, Options{WordLength: 7, Repeats: 2, Threads: 1})
	is.True(errors.Is(err, wordle.ErrNoWordsOfLength))
}

func TestRunWordle(t *testing.T) {
	is := is.New(t)
	lex := testLexicon(t)
	for _, strategy := range []wordle.Strategy{wordle.RandomCandidate, wordle.LetterFrequency} {
		opts := Options{WordLength: 5, Repeats: 30, MaxGuesses: 400, Threads: 4, Seed: 5, Strategy: strategy}
		r, err := RunWordle(context.Background(), lex, opts)
		is.NoErr(err)
		is.Equal(r.Solved, 30)
		is.Equal(r.SuccessRate, 1.0)
		is.True(r.MeanGuesses >= 1)
		is.Equal(r.MeanCandidatesPerGuess[0], 400.0)
		is.Equal(r.MeanVisitedPerGuess[0], 0.0)
		is.Equal(r.Strategy, strategy.String())
	}
}

func TestRunWordleSingleThreadReproducible(t *testing.T) {
	is := is.New(t)
	lex := testLexicon(t)
	opts := Options{WordLength: 5, Repeats: 10, MaxGuesses: 10, Threads: 1, Seed: 3, Strategy: wordle.RandomCandidate}
	a, err := RunWordle(context.Background(), lex, opts)
	is.NoErr(err)
	b, err := RunWordle(context.Background(), lex, opts)
	is.NoErr(err)
	for i := range a.Rounds {
		is.Equal(a.Rounds[i].Guesses, b.Rounds[i].Guesses)
	}
}

func TestRunCanceled(t *testing.T) {
	is := is.New(t)
	lex := testLexicon(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunWordle(ctx, lex, Options{WordLength: 5, Repeats: 1000, MaxGuesses: 10, Threads: 2})
	is.True(errors.Is(err, context.Canceled))
}

func TestOneRunAtATime(t *testing.T) {
	is := is.New(t)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- runJobs(context.Background(), 1, 2, func(int) (func(int) error, error) {
			return func(int) error {
				close(started)
				<-release
				return nil
			}, nil
		})
	}()
	<-started
	noop := func(int) (func(int) error, error) { return func(int) error { return nil }, nil }
	is.True(errors.Is(runJobs(context.Background(), 1, 1, noop), ErrAlreadyRunning))
	close(release)
	is.NoErr(<-done)
	is.NoErr(runJobs(context.Background(), 3, 2, noop))
}

func TestWriteReport(t *testing.T) {
	is := is.New(t)
	r := summarizeWordle([]wordle.RoundResult{
		{Secret: "abc", Found: true, Guesses: []string{"bcd", "abc"}, VisitedNodes: []uint64{0, 10}, Candidates: []int{1200, 3}},
		{Secret: "xyz", Found: false, Guesses: []string{"bcd", "xya", "xyb"}, VisitedNodes: []uint64{0, 20, 4}, Candidates: []int{1200, 5, 1}},
	})
	r.Repeats = 2
	is.Equal(r.Solved, 1)
	is.Equal(r.MeanGuesses, 2.5)
	is.Equal(r.MeanVisitedPerGuess, []float64{0, 15, 4})

	var buf bytes.Buffer
	is.NoErr(Write(&buf, r, FormatText))
	is.True(strings.Contains(buf.String(), "1,200.0")) // thousands separator
	is.True(strings.Contains(buf.String(), "solved:                 1/2"))

	buf.Reset()
	is.NoErr(Write(&buf, r, FormatYAML))
	var back map[string]any
	is.NoErr(yaml.Unmarshal(buf.Bytes(), &back))
	is.Equal(back["solved"], 1)
	is.Equal(back["mean_guesses"], 2.5)

	is.True(Write(&buf, r, "xml") != nil)
}
