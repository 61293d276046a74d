package automatic

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/challenge"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
	"github.com/domino14/wordgraph/stats"
	"github.com/domino14/wordgraph/wordle"
)

// ChallengeRound is one word challenge search: every word buildable from
// the letters of Word.
type ChallengeRound struct {
	Word         string        `yaml:"word"`
	WordsFound   int           `yaml:"words_found"`
	VisitedNodes uint64        `yaml:"visited_nodes"`
	Elapsed      time.Duration `yaml:"elapsed"`
}

type ChallengeReport struct {
	Lexicon    string `yaml:"lexicon"`
	WordLength int    `yaml:"word_length"`
	Repeats    int    `yaml:"repeats"`
	Threads    int    `yaml:"threads"`
	Seed       int64  `yaml:"seed"`

	MeanMillis       float64       `yaml:"mean_millis"`
	StdevMillis      float64       `yaml:"stdev_millis"`
	MeanWordsFound   float64       `yaml:"mean_words_found"`
	MeanVisitedNodes float64       `yaml:"mean_visited_nodes"`
	Elapsed          time.Duration `yaml:"elapsed"`

	Rounds []ChallengeRound `yaml:"rounds,omitempty"`
}

// RunWordChallenge searches the possible words for the letters of
// opts.Repeats random words of opts.WordLength.
func RunWordChallenge(ctx context.Context, lex *lexicon.Lexicon, opts Options) (*ChallengeReport, error) {
	logger := zerolog.Ctx(ctx)
	words := lexicon.NewSampler(lex, rng.New(opts.Seed)).RandomWordsOfLength(opts.Repeats, opts.WordLength)
	if words == nil {
		return nil, fmt.Errorf("length %d: %w", opts.WordLength, wordle.ErrNoWordsOfLength)
	}
	logger.Info().Int("repeats", opts.Repeats).Int("threads", opts.Threads).
		Int("word-length", opts.WordLength).Msg("starting-word-challenge")

	rounds := make([]ChallengeRound, len(words))
	ts := time.Now()
	err := runJobs(ctx, len(words), opts.Threads, func(int) (func(int) error, error) {
		e := challenge.NewEngine(lex)
		var available alphabet.LetterCounts
		return func(job int) error {
			available.SetFromString(words[job])
			e.ResetCounter()
			t0 := time.Now()
			found := e.PossibleWords(&available)
			rounds[job] = ChallengeRound{
				Word:         words[job],
				WordsFound:   len(found),
				VisitedNodes: e.VisitedNodes(),
				Elapsed:      time.Since(t0),
			}
			return nil
		}, nil
	})
	if err != nil {
		return nil, err
	}

	r := &ChallengeReport{
		Lexicon:    lex.Name(),
		WordLength: opts.WordLength,
		Repeats:    opts.Repeats,
		Threads:    opts.Threads,
		Seed:       opts.Seed,
		Elapsed:    time.Since(ts),
		Rounds:     rounds,
	}
	var millis, found, visited stats.Statistic
	for _, rd := range rounds {
		millis.Push(float64(rd.Elapsed.Nanoseconds()) / 1e6)
		found.Push(float64(rd.WordsFound))
		visited.Push(float64(rd.VisitedNodes))
	}
	r.MeanMillis = millis.Mean()
	r.StdevMillis = millis.Stdev()
	r.MeanWordsFound = found.Mean()
	r.MeanVisitedNodes = visited.Mean()
	logger.Info().Dur("elapsed", r.Elapsed).Float64("mean-words", r.MeanWordsFound).Msg("finished-word-challenge")
	return r, nil
}
