package automatic

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
	"github.com/domino14/wordgraph/stats"
	"github.com/domino14/wordgraph/wordle"
)

const histogramBins = 10

type WordleReport struct {
	Lexicon    string `yaml:"lexicon"`
	Strategy   string `yaml:"strategy"`
	WordLength int    `yaml:"word_length"`
	Repeats    int    `yaml:"repeats"`
	MaxGuesses int    `yaml:"max_guesses"`
	Threads    int    `yaml:"threads"`
	Seed       int64  `yaml:"seed"`

	Solved      int     `yaml:"solved"`
	SuccessRate float64 `yaml:"success_rate"`
	MeanGuesses float64 `yaml:"mean_guesses"`
	// GuessesCI95 is the half width of the 95% confidence interval of
	// MeanGuesses.
	GuessesCI95 float64 `yaml:"guesses_ci95"`
	MaxGuessed  int     `yaml:"max_guessed"`

	MeanVisitedPerGuess    []float64 `yaml:"mean_visited_per_guess"`
	MeanCandidatesPerGuess []float64 `yaml:"mean_candidates_per_guess"`

	GuessHistogram string        `yaml:"-"`
	Elapsed        time.Duration `yaml:"elapsed"`

	Rounds []wordle.RoundResult `yaml:"rounds,omitempty"`
}

// RunWordle lets the solver play opts.Repeats rounds against random
// secrets. All secrets are drawn up front from a generator seeded with
// opts.Seed. Worker t uses a solver seeded with opts.Seed+t+1, so a run is
// reproducible with a single thread.
func RunWordle(ctx context.Context, lex *lexicon.Lexicon, opts Options) (*WordleReport, error) {
	logger := zerolog.Ctx(ctx)
	secrets := lexicon.NewSampler(lex, rng.New(opts.Seed)).RandomWordsOfLength(opts.Repeats, opts.WordLength)
	if secrets == nil {
		return nil, fmt.Errorf("length %d: %w", opts.WordLength, wordle.ErrNoWordsOfLength)
	}
	logger.Info().Int("repeats", opts.Repeats).Int("threads", opts.Threads).
		Int("word-length", opts.WordLength).Str("strategy", opts.Strategy.String()).
		Msg("starting-wordle")

	rounds := make([]wordle.RoundResult, len(secrets))
	ts := time.Now()
	err := runJobs(ctx, len(secrets), opts.Threads, func(t int) (func(int) error, error) {
		sim := wordle.NewSimulation(lex, opts.MaxGuesses, opts.Seed+int64(t), opts.Strategy)
		return func(job int) error {
			res, err := sim.PlayRound(secrets[job])
			if err != nil {
				return err
			}
			rounds[job] = res
			return nil
		}, nil
	})
	if err != nil {
		return nil, err
	}

	r := summarizeWordle(rounds)
	r.Lexicon = lex.Name()
	r.Strategy = opts.Strategy.String()
	r.WordLength = opts.WordLength
	r.Repeats = opts.Repeats
	r.MaxGuesses = opts.MaxGuesses
	r.Threads = opts.Threads
	r.Seed = opts.Seed
	r.Elapsed = time.Since(ts)
	logger.Info().Dur("elapsed", r.Elapsed).Float64("mean-guesses", r.MeanGuesses).
		Int("solved", r.Solved).Msg("finished-wordle")
	return r, nil
}

func summarizeWordle(rounds []wordle.RoundResult) *WordleReport {
	r := &WordleReport{Rounds: rounds}
	var guesses stats.Statistic
	for _, rd := range rounds {
		guesses.Push(float64(rd.NumGuesses()))
	}
	r.Solved = lo.CountBy(rounds, func(rd wordle.RoundResult) bool { return rd.Found })
	if len(rounds) > 0 {
		r.SuccessRate = float64(r.Solved) / float64(len(rounds))
	}
	r.MeanGuesses = guesses.Mean()
	r.GuessesCI95 = guesses.ConfidenceInterval(95)
	r.MaxGuessed = int(guesses.Max())

	r.MeanVisitedPerGuess = stats.ComponentWiseMean(lo.Map(rounds, func(rd wordle.RoundResult, _ int) []float64 {
		return stats.Floats(rd.VisitedNodes)
	}))
	r.MeanCandidatesPerGuess = stats.ComponentWiseMean(lo.Map(rounds, func(rd wordle.RoundResult, _ int) []float64 {
		return stats.Floats(rd.Candidates)
	}))
	hist, err := stats.Histogram(lo.Map(rounds, func(rd wordle.RoundResult, _ int) float64 {
		return float64(rd.NumGuesses())
	}), histogramBins, 40)
	if err == nil {
		r.GuessHistogram = hist
	}
	return r
}
