// Package automatic runs unattended word challenge and wordle rounds and
// summarizes them.
package automatic

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordgraph/config"
	"github.com/domino14/wordgraph/wordle"
)

var (
	RoundCounter *expvar.Int
	IsRunning    *expvar.Int
)

var ErrAlreadyRunning = errors.New("an automatic run is already in progress, please wait till complete")

// runMu is held for the whole of a run.
var runMu sync.Mutex

func init() {
	RoundCounter = expvar.NewInt("roundCounter")
	IsRunning = expvar.NewInt("isRunning")
}

// Options control an automatic run.
type Options struct {
	WordLength int
	Repeats    int
	MaxGuesses int
	Seed       int64
	Threads    int
	Strategy   wordle.Strategy
}

// OptionsFromConfig reads the run options from cfg.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	strategy, err := wordle.ParseStrategy(cfg.GetString(config.ConfigWordleStrategy))
	if err != nil {
		return Options{}, err
	}
	return Options{
		WordLength: cfg.GetInt(config.ConfigWordLength),
		Repeats:    cfg.GetInt(config.ConfigRepeats),
		MaxGuesses: cfg.GetInt(config.ConfigMaxGuesses),
		Seed:       cfg.GetInt64(config.ConfigSeed),
		Threads:    max(1, cfg.GetInt(config.ConfigThreads)),
		Strategy:   strategy,
	}, nil
}

// runJobs hands the job indexes 0..n-1 to threads workers. newWorker is
// called once per worker and returns the function processing one job.
// Workers stop early when ctx is canceled or a job fails.
func runJobs(ctx context.Context, n, threads int, newWorker func(t int) (func(job int) error, error)) error {
	if !runMu.TryLock() {
		return ErrAlreadyRunning
	}
	defer runMu.Unlock()
	logger := zerolog.Ctx(ctx)
	jobs := make(chan int, 100)
	g, gctx := errgroup.WithContext(ctx)

	for t := 0; t < threads; t++ {
		t := t
		g.Go(func() error {
			IsRunning.Add(1)
			defer IsRunning.Add(-1)
			work, err := newWorker(t)
			if err != nil {
				return err
			}
			logger.Debug().Msgf("Thread %v starting", t)
			for job := range jobs {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if err := work(job); err != nil {
					return fmt.Errorf("job %d: %w", job, err)
				}
				RoundCounter.Add(1)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				logger.Info().Msg("Got stop signal, exiting soon...")
				return gctx.Err()
			}
		}
		logger.Debug().Msg("Finished queueing all jobs.")
		return nil
	})

	err := g.Wait()
	logger.Debug().Msgf("errgroup returned err %v", err)
	return err
}
