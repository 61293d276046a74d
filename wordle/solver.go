// Package wordle implements an automatic wordle player. A Solver keeps the
// constraints learned from the hints of a round, enumerates the dictionary
// words still consistent with them and picks the next guess.
package wordle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/domino14/wordgraph/hint"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
)

// Strategy selects how the next guess is picked among the candidates.
type Strategy int

const (
	// RandomCandidate guesses a uniformly random candidate.
	RandomCandidate Strategy = iota
	// LetterFrequency guesses the candidate covering the most frequent
	// letters that are still uninformative.
	LetterFrequency
)

// Below this many candidates LetterFrequency just picks one at random.
const smallCandidateSet = 10

var (
	ErrNoRound         = errors.New("no round started")
	ErrNoWordsOfLength = errors.New("no words of that length")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

func (s Strategy) String() string {
	switch s {
	case RandomCandidate:
		return "random_candidate"
	case LetterFrequency:
		return "letter_frequency"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy parses the String form of a strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "random_candidate", "random":
		return RandomCandidate, nil
	case "letter_frequency", "frequency":
		return LetterFrequency, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
}

// State is the phase of the current round.
type State int

const (
	// StateFresh means no round was started yet.
	StateFresh State = iota
	// StateAwaitingGuess means the next guess has not been computed from
	// the latest feedback yet.
	StateAwaitingGuess
	// StateHasCandidates means the last search found consistent words.
	StateHasCandidates
	// StateExhausted means no unguessed dictionary word is consistent
	// with the feedback. Guesses fall back to random words of the round
	// length until the next round.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateAwaitingGuess:
		return "awaiting-guess"
	case StateHasCandidates:
		return "has-candidates"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Solver plays one round at a time. It owns its GuessState and scratch
// space and must not be shared between goroutines; the lexicon can be.
type Solver struct {
	lex      *lexicon.Lexicon
	gen      *rng.Generator
	strategy Strategy
	search   searcher

	// startWords[n] is the ordinal of the best first guess of length n,
	// or -1 if there are no words of that length.
	startWords []int

	state      State
	gs         GuessState
	hints      int
	guessed    map[int]struct{}
	candidates []int
	candCount  int
	visited    uint64
}

// NewSolver creates a solver over lex drawing random numbers from gen.
func NewSolver(lex *lexicon.Lexicon, gen *rng.Generator, strategy Strategy) *Solver {
	s := &Solver{
		lex:      lex,
		gen:      gen,
		strategy: strategy,
		search:   newSearcher(lex),
		guessed:  make(map[int]struct{}),
	}
	s.startWords = make([]int, lex.MaxLength()+1)
	for n := range s.startWords {
		s.startWords[n] = -1
		if ws := lex.WordsOfLength(n); len(ws) > 0 {
			var gs GuessState
			gs.reset(n)
			s.startWords[n] = bestScoring(lex, &gs, ws)
		}
	}
	return s
}

func (s *Solver) Strategy() Strategy {
	return s.strategy
}

// NewWord starts a round for a secret word of length n.
func (s *Solver) NewWord(n int) error {
	if s.lex.CountWordsOfLength(n) == 0 {
		return fmt.Errorf("length %d: %w", n, ErrNoWordsOfLength)
	}
	s.gs.reset(n)
	s.hints = 0
	clear(s.guessed)
	s.candidates = s.candidates[:0]
	s.candCount = 0
	s.visited = 0
	s.state = StateAwaitingGuess
	return nil
}

// TakeHint records the feedback h for guess. A hint that contradicts the
// earlier ones is rejected with ErrContradictoryHint and leaves the round
// unchanged.
func (s *Solver) TakeHint(h hint.Hint, guess string) error {
	if s.state == StateFresh {
		return ErrNoRound
	}
	next := s.gs.clone()
	if err := next.apply(h, guess); err != nil {
		return err
	}
	s.gs = next
	s.hints++
	if o, ok := s.lex.Lookup(guess); ok {
		s.guessed[o] = struct{}{}
	}
	if s.state != StateExhausted {
		s.state = StateAwaitingGuess
	}
	return nil
}

// SearchCandidates enumerates the unguessed words consistent with all
// feedback of the round. The result is owned by the solver and valid
// until the next search.
func (s *Solver) SearchCandidates() ([]int, error) {
	if s.state == StateFresh {
		return nil, ErrNoRound
	}
	s.candidates, s.visited = s.search.search(&s.gs, s.candidates[:0])
	s.candidates = slices.DeleteFunc(s.candidates, func(o int) bool {
		_, ok := s.guessed[o]
		return ok
	})
	s.candCount = len(s.candidates)
	if s.candCount == 0 {
		s.state = StateExhausted
	} else {
		s.state = StateHasCandidates
	}
	return s.candidates, nil
}

// MakeGuess picks the next guess. If no candidate is left it still
// returns a random word of the round length; State reports this case.
func (s *Solver) MakeGuess() (string, error) {
	if s.state == StateFresh {
		return "", ErrNoRound
	}
	n := s.gs.length
	var o int
	if s.hints == 0 {
		s.visited = 0
		s.candidates = s.candidates[:0]
		s.candCount = s.lex.CountWordsOfLength(n)
		if s.strategy == LetterFrequency {
			o = s.startWords[n]
		} else {
			o = rng.Element(s.gen, s.lex.WordsOfLength(n))
		}
	} else {
		cands, err := s.SearchCandidates()
		if err != nil {
			return "", err
		}
		switch {
		case len(cands) == 0:
			o = rng.Element(s.gen, s.lex.WordsOfLength(n))
		case s.strategy == RandomCandidate, len(cands) < smallCandidateSet:
			o = rng.Element(s.gen, cands)
		default:
			o = bestScoring(s.lex, &s.gs, cands)
		}
	}
	s.guessed[o] = struct{}{}
	return s.lex.Word(o), nil
}

// State returns the phase of the current round.
func (s *Solver) State() State {
	return s.state
}

// GuessState returns the constraints learned so far. It must not be
// retained across rounds.
func (s *Solver) GuessState() *GuessState {
	return &s.gs
}

// VisitedNodes returns the number of graph nodes entered by the search
// for the last guess. The first guess of a round needs no search.
func (s *Solver) VisitedNodes() uint64 {
	return s.visited
}

// CandidateCount returns the size of the candidate set the last guess
// was picked from. Before the first hint every word of the round length
// is a candidate.
func (s *Solver) CandidateCount() int {
	return s.candCount
}

// Candidates returns the candidates of the last search as words.
func (s *Solver) Candidates() []string {
	return s.lex.WordsFor(s.candidates)
}
