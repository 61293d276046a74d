package wordle

import (
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
)

// RoundResult is the record of one automatic round. VisitedNodes and
// Candidates hold one entry per guess.
type RoundResult struct {
	Secret       string   `yaml:"secret"`
	Found        bool     `yaml:"found"`
	Guesses      []string `yaml:"guesses"`
	VisitedNodes []uint64 `yaml:"visited_nodes"`
	Candidates   []int    `yaml:"candidates"`
}

// NumGuesses returns how many guesses were made.
func (r RoundResult) NumGuesses() int {
	return len(r.Guesses)
}

// Simulation plays rounds of a Solver against a Keeper.
type Simulation struct {
	keeper     *Keeper
	solver     *Solver
	maxGuesses int
}

// NewSimulation creates a simulation whose solver uses a generator seeded
// with seed+1.
func NewSimulation(lex *lexicon.Lexicon, maxGuesses int, seed int64, strategy Strategy) *Simulation {
	return &Simulation{
		keeper:     NewKeeper(lex),
		solver:     NewSolver(lex, rng.New(seed+1), strategy),
		maxGuesses: maxGuesses,
	}
}

func (sim *Simulation) Solver() *Solver {
	return sim.solver
}

// PlayRound lets the solver guess secret with at most maxGuesses guesses.
func (sim *Simulation) PlayRound(secret string) (RoundResult, error) {
	res := RoundResult{Secret: secret}
	if err := sim.keeper.SetSecret(secret); err != nil {
		return res, err
	}
	if err := sim.solver.NewWord(len(secret)); err != nil {
		return res, err
	}
	for i := 0; i < sim.maxGuesses; i++ {
		guess, err := sim.solver.MakeGuess()
		if err != nil {
			return res, err
		}
		res.Guesses = append(res.Guesses, guess)
		res.VisitedNodes = append(res.VisitedNodes, sim.solver.VisitedNodes())
		res.Candidates = append(res.Candidates, sim.solver.CandidateCount())
		h, err := sim.keeper.Check(guess)
		if err != nil {
			return res, err
		}
		if h.IsSolved() {
			res.Found = true
			break
		}
		if err := sim.solver.TakeHint(h, guess); err != nil {
			return res, err
		}
	}
	return res, nil
}
