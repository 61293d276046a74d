package wordle

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/domino14/wordgraph/hint"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
)

// StartWord is a first guess with the mean number of candidates left
// after its hint.
type StartWord struct {
	Word           string  `yaml:"word"`
	MeanCandidates float64 `yaml:"mean_candidates"`
}

// TopScoring returns up to k words of length n ranked by letter frequency
// score over all words of that length.
func TopScoring(lex *lexicon.Lexicon, n, k int) []int {
	ws := lex.WordsOfLength(n)
	var gs GuessState
	gs.reset(n)
	w := letterWeights(lex, &gs, ws)
	scores := make(map[int]int, len(ws))
	for _, o := range ws {
		for c, cnt := range lex.LetterCounts(o) {
			if cnt > 0 {
				scores[o] += w[c]
			}
		}
	}
	ranked := slices.Clone(ws)
	slices.SortStableFunc(ranked, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return ranked[:min(k, len(ranked))]
}

// BestStartWords plays every start word against samples random secrets of
// the same length and ranks the start words by the mean size of the
// candidate set left after the first hint, smallest first.
func BestStartWords(lex *lexicon.Lexicon, starts []int, samples int, gen *rng.Generator) ([]StartWord, error) {
	if len(starts) == 0 || samples <= 0 {
		return nil, nil
	}
	n := len(lex.Word(starts[0]))
	secrets := lex.WordsOfLength(n)
	solver := NewSolver(lex, gen, RandomCandidate)
	out := make([]StartWord, 0, len(starts))
	counts := make([]float64, samples)
	for _, s := range starts {
		start := lex.Word(s)
		if len(start) != n {
			return nil, fmt.Errorf("start word %s: length %d expected", start, n)
		}
		for i := range counts {
			secret := lex.Word(rng.Element(gen, secrets))
			h, err := hint.Compute(secret, start)
			if err != nil {
				return nil, err
			}
			if err := solver.NewWord(n); err != nil {
				return nil, err
			}
			if err := solver.TakeHint(h, start); err != nil {
				return nil, err
			}
			cands, err := solver.SearchCandidates()
			if err != nil {
				return nil, err
			}
			counts[i] = float64(len(cands))
		}
		out = append(out, StartWord{Word: start, MeanCandidates: stat.Mean(counts, nil)})
	}
	slices.SortStableFunc(out, func(a, b StartWord) int {
		return cmp.Compare(a.MeanCandidates, b.MeanCandidates)
	})
	return out, nil
}
