package wordle

import (
	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/lexicon"
)

// uninformative reports whether nothing is known yet about the number of
// occurrences of ml.
func (gs *GuessState) uninformative(ml int) bool {
	return gs.lower[ml] == 0 && gs.upper[ml] > 0
}

// letterWeights counts, for every uninformative letter, how many of the
// words contain it at least once. Other letters weigh zero.
func letterWeights(lex *lexicon.Lexicon, gs *GuessState, words []int) alphabet.LetterCounts {
	var w alphabet.LetterCounts
	for _, o := range words {
		lc := lex.LetterCounts(o)
		for c, cnt := range lc {
			if cnt > 0 && gs.uninformative(c) {
				w[c]++
			}
		}
	}
	return w
}

// LetterFrequencies returns the share of every uninformative letter among
// the summed weights of all uninformative letters over words.
func LetterFrequencies(lex *lexicon.Lexicon, gs *GuessState, words []int) [alphabet.NumLetters]float64 {
	var freq [alphabet.NumLetters]float64
	w := letterWeights(lex, gs, words)
	sum := w.Sum()
	if sum == 0 {
		return freq
	}
	for c, cnt := range w {
		freq[c] = float64(cnt) / float64(sum)
	}
	return freq
}

// bestScoring returns the word among words whose distinct letters have the
// highest summed frequency. The frequencies share one denominator, so the
// integer weights are compared instead. Ties go to the lowest ordinal.
func bestScoring(lex *lexicon.Lexicon, gs *GuessState, words []int) int {
	w := letterWeights(lex, gs, words)
	best, bestScore := -1, -1
	for _, o := range words {
		score := 0
		for c, cnt := range lex.LetterCounts(o) {
			if cnt > 0 {
				score += w[c]
			}
		}
		if score > bestScore || (score == bestScore && o < best) {
			best, bestScore = o, score
		}
	}
	return best
}
