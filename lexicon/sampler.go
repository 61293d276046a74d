package lexicon

import (
	"github.com/domino14/wordgraph/rng"
)

// Sampler draws random words from a lexicon.
type Sampler struct {
	lex *Lexicon
	gen *rng.Generator
}

func NewSampler(lex *Lexicon, gen *rng.Generator) *Sampler {
	return &Sampler{lex: lex, gen: gen}
}

// RandomWord returns the ordinal of a uniformly chosen word.
func (s *Sampler) RandomWord() int {
	return s.gen.Intn(s.lex.NumWords())
}

// RandomWordOfLength returns the ordinal of a uniformly chosen word of
// length n. ok is false if there is none.
func (s *Sampler) RandomWordOfLength(n int) (ordinal int, ok bool) {
	ws := s.lex.WordsOfLength(n)
	if len(ws) == 0 {
		return 0, false
	}
	return rng.Element(s.gen, ws), true
}

// RandomWordsOfLength returns count words of length n drawn with
// replacement, or nil if there are none of that length.
func (s *Sampler) RandomWordsOfLength(count, n int) []string {
	ws := s.lex.WordsOfLength(n)
	if len(ws) == 0 {
		return nil
	}
	return s.lex.WordsFor(rng.Sample(s.gen, ws, count))
}
