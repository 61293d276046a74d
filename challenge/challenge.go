// Package challenge finds every dictionary word that can be spelled with
// a given multiset of letters.
package challenge

import (
	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/wordgraph"
)

// walker runs the search over one concrete edge representation.
type walker interface {
	possibleWords(available *alphabet.LetterCounts, buckets [][]int) uint64
}

type dfs[E wordgraph.Edge[E]] struct {
	g       *wordgraph.Graph[E]
	index   wordgraph.WordIndex
	buckets [][]int
	visited uint64
}

func (d *dfs[E]) possibleWords(available *alphabet.LetterCounts, buckets [][]int) uint64 {
	d.buckets = buckets
	d.visited = 0
	d.search(d.g.Root(), 0, available)
	d.buckets = nil
	return d.visited
}

func (d *dfs[E]) search(v wordgraph.NodeID, depth int, available *alphabet.LetterCounts) {
	d.visited++
	for _, e := range d.g.Neighbors(v) {
		ml := e.Letter()
		if available[ml] == 0 {
			continue
		}
		available[ml]--
		if e.IsWord() {
			d.buckets[depth+1] = append(d.buckets[depth+1], d.index.Ordinal(e.Target()))
		}
		d.search(e.Target(), depth+1, available)
		available[ml]++
	}
}

// Engine searches a lexicon for words buildable from a set of letters.
// It keeps scratch space between queries and is not safe for concurrent
// use; create one engine per goroutine. The lexicon itself is shared.
type Engine struct {
	lex     *lexicon.Lexicon
	w       walker
	buckets [][]int
	visited uint64
}

func NewEngine(lex *lexicon.Lexicon) *Engine {
	e := &Engine{
		lex:     lex,
		buckets: make([][]int, lex.MaxLength()+1),
	}
	switch lex.EdgeKind() {
	case lexicon.CompressedEdges:
		e.w = &dfs[wordgraph.CompressedEdge]{g: lex.CompressedGraph(), index: lex.WordIndex()}
	default:
		e.w = &dfs[wordgraph.ExpandedEdge]{g: lex.ExpandedGraph(), index: lex.WordIndex()}
	}
	return e
}

// PossibleWords returns the ordinals of every word w with
// count(c, w) <= available[c] for all letters c. Shorter words come first.
// Words of the same length are in graph edge order, which is not
// necessarily alphabetical. available is used as scratch space and holds
// its original counts again on return.
func (e *Engine) PossibleWords(available *alphabet.LetterCounts) []int {
	for i := range e.buckets {
		e.buckets[i] = e.buckets[i][:0]
	}
	e.visited += e.w.possibleWords(available, e.buckets)

	n := 0
	for _, b := range e.buckets {
		n += len(b)
	}
	out := make([]int, 0, n)
	for _, b := range e.buckets {
		out = append(out, b...)
	}
	return out
}

// PossibleWordStrings returns the words that can be spelled with letters.
func (e *Engine) PossibleWordStrings(letters string) ([]string, error) {
	if err := alphabet.ValidateWord(letters); err != nil {
		return nil, err
	}
	mw, err := alphabet.ToMachineWord(letters)
	if err != nil {
		return nil, err
	}
	available := alphabet.CountsFromMachineWord(mw)
	return e.lex.WordsFor(e.PossibleWords(&available)), nil
}

// VisitedNodes returns the number of graph nodes entered by all searches
// since the last ResetCounter.
func (e *Engine) VisitedNodes() uint64 {
	return e.visited
}

func (e *Engine) ResetCounter() {
	e.visited = 0
}
