package wordgraph

import "fmt"

// WordIndex maps a terminal node id back to the ordinal of its word in the
// source list. Non-terminal nodes map to -1.
type WordIndex []int32

// NewWordIndex builds the index for a graph built from words. Every word
// must be in the graph.
func NewWordIndex[E Edge[E]](g *Graph[E], words []string) WordIndex {
	wi := make(WordIndex, g.NumNodes())
	for i := range wi {
		wi[i] = -1
	}
	for i, w := range words {
		v, isWord, ok := g.FindNode(w)
		if !ok || !isWord {
			panic(fmt.Sprintf("word %q (#%d) is not in the graph", w, i))
		}
		wi[v] = int32(i)
	}
	return wi
}

// Ordinal returns the word ordinal of a terminal node. Asking for a
// non-terminal node is a programming error.
func (wi WordIndex) Ordinal(v NodeID) int {
	o := wi[v]
	if o < 0 {
		panic(fmt.Sprintf("node %d is not terminal", v))
	}
	return int(o)
}

// Lookup returns the word ordinal of v, if v is terminal.
func (wi WordIndex) Lookup(v NodeID) (int, bool) {
	o := wi[v]
	return int(o), o >= 0
}

// NumTerminals returns how many nodes carry a word.
func (wi WordIndex) NumTerminals() int {
	n := 0
	for _, o := range wi {
		if o >= 0 {
			n++
		}
	}
	return n
}
