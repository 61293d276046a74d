// Package wordgraph contains the immutable, cache-ordered word graph that
// every search runs over. It is built once from a trie and can be shared by
// any number of readers afterwards.
package wordgraph

import (
	"errors"
	"fmt"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/trie"
)

var ErrTooManyNodes = errors.New("too many nodes for edge representation")

// Graph is a static adjacency array (compressed sparse rows). The edges of
// node v are edges[offsets[v]:offsets[v+1]], sorted by letter.
type Graph[E Edge[E]] struct {
	offsets []uint32
	edges   []E
}

// Build freezes a trie into a static graph, relabelling nodes according to
// the given order first.
func Build[E Edge[E]](t *trie.Trie, order Order) (*Graph[E], error) {
	var zero E
	if uint64(t.NumNodes()) > zero.MaxNodes() {
		return nil, fmt.Errorf("%w: %d nodes, at most %d supported",
			ErrTooManyNodes, t.NumNodes(), zero.MaxNodes())
	}
	adj := Extract[E](t)
	if order != InsertionOrder {
		adj = adj.Remap(adj.ComputeOrder(order))
	}
	return FromAdjacencyList(adj), nil
}

// FromAdjacencyList flattens an adjacency list. Node 0 must be the root.
func FromAdjacencyList[E Edge[E]](adj AdjacencyList[E]) *Graph[E] {
	n := len(adj)
	g := &Graph[E]{offsets: make([]uint32, n+1)}
	// prefix sum of out-degrees
	for v := 0; v < n; v++ {
		g.offsets[v+1] = g.offsets[v] + uint32(len(adj[v]))
	}
	g.edges = make([]E, 0, g.offsets[n])
	for v := 0; v < n; v++ {
		g.edges = append(g.edges, adj[v]...)
	}
	return g
}

// Root returns the root node id.
func (g *Graph[E]) Root() NodeID {
	return 0
}

// NumNodes returns the number of nodes.
func (g *Graph[E]) NumNodes() int {
	return len(g.offsets) - 1
}

// NumEdges returns the number of edges.
func (g *Graph[E]) NumEdges() int {
	return len(g.edges)
}

// Neighbors returns the outgoing edges of v, sorted by letter. The slice
// must not be modified.
func (g *Graph[E]) Neighbors(v NodeID) []E {
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// Degree returns the out-degree of v.
func (g *Graph[E]) Degree(v NodeID) int {
	return int(g.offsets[v+1] - g.offsets[v])
}

// Next follows the edge labelled ml out of v. It returns the target and
// whether the target terminates a word; ok is false if there is no such
// edge.
func (g *Graph[E]) Next(v NodeID, ml alphabet.MachineLetter) (target NodeID, isWord bool, ok bool) {
	for _, e := range g.Neighbors(v) {
		l := e.Letter()
		if l == ml {
			return e.Target(), e.IsWord(), true
		}
		if l > ml {
			break
		}
	}
	return 0, false, false
}

// FindNode walks the path spelled by word. It returns the node reached and
// whether that node terminates a word; ok is false if the path leaves the
// graph.
func (g *Graph[E]) FindNode(word string) (v NodeID, isWord bool, ok bool) {
	v = g.Root()
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return 0, false, false
		}
		v, isWord, ok = g.Next(v, alphabet.FromByte(c))
		if !ok {
			return 0, false, false
		}
	}
	return v, isWord, true
}

// Contains returns true if word is in the graph.
func (g *Graph[E]) Contains(word string) bool {
	if len(word) == 0 {
		return false
	}
	_, isWord, ok := g.FindNode(word)
	return ok && isWord
}
