package wordgraph

import (
	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/trie"
)

// Order selects how nodes are relabelled before the graph is flattened.
type Order int

const (
	// DFSOrder numbers nodes in depth-first preorder from the root, so a
	// walk down a path touches edges that sit close together in memory.
	DFSOrder Order = iota
	// BFSOrder numbers nodes level by level.
	BFSOrder
	// InsertionOrder keeps the trie's own node ids.
	InsertionOrder
)

func (o Order) String() string {
	switch o {
	case DFSOrder:
		return "dfs"
	case BFSOrder:
		return "bfs"
	case InsertionOrder:
		return "insertion"
	}
	return "unknown"
}

// AdjacencyList is the mutable, per-node edge list form of a graph.
// Edges at every node are sorted by letter.
type AdjacencyList[E Edge[E]] [][]E

// Extract copies the arcs of a trie into an adjacency list, keeping the
// trie's node ids.
func Extract[E Edge[E]](t *trie.Trie) AdjacencyList[E] {
	var zero E
	adj := make(AdjacencyList[E], t.NumNodes())
	for v := range adj {
		edges := make([]E, 0, t.Degree(trie.NodeID(v)))
		t.Children(trie.NodeID(v), func(ml alphabet.MachineLetter, child trie.NodeID) {
			edges = append(edges, zero.Pack(NodeID(child), ml, t.IsWord(child)))
		})
		adj[v] = edges
	}
	return adj
}

// NumNodes returns the number of nodes.
func (a AdjacencyList[E]) NumNodes() int {
	return len(a)
}

// ComputeOrder returns a permutation mapping old node ids to new ones.
func (a AdjacencyList[E]) ComputeOrder(o Order) []NodeID {
	switch o {
	case DFSOrder:
		return a.dfsOrder(0)
	case BFSOrder:
		return a.bfsOrder(0)
	}
	perm := make([]NodeID, len(a))
	for i := range perm {
		perm[i] = NodeID(i)
	}
	return perm
}

func (a AdjacencyList[E]) dfsOrder(start NodeID) []NodeID {
	order := make([]NodeID, len(a))
	var id NodeID
	var rec func(v NodeID)
	rec = func(v NodeID) {
		order[v] = id
		id++
		for _, e := range a[v] {
			rec(e.Target())
		}
	}
	rec(start)
	return order
}

func (a AdjacencyList[E]) bfsOrder(start NodeID) []NodeID {
	order := make([]NodeID, len(a))
	queue := make([]NodeID, 0, len(a))
	queue = append(queue, start)
	var id NodeID
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		order[v] = id
		id++
		for _, e := range a[v] {
			queue = append(queue, e.Target())
		}
	}
	return order
}

// Remap relabels every node v as perm[v], moving its edge list and
// rewriting edge targets. The letter order of each edge list is kept.
func (a AdjacencyList[E]) Remap(perm []NodeID) AdjacencyList[E] {
	remapped := make(AdjacencyList[E], len(a))
	for v, edges := range a {
		moved := make([]E, len(edges))
		for i, e := range edges {
			moved[i] = e.Pack(perm[e.Target()], e.Letter(), e.IsWord())
		}
		remapped[perm[v]] = moved
	}
	return remapped
}
