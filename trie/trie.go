// Package trie contains the dynamic prefix tree words are inserted into
// before it is frozen into a static word graph.
package trie

import (
	"github.com/domino14/wordgraph/alphabet"
)

// NodeID addresses a node in the trie's node arena. The root is always 0.
type NodeID = int32

const RootID NodeID = 0

type node struct {
	children children
	isWord   bool
}

// Trie is a prefix tree. Nodes live in a single arena and refer to each
// other by index. It is not safe for concurrent mutation.
type Trie struct {
	nodes   []node
	storage ChildStorage
	words   int
}

// New creates an empty trie whose nodes store their arcs with the given
// storage strategy.
func New(storage ChildStorage) *Trie {
	t := &Trie{storage: storage}
	t.newNode()
	return t
}

// FromWords creates a trie with the default storage and inserts every word.
func FromWords(words []string) *Trie {
	t := New(SortedMap)
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func (t *Trie) newNode() NodeID {
	t.nodes = append(t.nodes, node{children: newChildren(t.storage)})
	return NodeID(len(t.nodes) - 1)
}

// Insert adds a word to the trie. The word must already be validated.
func (t *Trie) Insert(word string) {
	cur := RootID
	for i := 0; i < len(word); i++ {
		ml := alphabet.FromByte(word[i])
		maybeNext := NodeID(len(t.nodes))
		next, inserted := t.nodes[cur].children.insertIfAbsent(ml, maybeNext)
		if inserted {
			t.newNode()
		}
		cur = next
	}
	if !t.nodes[cur].isWord {
		t.words++
	}
	t.nodes[cur].isWord = true
}

// Contains returns true if word was inserted.
func (t *Trie) Contains(word string) bool {
	cur := RootID
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
		next, ok := t.nodes[cur].children.get(alphabet.FromByte(c))
		if !ok {
			return false
		}
		cur = next
	}
	return t.nodes[cur].isWord
}

// NumNodes returns the number of nodes, including the root.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

// NumWords returns the number of distinct words inserted.
func (t *Trie) NumWords() int {
	return t.words
}

// Storage returns the child storage strategy of this trie.
func (t *Trie) Storage() ChildStorage {
	return t.storage
}

// IsWord returns true if the node terminates a word.
func (t *Trie) IsWord(id NodeID) bool {
	return t.nodes[id].isWord
}

// Degree returns the number of children of a node.
func (t *Trie) Degree(id NodeID) int {
	return t.nodes[id].children.len()
}

// Children calls fn for every child of id, in increasing letter order.
func (t *Trie) Children(id NodeID, fn func(ml alphabet.MachineLetter, child NodeID)) {
	t.nodes[id].children.each(fn)
}

// Degrees returns the out-degree of every node, indexed by node id.
func (t *Trie) Degrees() []int {
	d := make([]int, len(t.nodes))
	for i := range t.nodes {
		d[i] = t.nodes[i].children.len()
	}
	return d
}

// DegreeHistogram maps an out-degree to the number of nodes having it.
func (t *Trie) DegreeHistogram() map[int]int {
	h := make(map[int]int)
	for _, d := range t.Degrees() {
		h[d]++
	}
	return h
}
