package trie

import (
	"slices"

	"github.com/domino14/wordgraph/alphabet"
)

// ChildStorage selects how a trie node stores its outgoing arcs. All
// storages behave identically; they only differ in memory layout and speed.
type ChildStorage int

const (
	// SortedMap keeps a small slice of (letter, child) pairs sorted by letter.
	SortedMap ChildStorage = iota
	// FixedArray keeps one slot per letter of the alphabet.
	FixedArray
	// HashMap keeps a Go map from letter to child.
	HashMap
)

func (s ChildStorage) String() string {
	switch s {
	case SortedMap:
		return "sorted-map"
	case FixedArray:
		return "fixed-array"
	case HashMap:
		return "hash-map"
	}
	return "unknown"
}

// children is the arc storage of one trie node.
type children interface {
	// insertIfAbsent adds an arc for ml pointing at idx if there is none yet.
	// It returns the child the arc points at and whether it was inserted.
	insertIfAbsent(ml alphabet.MachineLetter, idx int32) (int32, bool)
	get(ml alphabet.MachineLetter) (int32, bool)
	len() int
	// each calls fn for every arc in increasing letter order.
	each(fn func(ml alphabet.MachineLetter, child int32))
}

func newChildren(s ChildStorage) children {
	switch s {
	case FixedArray:
		a := &arrayChildren{}
		for i := range a {
			a[i] = -1
		}
		return a
	case HashMap:
		return hashChildren{}
	default:
		return &sortedChildren{}
	}
}

type arc struct {
	letter alphabet.MachineLetter
	child  int32
}

type sortedChildren struct {
	arcs []arc
}

func (s *sortedChildren) insertIfAbsent(ml alphabet.MachineLetter, idx int32) (int32, bool) {
	i := 0
	for ; i < len(s.arcs); i++ {
		if s.arcs[i].letter == ml {
			return s.arcs[i].child, false
		}
		if s.arcs[i].letter > ml {
			break
		}
	}
	s.arcs = slices.Insert(s.arcs, i, arc{letter: ml, child: idx})
	return idx, true
}

func (s *sortedChildren) get(ml alphabet.MachineLetter) (int32, bool) {
	for _, a := range s.arcs {
		if a.letter == ml {
			return a.child, true
		}
		if a.letter > ml {
			break
		}
	}
	return 0, false
}

func (s *sortedChildren) len() int {
	return len(s.arcs)
}

func (s *sortedChildren) each(fn func(ml alphabet.MachineLetter, child int32)) {
	for _, a := range s.arcs {
		fn(a.letter, a.child)
	}
}

type arrayChildren [alphabet.NumLetters]int32

func (a *arrayChildren) insertIfAbsent(ml alphabet.MachineLetter, idx int32) (int32, bool) {
	if a[ml] == -1 {
		a[ml] = idx
		return idx, true
	}
	return a[ml], false
}

func (a *arrayChildren) get(ml alphabet.MachineLetter) (int32, bool) {
	return a[ml], a[ml] != -1
}

func (a *arrayChildren) len() int {
	n := 0
	for _, c := range a {
		if c != -1 {
			n++
		}
	}
	return n
}

func (a *arrayChildren) each(fn func(ml alphabet.MachineLetter, child int32)) {
	for i, c := range a {
		if c != -1 {
			fn(alphabet.MachineLetter(i), c)
		}
	}
}

type hashChildren map[alphabet.MachineLetter]int32

func (h hashChildren) insertIfAbsent(ml alphabet.MachineLetter, idx int32) (int32, bool) {
	if c, ok := h[ml]; ok {
		return c, false
	}
	h[ml] = idx
	return idx, true
}

func (h hashChildren) get(ml alphabet.MachineLetter) (int32, bool) {
	c, ok := h[ml]
	return c, ok
}

func (h hashChildren) len() int {
	return len(h)
}

func (h hashChildren) each(fn func(ml alphabet.MachineLetter, child int32)) {
	letters := make([]alphabet.MachineLetter, 0, len(h))
	for ml := range h {
		letters = append(letters, ml)
	}
	slices.Sort(letters)
	for _, ml := range letters {
		fn(ml, h[ml])
	}
}
