// Package lexicon builds the read-only search index for a word list: the
// word graph, the node to word index, words grouped by length and the
// letter counts of every word. A Lexicon is immutable once built and can be
// shared by concurrent readers.
package lexicon

import (
	"io"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/trie"
	"github.com/domino14/wordgraph/wordgraph"
)

// EdgeKind selects the edge representation of the word graph.
type EdgeKind int

const (
	ExpandedEdges EdgeKind = iota
	CompressedEdges
)

func (k EdgeKind) String() string {
	if k == CompressedEdges {
		return "compressed"
	}
	return "expanded"
}

type options struct {
	name     string
	storage  trie.ChildStorage
	order    wordgraph.Order
	edgeKind EdgeKind
}

// Option configures how a Lexicon is built.
type Option func(*options)

// WithName names the lexicon, usually after its dictionary file.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithChildStorage selects the child storage of the intermediate trie.
func WithChildStorage(s trie.ChildStorage) Option {
	return func(o *options) { o.storage = s }
}

// WithOrder selects the node order of the word graph.
func WithOrder(order wordgraph.Order) Option {
	return func(o *options) { o.order = order }
}

// WithEdgeKind selects the edge representation of the word graph.
func WithEdgeKind(k EdgeKind) Option {
	return func(o *options) { o.edgeKind = k }
}

// Lexicon is an indexed, ordered word list. The position of a word in the
// list it was built from is its ordinal; every result set refers to words
// by ordinal.
type Lexicon struct {
	name     string
	words    []string
	edgeKind EdgeKind

	expanded   *wordgraph.Graph[wordgraph.ExpandedEdge]
	compressed *wordgraph.Graph[wordgraph.CompressedEdge]
	index      wordgraph.WordIndex

	// byLength[n] holds the ordinals of all words of length n, ascending.
	byLength     [][]int
	letterCounts []alphabet.LetterCounts
	// maxOccurrence[n][c] is the highest count of letter c in any word of
	// length n.
	maxOccurrence []alphabet.LetterCounts

	trieNodes   int
	degreeHist  map[int]int
	fingerprint uint64
}

// New validates words and builds a lexicon from them.
func New(words []string, opts ...Option) (*Lexicon, error) {
	o := options{storage: trie.SortedMap, order: wordgraph.DFSOrder}
	for _, opt := range opts {
		opt(&o)
	}
	if err := Validate(words); err != nil {
		return nil, err
	}

	t := trie.New(o.storage)
	for _, w := range words {
		t.Insert(w)
	}

	l := &Lexicon{
		name:       o.name,
		words:      words,
		edgeKind:   o.edgeKind,
		trieNodes:  t.NumNodes(),
		degreeHist: t.DegreeHistogram(),
	}
	var err error
	switch o.edgeKind {
	case CompressedEdges:
		l.compressed, err = wordgraph.Build[wordgraph.CompressedEdge](t, o.order)
		if err != nil {
			return nil, err
		}
		l.index = wordgraph.NewWordIndex(l.compressed, words)
	default:
		l.expanded, err = wordgraph.Build[wordgraph.ExpandedEdge](t, o.order)
		if err != nil {
			return nil, err
		}
		l.index = wordgraph.NewWordIndex(l.expanded, words)
	}
	l.indexWords()
	l.fingerprint = fingerprint(words)

	log.Debug().Str("lexicon", l.name).Int("words", len(words)).
		Int("trie-nodes", l.trieNodes).Str("edges", o.edgeKind.String()).
		Str("order", o.order.String()).Msg("built-lexicon")
	return l, nil
}

func (l *Lexicon) indexWords() {
	maxLen := 0
	for _, w := range l.words {
		maxLen = max(maxLen, len(w))
	}
	l.byLength = make([][]int, maxLen+1)
	l.maxOccurrence = make([]alphabet.LetterCounts, maxLen+1)
	l.letterCounts = make([]alphabet.LetterCounts, len(l.words))
	for i, w := range l.words {
		n := len(w)
		l.byLength[n] = append(l.byLength[n], i)
		l.letterCounts[i].SetFromString(w)
		for c, cnt := range l.letterCounts[i] {
			l.maxOccurrence[n][c] = max(l.maxOccurrence[n][c], cnt)
		}
	}
}

func fingerprint(words []string) uint64 {
	d := xxhash.New()
	for _, w := range words {
		io.WriteString(d, w)
		d.Write([]byte{'\n'})
	}
	return d.Sum64()
}

// Name returns the lexicon name.
func (l *Lexicon) Name() string {
	return l.name
}

// NumWords returns the number of words.
func (l *Lexicon) NumWords() int {
	return len(l.words)
}

// Word returns the word with the given ordinal.
func (l *Lexicon) Word(ordinal int) string {
	return l.words[ordinal]
}

// Words returns the word list. It must not be modified.
func (l *Lexicon) Words() []string {
	return l.words
}

// WordsFor maps ordinals to words.
func (l *Lexicon) WordsFor(ordinals []int) []string {
	out := make([]string, len(ordinals))
	for i, o := range ordinals {
		out[i] = l.words[o]
	}
	return out
}

// ContainsWord returns true if word is in the lexicon.
func (l *Lexicon) ContainsWord(word string) bool {
	if l.edgeKind == CompressedEdges {
		return l.compressed.Contains(word)
	}
	return l.expanded.Contains(word)
}

// Lookup returns the ordinal of word, if it is in the lexicon.
func (l *Lexicon) Lookup(word string) (int, bool) {
	var (
		v          wordgraph.NodeID
		isWord, ok bool
	)
	if l.edgeKind == CompressedEdges {
		v, isWord, ok = l.compressed.FindNode(word)
	} else {
		v, isWord, ok = l.expanded.FindNode(word)
	}
	if !ok || !isWord || len(word) == 0 {
		return 0, false
	}
	return l.index.Ordinal(v), true
}

// EdgeKind returns the edge representation of the word graph.
func (l *Lexicon) EdgeKind() EdgeKind {
	return l.edgeKind
}

// ExpandedGraph returns the word graph if it was built with expanded edges,
// and nil otherwise.
func (l *Lexicon) ExpandedGraph() *wordgraph.Graph[wordgraph.ExpandedEdge] {
	return l.expanded
}

// CompressedGraph returns the word graph if it was built with compressed
// edges, and nil otherwise.
func (l *Lexicon) CompressedGraph() *wordgraph.Graph[wordgraph.CompressedEdge] {
	return l.compressed
}

// NumGraphNodes returns the number of nodes of the word graph.
func (l *Lexicon) NumGraphNodes() int {
	if l.edgeKind == CompressedEdges {
		return l.compressed.NumNodes()
	}
	return l.expanded.NumNodes()
}

// WordIndex returns the node to ordinal index of the word graph.
func (l *Lexicon) WordIndex() wordgraph.WordIndex {
	return l.index
}

// MaxLength returns the length of the longest word.
func (l *Lexicon) MaxLength() int {
	return len(l.byLength) - 1
}

// WordsOfLength returns the ordinals of all words of length n, ascending.
// The slice must not be modified.
func (l *Lexicon) WordsOfLength(n int) []int {
	if n < 0 || n >= len(l.byLength) {
		return nil
	}
	return l.byLength[n]
}

// CountWordsOfLength returns how many words have length n.
func (l *Lexicon) CountWordsOfLength(n int) int {
	return len(l.WordsOfLength(n))
}

// LetterCounts returns the letter counts of the word with the given
// ordinal. It must not be modified.
func (l *Lexicon) LetterCounts(ordinal int) *alphabet.LetterCounts {
	return &l.letterCounts[ordinal]
}

// MaxOccurrence returns, per letter, the highest count of that letter in
// any word of length n.
func (l *Lexicon) MaxOccurrence(n int) alphabet.LetterCounts {
	if n < 0 || n >= len(l.maxOccurrence) {
		return alphabet.LetterCounts{}
	}
	return l.maxOccurrence[n]
}

// Fingerprint is a hash of the ordered word list.
func (l *Lexicon) Fingerprint() uint64 {
	return l.fingerprint
}

// TrieNodes returns the number of nodes of the trie the graph was built from.
func (l *Lexicon) TrieNodes() int {
	return l.trieNodes
}

// DegreeHistogram maps an out-degree to the number of trie nodes having it.
func (l *Lexicon) DegreeHistogram() map[int]int {
	return l.degreeHist
}
