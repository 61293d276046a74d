package lexicon

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/config"
	"github.com/domino14/wordgraph/rng"
	"github.com/domino14/wordgraph/trie"
	"github.com/domino14/wordgraph/wordgraph"
)

var DefaultConfig = config.DefaultConfig()

var smallWords = []string{"bat", "cat", "hat", "mat", "tab", "act", "at", "a"}

func TestNewContainsEveryWord(t *testing.T) {
	is := is.New(t)
	for _, kind := range []EdgeKind{ExpandedEdges, CompressedEdges} {
		for _, s := range []trie.ChildStorage{trie.SortedMap, trie.FixedArray, trie.HashMap} {
			lex, err := New(smallWords, WithEdgeKind(kind), WithChildStorage(s))
			is.NoErr(err)
			for _, w := range smallWords {
				is.True(lex.ContainsWord(w))
			}
			for _, w := range []string{"ba", "cats", "t", "zzz", ""} {
				is.True(!lex.ContainsWord(w))
			}
			is.Equal(lex.EdgeKind(), kind)
			is.Equal(lex.WordIndex().NumTerminals(), len(smallWords))
		}
	}
}

func TestWordsOfLength(t *testing.T) {
	is := is.New(t)
	lex, err := New(smallWords)
	is.NoErr(err)
	is.Equal(lex.MaxLength(), 3)
	is.Equal(lex.WordsOfLength(3), []int{0, 1, 2, 3, 4, 5})
	is.Equal(lex.WordsOfLength(2), []int{6})
	is.Equal(lex.WordsOfLength(1), []int{7})
	is.Equal(lex.CountWordsOfLength(4), 0)
	is.Equal(lex.WordsOfLength(-1), []int(nil))
	is.Equal(lex.WordsFor([]int{1, 7}), []string{"cat", "a"})
}

func TestLetterCountsAndMaxOccurrence(t *testing.T) {
	is := is.New(t)
	lex, err := New([]string{"eerie", "apple", "tree"})
	is.NoErr(err)
	is.Equal(lex.LetterCounts(0).Count(alphabet.FromByte('e')), 3)
	mo := lex.MaxOccurrence(5)
	is.Equal(mo.Count(alphabet.FromByte('e')), 3)
	is.Equal(mo.Count(alphabet.FromByte('p')), 2)
	is.Equal(mo.Count(alphabet.FromByte('t')), 0)
}

func TestWordIndexMatchesOrdinals(t *testing.T) {
	is := is.New(t)
	lex, err := New(smallWords, WithOrder(wordgraph.BFSOrder))
	is.NoErr(err)
	g := lex.ExpandedGraph()
	is.True(lex.CompressedGraph() == nil)
	for i, w := range smallWords {
		v, isWord, ok := g.FindNode(w)
		is.True(ok && isWord)
		is.Equal(lex.WordIndex().Ordinal(v), i)
	}
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	is.NoErr(Validate(smallWords))
	is.True(errors.Is(Validate(nil), ErrEmptyList))

	err := Validate([]string{"apple", "Banana", "k2", "apple", strings.Repeat("z", 101)})
	is.True(errors.Is(err, alphabet.ErrIllegalLetter))
	is.True(errors.Is(err, alphabet.ErrWordTooLong))
	is.True(errors.Is(err, ErrDuplicateWord))
	is.True(strings.Contains(err.Error(), "Banana"))
	is.True(strings.Contains(err.Error(), "k2"))

	_, err = New([]string{"ok", "NOT"})
	is.True(errors.Is(err, alphabet.ErrIllegalLetter))
}

func TestFingerprint(t *testing.T) {
	is := is.New(t)
	a, _ := New([]string{"ab", "cd"})
	b, _ := New([]string{"ab", "cd"})
	c, _ := New([]string{"cd", "ab"})
	is.Equal(a.Fingerprint(), b.Fingerprint())
	is.True(a.Fingerprint() != c.Fingerprint())
}

func TestReadWordList(t *testing.T) {
	is := is.New(t)
	f, err := os.Open("testdata/small.txt")
	is.NoErr(err)
	defer f.Close()
	words, err := ReadWordList(f)
	is.NoErr(err)
	is.Equal(words, smallWords)
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	lex, err := Load(DefaultConfig, "testdata/small.txt")
	is.NoErr(err)
	is.Equal(lex.Name(), "small")
	is.Equal(lex.NumWords(), len(smallWords))

	_, err = Load(DefaultConfig, "testdata/bad.txt")
	is.True(errors.Is(err, alphabet.ErrIllegalLetter))
	is.True(errors.Is(err, ErrDuplicateWord))

	_, err = Load(DefaultConfig, "testdata/does-not-exist.txt")
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestGetCaches(t *testing.T) {
	is := is.New(t)
	a, err := Get(DefaultConfig, "testdata/small.txt")
	is.NoErr(err)
	b, err := Get(DefaultConfig, "testdata/small.txt")
	is.NoErr(err)
	is.True(a == b)
}

func TestSampler(t *testing.T) {
	is := is.New(t)
	lex, _ := New(smallWords)
	s := NewSampler(lex, rng.New(3))
	for i := 0; i < 50; i++ {
		o, ok := s.RandomWordOfLength(3)
		is.True(ok)
		is.Equal(len(lex.Word(o)), 3)
	}
	_, ok := s.RandomWordOfLength(7)
	is.True(!ok)
	is.Equal(len(s.RandomWordsOfLength(20, 2)), 20)
	is.Equal(s.RandomWordsOfLength(20, 9), []string(nil))
	is.True(s.RandomWord() < lex.NumWords())
}

func TestLookup(t *testing.T) {
	is := is.New(t)
	for _, kind := range []EdgeKind{ExpandedEdges, CompressedEdges} {
		lex, err := New(smallWords, WithEdgeKind(kind))
		is.NoErr(err)
		for i, w := range smallWords {
			o, ok := lex.Lookup(w)
			is.True(ok)
			is.Equal(o, i)
		}
		_, ok := lex.Lookup("ba")
		is.True(!ok)
		_, ok = lex.Lookup("")
		is.True(!ok)
	}
}
