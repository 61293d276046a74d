package wordle

import (
	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/wordgraph"
)

// searcher enumerates the words of the round length consistent with a
// GuessState, over one concrete edge representation.
type searcher interface {
	search(gs *GuessState, out []int) ([]int, uint64)
}

func newSearcher(lex *lexicon.Lexicon) searcher {
	if lex.EdgeKind() == lexicon.CompressedEdges {
		return &candidateSearch[wordgraph.CompressedEdge]{g: lex.CompressedGraph(), index: lex.WordIndex()}
	}
	return &candidateSearch[wordgraph.ExpandedEdge]{g: lex.ExpandedGraph(), index: lex.WordIndex()}
}

type candidateSearch[E wordgraph.Edge[E]] struct {
	g     *wordgraph.Graph[E]
	index wordgraph.WordIndex

	gs      *GuessState
	found   alphabet.LetterCounts
	out     []int
	visited uint64
}

func (s *candidateSearch[E]) search(gs *GuessState, out []int) ([]int, uint64) {
	s.gs = gs
	s.out = out
	s.visited = 0
	s.found.Reset()
	s.rec(s.g.Root(), 0, false)
	out, s.out, s.gs = s.out, nil, nil
	return out, s.visited
}

func (s *candidateSearch[E]) rec(v wordgraph.NodeID, depth int, isWord bool) {
	s.visited++
	missing, ok := s.gs.missing(&s.found)
	if !ok || s.gs.length-depth < missing {
		return
	}
	if depth == s.gs.length {
		if isWord {
			s.out = append(s.out, s.index.Ordinal(v))
		}
		return
	}
	known := s.gs.known[depth]
	excluded := s.gs.excluded[depth]
	for _, e := range s.g.Neighbors(v) {
		ml := e.Letter()
		if known != unknownLetter {
			if ml != known {
				continue
			}
		} else if excluded.Contains(ml) || s.found[ml]+1 > s.gs.upper[ml] {
			continue
		}
		s.found[ml]++
		s.rec(e.Target(), depth+1, e.IsWord())
		s.found[ml]--
	}
}
