package wordgraph

import (
	"fmt"
	"math"

	"github.com/domino14/wordgraph/alphabet"
)

// NodeID addresses a node of a static graph. The root is always 0.
type NodeID = uint32

// Edge is an outgoing arc of a graph node. It carries the target node id,
// the letter on the arc and whether the target terminates a word.
// Implementations are small value types; Pack builds a new edge of the same
// kind so that graph code can stay generic over the representation.
type Edge[E any] interface {
	Target() NodeID
	Letter() alphabet.MachineLetter
	IsWord() bool
	Pack(target NodeID, ml alphabet.MachineLetter, isWord bool) E
	// MaxNodes is the number of distinct node ids this edge kind can address.
	MaxNodes() uint64
}

// ExpandedEdge stores every field separately.
type ExpandedEdge struct {
	target NodeID
	letter alphabet.MachineLetter
	isWord bool
}

func (e ExpandedEdge) Target() NodeID                 { return e.target }
func (e ExpandedEdge) Letter() alphabet.MachineLetter { return e.letter }
func (e ExpandedEdge) IsWord() bool                   { return e.isWord }
func (e ExpandedEdge) MaxNodes() uint64               { return math.MaxUint32 + 1 }

func (ExpandedEdge) Pack(target NodeID, ml alphabet.MachineLetter, isWord bool) ExpandedEdge {
	return ExpandedEdge{target: target, letter: ml, isWord: isWord}
}

func (e ExpandedEdge) String() string {
	return fmt.Sprintf("-%s-> %d (word=%v)", e.letter, e.target, e.isWord)
}

// A CompressedEdge bit-packs an edge into 32 bits:
//
//	bit 31     target terminates a word
//	bits 23-30 letter
//	bits 0-22  target node id
type CompressedEdge uint32

const (
	compressedIDBits    = 23
	compressedIDMask    = 1<<compressedIDBits - 1
	compressedLetterPos = compressedIDBits
	compressedWordBit   = 1 << 31
)

func (e CompressedEdge) Target() NodeID { return NodeID(e & compressedIDMask) }

func (e CompressedEdge) Letter() alphabet.MachineLetter {
	return alphabet.MachineLetter(e >> compressedLetterPos)
}

func (e CompressedEdge) IsWord() bool     { return e&compressedWordBit != 0 }
func (e CompressedEdge) MaxNodes() uint64 { return 1 << compressedIDBits }

func (CompressedEdge) Pack(target NodeID, ml alphabet.MachineLetter, isWord bool) CompressedEdge {
	if target > compressedIDMask {
		panic(fmt.Sprintf("node id %d does not fit in a compressed edge", target))
	}
	e := CompressedEdge(target) | CompressedEdge(ml)<<compressedLetterPos
	if isWord {
		e |= compressedWordBit
	}
	return e
}

func (e CompressedEdge) String() string {
	return fmt.Sprintf("-%s-> %d (word=%v)", e.Letter(), e.Target(), e.IsWord())
}
