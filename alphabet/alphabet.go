package alphabet

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// NumLetters is the size of the alphabet. Only the lowercase letters
	// a through z are supported.
	NumLetters = 26
	// MaxWordLength is the hard cap on the length of any dictionary word.
	MaxWordLength = 100
)

// MachineLetter is a machine-only representation of a letter. It goes from
// 0 ('a') to NumLetters-1 ('z').
type MachineLetter uint8

// MachineWord is a slice of MachineLetter; it is a machine-only representation
// of a word.
type MachineWord []MachineLetter

// LetterSet is a bit mask of letters, with bit i set if MachineLetter(i) is
// in the set.
type LetterSet uint32

// FromRune converts a lowercase rune into its machine letter.
func FromRune(r rune) (MachineLetter, error) {
	if r < 'a' || r > 'z' {
		return 0, fmt.Errorf("letter %q not in alphabet", r)
	}
	return MachineLetter(r - 'a'), nil
}

// FromByte converts a byte that is already known to be in the alphabet.
// No check is performed.
func FromByte(b byte) MachineLetter {
	return MachineLetter(b - 'a')
}

// Rune returns the user-visible letter.
func (ml MachineLetter) Rune() rune {
	return rune(ml) + 'a'
}

// Byte returns the user-visible letter as a byte.
func (ml MachineLetter) Byte() byte {
	return byte(ml) + 'a'
}

func (ml MachineLetter) String() string {
	return string(ml.Rune())
}

// ToMachineWord creates a MachineWord from the given string.
func ToMachineWord(word string) (MachineWord, error) {
	mw := make(MachineWord, 0, len(word))
	for _, r := range word {
		ml, err := FromRune(r)
		if err != nil {
			return nil, err
		}
		mw = append(mw, ml)
	}
	return mw, nil
}

// UserVisible turns the machine word into a user-visible string.
func (mw MachineWord) UserVisible() string {
	var sb strings.Builder
	sb.Grow(len(mw))
	for _, ml := range mw {
		sb.WriteByte(ml.Byte())
	}
	return sb.String()
}

// Add returns a new set with ml in it.
func (ls LetterSet) Add(ml MachineLetter) LetterSet {
	return ls | (1 << ml)
}

// Contains returns true if ml is in the set.
func (ls LetterSet) Contains(ml MachineLetter) bool {
	return ls&(1<<ml) != 0
}

// Len returns the number of letters in the set.
func (ls LetterSet) Len() int {
	return bits.OnesCount32(uint32(ls))
}

func (ls LetterSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := MachineLetter(0); i < NumLetters; i++ {
		if ls.Contains(i) {
			sb.WriteRune(i.Rune())
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
