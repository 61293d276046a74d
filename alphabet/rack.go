package alphabet

import "strings"

// LetterCounts is a fixed-size per-letter counter. Depending on the
// consumer it holds the letters still available to build words with, or a
// bound on how often each letter may occur.
type LetterCounts [NumLetters]int

// CountsFromString creates a LetterCounts from a string of lowercase
// letters. Runes outside the alphabet are ignored; callers validate first.
func CountsFromString(s string) LetterCounts {
	var lc LetterCounts
	lc.SetFromString(s)
	return lc
}

// CountsFromMachineWord counts the letters of a machine word.
func CountsFromMachineWord(mw MachineWord) LetterCounts {
	var lc LetterCounts
	for _, ml := range mw {
		lc[ml]++
	}
	return lc
}

// SetFromString resets the counter to the letter counts of s.
func (lc *LetterCounts) SetFromString(s string) {
	lc.Reset()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			continue
		}
		lc[c-'a']++
	}
}

// Reset sets every count to zero.
func (lc *LetterCounts) Reset() {
	*lc = LetterCounts{}
}

// Fill sets every count to n.
func (lc *LetterCounts) Fill(n int) {
	for i := range lc {
		lc[i] = n
	}
}

// Add increments the count of ml.
func (lc *LetterCounts) Add(ml MachineLetter) {
	lc[ml]++
}

// Take decrements the count of ml. The count may go negative.
func (lc *LetterCounts) Take(ml MachineLetter) {
	lc[ml]--
}

// Count returns the count of ml.
func (lc *LetterCounts) Count(ml MachineLetter) int {
	return lc[ml]
}

// Set sets the count of ml.
func (lc *LetterCounts) Set(ml MachineLetter, n int) {
	lc[ml] = n
}

// Sum returns the total of all counts.
func (lc *LetterCounts) Sum() int {
	s := 0
	for _, c := range lc {
		s += c
	}
	return s
}

// Covers returns true if every count in lc is at least the corresponding
// count in other.
func (lc *LetterCounts) Covers(other *LetterCounts) bool {
	for i := range lc {
		if other[i] > lc[i] {
			return false
		}
	}
	return true
}

// String returns the multiset as a sorted string of letters, e.g. "aelpp".
func (lc *LetterCounts) String() string {
	var sb strings.Builder
	for i, c := range lc {
		for j := 0; j < c; j++ {
			sb.WriteByte(byte(i) + 'a')
		}
	}
	return sb.String()
}
