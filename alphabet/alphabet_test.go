package alphabet

import (
	"testing"

	"github.com/matryer/is"
)

func TestUserVisible(t *testing.T) {
	is := is.New(t)
	mw := MachineWord([]MachineLetter{7, 14, 12, 8, 4})
	is.Equal(mw.UserVisible(), "homie")

	mw2, err := ToMachineWord("aerolith")
	is.NoErr(err)
	is.Equal(mw2, MachineWord{0, 4, 17, 14, 11, 8, 19, 7})
	is.Equal(mw2.UserVisible(), "aerolith")
}

func TestToMachineWordRejects(t *testing.T) {
	is := is.New(t)
	_, err := ToMachineWord("Apple")
	is.True(err != nil)
	_, err = ToMachineWord("café")
	is.True(err != nil)
}

func TestLetterSet(t *testing.T) {
	is := is.New(t)
	var ls LetterSet
	is.Equal(ls.Len(), 0)
	ls = ls.Add(FromByte('e')).Add(FromByte('z')).Add(FromByte('e'))
	is.Equal(ls.Len(), 2)
	is.True(ls.Contains(FromByte('z')))
	is.True(!ls.Contains(FromByte('a')))
	is.Equal(ls.String(), "{ez}")
}
