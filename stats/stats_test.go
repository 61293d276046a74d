package stats

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
	}
}

func TestMinMaxLast(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{4, 2, 9, 3} {
		s.Push(v)
	}
	is.Equal(s.Min(), 2.0)
	is.Equal(s.Max(), 9.0)
	is.Equal(s.Last(), 3.0)
	is.Equal(s.Iterations(), 4)
}

func TestConfidenceInterval(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	s := &Statistic{}
	for _, v := range []float64{10, 12, 23, 23, 16, 23, 21, 16} {
		s.Push(v)
	}
	// 1.96 * 5.2372 / sqrt(8)
	is.True(FuzzyEqual(s.ConfidenceInterval(95), 3.6291481034))
	is.Equal((&Statistic{}).ConfidenceInterval(95), 0.0)
}

func TestComponentWiseMean(t *testing.T) {
	is := is.New(t)
	got := ComponentWiseMean([][]float64{
		{1, 2, 3},
		{3, 4},
		{5},
	})
	is.Equal(got, []float64{3, 3, 3})
	is.Equal(len(ComponentWiseMean(nil)), 0)
	is.Equal(Floats([]uint64{1, 2}), []float64{1, 2})
}

func TestHistogram(t *testing.T) {
	is := is.New(t)
	out, err := Histogram([]float64{1, 2, 2, 3, 3, 3, 4}, 4, 20)
	is.NoErr(err)
	is.True(strings.Count(out, "\n") >= 4)
	out, err = Histogram(nil, 4, 20)
	is.NoErr(err)
	is.Equal(out, "")
}
