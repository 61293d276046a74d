package stats

import (
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// ComponentWiseMean averages rows of different lengths position by
// position. Entry i is the mean over all rows that have an entry i.
func ComponentWiseMean(rows [][]float64) []float64 {
	width := lo.Max(lo.Map(rows, func(r []float64, _ int) int { return len(r) }))
	out := make([]float64, width)
	col := make([]float64, 0, len(rows))
	for i := range out {
		col = col[:0]
		for _, r := range rows {
			if i < len(r) {
				col = append(col, r[i])
			}
		}
		out[i] = stat.Mean(col, nil)
	}
	return out
}

// Floats converts integer measurements for the functions of this package.
func Floats[T ~int | ~int64 | ~uint64](vals []T) []float64 {
	return lo.Map(vals, func(v T, _ int) float64 { return float64(v) })
}

// Histogram renders vals as a horizontal bar chart with the given number
// of bins and bar width.
func Histogram(vals []float64, bins, width int) (string, error) {
	if len(vals) == 0 {
		return "", nil
	}
	var sb strings.Builder
	h := histogram.Hist(bins, vals)
	if err := histogram.Fprint(&sb, h, histogram.Linear(width)); err != nil {
		return "", err
	}
	return sb.String(), nil
}
