package stats

import "gonum.org/v1/gonum/stat/distuv"

var unitNormal = distuv.UnitNormal

// ZVal returns the two-tailed critical value of the standard normal
// distribution for a confidence level given in percent, e.g. 95.
// Levels outside (0, 100) are clamped.
func ZVal(level float64) float64 {
	level = min(max(level, 0), 99.9999)
	return unitNormal.Quantile(0.5 + level/200)
}
