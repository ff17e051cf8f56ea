package policy

import (
	"math"

	"wecswarm/stats"
)

// DesiredSeparation maps local field conditions to a desired separation
// radius (spec.md §4.4). An agent sitting on better-than-typical power
// (relative to its visible neighbors) pushes peers further away; one on
// worse ground tolerates more crowding to stay near the flock. The
// result never drops below sMin.
func DesiredSeparation(sMin, agentPower float64, neighborPowers []float64) float64 {
	q := stats.EstimateProbability(neighborPowers, math.Inf(-1), agentPower)
	s := sMin * (2.25 - 1.25*q)
	if s < sMin {
		return sMin
	}
	return s
}
