package stats

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EstimateProbability fits mu, sigma to sample by maximum likelihood (the
// population, not sample, standard deviation — matching the MLE fit
// spec.md §4.3 calls for) and returns the normal CDF's mass on
// [lower, upper]: Phi((upper-mu)/sigma) - Phi((lower-mu)/sigma).
//
// lower/upper may be math.Inf(-1)/math.Inf(1) for an open-ended interval.
// An empty sample or a zero-variance sample is a numerical degeneracy
// (spec.md §7): it is never surfaced as an error, it resolves to 1 when
// the sample's mean (taken as 0 for an empty sample) falls in
// [lower, upper] and 0 otherwise.
func EstimateProbability(sample []float64, lower, upper float64) float64 {
	if len(sample) == 0 {
		return degenerateProbability(0, lower, upper)
	}

	mu, sigma := stat.PopMeanStdDev(sample, nil)
	if sigma == 0 {
		return degenerateProbability(mu, lower, upper)
	}

	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	return dist.CDF(upper) - dist.CDF(lower)
}

func degenerateProbability(mu, lower, upper float64) float64 {
	if mu >= lower && mu <= upper {
		return 1
	}
	return 0
}

