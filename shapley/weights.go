package shapley

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// logWeightThreshold is the feature count above which PermutationWeight
// switches from the exact integer binomial to the log-domain form.
// C(m−1, s) stays within int64 for every s up to this bound.
const logWeightThreshold = 60

// PermutationWeight — Shapley fair-averaging weight
//
// Description:
//
//	Under a uniform-random permutation of feature arrival order, the set
//	of features preceding a fixed feature equals one specific coalition S
//	of size s with probability s!·(m−s−1)!/m!. PermutationWeight returns
//	that probability via the equivalent closed form
//
//	    weight(m, s) = s!·(m−s−1)!/m! = 1 / (m · C(m−1, s))
//
//	Marginal contributions scaled by this weight and summed over all
//	coalitions of the other features form the exact Shapley value.
//
// Numeric policy:
//
//	The closed form divides by a single binomial, so no factorial is ever
//	materialized. Up to logWeightThreshold features the binomial is exact
//	integer arithmetic; beyond it the weight becomes
//	exp(−ln m − ln C(m−1, s)), which cannot overflow for any practical m.
//
// Normalization:
//
//	Each size class jointly carries mass C(m−1, s)·weight(m, s) = 1/m, so
//	the total over all coalitions of all sizes is exactly 1.
//
// Contract:
//   - m ≥ 1 (ErrBadFeatureCount otherwise).
//   - 0 ≤ s ≤ m−1 (ErrBadSubsetSize otherwise).
//   - The result is strictly positive.
//
// Complexity: O(min(s, m−1−s)) below the threshold, O(1) above.
func PermutationWeight(m, s int) (float64, error) {
	if m <= 0 {
		return 0, ErrBadFeatureCount
	}
	if s < 0 || s > m-1 {
		return 0, ErrBadSubsetSize
	}

	if m <= logWeightThreshold {
		return 1 / (float64(m) * float64(combin.Binomial(m-1, s))), nil
	}

	// Log-domain form for large m; exact up to floating-point rounding.
	return math.Exp(-math.Log(float64(m)) - combin.LogGeneralizedBinomial(float64(m-1), float64(s))), nil
}
