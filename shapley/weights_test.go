package shapley_test

import (
	"testing"

	"github.com/katalvlaran/lvlshap/shapley"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

// TestPermutationWeight_SingleFeature verifies the degenerate one-feature
// game: the empty coalition carries the whole mass.
func TestPermutationWeight_SingleFeature(t *testing.T) {
	w, err := shapley.PermutationWeight(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w, "with one feature the empty coalition has weight 1")
}

// TestPermutationWeight_KnownValues spot-checks s!·(m−s−1)!/m! for small m.
func TestPermutationWeight_KnownValues(t *testing.T) {
	cases := []struct {
		m, s int
		want float64
	}{
		{2, 0, 1.0 / 2},  // 0!·1!/2!
		{2, 1, 1.0 / 2},  // 1!·0!/2!
		{3, 0, 1.0 / 3},  // 0!·2!/3!
		{3, 1, 1.0 / 6},  // 1!·1!/3!
		{3, 2, 1.0 / 3},  // 2!·0!/3!
		{4, 1, 1.0 / 12}, // 1!·2!/4!
		{4, 2, 1.0 / 12}, // 2!·1!/4!
	}
	for _, tc := range cases {
		w, err := shapley.PermutationWeight(tc.m, tc.s)
		require.NoError(t, err, "m=%d s=%d", tc.m, tc.s)
		assert.InDelta(t, tc.want, w, 1e-15, "weight(%d, %d)", tc.m, tc.s)
	}
}

// TestPermutationWeight_MassNormalization verifies the permutation-model
// identity: coalitions of one size class jointly carry mass exactly 1/m,
// and all size classes together sum to 1.
func TestPermutationWeight_MassNormalization(t *testing.T) {
	for m := 1; m <= 12; m++ {
		total := 0.0
		for s := 0; s <= m-1; s++ {
			w, err := shapley.PermutationWeight(m, s)
			require.NoError(t, err)

			classMass := float64(combin.Binomial(m-1, s)) * w
			assert.InDelta(t, 1.0/float64(m), classMass, 1e-12,
				"size class s=%d of m=%d must carry mass 1/m", s, m)
			total += classMass
		}
		assert.InDelta(t, 1.0, total, 1e-12, "total mass for m=%d must be 1", m)
	}
}

// TestPermutationWeight_SymmetryInSize verifies weight(m, s) == weight(m, m−1−s),
// the factorial-product symmetry of the formula.
func TestPermutationWeight_SymmetryInSize(t *testing.T) {
	const m = 9
	for s := 0; s <= m-1; s++ {
		a, err := shapley.PermutationWeight(m, s)
		require.NoError(t, err)
		b, err := shapley.PermutationWeight(m, m-1-s)
		require.NoError(t, err)
		assert.InDelta(t, a, b, 1e-15, "weight(%d,%d) vs weight(%d,%d)", m, s, m, m-1-s)
	}
}

// TestPermutationWeight_Positive confirms strict positivity across the
// valid argument range.
func TestPermutationWeight_Positive(t *testing.T) {
	for m := 1; m <= 20; m++ {
		for s := 0; s <= m-1; s++ {
			w, err := shapley.PermutationWeight(m, s)
			require.NoError(t, err)
			assert.Positive(t, w, "weight(%d, %d) must be > 0", m, s)
		}
	}
}

// TestPermutationWeight_LogDomainLargeM exercises the log-domain path and
// pins it to closed-form anchors: weight(m, 0) = weight(m, m−1) = 1/m.
func TestPermutationWeight_LogDomainLargeM(t *testing.T) {
	const m = 80 // well above the exact-integer threshold

	w0, err := shapley.PermutationWeight(m, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0/float64(m), w0, 1e-12, "empty coalition weight is 1/m")

	wLast, err := shapley.PermutationWeight(m, m-1)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0/float64(m), wLast, 1e-12, "full coalition weight is 1/m")

	// Size symmetry must survive the log-domain form.
	a, err := shapley.PermutationWeight(m, 10)
	require.NoError(t, err)
	b, err := shapley.PermutationWeight(m, m-1-10)
	require.NoError(t, err)
	assert.InEpsilon(t, a, b, 1e-9, "weight(%d,10) vs weight(%d,%d)", m, m, m-1-10)
}

// TestPermutationWeight_ThresholdContinuity compares both computation paths
// on either side of the switchover; weight(m, 0) = 1/m pins them together.
func TestPermutationWeight_ThresholdContinuity(t *testing.T) {
	exact, err := shapley.PermutationWeight(60, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/60, exact, 1e-15)

	logged, err := shapley.PermutationWeight(61, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0/61, logged, 1e-12)
}

// TestPermutationWeight_BadFeatureCount ensures m ≤ 0 errors with
// ErrBadFeatureCount.
func TestPermutationWeight_BadFeatureCount(t *testing.T) {
	_, err := shapley.PermutationWeight(0, 0)
	assert.ErrorIs(t, err, shapley.ErrBadFeatureCount, "m=0 must be rejected")

	_, err = shapley.PermutationWeight(-2, 0)
	assert.ErrorIs(t, err, shapley.ErrBadFeatureCount, "negative m must be rejected")
}

// TestPermutationWeight_BadSubsetSize ensures s outside [0, m−1] errors
// with ErrBadSubsetSize.
func TestPermutationWeight_BadSubsetSize(t *testing.T) {
	_, err := shapley.PermutationWeight(3, -1)
	assert.ErrorIs(t, err, shapley.ErrBadSubsetSize, "negative s must be rejected")

	_, err = shapley.PermutationWeight(3, 3)
	assert.ErrorIs(t, err, shapley.ErrBadSubsetSize, "s==m is outside the coalition range")
}
