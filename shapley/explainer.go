package shapley

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlshap/powerset"
)

// Explainer computes exact Shapley values for a model against a background
// dataset.
//
// The explainer holds the model and the background by reference for its
// lifetime and never mutates the background: every evaluation runs on a
// private synthetic copy. It keeps no mutable state of its own, so one
// Explainer is safe for concurrent use from multiple goroutines provided
// the model function is reentrant. No internal locking exists or is needed.
//
// The zero value is not usable; construct with NewExplainer.
type Explainer struct {
	model      Model      // black-box prediction function, invoked only here
	background mat.Matrix // reference dataset of shape (N_background, M), read-only
	opts       options    // resolved configuration
}

// NewExplainer builds an Explainer around a model and a background dataset
// of shape (N_background, M). Nothing is validated here: shape and model
// problems surface as sentinel errors on the first computation, keeping
// construction infallible.
//
// Complexity: O(1); the background is referenced, not copied.
func NewExplainer(model Model, background mat.Matrix, opts ...Option) *Explainer {
	e := &Explainer{
		model:      model,
		background: background,
		opts:       defaultOptions(),
	}
	// Apply options
	for _, opt := range opts {
		opt(&e.opts)
	}

	return e
}

// Values — exact Shapley attribution matrix
//
// Description:
//
//	For every instance row of X and every feature column, Values computes
//	the feature's exact Shapley value: the weighted sum, over all
//	coalitions of the other features, of the feature's marginal change to
//	the model's conditional expectation.
//
// Algorithm Outline:
//  1. Validate shapes eagerly; nothing partial is ever returned.
//  2. For each instance i: extract row x.
//  3. For each feature f: enumerate coalitions S of the other features and
//     accumulate weight(M,|S|)·(E[model|S∪{f}] − E[model|S]) into cell (i, f).
//  4. Optionally verify the additivity identity per instance.
//
// Properties (up to floating-point tolerance):
//   - Efficiency: each output row sums to model(x) − BaseValue().
//   - Dummy: a feature the model never reacts to receives 0.
//   - Symmetry: interchangeable features receive equal values.
//
// Cost: O(n·M·2^(M−1)) model invocations, each over the full background.
// Exact enumeration is exponential in M; modest feature counts are this
// engine's territory.
//
// Errors: ErrNilModel, ErrNilBackground, ErrEmptyBackground, ErrNilInput,
// ErrEmptyInput, ErrBadFeatureCount, ErrDimensionMismatch, ErrModelOutput,
// ErrNaNInf, ErrAdditivity, and wrapped model errors.
func (e *Explainer) Values(X mat.Matrix) (*mat.Dense, error) {
	// --- 1. Eager validation ---
	bgRows, m, err := e.validateInput(X)
	if err != nil {
		return nil, err
	}
	n, _ := X.Dims()

	// --- 2. Per-cell attribution loop ---
	out := mat.NewDense(n, m, nil)
	x := make([]float64, m) // current instance row

	var (
		i, f int     // instance row, feature column
		phi  float64 // Shapley value for cell (i, f)
	)
	for i = 0; i < n; i++ {
		mat.Row(x, i, X) // copy row i of X into x
		for f = 0; f < m; f++ {
			phi, err = e.singleValue(f, x, bgRows)
			if err != nil {
				return nil, err
			}
			out.Set(i, f, phi)
		}
	}

	// --- 3. Optional additivity verification ---
	if e.opts.checkAdditivity {
		if err = e.verifyAdditivity(X, out, n, bgRows); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// singleValue accumulates the Shapley value of feature f for instance x.
// The caller has validated shapes; bgRows is the background row count.
//
// Coalitions enumerate lazily (2^(M−1) of them), so memory stays O(M)
// while the model is invoked twice per coalition.
func (e *Explainer) singleValue(f int, x []float64, bgRows int) (float64, error) {
	m := len(x)
	others, err := powerset.IndicesExcept(m, f)
	if err != nil {
		return 0, err
	}

	var (
		acc     float64 // running weighted sum of marginal contributions
		without float64 // E[model | S]
		with    float64 // E[model | S ∪ {f}]
		w       float64 // permutation weight for |S|
	)
	withF := make([]int, 0, m) // reusable S ∪ {f} buffer

	it := powerset.NewIterator(others)
	for it.Next() {
		s := it.Subset()

		without, err = e.expectation(s, x, bgRows)
		if err != nil {
			return 0, err
		}

		withF = append(append(withF[:0], s...), f)
		with, err = e.expectation(withF, x, bgRows)
		if err != nil {
			return 0, err
		}

		w, err = PermutationWeight(m, len(s))
		if err != nil {
			return 0, err
		}
		acc += w * (with - without)
	}

	return acc, nil
}

// validateInput runs the eager shape checks shared by Values and Explain.
//
// Stage 1: collaborators (model, background) present and well-formed.
// Stage 2: input present, non-empty, and column-compatible.
//
// Returns the background row count and the feature count.
func (e *Explainer) validateInput(X mat.Matrix) (bgRows, m int, err error) {
	bgRows, m, err = e.backgroundDims()
	if err != nil {
		return 0, 0, err
	}
	if X == nil {
		return 0, 0, ErrNilInput
	}

	n, c := X.Dims()
	if n <= 0 {
		return 0, 0, ErrEmptyInput
	}
	if c != m {
		return 0, 0, ErrDimensionMismatch
	}

	return bgRows, m, nil
}

// verifyAdditivity checks every attribution row against the efficiency
// identity sum(φ) = prediction − base. The model is invoked once more on a
// private copy of X; the tolerance is relative with an absolute floor of 1.
func (e *Explainer) verifyAdditivity(X mat.Matrix, out *mat.Dense, n, bgRows int) error {
	preds, err := e.model(mat.DenseCopyOf(X))
	if err != nil {
		return fmt.Errorf("shapley: model invocation: %w", err)
	}
	if len(preds) != n {
		return ErrModelOutput
	}
	if e.opts.validateNaNInf && !allFinite(preds) {
		return ErrNaNInf
	}

	base, err := e.expectation(nil, nil, bgRows)
	if err != nil {
		return err
	}

	var want, got, scale float64
	for i := 0; i < n; i++ {
		want = preds[i] - base
		got = floats.Sum(out.RawRowView(i))
		scale = math.Abs(want)
		if scale < 1 {
			scale = 1 // absolute floor near zero
		}
		if math.Abs(got-want) > e.opts.tolerance*scale {
			return fmt.Errorf("shapley: instance %d: %w", i, ErrAdditivity)
		}
	}

	return nil
}

// BaseValue returns the mean model prediction over the background dataset —
// the empty-coalition expectation every attribution deviates from.
// Costs one model invocation over the background per call.
func (e *Explainer) BaseValue() (float64, error) {
	rows, _, err := e.backgroundDims()
	if err != nil {
		return 0, err
	}

	return e.expectation(nil, nil, rows)
}

// Explain runs Values and packages the result with its reading context:
// the base value and any configured feature names. Name-count problems
// surface before any model call.
func (e *Explainer) Explain(X mat.Matrix) (*Explanation, error) {
	_, m, err := e.backgroundDims()
	if err != nil {
		return nil, err
	}
	if e.opts.featureNames != nil && len(e.opts.featureNames) != m {
		return nil, ErrFeatureNames
	}

	vals, err := e.Values(X)
	if err != nil {
		return nil, err
	}

	base, err := e.BaseValue()
	if err != nil {
		return nil, err
	}

	var names []string
	if e.opts.featureNames != nil {
		names = append([]string(nil), e.opts.featureNames...)
	}

	return &Explanation{Values: vals, BaseValue: base, FeatureNames: names}, nil
}

// TopFeatures ranks the features of one instance by absolute attribution,
// strongest first, returning at most k contributions. Ties keep the lower
// feature index first; k above the feature count is clamped; k ≤ 0 yields
// an empty slice.
//
// Complexity: O(M log M) time, O(M) space.
func (ex *Explanation) TopFeatures(instance, k int) ([]Contribution, error) {
	if ex == nil || ex.Values == nil {
		return nil, ErrNilInput
	}

	n, m := ex.Values.Dims()
	if instance < 0 || instance >= n {
		return nil, ErrInstanceIndex
	}

	contribs := make([]Contribution, m)
	for j := 0; j < m; j++ {
		contribs[j] = Contribution{Index: j, Value: ex.Values.At(instance, j)}
		if ex.FeatureNames != nil {
			contribs[j].Name = ex.FeatureNames[j]
		}
	}
	sort.SliceStable(contribs, func(a, b int) bool {
		return math.Abs(contribs[a].Value) > math.Abs(contribs[b].Value)
	})

	if k < 0 {
		k = 0
	}
	if k > m {
		k = m
	}

	return contribs[:k], nil
}
