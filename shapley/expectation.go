package shapley

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CoalitionExpectation — conditional expectation via background marginalization
//
// Description:
//
//	Estimates E[model(X) | X_S = x_S] for a coalition S of feature indices:
//	copy the background dataset, overwrite every coalition column with the
//	instance's value for that column (broadcast down all rows), invoke the
//	model once on the synthetic dataset, and return the arithmetic mean of
//	its predictions. Columns outside the coalition keep their background
//	values — that is the marginalization.
//
// Algorithm Outline:
//  1. Validate explainer state and arguments (sentinel errors).
//  2. synth ← private copy of the background dataset.
//  3. For each feature index j in S: synth[i][j] ← x[j] for every row i.
//  4. preds ← model(synth); require one finite prediction per row.
//  5. Return mean(preds).
//
// The empty coalition skips step 3 and yields the unconditional mean
// prediction over the background — the attribution baseline. Duplicate
// coalition indices are harmless: the overwrite is idempotent. The full
// coalition overwrites every column.
//
// Side effects: none. The stored background is never mutated; the model
// only ever sees the synthetic copy.
//
// Contract:
//   - len(x) must equal the background's column count (ErrDimensionMismatch).
//   - Every coalition index must lie in [0, M) (ErrCoalitionIndex).
//   - Model output length must equal the background row count (ErrModelOutput).
//
// Complexity: O(N·M) copy + one model invocation over N background rows.
func (e *Explainer) CoalitionExpectation(coalition []int, x []float64) (float64, error) {
	rows, cols, err := e.backgroundDims()
	if err != nil {
		return 0, err
	}
	if len(x) != cols {
		return 0, ErrDimensionMismatch
	}
	for _, j := range coalition {
		if j < 0 || j >= cols {
			return 0, ErrCoalitionIndex
		}
	}

	return e.expectation(coalition, x, rows)
}

// expectation is the unvalidated core of CoalitionExpectation; callers have
// already checked the coalition and instance against the background shape.
// An empty coalition never reads x, so BaseValue passes x == nil.
func (e *Explainer) expectation(coalition []int, x []float64, rows int) (float64, error) {
	// Synthetic dataset: private copy with coalition columns overwritten.
	// The loop ranges over coalition feature columns only; the background
	// row count bounds nothing here but the broadcast itself.
	synth := mat.DenseCopyOf(e.background)

	var (
		i, j int // background row, coalition feature column
	)
	for _, j = range coalition {
		for i = 0; i < rows; i++ {
			synth.Set(i, j, x[j]) // broadcast the instance value down column j
		}
	}

	preds, err := e.model(synth)
	if err != nil {
		return 0, fmt.Errorf("shapley: model invocation: %w", err)
	}
	if len(preds) != rows {
		return 0, ErrModelOutput
	}
	if e.opts.validateNaNInf && !allFinite(preds) {
		return 0, ErrNaNInf
	}

	return stat.Mean(preds, nil), nil
}

// backgroundDims validates the stored collaborators and reports the
// background's shape.
//
// Stage 1: model and background present.
// Stage 2: background has rows and a positive feature count.
func (e *Explainer) backgroundDims() (rows, cols int, err error) {
	if e.model == nil {
		return 0, 0, ErrNilModel
	}
	if e.background == nil {
		return 0, 0, ErrNilBackground
	}

	rows, cols = e.background.Dims()
	if rows <= 0 {
		return 0, 0, ErrEmptyBackground
	}
	if cols <= 0 {
		return 0, 0, ErrBadFeatureCount
	}

	return rows, cols, nil
}

// allFinite reports whether every value is neither NaN nor ±Inf.
func allFinite(xs []float64) bool {
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
