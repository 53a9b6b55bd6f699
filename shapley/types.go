// Package shapley declares the model contract, sentinel errors, and result
// types for exact Shapley-value attribution.
package shapley

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Model is the black-box prediction function under explanation.
// It receives a dataset (rows = samples, columns = features) and returns
// one prediction per row. It must be deterministic and side-effect-free
// for attributions to be reproducible, and reentrant if the explainer is
// shared across goroutines.
type Model func(X mat.Matrix) ([]float64, error)

// Sentinel errors for shapley operations.
var (
	// ErrNilModel indicates the explainer was built without a model.
	ErrNilModel = errors.New("shapley: model must not be nil")

	// ErrNilBackground indicates the explainer was built without a background dataset.
	ErrNilBackground = errors.New("shapley: background dataset must not be nil")

	// ErrEmptyBackground indicates a background dataset with no rows.
	ErrEmptyBackground = errors.New("shapley: background dataset must have at least one row")

	// ErrNilInput indicates a nil input matrix.
	ErrNilInput = errors.New("shapley: input matrix must not be nil")

	// ErrEmptyInput indicates an input matrix with no rows.
	ErrEmptyInput = errors.New("shapley: input matrix must have at least one row")

	// ErrDimensionMismatch indicates a feature-count disagreement between
	// the input and the background dataset.
	ErrDimensionMismatch = errors.New("shapley: input feature count must match background dataset")

	// ErrBadFeatureCount indicates a non-positive total feature count.
	ErrBadFeatureCount = errors.New("shapley: feature count must be positive")

	// ErrBadSubsetSize indicates a coalition size outside [0, M-1].
	ErrBadSubsetSize = errors.New("shapley: coalition size out of range")

	// ErrCoalitionIndex indicates a coalition referencing a feature outside [0, M).
	ErrCoalitionIndex = errors.New("shapley: coalition index out of range")

	// ErrInstanceIndex indicates a requested instance row outside the explained set.
	ErrInstanceIndex = errors.New("shapley: instance index out of range")

	// ErrModelOutput indicates the model returned a prediction count different
	// from the number of rows it was given, or a shape not reducible to that.
	ErrModelOutput = errors.New("shapley: model must return one prediction per row")

	// ErrNaNInf indicates the model returned a NaN or infinite prediction
	// while strict finite validation was enabled.
	ErrNaNInf = errors.New("shapley: model returned a non-finite prediction")

	// ErrAdditivity indicates attribution rows that fail the efficiency
	// identity against the model's own predictions.
	ErrAdditivity = errors.New("shapley: attributions violate the additivity identity")

	// ErrFeatureNames indicates configured feature names whose count does not
	// match the feature count.
	ErrFeatureNames = errors.New("shapley: feature name count must match feature count")
)

// Contribution pairs one feature with its attribution, for ranking.
type Contribution struct {
	// Index is the feature's column index.
	Index int

	// Name is the configured feature name; empty when names were not set.
	Name string

	// Value is the feature's Shapley value for the ranked instance.
	Value float64
}

// Explanation bundles the attribution matrix with the context needed to
// read it: the base value every attribution deviates from, and optional
// feature names.
//
// Each row of Values sums to (model prediction for that instance) −
// BaseValue, up to floating-point tolerance.
type Explanation struct {
	// Values holds one Shapley value per (instance, feature) pair.
	Values *mat.Dense

	// BaseValue is the mean model prediction over the background dataset.
	BaseValue float64

	// FeatureNames labels the feature columns; nil when not configured.
	FeatureNames []string
}
