// Package shapley: functional configuration for the explainer.
// Defaults are constants; Option constructors panic only on nonsensical
// values (programmer error), while anything data-dependent surfaces later
// as a sentinel error.
package shapley

import "math"

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultTolerance is the relative tolerance of the additivity check.
	DefaultTolerance = 1e-6

	// DefaultValidateNaNInf toggles strict finite-value validation of model output.
	DefaultValidateNaNInf = true
)

// panicToleranceInvalid is the stable panic message for a bad WithTolerance value.
const panicToleranceInvalid = "shapley: WithTolerance: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly; the last
// writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is unexported so the explainer's behavior can only change through
// documented constructors.
type options struct {
	tolerance       float64  // ≥ 0; DefaultTolerance
	validateNaNInf  bool     // DefaultValidateNaNInf
	checkAdditivity bool     // off unless WithAdditivityCheck
	featureNames    []string // nil unless WithFeatureNames
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		tolerance:      DefaultTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// WithTolerance sets the relative tolerance used by the additivity check.
// Panics with a stable message when eps is NaN, infinite, or negative.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = eps }
}

// WithAdditivityCheck verifies every attribution row against the efficiency
// identity sum(φ) == prediction − base value after computation, at the
// price of one extra model invocation on the input matrix.
func WithAdditivityCheck() Option {
	return func(o *options) { o.checkAdditivity = true }
}

// WithValidateNaNInf enables strict finite-value validation of model output.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf admits NaN/±Inf model predictions instead of
// rejecting them with ErrNaNInf. Means and attributions then follow IEEE
// arithmetic and may themselves be non-finite.
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

// WithFeatureNames labels the feature columns of every Explanation.
// The count is checked against the data's feature count when Explain runs
// (ErrFeatureNames), not here, because M is a property of the background.
func WithFeatureNames(names ...string) Option {
	return func(o *options) { o.featureNames = append([]string(nil), names...) }
}
