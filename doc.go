// Package lvlshap is your in-memory engine for explaining black-box model
// predictions — exact Shapley values computed by full coalition
// enumeration over a background dataset.
//
// 🚀 What is lvlshap?
//
//	A small, thread-safe attribution library that brings together:
//		• Exact Shapley values: every coalition enumerated, no sampling, no kernels
//		• Background marginalization: absent features keep their dataset values
//		• Baseline & packaging: base value, named features, magnitude ranking
//		• Coalition inspection: query any conditional expectation directly
//		• Powerset utilities: lazy size-ascending subset enumeration
//
// ✨ Why choose lvlshap?
//
//   - Deterministic – same model, data, and instance ⇒ identical output
//   - Model-agnostic – any func(matrix) → predictions; no gradients, no internals
//   - Honest guarantees – efficiency, symmetry and dummy hold exactly,
//     with an optional per-instance additivity check
//   - Pure Go – no cgo; numerics via gonum
//
// Under the hood, everything is organized under two subpackages:
//
//	powerset/ — lazy & eager subset enumeration over index sets
//	shapley/  — Explainer, permutation weights, coalition expectations
//
// Quick example:
//
//	exp := shapley.NewExplainer(model, background)
//	phi, err := exp.Values(instances) // one attribution row per instance
//
// Exact enumeration costs O(n·M·2^(M−1)) model invocations: generous for a
// dozen features, hopeless for a hundred. Choose your M accordingly.
//
//	go get github.com/katalvlaran/lvlshap
package lvlshap
