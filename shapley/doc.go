// Package shapley computes exact Shapley values for black-box model
// predictions by marginalizing over a background dataset.
//
// 🚀 What is a Shapley value?
//
//	Game theory's unique fair way to split a payout among players. Read
//	features as players and the model's prediction as the payout, and each
//	feature receives the share of (prediction − average prediction) it is
//	responsible for.  Widely used for:
//	  • Per-prediction model explanations (credit scoring, pricing, triage)
//	  • Feature auditing & debugging of trained models
//	  • Regulatory reporting on automated decisions
//
// ✨ Key features:
//   - Exact enumeration over all feature coalitions — no sampling noise
//   - Model-agnostic: any func(matrix) → predictions collaborator works
//   - Efficiency, symmetry, and dummy properties hold by construction
//   - Optional additivity verification against the model's own predictions
//   - Strict finite-output validation with an explicit opt-out
//
// ⚙️ Usage:
//
//	import (
//	  "gonum.org/v1/gonum/mat"
//
//	  "github.com/katalvlaran/lvlshap/shapley"
//	)
//
//	model := func(X mat.Matrix) ([]float64, error) { ... }
//	background := mat.NewDense(64, 4, backgroundData)
//
//	exp := shapley.NewExplainer(model, background,
//	  shapley.WithFeatureNames("age", "income", "tenure", "balance"),
//	)
//	phi, err := exp.Values(mat.NewDense(1, 4, instance))
//
// Performance:
//
//   - Model calls: O(n·M·2^(M−1)), each over the full background
//   - Memory:      O(N_background·M) per call (one synthetic copy at a time)
//
// The cost doubles with every feature: exactness is the point of this
// engine, and modest M is its territory. Sampling estimators and surrogate
// kernels are deliberately out of scope.
package shapley
