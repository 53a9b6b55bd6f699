// Package powerset enumerates every subset of a finite index set,
// lazily or eagerly, in a stable size-ascending order.
//
// 🚀 What is powerset?
//
//	The powerset of a K-element set is the family of all its 2^K subsets,
//	from the empty set up to the full set.  Explicit powerset enumeration
//	is the combinatorial backbone of:
//	  • Exact Shapley-value attribution (coalitions of features)
//	  • Exhaustive feature-selection searches
//	  • Set-cover / hitting-set brute-force solvers
//	  • Test-case generation over flag combinations
//
// ✨ Key features:
//   - Iterator: lazy, O(K) memory, restartable via Reset
//   - Subsets: eager materialization for modest K (documented tradeoff)
//   - IndicesExcept: the "all indices but one" helper for leave-one-out loops
//   - Stable order: size-ascending, lexicographic within each size
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlshap/powerset"
//
//	it := powerset.NewIterator([]int{0, 2, 3})
//	for it.Next() {
//	  s := it.Subset() // reused buffer; copy to retain
//	  // ... consume s ...
//	}
//
// Performance:
//
//   - Time:   O(2^K) subsets total, O(K) per subset
//   - Memory: O(K) (Iterator) or O(K·2^K) (Subsets)
//
// The enumeration count doubles with every extra element; treat K above
// ~20 as a deliberate, measured decision.
package powerset
