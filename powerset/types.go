// Package powerset defines sentinel errors and size limits for subset
// enumeration over index sets.
package powerset

import "errors"

// Sentinel errors for powerset operations.
var (
	// ErrBadCount indicates a non-positive element count.
	ErrBadCount = errors.New("powerset: element count must be positive")

	// ErrIndexRange indicates an excluded index outside [0, count).
	ErrIndexRange = errors.New("powerset: excluded index out of range")
)

// MaxElements is the largest set size whose subset count 2^k fits in an int.
// NumSubsets and Subsets refuse larger inputs; the Iterator accepts them but
// such enumerations cannot be exhausted in practice.
const MaxElements = 62

// panicBadNumSubsets is the stable panic message for out-of-range NumSubsets input.
const panicBadNumSubsets = "powerset: NumSubsets: element count must be in [0, 62]"
