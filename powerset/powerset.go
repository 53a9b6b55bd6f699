package powerset

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Iterator — lazy powerset enumeration
//
// Description:
//
//	Iterator walks every subset of a fixed index set exactly once,
//	without materializing the full family in memory. Subsets are
//	produced in size-ascending order (empty set first, full set last);
//	within one size the order is lexicographic over element positions.
//
// Algorithm Outline:
//  1. Keep a private copy of the input indices (callers may mutate theirs).
//  2. For each size k = 0..K, drive a fixed-size combination generator
//     over positions [0, K).
//  3. Map each positional combination through the stored indices to form
//     the subset; reuse one output buffer across calls.
//  4. When the size-K class is exhausted, the enumeration is done.
//
// Complexity:
//
//	Time   = O(2^K) subsets total, O(K) per Next call
//	Memory = O(K), independent of the number of subsets
//
// The enumeration is restartable: Reset rewinds to the empty set. Nothing
// is cached between passes; every pass recomputes the sequence.
type Iterator struct {
	items []int                        // private copy of the input indices
	size  int                          // size class currently enumerated
	gen   *combin.CombinationGenerator // generator for the current size class
	buf   []int                        // positional combination buffer, len == size
	cur   []int                        // current subset, items mapped through buf
	done  bool                         // all size classes exhausted
}

// NewIterator returns a lazy enumerator over every subset of items.
// The input slice is copied; items must be distinct for the enumeration
// to be duplicate-free. An empty input yields exactly one subset, the
// empty set.
//
// Complexity: O(K) time and space for K = len(items).
func NewIterator(items []int) *Iterator {
	return &Iterator{
		items: append([]int(nil), items...),
		cur:   make([]int, 0, len(items)),
	}
}

// Next advances to the next subset in the enumeration order.
// It returns false once all 2^K subsets have been produced.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	for {
		if it.gen == nil {
			if it.size > len(it.items) {
				it.done = true

				return false
			}
			it.gen = combin.NewCombinationGenerator(len(it.items), it.size)
			it.buf = make([]int, it.size)
		}
		if it.gen.Next() {
			it.gen.Combination(it.buf)
			it.cur = it.cur[:0]
			for _, p := range it.buf {
				it.cur = append(it.cur, it.items[p])
			}

			return true
		}
		// Current size class exhausted; move to the next one.
		it.gen = nil
		it.size++
	}
}

// Subset returns the subset produced by the last successful Next call.
// The returned slice is a reused buffer, valid only until the next Next
// or Reset; callers that retain subsets must copy them.
func (it *Iterator) Subset() []int {
	return it.cur
}

// Reset rewinds the iterator to the start of the enumeration.
// The following Next call produces the empty set again.
func (it *Iterator) Reset() {
	it.size = 0
	it.gen = nil
	it.buf = nil
	it.cur = it.cur[:0]
	it.done = false
}

// Subsets materializes the full enumeration of items in iterator order,
// each subset freshly allocated. Convenient for modest K; the family
// holds 2^K slices at once, so prefer Iterator when K grows.
// Panics with a stable message when len(items) exceeds MaxElements
// (such a materialization cannot fit in memory regardless).
//
// Complexity: O(K·2^K) time and space.
func Subsets(items []int) [][]int {
	out := make([][]int, 0, NumSubsets(len(items)))

	it := NewIterator(items)
	for it.Next() {
		sub := make([]int, len(it.Subset()))
		copy(sub, it.Subset())
		out = append(out, sub)
	}

	return out
}

// IndicesExcept returns all indices of [0, count) except exclude, in
// ascending order — the index set a leave-one-out enumeration runs over.
//
// Contract:
//   - count must be positive (ErrBadCount otherwise).
//   - exclude must lie in [0, count) (ErrIndexRange otherwise).
//   - count == 1 yields an empty, non-nil slice.
//
// Complexity: O(count) time and space.
func IndicesExcept(count, exclude int) ([]int, error) {
	if count <= 0 {
		return nil, ErrBadCount
	}
	if exclude < 0 || exclude >= count {
		return nil, ErrIndexRange
	}

	out := make([]int, 0, count-1)
	for i := 0; i < count; i++ {
		if i == exclude {
			continue // leave the excluded index out
		}
		out = append(out, i)
	}

	return out, nil
}

// NumSubsets returns 2^k, the number of subsets of a k-element set.
// Panics with a stable message when k is negative or exceeds MaxElements
// (programmer error; the count would not fit in an int).
//
// Complexity: O(1).
func NumSubsets(k int) int {
	if k < 0 || k > MaxElements {
		panic(panicBadNumSubsets)
	}

	return 1 << uint(k)
}
