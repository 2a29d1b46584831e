// Package fenwick provides a binary indexed tree (Fenwick tree) over a
// fixed-size int64 sequence.
//
// Compared to a segment tree it stores a single extra slot instead of a
// 4n array and supports a narrower operation set: point addition and
// prefix/range sums, each in O(log n). When point deltas and sums are all
// that's needed, prefer this over rangetree.Tree.
//
// Indexes are 0-based at the API surface; internally the classic
// 1-indexed layout is used so that parent/child hops are plain
// lowest-set-bit arithmetic.
package fenwick

// Tree is a Fenwick tree. The zero value is an empty tree, equivalent
// to New(0).
type Tree struct {
	tree []int64
	n    int
}

// New creates a tree of n zero-valued elements.
func New(n int) *Tree {
	return &Tree{
		tree: make([]int64, n+1),
		n:    n,
	}
}

// NewFrom creates a tree initialized with the given values, in O(n).
func NewFrom(values []int64) *Tree {
	t := New(len(values))

	for i, v := range values {
		// Linear-time build: add each value to its own slot and push
		// the partial sum to the next node that covers it.
		j := i + 1
		t.tree[j] += v

		if parent := j + (j & -j); parent <= t.n {
			t.tree[parent] += t.tree[j]
		}
	}

	return t
}

// Len returns the number of elements.
func (t *Tree) Len() int {
	return t.n
}

// Add adds delta to the element at index i. Requires 0 <= i < Len().
func (t *Tree) Add(i int, delta int64) {
	for i++; i <= t.n; i += i & -i {
		t.tree[i] += delta
	}
}

// PrefixSum returns the sum of elements [0, i], inclusive.
// Requires 0 <= i < Len().
func (t *Tree) PrefixSum(i int) int64 {
	var sum int64
	for i++; i > 0; i -= i & -i {
		sum += t.tree[i]
	}

	return sum
}

// RangeSum returns the sum of elements [left, right], inclusive.
// Requires 0 <= left <= right < Len().
func (t *Tree) RangeSum(left, right int) int64 {
	if left == 0 {
		return t.PrefixSum(right)
	}

	return t.PrefixSum(right) - t.PrefixSum(left-1)
}
