// Package rangetree implements sum segment trees over fixed-size int64
// sequences: an eager variant (Tree) supporting point assignment and
// range-sum queries, and a lazy-propagation variant (LazyTree) supporting
// additive range updates. Both run every operation in O(log n).
//
// A tree is built once from an initial sequence and keeps its leaf count
// for life; there is no resize. Instances are not safe for concurrent use:
// callers that share one across goroutines must serialize access with
// their own lock, queries included (queries on the lazy variant mutate
// internal state).
package rangetree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when constructing from an empty sequence.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidRange is returned when an index or range falls outside
	// the tree bounds, or when left > right.
	ErrInvalidRange = errors.New("invalid range")
)

// Tree is a sum segment tree with point assignment.
//
// Nodes live in a flat array sized 4n using the implicit heap numbering:
// root at 0, children of i at 2i+1 and 2i+2. Every internal node holds the
// sum of its two children; leaves hold the current element values.
type Tree struct {
	values []int64
	n      int
}

// New builds a Tree from the given non-empty sequence in O(n).
func New(values []int64) (*Tree, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: need at least one element", ErrInvalidSize)
	}

	t := &Tree{
		values: make([]int64, 4*len(values)),
		n:      len(values),
	}
	t.build(values, 0, 0, t.n-1)

	return t, nil
}

// Len returns the number of leaf elements.
func (t *Tree) Len() int {
	return t.n
}

func (t *Tree) build(values []int64, node, start, end int) {
	if start == end {
		t.values[node] = values[start]
		return
	}

	mid := (start + end) / 2
	t.build(values, 2*node+1, start, mid)
	t.build(values, 2*node+2, mid+1, end)
	t.values[node] = t.values[2*node+1] + t.values[2*node+2]
}

// Update assigns value to the element at index, replacing whatever was
// there, and refreshes every aggregate on the leaf-to-root path.
func (t *Tree) Update(index int, value int64) error {
	if index < 0 || index >= t.n {
		return fmt.Errorf("%w: index %d out of [0,%d)", ErrInvalidRange, index, t.n)
	}

	t.update(index, value, 0, 0, t.n-1)

	return nil
}

func (t *Tree) update(index int, value int64, node, start, end int) {
	if start == end {
		t.values[node] = value
		return
	}

	mid := (start + end) / 2
	if index <= mid {
		t.update(index, value, 2*node+1, start, mid)
	} else {
		t.update(index, value, 2*node+2, mid+1, end)
	}
	t.values[node] = t.values[2*node+1] + t.values[2*node+2]
}

// Query returns the sum of the elements in [left, right], both inclusive.
func (t *Tree) Query(left, right int) (int64, error) {
	if err := t.checkRange(left, right); err != nil {
		return 0, err
	}

	return t.query(left, right, 0, 0, t.n-1), nil
}

func (t *Tree) query(left, right, node, start, end int) int64 {
	if right < start || end < left {
		// Disjoint. 0 is the identity for sum.
		return 0
	}

	if left <= start && end <= right {
		return t.values[node]
	}

	mid := (start + end) / 2
	return t.query(left, right, 2*node+1, start, mid) +
		t.query(left, right, 2*node+2, mid+1, end)
}

// Values returns a copy of the current leaf values in index order.
func (t *Tree) Values() []int64 {
	out := make([]int64, t.n)
	t.collect(out, 0, 0, t.n-1)

	return out
}

func (t *Tree) collect(out []int64, node, start, end int) {
	if start == end {
		out[start] = t.values[node]
		return
	}

	mid := (start + end) / 2
	t.collect(out, 2*node+1, start, mid)
	t.collect(out, 2*node+2, mid+1, end)
}

func (t *Tree) checkRange(left, right int) error {
	if left < 0 || right >= t.n || left > right {
		return fmt.Errorf("%w: [%d,%d] not within [0,%d)", ErrInvalidRange, left, right, t.n)
	}

	return nil
}

func (t *Tree) String() string {
	return fmt.Sprintf("Tree<n=%d, total=%d>", t.n, t.values[0])
}
