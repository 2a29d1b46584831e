package rangetree

import "fmt"

// LazyTree is a sum segment tree with additive range updates.
//
// It shares Tree's flat 4n layout and adds a parallel pending array.
// pending[i] != 0 means every leaf under node i still owes that amount:
// values[i] already reflects it for the node itself, but the children have
// not been told. The debt is settled (pushed one level down) whenever a
// traversal next visits the node, on both the update and the query path.
type LazyTree struct {
	values  []int64
	pending []int64
	n       int
}

// NewLazy builds a LazyTree from the given non-empty sequence in O(n).
func NewLazy(values []int64) (*LazyTree, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: need at least one element", ErrInvalidSize)
	}

	t := &LazyTree{
		values:  make([]int64, 4*len(values)),
		pending: make([]int64, 4*len(values)),
		n:       len(values),
	}
	t.build(values, 0, 0, t.n-1)

	return t, nil
}

// Len returns the number of leaf elements.
func (t *LazyTree) Len() int {
	return t.n
}

func (t *LazyTree) build(values []int64, node, start, end int) {
	if start == end {
		t.values[node] = values[start]
		return
	}

	mid := (start + end) / 2
	t.build(values, 2*node+1, start, mid)
	t.build(values, 2*node+2, mid+1, end)
	t.values[node] = t.values[2*node+1] + t.values[2*node+2]
}

// push settles node's pending delta: folds it into the node's own
// aggregate, hands it to both children (accumulating, so stacked updates
// compose), and clears it. Must run before anything else on every visit.
func (t *LazyTree) push(node, start, end int) {
	if t.pending[node] == 0 {
		return
	}

	t.values[node] += int64(end-start+1) * t.pending[node]

	if start != end {
		t.pending[2*node+1] += t.pending[node]
		t.pending[2*node+2] += t.pending[node]
	}

	t.pending[node] = 0
}

// RangeUpdate adds delta to every element in [left, right], inclusive.
func (t *LazyTree) RangeUpdate(left, right int, delta int64) error {
	if err := t.checkRange(left, right); err != nil {
		return err
	}

	t.rangeUpdate(left, right, delta, 0, 0, t.n-1)

	return nil
}

func (t *LazyTree) rangeUpdate(left, right int, delta int64, node, start, end int) {
	t.push(node, start, end)

	if right < start || end < left {
		return
	}

	if left <= start && end <= right {
		// Fully covered: record the delta and push right away so this
		// node's aggregate is correct when the parent re-sums below.
		t.pending[node] += delta
		t.push(node, start, end)
		return
	}

	mid := (start + end) / 2
	t.rangeUpdate(left, right, delta, 2*node+1, start, mid)
	t.rangeUpdate(left, right, delta, 2*node+2, mid+1, end)
	t.values[node] = t.values[2*node+1] + t.values[2*node+2]
}

// Query returns the sum of the elements in [left, right], both inclusive.
// It may push pending updates down as a side effect; results are
// unaffected and repeated calls return identical values.
func (t *LazyTree) Query(left, right int) (int64, error) {
	if err := t.checkRange(left, right); err != nil {
		return 0, err
	}

	return t.query(left, right, 0, 0, t.n-1), nil
}

func (t *LazyTree) query(left, right, node, start, end int) int64 {
	// An ancestor's deferred delta may not have reached this node yet.
	// Skipping this push is the classic lazy-tree bug.
	t.push(node, start, end)

	if right < start || end < left {
		return 0
	}

	if left <= start && end <= right {
		return t.values[node]
	}

	mid := (start + end) / 2
	return t.query(left, right, 2*node+1, start, mid) +
		t.query(left, right, 2*node+2, mid+1, end)
}

// Values returns a copy of the current leaf values in index order, with
// all pending updates applied.
func (t *LazyTree) Values() []int64 {
	out := make([]int64, t.n)
	t.collect(out, 0, 0, t.n-1)

	return out
}

func (t *LazyTree) collect(out []int64, node, start, end int) {
	t.push(node, start, end)

	if start == end {
		out[start] = t.values[node]
		return
	}

	mid := (start + end) / 2
	t.collect(out, 2*node+1, start, mid)
	t.collect(out, 2*node+2, mid+1, end)
}

func (t *LazyTree) checkRange(left, right int) error {
	if left < 0 || right >= t.n || left > right {
		return fmt.Errorf("%w: [%d,%d] not within [0,%d)", ErrInvalidRange, left, right, t.n)
	}

	return nil
}

func (t *LazyTree) String() string {
	total := t.values[0] + int64(t.n)*t.pending[0]
	return fmt.Sprintf("LazyTree<n=%d, total=%d>", t.n, total)
}
