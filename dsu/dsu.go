// Package dsu implements a disjoint-set union (union-find) over the
// elements 0..n-1, with path compression and union by rank. Both
// optimizations together make any sequence of operations effectively
// O(1) amortized per call.
//
// Union doubles as a cycle detector for undirected graphs: feeding it
// the edges one by one, the first call that returns false is the edge
// closing a cycle.
package dsu

// Set tracks a partition of 0..n-1 into disjoint components.
type Set struct {
	parent     []int
	rank       []int
	size       []int
	components int
}

// New creates a Set of n elements, each its own component.
func New(n int) *Set {
	s := &Set{
		parent:     make([]int, n),
		rank:       make([]int, n),
		size:       make([]int, n),
		components: n,
	}

	for i := range s.parent {
		s.parent[i] = i
		s.size[i] = 1
	}

	return s
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.parent)
}

// Find returns the representative of x's component. Every element on
// the walk is re-pointed directly at the root, so repeated lookups
// flatten the tree. Requires 0 <= x < Len().
func (s *Set) Find(x int) int {
	if s.parent[x] != x {
		s.parent[x] = s.Find(s.parent[x])
	}

	return s.parent[x]
}

// Union merges the components of x and y. Returns false when they were
// already in the same component (no merge happened). The shallower tree
// is attached under the deeper one to keep lookup paths short.
// Requires 0 <= x, y < Len().
func (s *Set) Union(x, y int) bool {
	rootX := s.Find(x)
	rootY := s.Find(y)

	if rootX == rootY {
		return false
	}

	if s.rank[rootX] < s.rank[rootY] {
		rootX, rootY = rootY, rootX
	}

	s.parent[rootY] = rootX
	s.size[rootX] += s.size[rootY]

	if s.rank[rootX] == s.rank[rootY] {
		s.rank[rootX]++
	}

	s.components--

	return true
}

// Connected reports whether x and y are in the same component.
// Requires 0 <= x, y < Len().
func (s *Set) Connected(x, y int) bool {
	return s.Find(x) == s.Find(y)
}

// ComponentSize returns the number of elements in x's component.
// Requires 0 <= x < Len().
func (s *Set) ComponentSize(x int) int {
	return s.size[s.Find(x)]
}

// Components returns the number of distinct components.
func (s *Set) Components() int {
	return s.components
}
