package graph

import (
	"errors"
	"fmt"
)

// ErrCycle is returned when a topological order does not exist.
var ErrCycle = errors.New("graph contains a cycle")

// TopoSort returns a topological ordering of the vertices 0..n-1 under
// the given directed edges, using Kahn's algorithm: repeatedly emit a
// vertex with no remaining incoming edges. Fails with ErrCycle when not
// every vertex can be emitted.
func TopoSort(n int, edges [][2]int) ([]int, error) {
	adj, inDegree, err := buildAdjacency(n, edges)
	if err != nil {
		return nil, err
	}

	var ready []int
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			ready = append(ready, v)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		u := ready[0]
		ready = ready[1:]
		order = append(order, u)

		for _, v := range adj[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				ready = append(ready, v)
			}
		}
	}

	if len(order) != n {
		return nil, ErrCycle
	}

	return order, nil
}

// Vertex visit states for the DFS variant.
const (
	unvisited = iota
	visiting
	visited
)

// TopoSortDFS returns a topological ordering computed by depth-first
// search in reverse postorder. Encountering an in-progress vertex means
// a back edge, so the sort fails with ErrCycle.
func TopoSortDFS(n int, edges [][2]int) ([]int, error) {
	adj, _, err := buildAdjacency(n, edges)
	if err != nil {
		return nil, err
	}

	state := make([]int, n)
	order := make([]int, 0, n)

	var visit func(u int) error
	visit = func(u int) error {
		state[u] = visiting

		for _, v := range adj[u] {
			switch state[v] {
			case visiting:
				return ErrCycle
			case unvisited:
				if err := visit(v); err != nil {
					return err
				}
			}
		}

		state[u] = visited
		order = append(order, u)

		return nil
	}

	for v := 0; v < n; v++ {
		if state[v] != unvisited {
			continue
		}

		if err := visit(v); err != nil {
			return nil, err
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

func buildAdjacency(n int, edges [][2]int) (map[int][]int, []int, error) {
	adj := make(map[int][]int)
	inDegree := make([]int, n)

	for _, e := range edges {
		u, v := e[0], e[1]

		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, nil, fmt.Errorf("edge (%d,%d) outside vertex range [0,%d)", u, v, n)
		}

		adj[u] = append(adj[u], v)
		inDegree[v]++
	}

	return adj, inDegree, nil
}
