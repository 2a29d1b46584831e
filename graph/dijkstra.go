// Package graph implements shortest paths and topological ordering over
// small adjacency-list graphs with integer vertex ids.
package graph

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrNegativeWeight is returned when adding an edge with a negative
// weight; Dijkstra's relaxation is only correct without them.
var ErrNegativeWeight = errors.New("negative edge weight")

type edge struct {
	to     int
	weight int64
}

// Weighted is a directed graph with non-negative edge weights.
type Weighted struct {
	adj map[int][]edge
}

// NewWeighted creates an empty weighted directed graph.
func NewWeighted() *Weighted {
	return &Weighted{adj: make(map[int][]edge)}
}

// AddEdge adds a directed edge from u to v with the given weight.
// Parallel edges are allowed; the cheaper one wins during relaxation.
func (g *Weighted) AddEdge(u, v int, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %d -> %d (%d)", ErrNegativeWeight, u, v, weight)
	}

	g.adj[u] = append(g.adj[u], edge{to: v, weight: weight})

	return nil
}

// queueItem is a (distance, vertex) pair on the Dijkstra frontier.
type queueItem struct {
	dist int64
	node int
}

type queue []queueItem

func (q queue) Len() int            { return len(q) }
func (q queue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q queue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }

func (q *queue) Pop() interface{} {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]

	return item
}

// ShortestPaths runs Dijkstra's algorithm from src and returns the
// distance and predecessor maps. Both contain entries only for vertices
// reachable from src; the predecessor map has no entry for src itself.
func (g *Weighted) ShortestPaths(src int) (map[int]int64, map[int]int) {
	dist := map[int]int64{src: 0}
	parent := make(map[int]int)

	frontier := &queue{{dist: 0, node: src}}

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(queueItem)

		// A vertex can be queued several times; only the first
		// (cheapest) pop matters, the rest are stale.
		if item.dist > dist[item.node] {
			continue
		}

		for _, e := range g.adj[item.node] {
			candidate := item.dist + e.weight

			known, seen := dist[e.to]
			if seen && candidate >= known {
				continue
			}

			dist[e.to] = candidate
			parent[e.to] = item.node
			heap.Push(frontier, queueItem{dist: candidate, node: e.to})
		}
	}

	return dist, parent
}

// PathTo reconstructs the src-to-dst path from a predecessor map
// produced by ShortestPaths. Returns nil when dst is unreachable.
func PathTo(parent map[int]int, src, dst int) []int {
	if src == dst {
		return []int{src}
	}

	if _, ok := parent[dst]; !ok {
		return nil
	}

	var path []int
	for current := dst; ; {
		path = append(path, current)
		if current == src {
			break
		}
		current = parent[current]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
