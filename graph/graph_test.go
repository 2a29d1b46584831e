package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/leesper/go_rng"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

func TestAddEdgeRejectsNegativeWeight(t *testing.T) {
	t.Parallel()

	g := NewWeighted()

	if err := g.AddEdge(0, 1, -5); !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("Adding a negative-weight edge should fail with ErrNegativeWeight, got %v", err)
	}

	if err := g.AddEdge(0, 1, 0); err != nil {
		t.Errorf("Zero-weight edges are fine, got %v", err)
	}
}

func TestShortestPathsSmall(t *testing.T) {
	t.Parallel()

	g := NewWeighted()
	for _, e := range []struct {
		u, v int
		w    int64
	}{
		{0, 1, 4},
		{0, 2, 1},
		{2, 1, 2},
		{1, 3, 1},
		{2, 3, 5},
	} {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatalf("AddEdge(%d,%d,%d) failed: %s", e.u, e.v, e.w, err)
		}
	}

	dist, parent := g.ShortestPaths(0)

	want := map[int]int64{0: 0, 1: 3, 2: 1, 3: 4}
	for v, w := range want {
		if dist[v] != w {
			t.Errorf("dist[%d] = %d, want %d", v, dist[v], w)
		}
	}

	wantPath := []int{0, 2, 1, 3}
	gotPath := PathTo(parent, 0, 3)

	if len(gotPath) != len(wantPath) {
		t.Fatalf("PathTo(0,3) = %v, want %v", gotPath, wantPath)
	}

	for i := range wantPath {
		if gotPath[i] != wantPath[i] {
			t.Fatalf("PathTo(0,3) = %v, want %v", gotPath, wantPath)
		}
	}
}

func TestShortestPathsUnreachable(t *testing.T) {
	t.Parallel()

	g := NewWeighted()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(2, 3, 1)

	dist, parent := g.ShortestPaths(0)

	if _, ok := dist[3]; ok {
		t.Errorf("Vertex 3 is unreachable from 0, but has a distance entry: %v", dist)
	}

	if got := PathTo(parent, 0, 3); got != nil {
		t.Errorf("PathTo to an unreachable vertex should give nil, got %v", got)
	}

	if got := PathTo(parent, 0, 0); len(got) != 1 || got[0] != 0 {
		t.Errorf("PathTo(0,0) should give [0], got %v", got)
	}
}

// Compare random-graph distances against gonum's Dijkstra.
func TestShortestPathsAgainstGonum(t *testing.T) {
	t.Parallel()

	const (
		numVertices = 60
		numEdges    = 300
		src         = 0
	)

	uniform := rng.NewUniformGenerator(0xD1CE)

	g := NewWeighted()

	oracle := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < numVertices; v++ {
		oracle.AddNode(simple.Node(v))
	}

	// gonum's SetWeightedEdge replaces an existing (u,v) edge while our
	// relaxation would keep the cheaper one, so only distinct pairs.
	seen := make(map[[2]int]bool)

	for i := 0; i < numEdges; i++ {
		u := int(uniform.Int64n(numVertices))
		v := int(uniform.Int64n(numVertices))
		if u == v || seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true

		w := uniform.Int64n(100)

		if err := g.AddEdge(u, v, w); err != nil {
			t.Fatalf("AddEdge failed: %s", err)
		}
		oracle.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(u),
			T: simple.Node(v),
			W: float64(w),
		})
	}

	dist, parent := g.ShortestPaths(src)
	shortest := path.DijkstraFrom(simple.Node(src), oracle)

	for v := 0; v < numVertices; v++ {
		want := shortest.WeightTo(int64(v))
		got, reachable := dist[v]

		if math.IsInf(want, 1) {
			if reachable {
				t.Errorf("Vertex %d: gonum says unreachable, we found distance %d", v, got)
			}
			continue
		}

		if !reachable {
			t.Errorf("Vertex %d: gonum found distance %.0f, we say unreachable", v, want)
			continue
		}

		if float64(got) != want {
			t.Errorf("Vertex %d: got distance %d, gonum says %.0f", v, got, want)
		}

		// The reconstructed path must walk real edges and add up.
		checkPathCost(t, g, parent, src, v, got)
	}
}

func checkPathCost(t *testing.T, g *Weighted, parent map[int]int, src, dst int, want int64) {
	t.Helper()

	hops := PathTo(parent, src, dst)
	if len(hops) == 0 || hops[0] != src || hops[len(hops)-1] != dst {
		t.Errorf("PathTo(%d,%d) returned malformed path %v", src, dst, hops)
		return
	}

	var cost int64
	for i := 1; i < len(hops); i++ {
		cheapest := int64(-1)
		for _, e := range g.adj[hops[i-1]] {
			if e.to == hops[i] && (cheapest < 0 || e.weight < cheapest) {
				cheapest = e.weight
			}
		}

		if cheapest < 0 {
			t.Errorf("PathTo(%d,%d) uses nonexistent edge %d->%d", src, dst, hops[i-1], hops[i])
			return
		}

		cost += cheapest
	}

	if cost != want {
		t.Errorf("PathTo(%d,%d) costs %d, want %d", src, dst, cost, want)
	}
}

func checkTopologicalOrder(t *testing.T, order []int, n int, edges [][2]int) {
	t.Helper()

	if len(order) != n {
		t.Fatalf("Order has %d vertices, want %d", len(order), n)
	}

	position := make([]int, n)
	for i, v := range order {
		position[v] = i
	}

	for _, e := range edges {
		if position[e[0]] >= position[e[1]] {
			t.Errorf("Edge (%d,%d) violated: positions %d >= %d", e[0], e[1], position[e[0]], position[e[1]])
		}
	}
}

func TestTopoSortDAG(t *testing.T) {
	t.Parallel()

	const n = 6

	edges := [][2]int{{5, 2}, {5, 0}, {4, 0}, {4, 1}, {2, 3}, {3, 1}}

	order, err := TopoSort(n, edges)
	if err != nil {
		t.Fatalf("TopoSort on a DAG shouldn't fail: %s", err)
	}
	checkTopologicalOrder(t, order, n, edges)

	order, err = TopoSortDFS(n, edges)
	if err != nil {
		t.Fatalf("TopoSortDFS on a DAG shouldn't fail: %s", err)
	}
	checkTopologicalOrder(t, order, n, edges)
}

func TestTopoSortCycle(t *testing.T) {
	t.Parallel()

	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}

	if _, err := TopoSort(3, edges); !errors.Is(err, ErrCycle) {
		t.Errorf("TopoSort on a cycle should fail with ErrCycle, got %v", err)
	}

	if _, err := TopoSortDFS(3, edges); !errors.Is(err, ErrCycle) {
		t.Errorf("TopoSortDFS on a cycle should fail with ErrCycle, got %v", err)
	}
}

func TestTopoSortBadEdge(t *testing.T) {
	t.Parallel()

	if _, err := TopoSort(2, [][2]int{{0, 5}}); err == nil {
		t.Errorf("Edges outside the vertex range should be rejected")
	}
}

// Agreement with gonum on whether random graphs are orderable at all.
func TestTopoSortAgainstGonum(t *testing.T) {
	t.Parallel()

	const numVertices = 25

	uniform := rng.NewUniformGenerator(31337)

	for round := 0; round < 50; round++ {
		numEdges := int(uniform.Int64n(40))

		edges := make([][2]int, 0, numEdges)
		oracle := simple.NewDirectedGraph()
		for v := 0; v < numVertices; v++ {
			oracle.AddNode(simple.Node(v))
		}

		for i := 0; i < numEdges; i++ {
			u := int(uniform.Int64n(numVertices))
			v := int(uniform.Int64n(numVertices))
			if u == v {
				continue
			}

			edges = append(edges, [2]int{u, v})
			oracle.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}

		_, oracleErr := topo.Sort(oracle)

		order, err := TopoSort(numVertices, edges)
		if (err != nil) != (oracleErr != nil) {
			t.Fatalf("Round %d: cycle verdicts disagree (ours=%v, gonum=%v) edges=%v", round, err, oracleErr, edges)
		}

		orderDFS, errDFS := TopoSortDFS(numVertices, edges)
		if (errDFS != nil) != (oracleErr != nil) {
			t.Fatalf("Round %d: DFS cycle verdicts disagree (ours=%v, gonum=%v)", round, errDFS, oracleErr)
		}

		if err == nil {
			checkTopologicalOrder(t, order, numVertices, edges)
			checkTopologicalOrder(t, orderDFS, numVertices, edges)
		}
	}
}
