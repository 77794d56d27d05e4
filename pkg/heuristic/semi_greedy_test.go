package heuristic

import (
	"testing"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemiGreedyProducesValidSolutions(t *testing.T) {
	g := randomGraph(50, 250, 13)

	for _, alpha := range []float64{0, 0.25, 0.5, 0.75, 1} {
		for seed := uint64(0); seed < 5; seed++ {
			s := NewSemiGreedy(g, alpha, NewRand(seed)).Run()
			requireValidSolution(t, g, s)
		}
	}
}

func TestSemiGreedyFourCycle(t *testing.T) {
	g := fourCycle()
	// for alpha >= 0.5 only the two weight-10 edges can seed the construction, and every
	// completion of either seed cuts all four edges
	for _, alpha := range []float64{0.5, 1} {
		for seed := uint64(1); seed <= 10; seed++ {
			s := NewSemiGreedy(g, alpha, NewRand(seed)).Run()
			requireValidSolution(t, g, s)
			assert.Equal(t, int64(22), s.CutValue, "alpha %v seed %d", alpha, seed)
		}
	}
}

func TestSemiGreedySameSeedSamePartition(t *testing.T) {
	g := randomGraph(80, 400, 17)

	a := NewSemiGreedy(g, 0.3, NewStream(5, 2)).Run()
	b := NewSemiGreedy(g, 0.3, NewStream(5, 2)).Run()

	require.Equal(t, a.CutValue, b.CutValue)
	assert.Equal(t, a.Partition.Flags(), b.Partition.Flags())
}

func TestSemiGreedyNoEdges(t *testing.T) {
	g := da.NewGraph(5)
	s := NewSemiGreedy(g, 0.5, NewRand(1)).Run()

	requireValidSolution(t, g, s)
	assert.Equal(t, int64(0), s.CutValue)
	assert.Equal(t, []da.Index{1}, s.Partition.X())
}

func TestSelectSeedEdgeRespectsThreshold(t *testing.T) {
	g := da.NewGraph(6)
	g.AddEdge(1, 2, 1)
	g.AddEdge(3, 4, 5)
	g.AddEdge(5, 6, 9)
	g.AddEdge(2, 3, 8)

	// threshold 1 + 0.5*8 = 5
	sg := NewSemiGreedy(g, 0.5, NewRand(3))
	for i := 0; i < 50; i++ {
		e := sg.selectSeedEdge()
		assert.GreaterOrEqual(t, e.GetWeight(), int64(5))
	}

	// alpha 1 keeps only the maximum edge
	sg = NewSemiGreedy(g, 1, NewRand(3))
	for i := 0; i < 10; i++ {
		e := sg.selectSeedEdge()
		assert.Equal(t, da.Index(5), e.GetFrom())
		assert.Equal(t, da.Index(6), e.GetTo())
	}
}

// partialConstruction places vertex 1 in X and vertex 2 in Y; every other vertex only has edges
// to those two, so its sigmas are exactly the given weights.
func partialConstruction(n int, edges []da.Edge) (*da.Graph, *construction) {
	g := da.NewGraph(n)
	for _, e := range edges {
		g.AddEdge(e.GetFrom(), e.GetTo(), e.GetWeight())
	}
	c := newConstruction(g)
	c.place(1, da.SideX)
	c.place(2, da.SideY)
	return g, c
}

func TestVertexRCL(t *testing.T) {
	// sigmas (X, Y): 3 = (8, 2), 4 = (5, 5), 5 = (4, 0), 6 = (0, 6).
	// bounds are [0, 8]; the 0 comes from the weaker sides of 5 and 6, not from a greedy value.
	mixed := []da.Edge{
		da.NewEdge(3, 1, 2), da.NewEdge(3, 2, 8),
		da.NewEdge(4, 1, 5), da.NewEdge(4, 2, 5),
		da.NewEdge(5, 2, 4),
		da.NewEdge(6, 1, 6),
	}
	// sigmas: 3 = (9, 1), 4 = (5, 5). bounds [1, 9], set by both sides of vertex 3.
	lopsided := []da.Edge{
		da.NewEdge(3, 1, 1), da.NewEdge(3, 2, 9),
		da.NewEdge(4, 1, 5), da.NewEdge(4, 2, 5),
	}

	testCases := []struct {
		name  string
		n     int
		edges []da.Edge
		alpha float64
		want  []da.Index
	}{
		{name: "alpha 0 keeps every candidate", n: 6, edges: mixed, alpha: 0, want: []da.Index{3, 4, 5, 6}},
		// threshold 4: vertex 5 sits exactly on it. Bounds taken from greedy values only would
		// give [4, 8] and threshold 6.
		{name: "alpha 0.5 includes the boundary", n: 6, edges: mixed, alpha: 0.5, want: []da.Index{3, 4, 5, 6}},
		{name: "alpha 0.75 threshold 6", n: 6, edges: mixed, alpha: 0.75, want: []da.Index{3, 6}},
		{name: "alpha 1 keeps the best", n: 6, edges: mixed, alpha: 1, want: []da.Index{3}},
		// threshold 1 + 0.5*8 = 5 reaches vertex 4 exactly
		{name: "lower bound from the weak side of the best vertex", n: 4, edges: lopsided, alpha: 0.5, want: []da.Index{3, 4}},
		{name: "alpha above 1 leaves the list empty", n: 6, edges: mixed, alpha: 1.5, want: []da.Index{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, c := partialConstruction(tt.n, tt.edges)
			sg := NewSemiGreedy(g, tt.alpha, NewRand(1))

			assert.Equal(t, tt.want, sg.vertexRCL(c, []da.Index{}))
		})
	}
}

func TestNextVertexFallsBackToBestUnassigned(t *testing.T) {
	g, c := partialConstruction(6, []da.Edge{
		da.NewEdge(3, 1, 2), da.NewEdge(3, 2, 8),
		da.NewEdge(4, 1, 5), da.NewEdge(4, 2, 5),
		da.NewEdge(5, 2, 4),
		da.NewEdge(6, 1, 6),
	})
	sg := NewSemiGreedy(g, 1.5, NewRand(1))

	rcl := sg.vertexRCL(c, nil)
	require.Empty(t, rcl)
	assert.Equal(t, da.Index(3), sg.nextVertex(c, rcl))

	// the whole construction still completes through the fallback
	requireValidSolution(t, g, sg.Run())
}

func TestVertexRCLDrawsOnlyFromList(t *testing.T) {
	g, c := partialConstruction(6, []da.Edge{
		da.NewEdge(3, 1, 2), da.NewEdge(3, 2, 8),
		da.NewEdge(4, 1, 5), da.NewEdge(4, 2, 5),
		da.NewEdge(5, 2, 4),
		da.NewEdge(6, 1, 6),
	})
	sg := NewSemiGreedy(g, 0.75, NewRand(3))

	rcl := sg.vertexRCL(c, nil)
	for i := 0; i < 50; i++ {
		assert.Contains(t, []da.Index{3, 6}, sg.nextVertex(c, rcl))
	}
}
