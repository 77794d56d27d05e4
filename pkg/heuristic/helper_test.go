package heuristic

import (
	"testing"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1 -10- 2 -1- 3 -10- 4 -1- 1
func fourCycle() *da.Graph {
	g := da.NewGraph(4)
	g.AddEdge(1, 2, 10)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 4, 10)
	g.AddEdge(4, 1, 1)
	return g
}

// randomGraph returns a graph on n vertices with up to m edges of weight in [-2, 9].
func randomGraph(n, m int, seed uint64) *da.Graph {
	rng := NewRand(seed)
	g := da.NewGraph(n)
	for i := 0; i < m; i++ {
		u := da.Index(rng.Intn(n) + 1)
		v := da.Index(rng.Intn(n) + 1)
		g.AddEdge(u, v, int64(rng.Intn(12)-2))
	}
	return g
}

func bruteForceMaxCut(g *da.Graph) int64 {
	n := g.NumberOfVertices()
	best := int64(0)
	inX := make([]bool, n+1)
	for mask := 0; mask < 1<<n; mask++ {
		for v := 1; v <= n; v++ {
			inX[v] = mask&(1<<(v-1)) != 0
		}
		best = max(best, g.CutValueOfFlags(inX))
	}
	return best
}

func allPartitions(n int) []*da.Partition {
	parts := make([]*da.Partition, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		inX := make([]bool, n+1)
		for v := 1; v <= n; v++ {
			inX[v] = mask&(1<<(v-1)) != 0
		}
		parts = append(parts, da.NewPartitionFromFlags(inX))
	}
	return parts
}

// requireValidSolution checks |X|+|Y| = V, X and Y disjoint and that the cut value matches the
// partition.
func requireValidSolution(t *testing.T, g *da.Graph, s Solution) {
	t.Helper()
	require.NotNil(t, s.Partition)
	p := s.Partition
	require.True(t, p.IsComplete())
	assert.Equal(t, g.NumberOfVertices(), p.SizeX()+p.SizeY())

	seen := make(map[da.Index]struct{})
	for _, v := range p.X() {
		seen[v] = struct{}{}
	}
	for _, v := range p.Y() {
		_, dup := seen[v]
		assert.False(t, dup, "vertex %d on both sides", v)
	}
	assert.Equal(t, g.CutValue(p), s.CutValue)
}

func isLocalOptimum(g *da.Graph, p *da.Partition) bool {
	for v := da.Index(1); int(v) <= g.NumberOfVertices(); v++ {
		sigmaX, sigmaY := g.CutContribution(v, p)
		delta := sigmaX - sigmaY
		if p.InX(v) {
			delta = sigmaY - sigmaX
		}
		if delta > 0 {
			return false
		}
	}
	return true
}
