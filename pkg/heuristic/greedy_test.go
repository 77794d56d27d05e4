package heuristic

import (
	"testing"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreedyFourCycle(t *testing.T) {
	g := fourCycle()
	s := NewGreedy(g).Run()

	requireValidSolution(t, g, s)
	assert.Equal(t, int64(22), s.CutValue)
	assert.Equal(t, bruteForceMaxCut(g), s.CutValue)
	// seeded by the max edge (1,2,10): 1 in X, 2 in Y
	assert.Equal(t, []da.Index{1, 3}, s.Partition.X())
	assert.Equal(t, []da.Index{2, 4}, s.Partition.Y())
}

func TestGreedyNoEdges(t *testing.T) {
	g := da.NewGraph(5)
	s := NewGreedy(g).Run()

	requireValidSolution(t, g, s)
	assert.Equal(t, int64(0), s.CutValue)
	assert.Equal(t, []da.Index{1}, s.Partition.X())
	assert.Equal(t, []da.Index{2, 3, 4, 5}, s.Partition.Y())
}

func TestGreedyIsDeterministic(t *testing.T) {
	g := randomGraph(60, 300, 21)
	first := NewGreedy(g).Run()
	requireValidSolution(t, g, first)

	for i := 0; i < 3; i++ {
		again := NewGreedy(g).Run()
		require.Equal(t, first.CutValue, again.CutValue)
		require.Equal(t, first.Partition.Flags(), again.Partition.Flags())
	}
}

func TestGreedyIsolatedVertices(t *testing.T) {
	g := da.NewGraph(6)
	g.AddEdge(2, 5, 4)
	g.AddEdge(5, 6, 3)

	s := NewGreedy(g).Run()
	requireValidSolution(t, g, s)
	assert.Equal(t, int64(7), s.CutValue)
	assert.True(t, s.Partition.InX(2))
	assert.True(t, s.Partition.InY(5))
	assert.True(t, s.Partition.InX(6))
}
