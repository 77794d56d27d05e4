package heuristic

import (
	"context"
	"testing"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefineFromEveryStart(t *testing.T) {
	g := fourCycle()
	ls := NewLocalSearch(g)

	for _, start := range allPartitions(4) {
		before := g.CutValue(start)
		res := ls.Refine(start, 0)

		requireValidSolution(t, g, res.Solution)
		assert.Contains(t, []int64{20, 22}, res.CutValue)
		assert.GreaterOrEqual(t, res.CutValue, before)
		assert.True(t, isLocalOptimum(g, res.Partition))

		// a local optimum stays put
		again := ls.Refine(res.Partition, 0)
		assert.Equal(t, 0, again.Moves)
		assert.Equal(t, res.CutValue, again.CutValue)
	}
}

func TestRefineSteepestAscent(t *testing.T) {
	g := fourCycle()
	ls := NewLocalSearch(g)
	start := da.NewPartitionFromFlags([]bool{false, true, true, false, false}) // {1,2} | {3,4}

	testCases := []struct {
		name      string
		maxDepth  int
		wantCut   int64
		wantMoves int
	}{
		{name: "unbounded", maxDepth: 0, wantCut: 22, wantMoves: 2},
		{name: "one move", maxDepth: 1, wantCut: 11, wantMoves: 1},
		{name: "depth above needed", maxDepth: 10, wantCut: 22, wantMoves: 2},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res := ls.Refine(start, tt.maxDepth)
			assert.Equal(t, tt.wantCut, res.CutValue)
			assert.Equal(t, tt.wantMoves, res.Moves)
		})
	}

	// the start partition is left untouched
	assert.Equal(t, []da.Index{1, 2}, start.X())
}

func TestRefineRandomGraphs(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		g := randomGraph(12, 40, seed)
		ls := NewLocalSearch(g)
		start := RandomPartition(g, NewRand(seed))

		res := ls.Refine(start, 0)
		requireValidSolution(t, g, res.Solution)
		assert.True(t, isLocalOptimum(g, res.Partition))
		assert.GreaterOrEqual(t, res.CutValue, g.CutValue(start))
		assert.LessOrEqual(t, res.CutValue, bruteForceMaxCut(g))
	}
}

func TestMultiStart(t *testing.T) {
	g := randomGraph(40, 160, 8)
	ls := NewLocalSearch(g)

	sequential := ls.MultiStart(context.Background(), 20, 0, 99, 1)
	require.Equal(t, 20, sequential.Runs)
	assert.Greater(t, sequential.AverageCutValue, 0.0)

	for _, workers := range []int{2, 4, 8} {
		parallel := ls.MultiStart(context.Background(), 20, 0, 99, workers)
		assert.Equal(t, sequential, parallel, "workers %d", workers)
	}
}

func TestMultiStartFourCycle(t *testing.T) {
	ls := NewLocalSearch(fourCycle())
	res := ls.MultiStart(context.Background(), 16, 0, 1, 2)

	assert.Equal(t, 16, res.Runs)
	assert.GreaterOrEqual(t, res.AverageCutValue, 20.0)
	assert.LessOrEqual(t, res.AverageCutValue, 22.0)
}

func TestMultiStartEdgeCases(t *testing.T) {
	ls := NewLocalSearch(fourCycle())

	assert.Equal(t, MultiStartResult{}, ls.MultiStart(context.Background(), 0, 0, 1, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, 0, ls.MultiStart(ctx, 10, 0, 1, 2).Runs)
}
