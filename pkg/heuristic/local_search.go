package heuristic

import (
	"context"

	"github.com/lintang-b-s/grasp-maxcut/pkg"
	"github.com/lintang-b-s/grasp-maxcut/pkg/concurrent"
	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
)

// LocalSearch improves a partition with steepest-ascent single-vertex moves.
type LocalSearch struct {
	graph *da.Graph
}

func NewLocalSearch(graph *da.Graph) *LocalSearch {
	return &LocalSearch{graph: graph}
}

/*
Refine runs local search on a copy of start. Every round picks the vertex whose move to the other
side gives the strictly largest positive gain (lowest id on ties) and moves only that vertex. It
stops at a local optimum or after maxDepth moves (maxDepth <= 0: no cap).

gain[v] = sigmaY(v) - sigmaX(v) for v in X and sigmaX(v) - sigmaY(v) for v in Y, i.e. the weight
towards v's own side minus the weight towards the other side. Moving b only changes the gain of b
(negated) and of its neighbours (+-2w), so a round costs O(V + deg(b)) instead of O(V + E).
*/
func (ls *LocalSearch) Refine(start *da.Partition, maxDepth int) LocalSearchResult {
	p := start.Clone()
	n := ls.graph.NumberOfVertices()
	util.AssertPanic(p.NumberOfVertices() == n, "local search: partition and graph sizes differ")

	gain := make([]da.Weight, n+1)
	for v := da.Index(1); int(v) <= n; v++ {
		sigmaX, sigmaY := ls.graph.CutContribution(v, p)
		switch p.Side(v) {
		case da.SideX:
			gain[v] = sigmaY - sigmaX
		case da.SideY:
			gain[v] = sigmaX - sigmaY
		}
	}

	moves := 0
	for maxDepth <= pkg.UNBOUNDED_DEPTH || moves < maxDepth {
		best, found := bestMove(p, gain)
		if !found {
			break
		}
		ls.move(p, gain, best)
		moves++
	}

	return LocalSearchResult{
		Solution: newSolution(ls.graph, p),
		Moves:    moves,
	}
}

func bestMove(p *da.Partition, gain []da.Weight) (da.Index, bool) {
	var (
		best      da.Index
		bestDelta da.Weight
		found     bool
	)
	for v := 1; v < len(gain); v++ {
		if gain[v] > bestDelta && p.IsAssigned(da.Index(v)) {
			best, bestDelta, found = da.Index(v), gain[v], true
		}
	}
	return best, found
}

func (ls *LocalSearch) move(p *da.Partition, gain []da.Weight, v da.Index) {
	from := p.Side(v)
	to := from.Opposite()
	p.Move(v)
	gain[v] = -gain[v]

	ls.graph.ForEachNeighbor(v, func(u da.Index, w da.Weight) {
		switch p.Side(u) {
		case from:
			gain[u] -= 2 * w
		case to:
			gain[u] += 2 * w
		}
	})
}

type multiStartOutcome struct {
	cutValue da.Weight
	moves    int
}

// MultiStart refines k random partitions, each capped at maxDepth moves, and averages the final
// cut values and move counts. Run r draws its start from stream (seed, LOCAL_SEARCH_RUN_OFFSET+r),
// so the result does not depend on the number of workers. Runs not started before ctx is done
// are skipped.
func (ls *LocalSearch) MultiStart(ctx context.Context, k, maxDepth int, seed uint64, workers int) MultiStartResult {
	if k <= 0 {
		return MultiStartResult{}
	}

	runs := make([]int, k)
	for r := range runs {
		runs[r] = r
	}

	var (
		totalCut   da.Weight
		totalMoves int
		completed  int
	)
	concurrent.Run(ctx, workers, runs, func(r int) multiStartOutcome {
		rng := NewStream(seed, pkg.LOCAL_SEARCH_RUN_OFFSET+uint64(r))
		res := ls.Refine(RandomPartition(ls.graph, rng), maxDepth)
		return multiStartOutcome{cutValue: res.CutValue, moves: res.Moves}
	}, func(out multiStartOutcome) {
		totalCut += out.cutValue
		totalMoves += out.moves
		completed++
	})

	if completed == 0 {
		return MultiStartResult{}
	}
	return MultiStartResult{
		AverageCutValue: float64(totalCut) / float64(completed),
		AverageMoves:    util.RoundHalfUp(float64(totalMoves) / float64(completed)),
		Runs:            completed,
	}
}
