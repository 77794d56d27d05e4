package heuristic

import (
	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

// Solution is a partition together with its cut value, always computed from the partition.
type Solution struct {
	CutValue  da.Weight
	Partition *da.Partition
}

func newSolution(graph *da.Graph, p *da.Partition) Solution {
	return Solution{
		CutValue:  graph.CutValue(p),
		Partition: p,
	}
}

type LocalSearchResult struct {
	Solution
	Moves int // number of vertex moves performed
}

type MultiStartResult struct {
	AverageCutValue float64
	AverageMoves    int
	Runs            int // completed runs, less than requested only if the context was canceled
}
