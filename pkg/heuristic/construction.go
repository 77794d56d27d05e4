package heuristic

import (
	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

// construction is the partial partition shared by the constructive heuristics.
// sigmaX[v]/sigmaY[v] are kept equal to graph.CutContribution(v, partition) for every vertex,
// updated in O(deg) per placement instead of being recomputed.
type construction struct {
	graph     *da.Graph
	partition *da.Partition
	sigmaX    []da.Weight
	sigmaY    []da.Weight
}

func newConstruction(graph *da.Graph) *construction {
	n := graph.NumberOfVertices()
	return &construction{
		graph:     graph,
		partition: da.NewPartition(n),
		sigmaX:    make([]da.Weight, n+1),
		sigmaY:    make([]da.Weight, n+1),
	}
}

func (c *construction) numberOfVertices() int {
	return c.graph.NumberOfVertices()
}

func (c *construction) done() bool {
	return c.partition.IsComplete()
}

func (c *construction) contribution(v da.Index) (da.Weight, da.Weight) {
	return c.sigmaX[v], c.sigmaY[v]
}

// greedyValue is max(sigmaX, sigmaY), the best cut increase v can bring.
func (c *construction) greedyValue(v da.Index) da.Weight {
	return max(c.sigmaX[v], c.sigmaY[v])
}

func (c *construction) place(v da.Index, side da.Side) {
	c.partition.Assign(v, side)
	c.graph.ForEachNeighbor(v, func(u da.Index, w da.Weight) {
		if side == da.SideX {
			c.sigmaY[u] += w
		} else {
			c.sigmaX[u] += w
		}
	})
}

// placeOnBestSide puts v on the side with the larger contribution, X on ties.
func (c *construction) placeOnBestSide(v da.Index) {
	if c.sigmaX[v] >= c.sigmaY[v] {
		c.place(v, da.SideX)
	} else {
		c.place(v, da.SideY)
	}
}

// placeArbitrarily handles graphs without edges: vertex 1 goes to X, every other vertex to Y.
func (c *construction) placeArbitrarily() {
	for v := 1; v <= c.numberOfVertices(); v++ {
		if v == 1 {
			c.place(da.Index(v), da.SideX)
		} else {
			c.place(da.Index(v), da.SideY)
		}
	}
}

// bestUnassigned returns the unassigned vertex with the strictly largest greedy value, scanning
// ids in ascending order so the lowest id wins ties.
func (c *construction) bestUnassigned() (da.Index, bool) {
	var (
		best      da.Index
		bestValue da.Weight
		found     bool
	)
	for v := da.Index(1); int(v) <= c.numberOfVertices(); v++ {
		if c.partition.IsAssigned(v) {
			continue
		}
		value := c.greedyValue(v)
		if !found || value > bestValue {
			best, bestValue, found = v, value, true
		}
	}
	return best, found
}

func (c *construction) solution() Solution {
	return newSolution(c.graph, c.partition)
}
