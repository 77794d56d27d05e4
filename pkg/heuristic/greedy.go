package heuristic

import (
	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

// Greedy builds a partition deterministically: the endpoints of the maximum-weight edge are put
// on opposite sides, then the vertex with the largest max(sigmaX, sigmaY) is placed on its better
// side until every vertex is assigned.
type Greedy struct {
	graph *da.Graph
}

func NewGreedy(graph *da.Graph) *Greedy {
	return &Greedy{graph: graph}
}

func (gh *Greedy) Run() Solution {
	c := newConstruction(gh.graph)

	maxEdge := gh.graph.MaxEdge()
	if maxEdge.IsSentinel() {
		c.placeArbitrarily()
		return c.solution()
	}

	c.place(maxEdge.GetFrom(), da.SideX)
	c.place(maxEdge.GetTo(), da.SideY)

	for !c.done() {
		v, _ := c.bestUnassigned()
		c.placeOnBestSide(v)
	}

	return c.solution()
}
