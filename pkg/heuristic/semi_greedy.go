package heuristic

import (
	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"golang.org/x/exp/rand"
)

// SemiGreedy is the randomized construction of GRASP. Both the seed edge and every following
// vertex are drawn uniformly from a restricted candidate list (RCL) holding the candidates whose
// value reaches min + alpha*(max-min). alpha = 1 is purely greedy, alpha = 0 purely random.
type SemiGreedy struct {
	graph *da.Graph
	alpha float64
	rng   *rand.Rand
}

func NewSemiGreedy(graph *da.Graph, alpha float64, rng *rand.Rand) *SemiGreedy {
	return &SemiGreedy{
		graph: graph,
		alpha: alpha,
		rng:   rng,
	}
}

func (sg *SemiGreedy) threshold(lo, hi da.Weight) float64 {
	return float64(lo) + sg.alpha*float64(hi-lo)
}

func (sg *SemiGreedy) Run() Solution {
	c := newConstruction(sg.graph)

	seedEdge := sg.selectSeedEdge()
	if seedEdge.IsSentinel() {
		c.placeArbitrarily()
		return c.solution()
	}

	c.place(seedEdge.GetFrom(), da.SideX)
	c.place(seedEdge.GetTo(), da.SideY)

	rcl := make([]da.Index, 0, sg.graph.NumberOfVertices())
	for !c.done() {
		rcl = sg.vertexRCL(c, rcl[:0])
		c.placeOnBestSide(sg.nextVertex(c, rcl))
	}

	return c.solution()
}

// vertexRCL appends to rcl, in ascending id order, the unassigned vertices whose greedy value
// reaches the threshold. The bounds run over every sigmaX and sigmaY of the unassigned vertices:
// the upper one equals the largest greedy value, the lower one may come from the weaker side of
// any vertex.
func (sg *SemiGreedy) vertexRCL(c *construction, rcl []da.Index) []da.Index {
	n := c.numberOfVertices()

	var (
		minSigma, maxSigma da.Weight
		found              bool
	)
	for v := da.Index(1); int(v) <= n; v++ {
		if c.partition.IsAssigned(v) {
			continue
		}
		sigmaX, sigmaY := c.contribution(v)
		lo, hi := min(sigmaX, sigmaY), max(sigmaX, sigmaY)
		if !found {
			minSigma, maxSigma, found = lo, hi, true
		} else {
			minSigma = min(minSigma, lo)
			maxSigma = max(maxSigma, hi)
		}
	}
	if !found {
		return rcl
	}

	vertexThreshold := sg.threshold(minSigma, maxSigma)
	for v := da.Index(1); int(v) <= n; v++ {
		if !c.partition.IsAssigned(v) && float64(c.greedyValue(v)) >= vertexThreshold {
			rcl = append(rcl, v)
		}
	}
	return rcl
}

// nextVertex draws uniformly from rcl. An empty rcl, possible only for alpha > 1, falls back to
// the unassigned vertex with the best greedy value.
func (sg *SemiGreedy) nextVertex(c *construction, rcl []da.Index) da.Index {
	if len(rcl) == 0 {
		v, _ := c.bestUnassigned()
		return v
	}
	return rcl[sg.rng.Intn(len(rcl))]
}

// selectSeedEdge draws the first edge from the edges with weight >= wMin + alpha*(wMax-wMin).
// Returns the sentinel edge if the graph has no edges.
func (sg *SemiGreedy) selectSeedEdge() da.Edge {
	maxEdge := sg.graph.MaxEdge()
	if maxEdge.IsSentinel() {
		return maxEdge
	}
	minEdge := sg.graph.MinEdge()

	edgeThreshold := sg.threshold(minEdge.GetWeight(), maxEdge.GetWeight())

	rcl := make([]da.Edge, 0)
	sg.graph.ForEachEdge(func(e da.Edge) {
		if float64(e.GetWeight()) >= edgeThreshold {
			rcl = append(rcl, e)
		}
	})

	if len(rcl) == 0 {
		return maxEdge
	}
	return rcl[sg.rng.Intn(len(rcl))]
}
