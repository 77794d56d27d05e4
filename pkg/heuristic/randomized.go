package heuristic

import (
	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"golang.org/x/exp/rand"
)

// Randomized is the baseline heuristic: every vertex joins X or Y on a fair coin flip.
type Randomized struct {
	graph *da.Graph
	rng   *rand.Rand
}

func NewRandomized(graph *da.Graph, rng *rand.Rand) *Randomized {
	return &Randomized{graph: graph, rng: rng}
}

// Run returns the mean cut value over trials independent random partitions.
func (rh *Randomized) Run(trials int) float64 {
	if trials <= 0 {
		return 0
	}

	inX := make([]bool, rh.graph.NumberOfVertices()+1)
	var total float64
	for i := 0; i < trials; i++ {
		flipCoins(rh.rng, inX)
		total += float64(rh.graph.CutValueOfFlags(inX))
	}

	return total / float64(trials)
}

// RandomPartition returns a complete partition drawn by fair coin flips.
func RandomPartition(graph *da.Graph, rng *rand.Rand) *da.Partition {
	inX := make([]bool, graph.NumberOfVertices()+1)
	flipCoins(rng, inX)
	return da.NewPartitionFromFlags(inX)
}

func flipCoins(rng *rand.Rand, inX []bool) {
	for v := 1; v < len(inX); v++ {
		inX[v] = rng.Uint64()&1 == 1
	}
}
