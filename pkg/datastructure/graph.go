package datastructure

import (
	"sync"
)

type Index uint32

// Weight is the type of edge weights and cut values.
type Weight = int64

// SENTINEL_VERTEX is never a real vertex, vertices are numbered 1..V.
const SENTINEL_VERTEX Index = 0

type Edge struct {
	from   Index
	to     Index
	weight Weight
}

func NewEdge(from, to Index, weight Weight) Edge {
	return Edge{from: from, to: to, weight: weight}
}

func (e Edge) GetFrom() Index {
	return e.from
}

func (e Edge) GetTo() Index {
	return e.to
}

func (e Edge) GetWeight() Weight {
	return e.weight
}

// IsSentinel reports whether e is the placeholder edge of a graph without edges.
func (e Edge) IsSentinel() bool {
	return e.from == SENTINEL_VERTEX
}

type neighbor struct {
	head   Index
	weight Weight
}

// Graph is a weighted undirected graph on vertices 1..V.
// adjacency[u] keeps neighbours in insertion order, position[u] maps a neighbour to its slot so
// that a repeated edge overwrites the weight in place.
type Graph struct {
	numberOfVertices int
	numberOfEdges    int
	adjacency        [][]neighbor
	position         []map[Index]int

	criticalMu    sync.Mutex
	criticalValid bool
	maxEdge       Edge
	minEdge       Edge
}

func NewGraph(numberOfVertices int) *Graph {
	adjacency := make([][]neighbor, numberOfVertices+1)
	position := make([]map[Index]int, numberOfVertices+1)
	for i := range position {
		position[i] = make(map[Index]int)
	}
	return &Graph{
		numberOfVertices: numberOfVertices,
		adjacency:        adjacency,
		position:         position,
	}
}

func (g *Graph) NumberOfVertices() int {
	return g.numberOfVertices
}

// NumberOfEdges returns the number of distinct undirected edges.
func (g *Graph) NumberOfEdges() int {
	return g.numberOfEdges
}

// AddEdge inserts the undirected edge (u,v,w). A second call for the same pair overwrites the
// weight. Self loops are ignored.
func (g *Graph) AddEdge(u, v Index, w Weight) {
	if u == v {
		return
	}

	if g.setArc(u, v, w) {
		g.numberOfEdges++
	}
	g.setArc(v, u, w)

	g.InvalidateCriticalEdges()
}

// setArc returns true if the arc is new.
func (g *Graph) setArc(u, v Index, w Weight) bool {
	if idx, ok := g.position[u][v]; ok {
		g.adjacency[u][idx].weight = w
		return false
	}
	g.position[u][v] = len(g.adjacency[u])
	g.adjacency[u] = append(g.adjacency[u], neighbor{head: v, weight: w})
	return true
}

func (g *Graph) Weight(u, v Index) (Weight, bool) {
	idx, ok := g.position[u][v]
	if !ok {
		return 0, false
	}
	return g.adjacency[u][idx].weight, true
}

func (g *Graph) Degree(v Index) int {
	return len(g.adjacency[v])
}

func (g *Graph) ForEachNeighbor(v Index, handle func(head Index, weight Weight)) {
	for _, n := range g.adjacency[v] {
		handle(n.head, n.weight)
	}
}

// ForEachEdge visits every undirected edge once, as (u,v,w) with u<v, u ascending.
func (g *Graph) ForEachEdge(handle func(e Edge)) {
	for u := Index(1); int(u) <= g.numberOfVertices; u++ {
		for _, n := range g.adjacency[u] {
			if u < n.head {
				handle(NewEdge(u, n.head, n.weight))
			}
		}
	}
}

func (g *Graph) TotalWeight() Weight {
	var total Weight
	g.ForEachEdge(func(e Edge) {
		total += e.weight
	})
	return total
}

// FindCriticalEdges recomputes the maximum- and minimum-weight edges. The first edge found in
// ForEachEdge order wins ties.
func (g *Graph) FindCriticalEdges() {
	g.criticalMu.Lock()
	defer g.criticalMu.Unlock()
	g.findCriticalEdges()
}

func (g *Graph) findCriticalEdges() {
	var (
		maxEdge, minEdge Edge
		found            bool
	)
	g.ForEachEdge(func(e Edge) {
		if !found {
			maxEdge, minEdge = e, e
			found = true
			return
		}
		if e.weight > maxEdge.weight {
			maxEdge = e
		}
		if e.weight < minEdge.weight {
			minEdge = e
		}
	})

	if !found {
		maxEdge = NewEdge(SENTINEL_VERTEX, SENTINEL_VERTEX, 0)
		minEdge = NewEdge(SENTINEL_VERTEX, SENTINEL_VERTEX, 0)
	}
	g.maxEdge, g.minEdge = maxEdge, minEdge
	g.criticalValid = true
}

func (g *Graph) InvalidateCriticalEdges() {
	g.criticalMu.Lock()
	g.criticalValid = false
	g.criticalMu.Unlock()
}

// MaxEdge returns the maximum-weight edge, computing it on first use.
func (g *Graph) MaxEdge() Edge {
	g.criticalMu.Lock()
	defer g.criticalMu.Unlock()
	if !g.criticalValid {
		g.findCriticalEdges()
	}
	return g.maxEdge
}

// MinEdge returns the minimum-weight edge, computing it on first use.
func (g *Graph) MinEdge() Edge {
	g.criticalMu.Lock()
	defer g.criticalMu.Unlock()
	if !g.criticalValid {
		g.findCriticalEdges()
	}
	return g.minEdge
}

// CutContribution returns, for vertex v, sigmaX = sum of weights from v to Y (what v adds to the
// cut if placed in X) and sigmaY = sum of weights from v to X.
func (g *Graph) CutContribution(v Index, p *Partition) (sigmaX, sigmaY Weight) {
	for _, n := range g.adjacency[v] {
		switch p.Side(n.head) {
		case SideY:
			sigmaX += n.weight
		case SideX:
			sigmaY += n.weight
		}
	}
	return sigmaX, sigmaY
}

// CutValue returns the total weight of edges with one endpoint in X and the other in Y.
func (g *Graph) CutValue(p *Partition) Weight {
	var cut Weight
	for u := Index(1); int(u) <= g.numberOfVertices; u++ {
		if p.Side(u) != SideX {
			continue
		}
		for _, n := range g.adjacency[u] {
			if p.Side(n.head) == SideY {
				cut += n.weight
			}
		}
	}
	return cut
}

// CutValueOfFlags evaluates the cut of the bipartition inX[v] (true = X) for v in 1..len(inX)-1.
func (g *Graph) CutValueOfFlags(inX []bool) Weight {
	var cut Weight
	for u := 1; u < len(inX); u++ {
		if !inX[u] {
			continue
		}
		for _, n := range g.adjacency[u] {
			if !inX[n.head] {
				cut += n.weight
			}
		}
	}
	return cut
}
