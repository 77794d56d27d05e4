package datastructure

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1 -10- 2 -1- 3 -10- 4 -1- 1
func fourCycle() *Graph {
	g := NewGraph(4)
	g.AddEdge(1, 2, 10)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 4, 10)
	g.AddEdge(4, 1, 1)
	return g
}

func TestAddEdge(t *testing.T) {
	testCases := []struct {
		name      string
		edges     [][3]int64
		wantEdges int
		u, v      Index
		wantW     int64
		wantFound bool
	}{
		{
			name:      "symmetric adjacency",
			edges:     [][3]int64{{1, 2, 7}},
			wantEdges: 1,
			u:         2, v: 1,
			wantW: 7, wantFound: true,
		},
		{
			name:      "duplicate edge, last write wins",
			edges:     [][3]int64{{1, 2, 7}, {2, 1, -3}},
			wantEdges: 1,
			u:         1, v: 2,
			wantW: -3, wantFound: true,
		},
		{
			name:      "self loop ignored",
			edges:     [][3]int64{{3, 3, 5}},
			wantEdges: 0,
			u:         3, v: 3,
			wantFound: false,
		},
		{
			name:      "missing edge",
			edges:     [][3]int64{{1, 2, 1}},
			wantEdges: 1,
			u:         1, v: 3,
			wantFound: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph(3)
			for _, e := range tt.edges {
				g.AddEdge(Index(e[0]), Index(e[1]), e[2])
			}
			assert.Equal(t, tt.wantEdges, g.NumberOfEdges())

			w, ok := g.Weight(tt.u, tt.v)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantW, w)
				wRev, okRev := g.Weight(tt.v, tt.u)
				assert.True(t, okRev)
				assert.Equal(t, w, wRev)
			}
		})
	}
}

func TestCriticalEdges(t *testing.T) {
	t.Run("first found wins ties", func(t *testing.T) {
		g := NewGraph(4)
		g.AddEdge(3, 4, 9)
		g.AddEdge(1, 2, 9)
		g.AddEdge(2, 3, -4)
		g.AddEdge(1, 4, -4)

		assert.Equal(t, NewEdge(1, 2, 9), g.MaxEdge())
		assert.Equal(t, NewEdge(1, 4, -4), g.MinEdge())
	})

	t.Run("no edges gives sentinel", func(t *testing.T) {
		g := NewGraph(5)
		assert.True(t, g.MaxEdge().IsSentinel())
		assert.True(t, g.MinEdge().IsSentinel())
		assert.Equal(t, int64(0), g.MaxEdge().GetWeight())
	})

	t.Run("add edge invalidates cache", func(t *testing.T) {
		g := fourCycle()
		assert.Equal(t, int64(10), g.MaxEdge().GetWeight())

		g.AddEdge(2, 4, 50)
		assert.Equal(t, NewEdge(2, 4, 50), g.MaxEdge())

		g.AddEdge(2, 4, 0)
		g.FindCriticalEdges()
		assert.Equal(t, NewEdge(1, 2, 10), g.MaxEdge())
		assert.Equal(t, int64(0), g.MinEdge().GetWeight())
	})

	t.Run("concurrent readers", func(t *testing.T) {
		g := fourCycle()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, int64(10), g.MaxEdge().GetWeight())
				assert.Equal(t, int64(1), g.MinEdge().GetWeight())
			}()
		}
		wg.Wait()
	})
}

func TestCutContribution(t *testing.T) {
	g := fourCycle()
	p := NewPartition(4)
	p.Assign(1, SideX)
	p.Assign(2, SideY)

	sigmaX, sigmaY := g.CutContribution(3, p)
	assert.Equal(t, int64(1), sigmaX, "3 is adjacent to 2 in Y")
	assert.Equal(t, int64(0), sigmaY)

	sigmaX, sigmaY = g.CutContribution(4, p)
	assert.Equal(t, int64(0), sigmaX)
	assert.Equal(t, int64(1), sigmaY, "4 is adjacent to 1 in X")
}

func TestCutValue(t *testing.T) {
	g := fourCycle()

	testCases := []struct {
		name string
		inX  []bool
		want int64
	}{
		{name: "bipartition cuts every edge", inX: []bool{false, true, false, true, false}, want: 22},
		{name: "heavy edges uncut", inX: []bool{false, true, true, false, false}, want: 2},
		{name: "light edges uncut", inX: []bool{false, true, false, false, true}, want: 20},
		{name: "everything in X", inX: []bool{false, true, true, true, true}, want: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPartitionFromFlags(tt.inX)
			assert.Equal(t, tt.want, g.CutValue(p))
			assert.Equal(t, tt.want, g.CutValueOfFlags(tt.inX))
			assert.Equal(t, tt.want, g.CutValueOfFlags(p.Flags()))
		})
	}
}

func TestForEachEdgeCanonical(t *testing.T) {
	g := fourCycle()
	edges := make([]Edge, 0)
	g.ForEachEdge(func(e Edge) {
		edges = append(edges, e)
	})

	require.Len(t, edges, 4)
	for _, e := range edges {
		assert.Less(t, e.GetFrom(), e.GetTo())
	}
	assert.Equal(t, int64(22), g.TotalWeight())
}
