package usecases

import (
	"context"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
	"github.com/lintang-b-s/grasp-maxcut/pkg/metrics"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
	"go.uber.org/zap"
)

const METRICS_SOURCE = "api"

// Limits bounds the work a single request may ask for.
// A zero field means no limit.
type Limits struct {
	MaxVertices             int
	MaxEdges                int
	MaxIterations           int
	MaxWorkers              int
	MaxRandomizedIterations int
	MaxLocalSearchRestarts  int
}

type MaxCutService struct {
	log    *zap.Logger
	solver Solver
	limits Limits
}

func NewMaxCutService(log *zap.Logger, solver Solver, limits Limits) *MaxCutService {
	return &MaxCutService{
		log:    log,
		solver: solver,
		limits: limits,
	}
}

// BuildGraph checks the request size and every edge, then builds the graph. Repeated edges keep
// the last weight.
func (ms *MaxCutService) BuildGraph(numVertices int, edges []da.Edge) (*da.Graph, error) {
	if numVertices < 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "number of vertices must not be negative, got %d", numVertices)
	}
	if ms.limits.MaxVertices > 0 && numVertices > ms.limits.MaxVertices {
		return nil, util.WrapErrorf(nil, util.ErrTooLarge, "graph has %d vertices, at most %d allowed",
			numVertices, ms.limits.MaxVertices)
	}
	if ms.limits.MaxEdges > 0 && len(edges) > ms.limits.MaxEdges {
		return nil, util.WrapErrorf(nil, util.ErrTooLarge, "graph has %d edges, at most %d allowed",
			len(edges), ms.limits.MaxEdges)
	}

	graph := da.NewGraph(numVertices)
	for i, e := range edges {
		u, v := e.GetFrom(), e.GetTo()
		if u < 1 || int(u) > numVertices || v < 1 || int(v) > numVertices {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "edge %d: vertex out of range [1, %d]", i, numVertices)
		}
		if u == v {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "edge %d: self loop on vertex %d", i, u)
		}
		graph.AddEdge(u, v, e.GetWeight())
	}
	return graph, nil
}

func (ms *MaxCutService) Solve(ctx context.Context, graph *da.Graph, cfg grasp.Config) (*grasp.Result, error) {
	if ms.limits.MaxIterations > 0 && cfg.Iterations > ms.limits.MaxIterations {
		return nil, util.WrapErrorf(nil, util.ErrTooLarge, "at most %d GRASP iterations allowed, got %d",
			ms.limits.MaxIterations, cfg.Iterations)
	}
	if ms.limits.MaxWorkers > 0 && cfg.Workers > ms.limits.MaxWorkers {
		return nil, util.WrapErrorf(nil, util.ErrTooLarge, "at most %d workers allowed, got %d",
			ms.limits.MaxWorkers, cfg.Workers)
	}
	if ms.limits.MaxRandomizedIterations > 0 && cfg.RandomizedIterations > ms.limits.MaxRandomizedIterations {
		return nil, util.WrapErrorf(nil, util.ErrTooLarge, "at most %d randomized iterations allowed, got %d",
			ms.limits.MaxRandomizedIterations, cfg.RandomizedIterations)
	}
	if ms.limits.MaxLocalSearchRestarts > 0 && cfg.LocalSearchRestarts > ms.limits.MaxLocalSearchRestarts {
		return nil, util.WrapErrorf(nil, util.ErrTooLarge, "at most %d local search restarts allowed, got %d",
			ms.limits.MaxLocalSearchRestarts, cfg.LocalSearchRestarts)
	}

	onIteration := cfg.OnIteration
	cfg.OnIteration = func(ev grasp.IterationEvent) {
		metrics.ObserveIteration(ev)
		if onIteration != nil {
			onIteration(ev)
		}
	}

	res, err := ms.solver.Run(ctx, graph, cfg)
	metrics.ObserveRun(METRICS_SOURCE, res, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CutValue is the cut of the partition that puts inX in X and every other vertex in Y.
func (ms *MaxCutService) CutValue(graph *da.Graph, inX []da.Index) (int64, error) {
	flags := make([]bool, graph.NumberOfVertices()+1)
	for _, v := range inX {
		if v < 1 || int(v) > graph.NumberOfVertices() {
			return 0, util.WrapErrorf(nil, util.ErrBadParamInput, "vertex %d out of range [1, %d]", v, graph.NumberOfVertices())
		}
		flags[v] = true
	}
	return graph.CutValueOfFlags(flags), nil
}
