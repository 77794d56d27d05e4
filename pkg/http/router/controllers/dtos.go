package controllers

import (
	"time"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
)

type edgeRequest struct {
	From   uint32 `json:"from" validate:"required,gte=1"`
	To     uint32 `json:"to" validate:"required,gte=1"`
	Weight int64  `json:"weight"`
}

type graphRequest struct {
	NumVertices int           `json:"num_vertices" validate:"gte=0"`
	Edges       []edgeRequest `json:"edges" validate:"dive"`
}

func (g graphRequest) toEdges() []da.Edge {
	edges := make([]da.Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, da.NewEdge(da.Index(e.From), da.Index(e.To), e.Weight))
	}
	return edges
}

// graspConfigRequest overrides grasp.DefaultConfig field by field; absent fields keep the default.
type graspConfigRequest struct {
	Alpha                *float64 `json:"alpha" validate:"omitempty,gte=0,lte=1"`
	Iterations           *int     `json:"iterations" validate:"omitempty,gte=1"`
	RandomizedIterations *int     `json:"randomized_iterations" validate:"omitempty,gte=1"`
	LocalSearchRestarts  *int     `json:"local_search_restarts" validate:"omitempty,gte=0"`
	LocalSearchMaxDepth  *int     `json:"local_search_max_depth" validate:"omitempty,gte=0"`
	Seed                 *uint64  `json:"seed"`
	Workers              *int     `json:"workers" validate:"omitempty,gte=0"`
	TimeLimitMs          *int64   `json:"time_limit_ms" validate:"omitempty,gte=0"`
}

func (c *graspConfigRequest) toConfig() grasp.Config {
	cfg := grasp.DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.Alpha != nil {
		cfg.Alpha = *c.Alpha
	}
	if c.Iterations != nil {
		cfg.Iterations = *c.Iterations
	}
	if c.RandomizedIterations != nil {
		cfg.RandomizedIterations = *c.RandomizedIterations
	}
	if c.LocalSearchRestarts != nil {
		cfg.LocalSearchRestarts = *c.LocalSearchRestarts
	}
	if c.LocalSearchMaxDepth != nil {
		cfg.LocalSearchMaxDepth = *c.LocalSearchMaxDepth
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	}
	if c.Workers != nil {
		cfg.Workers = *c.Workers
	}
	if c.TimeLimitMs != nil {
		cfg.TimeLimit = time.Duration(*c.TimeLimitMs) * time.Millisecond
	}
	return cfg
}

type graspRequest struct {
	Graph  graphRequest        `json:"graph"`
	Config *graspConfigRequest `json:"config"`
}

type graspResponse struct {
	RandomizedCutValue           float64    `json:"randomized_cut_value"`
	GreedyCutValue               int64      `json:"greedy_cut_value"`
	SemiGreedyCutValue           int64      `json:"semi_greedy_cut_value"`
	LocalSearchCutValue          int64      `json:"local_search_cut_value"`
	LocalSearchIterations        int        `json:"local_search_iterations"`
	LocalSearchAverageCutValue   float64    `json:"local_search_average_cut_value"`
	LocalSearchAverageIterations int        `json:"local_search_average_iterations"`
	GraspCutValue                int64      `json:"grasp_cut_value"`
	GraspIterations              int        `json:"grasp_iterations"`
	BestIteration                int        `json:"best_iteration"`
	X                            []da.Index `json:"x"`
	Y                            []da.Index `json:"y"`
	ElapsedMs                    float64    `json:"elapsed_ms"`
}

func NewGraspResponse(res *grasp.Result) graspResponse {
	resp := graspResponse{
		RandomizedCutValue:           res.RandomizedCutValue,
		GreedyCutValue:               res.GreedyCutValue,
		SemiGreedyCutValue:           res.SemiGreedyCutValue,
		LocalSearchCutValue:          res.LocalSearchCutValue,
		LocalSearchIterations:        res.LocalSearchIterations,
		LocalSearchAverageCutValue:   res.LocalSearchAverageCutValue,
		LocalSearchAverageIterations: res.LocalSearchAverageIterations,
		GraspCutValue:                res.GraspCutValue,
		GraspIterations:              res.GraspIterations,
		BestIteration:                res.BestIteration,
		X:                            []da.Index{},
		Y:                            []da.Index{},
		ElapsedMs:                    float64(res.Elapsed.Microseconds()) / 1000,
	}
	if res.BestPartition != nil {
		resp.X = res.BestPartition.X()
		resp.Y = res.BestPartition.Y()
	}
	return resp
}

type cutRequest struct {
	Graph graphRequest `json:"graph"`
	X     []uint32     `json:"x" validate:"dive,gte=1"`
}

func (c cutRequest) inX() []da.Index {
	inX := make([]da.Index, 0, len(c.X))
	for _, v := range c.X {
		inX = append(inX, da.Index(v))
	}
	return inX
}

type cutResponse struct {
	CutValue int64 `json:"cut_value"`
}

type progressMessage struct {
	Type          string `json:"type"`
	Iteration     int    `json:"iteration"`
	CutValue      int64  `json:"cut_value"`
	Moves         int    `json:"moves"`
	BestCutValue  int64  `json:"best_cut_value"`
	BestIteration int    `json:"best_iteration"`
}

func newProgressMessage(ev grasp.IterationEvent) progressMessage {
	return progressMessage{
		Type:          "iteration",
		Iteration:     ev.Iteration,
		CutValue:      ev.CutValue,
		Moves:         ev.Moves,
		BestCutValue:  ev.BestCutValue,
		BestIteration: ev.BestIteration,
	}
}
