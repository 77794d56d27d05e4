package controllers

import (
	"context"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
)

type MaxCutService interface {
	BuildGraph(numVertices int, edges []da.Edge) (*da.Graph, error)
	Solve(ctx context.Context, graph *da.Graph, cfg grasp.Config) (*grasp.Result, error)
	CutValue(graph *da.Graph, inX []da.Index) (int64, error)
}
