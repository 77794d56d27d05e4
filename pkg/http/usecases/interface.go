package usecases

import (
	"context"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
)

type Solver interface {
	Run(ctx context.Context, graph *da.Graph, cfg grasp.Config) (*grasp.Result, error)
}
