package benchmark

import (
	"context"
	"errors"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
	"github.com/lintang-b-s/grasp-maxcut/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const METRICS_SOURCE = "benchmark"

// Report is one row of the benchmark table.
type Report struct {
	Name         string
	Vertices     int
	Edges        int
	Result       *grasp.Result
	KnownBest    int64
	HasKnownBest bool
	// use the multi-start averages for the local search columns
	multiStart bool
}

func (r Report) LocalSearchIterations() int {
	if r.multiStart {
		return r.Result.LocalSearchAverageIterations
	}
	return r.Result.LocalSearchIterations
}

func (r Report) LocalSearchValue() float64 {
	if r.multiStart {
		return r.Result.LocalSearchAverageCutValue
	}
	return float64(r.Result.LocalSearchCutValue)
}

type Runner struct {
	logger      *zap.Logger
	solver      *grasp.Grasp
	cfg         grasp.Config
	parallelism int
}

// NewRunner solves up to parallelism instances at the same time. Each instance still uses
// cfg.Workers goroutines for its own GRASP iterations.
func NewRunner(logger *zap.Logger, cfg grasp.Config, parallelism int) *Runner {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Runner{
		logger:      logger,
		solver:      grasp.NewGrasp(logger),
		cfg:         cfg,
		parallelism: parallelism,
	}
}

// Run solves every instance and returns the reports in instance order. An instance that can not
// be read or solved is logged and left out; only cancellation of ctx aborts the whole suite.
func (r *Runner) Run(ctx context.Context, instances []Instance) ([]Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	reports := make([]*Report, len(instances))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, instance := range instances {
		i, instance := i, instance
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			report, err := r.solve(gctx, instance)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				r.logger.Sugar().Errorf("error processing %s: %v", instance.Name, err)
				return nil
			}
			reports[i] = report
			r.logger.Sugar().Infof("processed %s", instance.Name)
			return nil
		})
	}

	err := g.Wait()

	out := make([]Report, 0, len(instances))
	for _, report := range reports {
		if report != nil {
			out = append(out, *report)
		}
	}
	return out, err
}

func (r *Runner) solve(ctx context.Context, instance Instance) (*Report, error) {
	graph, err := da.ReadGraph(instance.Path)
	if err != nil {
		return nil, err
	}

	cfg := r.cfg
	cfg.OnIteration = metrics.ObserveIteration
	res, err := r.solver.Run(ctx, graph, cfg)
	metrics.ObserveRun(METRICS_SOURCE, res, err)
	if err != nil {
		return nil, err
	}

	best, ok := KnownBest(instance.Name)
	return &Report{
		Name:         instance.Name,
		Vertices:     graph.NumberOfVertices(),
		Edges:        graph.NumberOfEdges(),
		Result:       res,
		KnownBest:    best,
		HasKnownBest: ok,
		multiStart:   cfg.LocalSearchRestarts > 0,
	}, nil
}
