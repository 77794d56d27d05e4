package grasp

import (
	"context"
	"time"

	"github.com/lintang-b-s/grasp-maxcut/pkg"
	"github.com/lintang-b-s/grasp-maxcut/pkg/concurrent"
	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/heuristic"
	"go.uber.org/zap"
)

// Result bundles the figures of one run, for comparing the heuristics on a graph.
type Result struct {
	RandomizedCutValue           float64
	GreedyCutValue               da.Weight
	SemiGreedyCutValue           da.Weight
	LocalSearchCutValue          da.Weight // local search started from the semi-greedy solution
	LocalSearchIterations        int
	LocalSearchAverageCutValue   float64 // multi-start local search, zero when disabled
	LocalSearchAverageIterations int
	GraspCutValue                da.Weight
	GraspIterations              int // completed iterations
	BestIteration                int // -1 if no iteration completed
	BestPartition                *da.Partition
	Elapsed                      time.Duration
}

type IterationEvent struct {
	Iteration     int
	CutValue      da.Weight
	Moves         int
	BestCutValue  da.Weight
	BestIteration int
}

type iterationOutcome struct {
	iteration int
	skipped   bool
	solution  heuristic.LocalSearchResult
}

type Grasp struct {
	logger *zap.Logger
}

func NewGrasp(logger *zap.Logger) *Grasp {
	return &Grasp{logger: logger}
}

/*
Run computes the randomized baseline, the greedy value and one semi-greedy + local search
reference, then runs cfg.Iterations GRASP iterations (semi-greedy construction followed by local
search capped at cfg.LocalSearchMaxDepth moves) and keeps the best one.

Iteration i draws from its own random stream (cfg.Seed, i), so for a fixed seed a run that
completes all its iterations does not depend on cfg.Workers, and a run with more iterations
extends a shorter one. A run cut short by cfg.TimeLimit or ctx is different: with Workers > 1 the
iterations that finished in time need not be 0..k-1, so the partial result may depend on Workers
and on scheduling. The context and cfg.TimeLimit are checked between iterations only. On
cancellation Run returns the partial result together with ctx.Err(); reaching the time limit is
not an error.
*/
func (gr *Grasp) Run(ctx context.Context, graph *da.Graph, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	gr.logger.Sugar().Infof("GRASP on graph with %d vertices and %d edges (alpha=%v, iterations=%d, seed=%d)",
		graph.NumberOfVertices(), graph.NumberOfEdges(), cfg.Alpha, cfg.Iterations, cfg.Seed)

	res := &Result{BestIteration: -1}

	randomized := heuristic.NewRandomized(graph, heuristic.NewStream(cfg.Seed, pkg.RANDOMIZED_STREAM))
	res.RandomizedCutValue = randomized.Run(cfg.RandomizedIterations)

	res.GreedyCutValue = heuristic.NewGreedy(graph).Run().CutValue

	localSearch := heuristic.NewLocalSearch(graph)
	semiGreedy := heuristic.NewSemiGreedy(graph, cfg.Alpha, heuristic.NewStream(cfg.Seed, pkg.SEMI_GREEDY_STREAM)).Run()
	res.SemiGreedyCutValue = semiGreedy.CutValue

	refined := localSearch.Refine(semiGreedy.Partition, cfg.LocalSearchMaxDepth)
	res.LocalSearchCutValue = refined.CutValue
	res.LocalSearchIterations = refined.Moves

	gr.logger.Sugar().Infof("randomized %.2f, greedy %d, semi-greedy %d, local search %d (%d moves)",
		res.RandomizedCutValue, res.GreedyCutValue, res.SemiGreedyCutValue, res.LocalSearchCutValue, res.LocalSearchIterations)

	if cfg.LocalSearchRestarts > 0 {
		multi := localSearch.MultiStart(ctx, cfg.LocalSearchRestarts, cfg.LocalSearchMaxDepth,
			heuristic.DeriveSeed(cfg.Seed, pkg.LOCAL_SEARCH_STREAM), cfg.Workers)
		res.LocalSearchAverageCutValue = multi.AverageCutValue
		res.LocalSearchAverageIterations = multi.AverageMoves
		gr.logger.Sugar().Infof("multi-start local search over %d runs: average %.2f (%d moves)",
			multi.Runs, multi.AverageCutValue, multi.AverageMoves)
	}

	loopCtx := ctx
	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		loopCtx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}

	runIteration := func(i int) iterationOutcome {
		if loopCtx.Err() != nil {
			return iterationOutcome{iteration: i, skipped: true}
		}
		rng := heuristic.NewStream(cfg.Seed, pkg.GRASP_STREAM_OFFSET+uint64(i))
		constructed := heuristic.NewSemiGreedy(graph, cfg.Alpha, rng).Run()
		return iterationOutcome{
			iteration: i,
			solution:  localSearch.Refine(constructed.Partition, cfg.LocalSearchMaxDepth),
		}
	}

	record := func(out iterationOutcome) {
		if out.skipped {
			return
		}
		res.GraspIterations++
		if res.BestIteration < 0 || out.solution.CutValue > res.GraspCutValue ||
			(out.solution.CutValue == res.GraspCutValue && out.iteration < res.BestIteration) {
			res.GraspCutValue = out.solution.CutValue
			res.BestIteration = out.iteration
			res.BestPartition = out.solution.Partition
		}

		gr.logger.Debug("GRASP iteration done", zap.Int("iteration", out.iteration),
			zap.Int64("cut", out.solution.CutValue), zap.Int("moves", out.solution.Moves))
		if cfg.OnIteration != nil {
			cfg.OnIteration(IterationEvent{
				Iteration:     out.iteration,
				CutValue:      out.solution.CutValue,
				Moves:         out.solution.Moves,
				BestCutValue:  res.GraspCutValue,
				BestIteration: res.BestIteration,
			})
		}
	}

	if cfg.Workers <= 1 {
		for i := 0; i < cfg.Iterations; i++ {
			out := runIteration(i)
			if out.skipped {
				break
			}
			record(out)
		}
	} else {
		iterations := make([]int, cfg.Iterations)
		for i := range iterations {
			iterations[i] = i
		}
		concurrent.Run(loopCtx, cfg.Workers, iterations, runIteration, record)
	}

	if res.BestIteration < 0 {
		// nothing completed, report the reference local search solution
		res.GraspCutValue = refined.CutValue
		res.BestPartition = refined.Partition
	}
	res.Elapsed = time.Since(start)

	gr.logger.Sugar().Infof("GRASP best cut %d after %d iterations (best at iteration %d) in %v",
		res.GraspCutValue, res.GraspIterations, res.BestIteration, res.Elapsed)

	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}
