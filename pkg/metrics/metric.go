package metrics

import (
	"context"
	"errors"

	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	RESULT_SUCCESS  = "success"
	RESULT_CANCELED = "canceled"
	RESULT_INVALID  = "invalid"
	RESULT_ERROR    = "error"
)

var (
	// solverRunsTotal counts GRASP runs by source ("benchmark", "api", ...) and result
	solverRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maxcut_solver_runs_total",
		Help: "Total GRASP runs by source and result",
	}, []string{"source", "result"})

	solverDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maxcut_solver_duration_seconds",
		Help:    "Wall time of a GRASP run",
		Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60, 600},
	}, []string{"source"})

	graspIterationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maxcut_grasp_iterations_total",
		Help: "Completed GRASP iterations",
	})

	localSearchMoves = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "maxcut_local_search_moves",
		Help:    "Vertex moves per local search inside a GRASP iteration",
		Buckets: []float64{0, 1, 10, 100, 1000, 10000},
	})

	lastCutValue = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "maxcut_last_cut_value",
		Help: "Best cut value of the last finished run",
	}, []string{"source", "heuristic"})

	websocketSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "maxcut_websocket_sessions",
		Help: "Open websocket progress sessions",
	})
)

func resultLabel(err error) string {
	switch {
	case err == nil:
		return RESULT_SUCCESS
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return RESULT_CANCELED
	case errors.Is(util.ErrorCode(err), util.ErrBadParamInput):
		return RESULT_INVALID
	default:
		return RESULT_ERROR
	}
}

// ObserveRun records one call of grasp.Run. res may be nil when the run was rejected.
func ObserveRun(source string, res *grasp.Result, err error) {
	solverRunsTotal.WithLabelValues(source, resultLabel(err)).Inc()
	if res == nil {
		return
	}
	solverDuration.WithLabelValues(source).Observe(res.Elapsed.Seconds())
	lastCutValue.WithLabelValues(source, "randomized").Set(res.RandomizedCutValue)
	lastCutValue.WithLabelValues(source, "greedy").Set(float64(res.GreedyCutValue))
	lastCutValue.WithLabelValues(source, "semi_greedy").Set(float64(res.SemiGreedyCutValue))
	lastCutValue.WithLabelValues(source, "local_search").Set(float64(res.LocalSearchCutValue))
	lastCutValue.WithLabelValues(source, "grasp").Set(float64(res.GraspCutValue))
}

// ObserveIteration is meant to be chained into grasp.Config.OnIteration.
func ObserveIteration(ev grasp.IterationEvent) {
	graspIterationsTotal.Inc()
	localSearchMoves.Observe(float64(ev.Moves))
}

func SetWebsocketSessions(n int) {
	websocketSessions.Set(float64(n))
}
