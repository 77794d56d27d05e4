package metrics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestResultLabel(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: RESULT_SUCCESS},
		{name: "canceled", err: context.Canceled, want: RESULT_CANCELED},
		{name: "wrapped deadline", err: fmt.Errorf("run: %w", context.DeadlineExceeded), want: RESULT_CANCELED},
		{name: "bad input", err: util.WrapErrorf(nil, util.ErrBadParamInput, "alpha"), want: RESULT_INVALID},
		{name: "other", err: fmt.Errorf("disk on fire"), want: RESULT_ERROR},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resultLabel(tt.err))
		})
	}
}

func TestObserveRun(t *testing.T) {
	before := testutil.ToFloat64(solverRunsTotal.WithLabelValues("test", RESULT_SUCCESS))

	ObserveRun("test", &grasp.Result{GraspCutValue: 22, GreedyCutValue: 20, Elapsed: time.Millisecond}, nil)
	ObserveRun("test", nil, util.WrapErrorf(nil, util.ErrBadParamInput, "bad"))

	assert.Equal(t, before+1, testutil.ToFloat64(solverRunsTotal.WithLabelValues("test", RESULT_SUCCESS)))
	assert.Equal(t, 1.0, testutil.ToFloat64(solverRunsTotal.WithLabelValues("test", RESULT_INVALID)))
	assert.Equal(t, 22.0, testutil.ToFloat64(lastCutValue.WithLabelValues("test", "grasp")))
	assert.Equal(t, 20.0, testutil.ToFloat64(lastCutValue.WithLabelValues("test", "greedy")))
}

func TestObserveIteration(t *testing.T) {
	before := testutil.ToFloat64(graspIterationsTotal)
	ObserveIteration(grasp.IterationEvent{Iteration: 0, Moves: 3})
	ObserveIteration(grasp.IterationEvent{Iteration: 1, Moves: 0})
	assert.Equal(t, before+2, testutil.ToFloat64(graspIterationsTotal))
}

func TestSetWebsocketSessions(t *testing.T) {
	SetWebsocketSessions(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(websocketSessions))
	SetWebsocketSessions(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(websocketSessions))
}
