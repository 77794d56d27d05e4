package main

import (
	"context"
	"flag"
	"runtime"

	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
	"github.com/lintang-b-s/grasp-maxcut/pkg/http"
	"github.com/lintang-b-s/grasp-maxcut/pkg/http/usecases"
	"github.com/lintang-b-s/grasp-maxcut/pkg/logger"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable the global request rate limiter")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("API_MAX_VERTICES", 20000)
	viper.SetDefault("API_MAX_EDGES", 500000)
	viper.SetDefault("API_MAX_ITERATIONS", 1000)
	viper.SetDefault("API_MAX_WORKERS", runtime.NumCPU())
	viper.SetDefault("API_MAX_RANDOMIZED_ITERATIONS", 10000)
	viper.SetDefault("API_MAX_LOCAL_SEARCH_RESTARTS", 1000)

	maxCutService := usecases.NewMaxCutService(logger, grasp.NewGrasp(logger), usecases.Limits{
		MaxVertices:             viper.GetInt("API_MAX_VERTICES"),
		MaxEdges:                viper.GetInt("API_MAX_EDGES"),
		MaxIterations:           viper.GetInt("API_MAX_ITERATIONS"),
		MaxWorkers:              viper.GetInt("API_MAX_WORKERS"),
		MaxRandomizedIterations: viper.GetInt("API_MAX_RANDOMIZED_ITERATIONS"),
		MaxLocalSearchRestarts:  viper.GetInt("API_MAX_LOCAL_SEARCH_RESTARTS"),
	})

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, *useRateLimit, maxCutService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()
	logger.Info("GRASP max-cut server stopping", zap.String("signal", signal.String()))
	cleanup()

	if err := api.Wait(); err != nil && err != context.Canceled {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
