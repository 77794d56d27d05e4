package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/grasp-maxcut/pkg/benchmark"
	"github.com/lintang-b-s/grasp-maxcut/pkg/grasp"
	"github.com/lintang-b-s/grasp-maxcut/pkg/logger"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
	"go.uber.org/zap"
)

var (
	benchmarkDir = flag.String("dir", "./data/set1", "directory with the .rud (or .rud.bz2) benchmark graphs")
	graphFile    = flag.String("graph", "", "solve a single graph file instead of the whole directory")
	output       = flag.String("out", "./data/maxcut.csv", "csv report path")
	parallelism  = flag.Int("parallel", 1, "number of graphs solved at the same time")
)

// registerGraspFlags adds the flags that override the GRASP_* config keys. Their defaults are
// only shown in the usage text: a flag overrides the config only when it is passed.
func registerGraspFlags(fs *flag.FlagSet) {
	def := grasp.DefaultConfig()
	fs.Float64("alpha", def.Alpha, "semi-greedy alpha in [0,1], overrides GRASP_ALPHA")
	fs.Int("iterations", def.Iterations, "GRASP iterations, overrides GRASP_ITERATIONS")
	fs.Uint64("seed", def.Seed, "random seed, overrides GRASP_SEED")
	fs.Int("workers", def.Workers, "goroutines per GRASP run, overrides GRASP_WORKERS")
}

// overrideConfig copies the GRASP flags that were set on the command line into cfg, so any value,
// zero included, can be chosen.
func overrideConfig(fs *flag.FlagSet, cfg grasp.Config) (grasp.Config, error) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "alpha":
			cfg.Alpha = v.(float64)
		case "iterations":
			cfg.Iterations = v.(int)
		case "seed":
			cfg.Seed = v.(uint64)
		case "workers":
			cfg.Workers = v.(int)
		}
	})
	return cfg, cfg.Validate()
}

func main() {
	registerGraspFlags(flag.CommandLine)
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	cfg, err := grasp.LoadConfig()
	if err != nil {
		panic(err)
	}
	cfg, err = overrideConfig(flag.CommandLine, cfg)
	if err != nil {
		panic(err)
	}

	var instances []benchmark.Instance
	if *graphFile != "" {
		instances = []benchmark.Instance{benchmark.NewInstance(*graphFile)}
	} else {
		instances, err = benchmark.DiscoverInstances(*benchmarkDir)
		if err != nil {
			panic(err)
		}
	}
	logger.Sugar().Infof("solving %d graphs (alpha=%v, iterations=%d, seed=%d)", len(instances), cfg.Alpha, cfg.Iterations, cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reports, err := benchmark.NewRunner(logger, cfg, *parallelism).Run(ctx, instances)
	if err != nil {
		logger.Error("benchmark interrupted, writing partial report", zap.Error(err))
	}

	if err := benchmark.WriteCSVFile(*output, reports); err != nil {
		panic(err)
	}
	logger.Sugar().Infof("CSV file generated: %s", *output)
}
