package grasp

import (
	"time"

	"github.com/lintang-b-s/grasp-maxcut/pkg"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
	"github.com/spf13/viper"
)

type Config struct {
	Alpha                float64       `json:"alpha" validate:"gte=0,lte=1"`
	Iterations           int           `json:"iterations" validate:"gte=1"`
	RandomizedIterations int           `json:"randomized_iterations" validate:"gte=1"`
	LocalSearchRestarts  int           `json:"local_search_restarts" validate:"gte=0"`
	LocalSearchMaxDepth  int           `json:"local_search_max_depth" validate:"gte=0"` // 0 = unbounded
	Seed                 uint64        `json:"seed"`
	Workers              int           `json:"workers" validate:"gte=0"`
	TimeLimit            time.Duration `json:"time_limit" validate:"gte=0"` // 0 = none

	// OnIteration, if set, is called after every completed GRASP iteration, never concurrently.
	OnIteration func(IterationEvent) `json:"-" validate:"-"`
}

func DefaultConfig() Config {
	return Config{
		Alpha:                pkg.DEFAULT_ALPHA,
		Iterations:           pkg.DEFAULT_GRASP_ITERATIONS,
		RandomizedIterations: pkg.DEFAULT_RANDOMIZED_ITERATIONS,
		LocalSearchRestarts:  pkg.DEFAULT_LOCAL_SEARCH_RESTARTS,
		LocalSearchMaxDepth:  pkg.DEFAULT_LOCAL_SEARCH_MAX_DEPTH,
		Seed:                 pkg.DEFAULT_SEED,
		Workers:              pkg.DEFAULT_WORKERS,
	}
}

// LoadConfig reads the GRASP_* keys from viper (config file or environment), falling back to
// DefaultConfig, and validates the result.
func LoadConfig() (Config, error) {
	def := DefaultConfig()
	viper.SetDefault("GRASP_ALPHA", def.Alpha)
	viper.SetDefault("GRASP_ITERATIONS", def.Iterations)
	viper.SetDefault("GRASP_RANDOMIZED_ITERATIONS", def.RandomizedIterations)
	viper.SetDefault("GRASP_LOCAL_SEARCH_RESTARTS", def.LocalSearchRestarts)
	viper.SetDefault("GRASP_LOCAL_SEARCH_MAX_DEPTH", def.LocalSearchMaxDepth)
	viper.SetDefault("GRASP_SEED", def.Seed)
	viper.SetDefault("GRASP_WORKERS", def.Workers)
	viper.SetDefault("GRASP_TIME_LIMIT", "0s")

	cfg := Config{
		Alpha:                viper.GetFloat64("GRASP_ALPHA"),
		Iterations:           viper.GetInt("GRASP_ITERATIONS"),
		RandomizedIterations: viper.GetInt("GRASP_RANDOMIZED_ITERATIONS"),
		LocalSearchRestarts:  viper.GetInt("GRASP_LOCAL_SEARCH_RESTARTS"),
		LocalSearchMaxDepth:  viper.GetInt("GRASP_LOCAL_SEARCH_MAX_DEPTH"),
		Seed:                 viper.GetUint64("GRASP_SEED"),
		Workers:              viper.GetInt("GRASP_WORKERS"),
		TimeLimit:            viper.GetDuration("GRASP_TIME_LIMIT"),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	return util.ValidateStruct(c)
}
