package pkg

// defaults of the GRASP run, taken from the benchmark setup of the assignment
const (
	DEFAULT_ALPHA                  = 0.5
	DEFAULT_GRASP_ITERATIONS       = 2
	DEFAULT_RANDOMIZED_ITERATIONS  = 100
	DEFAULT_LOCAL_SEARCH_RESTARTS  = 0
	DEFAULT_LOCAL_SEARCH_MAX_DEPTH = 0
	DEFAULT_SEED                   = 1
	DEFAULT_WORKERS                = 1

	// UNBOUNDED_DEPTH disables the move cap of local search.
	UNBOUNDED_DEPTH = 0
)

// random stream ids. GRASP iteration i uses GRASP_STREAM_OFFSET+i, multi-start local search run r
// uses LOCAL_SEARCH_RUN_OFFSET+r.
const (
	RANDOMIZED_STREAM       uint64 = 1
	SEMI_GREEDY_STREAM      uint64 = 2
	LOCAL_SEARCH_STREAM     uint64 = 3
	LOCAL_SEARCH_RUN_OFFSET uint64 = 1 << 16
	GRASP_STREAM_OFFSET     uint64 = 1 << 32
)
