package benchmark

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	da "github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
)

const (
	RUD_SUFFIX = ".rud"
)

// Instance is one benchmark graph file, named after the file without its suffixes (g1, g12, ...).
type Instance struct {
	Name string
	Path string
}

func NewInstance(path string) Instance {
	return Instance{Name: InstanceName(path), Path: path}
}

// InstanceName strips the directory and the .bz2 and .rud suffixes: "set1/g12.rud.bz2" -> "g12".
func InstanceName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, da.BZIP2_SUFFIX)
	return strings.TrimSuffix(name, RUD_SUFFIX)
}

func isInstanceFile(name string) bool {
	return strings.HasSuffix(strings.TrimSuffix(name, da.BZIP2_SUFFIX), RUD_SUFFIX)
}

// DiscoverInstances lists the .rud / .rud.bz2 files of dir in natural order (g2 before g10).
func DiscoverInstances(dir string) ([]Instance, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "read benchmark dir %s", dir)
	}

	instances := make([]Instance, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isInstanceFile(entry.Name()) {
			continue
		}
		instances = append(instances, NewInstance(filepath.Join(dir, entry.Name())))
	}

	sort.SliceStable(instances, func(i, j int) bool {
		return naturalLess(instances[i].Name, instances[j].Name)
	})
	return instances, nil
}

// splitTrailingNumber splits "g12" into ("g", 12, true).
func splitTrailingNumber(s string) (string, int, bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return s, 0, false
	}
	return s[:i], n, true
}

func naturalLess(a, b string) bool {
	prefixA, numA, okA := splitTrailingNumber(a)
	prefixB, numB, okB := splitTrailingNumber(b)
	if okA && okB && prefixA == prefixB {
		if numA != numB {
			return numA < numB
		}
	}
	return a < b
}

// known best cut values (or upper bounds) of the G-set instances
var knownBest = map[string]int64{
	"g1": 12078, "g2": 12084, "g3": 12077,
	"g11": 627, "g12": 621, "g13": 645,
	"g14": 3187, "g15": 3169, "g16": 3172,
	"g22": 14123, "g23": 14129, "g24": 14131,
	"g32": 1560, "g33": 1537, "g34": 1541,
	"g35": 8000, "g36": 7996, "g37": 8009,
	"g43": 7027, "g44": 7022, "g45": 7020,
	"g48": 6000, "g49": 6000, "g50": 5988,
}

func KnownBest(name string) (int64, bool) {
	v, ok := knownBest[strings.ToLower(name)]
	return v, ok
}
