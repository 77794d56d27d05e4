package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
)

var csvHeader = []string{"Name", "|V|", "|E|", "Simple Randomized", "Simple Greedy", "Semi-greedy",
	"Simple local No. of iterations", "Simple local Average value",
	"GRASP No. of iterations", "GRASP Best value", "Known best solution or upper bound"}

func formatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func (r Report) csvRow() []string {
	knownBest := ""
	if r.HasKnownBest {
		knownBest = strconv.FormatInt(r.KnownBest, 10)
	}
	return []string{
		r.Name,
		strconv.Itoa(r.Vertices),
		strconv.Itoa(r.Edges),
		formatValue(r.Result.RandomizedCutValue),
		formatValue(float64(r.Result.GreedyCutValue)),
		formatValue(float64(r.Result.SemiGreedyCutValue)),
		strconv.Itoa(r.LocalSearchIterations()),
		formatValue(r.LocalSearchValue()),
		strconv.Itoa(r.Result.GraspIterations),
		formatValue(float64(r.Result.GraspCutValue)),
		knownBest,
	}
}

func WriteCSV(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range reports {
		if err := cw.Write(r.csvRow()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteCSVFile(filename string, reports []Report) error {
	f, err := os.Create(filename)
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "create %s", filename)
	}
	defer f.Close()

	if err := WriteCSV(f, reports); err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "write %s", filename)
	}
	return nil
}
