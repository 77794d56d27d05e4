package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
)

const BZIP2_SUFFIX = ".bz2"

// ReadGraph reads a benchmark graph file ("V E" header followed by E lines "u v w").
// Files ending in .bz2 are decompressed on the fly.
func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, BZIP2_SUFFIX) {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	g, err := ParseGraph(r)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", filename, err)
	}
	return g, nil
}

// ParseGraph parses the benchmark graph format. Unlike Graph.AddEdge it validates the input:
// vertex ids must be in 1..V, self loops and missing or surplus edge lines are rejected.
func ParseGraph(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)

	header, err := nextDataLine(br)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "missing header line")
	}
	ff := strings.Fields(header)
	if len(ff) < 2 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "header %q must contain vertex and edge counts", header)
	}
	numberOfVertices, err := strconv.Atoi(ff[0])
	if err != nil || numberOfVertices < 0 {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid vertex count %q", ff[0])
	}
	numberOfEdges, err := strconv.Atoi(ff[1])
	if err != nil || numberOfEdges < 0 {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid edge count %q", ff[1])
	}

	g := NewGraph(numberOfVertices)
	for i := 0; i < numberOfEdges; i++ {
		line, err := nextDataLine(br)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "expected %d edges, got %d", numberOfEdges, i)
		}
		u, v, w, err := parseEdgeLine(line, numberOfVertices)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "edge line %d: %v", i+1, err)
		}
		g.AddEdge(u, v, w)
	}

	if line, err := nextDataLine(br); err == nil {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unexpected line after %d edges: %q", numberOfEdges, line)
	}

	return g, nil
}

func parseEdgeLine(line string, numberOfVertices int) (Index, Index, Weight, error) {
	ff := strings.Fields(line)
	if len(ff) < 3 {
		return 0, 0, 0, fmt.Errorf("want \"u v w\", got %q", line)
	}
	u, err := parseVertex(ff[0], numberOfVertices)
	if err != nil {
		return 0, 0, 0, err
	}
	v, err := parseVertex(ff[1], numberOfVertices)
	if err != nil {
		return 0, 0, 0, err
	}
	if u == v {
		return 0, 0, 0, fmt.Errorf("self loop on vertex %d", u)
	}
	w, err := strconv.ParseInt(ff[2], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid weight %q", ff[2])
	}
	return u, v, w, nil
}

func parseVertex(s string, numberOfVertices int) (Index, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex id %q", s)
	}
	if id < 1 || id > numberOfVertices {
		return 0, fmt.Errorf("vertex id %d out of range 1..%d", id, numberOfVertices)
	}
	return Index(id), nil
}

// nextDataLine returns the next non-blank line.
func nextDataLine(br *bufio.Reader) (string, error) {
	for {
		line, err := br.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// WriteGraph writes g in the benchmark format, bzip2-compressed when filename ends in .bz2.
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(filename, BZIP2_SUFFIX) {
		return g.Encode(f)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := g.Encode(bz); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func (g *Graph) Encode(out io.Writer) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "%d %d\n", g.numberOfVertices, g.numberOfEdges)
	g.ForEachEdge(func(e Edge) {
		fmt.Fprintf(w, "%d %d %d\n", e.from, e.to, e.weight)
	})

	return w.Flush()
}
