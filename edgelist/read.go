// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mincut/contraction"
)

// Read parses an edge list and returns the vertex count and the directed
// edges in input order.
//
// Steps:
//  1. Skip blank and '#' lines; the first data line must be n ≥ 0.
//  2. Every following data line is "v w" or "v w weight"; extra fields are
//     rejected.
//  3. Range-check endpoints against n and reject negative weights.
//
// Complexity: O(size of input).
func Read(r io.Reader) (int, []contraction.DirectedEdge, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := -1
	var edges []contraction.DirectedEdge
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		if n < 0 {
			v, err := strconv.Atoi(fields[0])
			if len(fields) != 1 || err != nil || v < 0 {
				return 0, nil, &ParseError{Line: line, Text: text, Err: ErrMalformedLine}
			}
			n = v
			continue
		}

		e, err := parseEdge(fields, n)
		if err != nil {
			return 0, nil, &ParseError{Line: line, Text: text, Err: err}
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if n < 0 {
		return 0, nil, ErrEmptyInput
	}

	return n, edges, nil
}

func parseEdge(fields []string, n int) (contraction.DirectedEdge, error) {
	if len(fields) < 2 || len(fields) > 3 {
		return contraction.DirectedEdge{}, ErrMalformedLine
	}
	v, errV := strconv.Atoi(fields[0])
	w, errW := strconv.Atoi(fields[1])
	if err := errors.Join(errV, errW); err != nil {
		return contraction.DirectedEdge{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	weight := int64(1)
	if len(fields) == 3 {
		var err error
		if weight, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
			return contraction.DirectedEdge{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
	}

	if v < 0 || v >= n || w < 0 || w >= n {
		return contraction.DirectedEdge{}, ErrVertexOutOfRange
	}
	if weight < 0 {
		return contraction.DirectedEdge{}, ErrNegativeWeight
	}

	return contraction.DirectedEdge{From: v, To: w, Weight: weight}, nil
}

// ReadGraph parses an edge list and builds the graph.
func ReadGraph(r io.Reader) (*contraction.Graph, error) {
	n, edges, err := Read(r)
	if err != nil {
		return nil, err
	}

	return contraction.FromDirectedEdges(n, edges)
}

// LoadFile reads the graph stored at path.
func LoadFile(path string) (*contraction.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	g, err := ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
