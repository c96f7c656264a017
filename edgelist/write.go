// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/mincut/contraction"
)

// Write emits n followed by one "v w weight" line per edge. Unit weights are
// written without the weight column.
func Write(w io.Writer, n int, edges []contraction.DirectedEdge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}
	for _, e := range edges {
		var err error
		if e.Weight == 1 {
			_, err = fmt.Fprintf(bw, "%d %d\n", e.From, e.To)
		} else {
			_, err = fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight)
		}
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteGraph writes g's aggregated edges.
func WriteGraph(w io.Writer, g *contraction.Graph) error {
	return Write(w, g.NumVertices(), g.DirectedEdges())
}
