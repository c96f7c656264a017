package edgelist_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mincut/edgelist"
)

// ExampleReadGraph parses a two-vertex graph with one undirected edge.
func ExampleReadGraph() {
	g, err := edgelist.ReadGraph(strings.NewReader("2\n0 1 6\n1 0 6\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NumVertices(), g.NumEdges(), g.Weight())

	// Output:
	// 2 2 12
}
