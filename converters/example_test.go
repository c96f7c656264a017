package converters_test

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mincut/converters"
	"github.com/katalvlaran/mincut/karger"
)

// ExampleFromWeightedUndirected runs Karger on a gonum graph and maps the
// result back to gonum ids.
func ExampleFromWeightedUndirected() {
	src := simple.NewWeightedUndirectedGraph(0, 0)
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(30), T: simple.Node(10), W: 3})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(30), T: simple.Node(20), W: 1})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(10), T: simple.Node(20), W: 5})

	g, ids, err := converters.FromWeightedUndirected(src)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	k, err := karger.NewKarger(g, karger.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("ids:", ids)
	fmt.Println("min cut:", k.IterateN(60, false)/2)

	// Output:
	// ids: [10 20 30]
	// min cut: 4
}
