package karger_test

import (
	"fmt"

	"github.com/katalvlaran/mincut/contraction"
	"github.com/katalvlaran/mincut/karger"
)

// ExampleKarger_IterateN runs Karger's algorithm on a weighted triangle. The
// lightest cut isolates vertex 0 (3+1), reported doubled.
func ExampleKarger_IterateN() {
	g, err := contraction.FromDirectedEdges(3, contraction.Undirected([]contraction.DirectedEdge{
		contraction.Weighted(0, 1, 3),
		contraction.Weighted(0, 2, 1),
		contraction.Weighted(1, 2, 5),
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	k, err := karger.NewKarger(g, karger.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("trials:", k.MinNumTrials(1-1.0/3))
	fmt.Println("min cut:", k.IterateN(60, false))

	// Output:
	// trials: 5
	// min cut: 8
}

// ExampleByName selects Karger–Stein by name, as the CLI does.
func ExampleByName() {
	g, err := contraction.FromDirectedEdges(4, contraction.Undirected([]contraction.DirectedEdge{
		contraction.Unweighted(0, 1),
		contraction.Unweighted(1, 2),
		contraction.Unweighted(2, 3),
		contraction.Unweighted(3, 0),
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	a, err := karger.ByName(karger.NameKargerStein, g, 2, karger.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("min cut:", a.IterateSuccessLowerBound(0.999, false))

	// Output:
	// min cut: 4
}
