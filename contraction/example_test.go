package contraction_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mincut/contraction"
)

// ExampleGraph_ContractFull contracts a triangle to two super-vertices. The
// contracted weight is twice the weight of the sampled cut.
func ExampleGraph_ContractFull() {
	g, err := contraction.FromDirectedEdges(3, contraction.Undirected([]contraction.DirectedEdge{
		contraction.Weighted(0, 1, 3),
		contraction.Weighted(0, 2, 1),
		contraction.Weighted(1, 2, 5),
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g)

	rng := rand.New(rand.NewSource(1))
	best := int64(-1)
	for i := 0; i < 50; i++ {
		out, _ := g.ContractFull(rng)
		if best < 0 || out.Weight() < best {
			best = out.Weight()
		}
	}
	fmt.Println("min cut (doubled):", best)

	// Output:
	// Graph{n=3 w=18 [0:4 (1:3 2:1)] [1:8 (0:3 2:5)] [2:6 (0:1 1:5)]}
	// min cut (doubled): 8
}
