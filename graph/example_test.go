package graph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/romandom/graph"
)

// ExampleRead loads a path on four vertices and inspects it.
func ExampleRead() {
	g, err := graph.Read(strings.NewReader("4 3\n0 1\n1 2\n2 3\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	nb, _ := g.Neighbors(1)
	fmt.Println(g.Order(), g.Size(), nb)
	fmt.Printf("%.2f\n", g.Density())

	// Output:
	// 4 3 [0 2]
	// 0.50
}
