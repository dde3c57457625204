package matrix_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/graphptol/matrix"
)

// ExampleLoad reads a path graph 0–1–2 and writes it back.
func ExampleLoad() {
	g, err := matrix.Load(strings.NewReader("0 1 0\n1 0 1\n0 1 0\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Nodes(), g.Edges())

	am, _ := matrix.NewAdjacencyMatrix(g)
	_ = am.Encode(os.Stdout)
	// Output:
	// [0 1 2] [{0 1} {1 2}]
	// 0 1 0
	// 1 0 1
	// 0 1 0
}
