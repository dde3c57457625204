package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphptol/builder"
	"github.com/katalvlaran/graphptol/dfs"
)

// ExampleFindCycle shows the closed walk reported for a wheel.
func ExampleFindCycle() {
	g, _ := builder.BuildGraph(nil, builder.Wheel(5))
	ok, cycle, _ := dfs.FindCycle(g)
	fmt.Println(ok, cycle)
	// Output: true [0 1 2 0]
}
