package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/grid"
)

// ExampleParse builds a small maze and lists the open neighbors of Start.
func ExampleParse() {
	g, err := grid.Parse([]string{
		"#S#",
		"# #",
		"#E#",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("start:", g.Start(), "target:", g.Target())
	for _, n := range g.Neighbors(g.Start()) {
		fmt.Println(n, g.MustKindAt(n))
	}

	// Output:
	// start: (0, 1) target: (2, 1)
	// (1, 1) open
	// (0, 0) obstacle
	// (0, 2) obstacle
}
