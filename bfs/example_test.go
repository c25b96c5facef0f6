package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/bfs"
	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/search"
)

// ExampleWalker_Next walks a 3×3 open room. Cells leave the queue level by
// level, and the route found has the minimum four moves.
func ExampleWalker_Next() {
	g, _ := grid.Parse([]string{
		"S  ",
		"   ",
		"  E",
	})
	for rec := range search.All(bfs.New(g)) {
		fmt.Printf("step %d at %v level %d %s\n", rec.Step, rec.Current, rec.Depth(), rec.Status)
		if rec.Status == search.Found {
			fmt.Println(rec.Final.Edges(), "moves")
		}
	}

	// Output:
	// step 1 at (0, 0) level 0 continuing
	// step 2 at (1, 0) level 1 continuing
	// step 3 at (0, 1) level 1 continuing
	// step 4 at (2, 0) level 2 continuing
	// step 5 at (1, 1) level 2 continuing
	// step 6 at (0, 2) level 2 continuing
	// step 7 at (2, 1) level 3 continuing
	// step 8 at (1, 2) level 3 continuing
	// step 9 at (2, 2) level 4 found
	// 4 moves
}
