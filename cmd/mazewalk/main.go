// Command mazewalk animates breadth-first and depth-first search over a
// small grid maze, one explained step at a time.
//
// Usage:
//
//	mazewalk                 interactive menu (plain BFS run when not a terminal)
//	mazewalk run [bfs|dfs]   plain-text playback on stdout
//	mazewalk grid            print the configured maze
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := (&app{stdout: os.Stdout, stderr: os.Stderr}).execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mazewalk:", err)
		os.Exit(1)
	}
}
