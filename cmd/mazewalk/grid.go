package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGridCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Print the configured maze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.cfg.BuildGrid()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, g)
			fmt.Fprintf(out, "\n%d×%d, start %v, target %v, %d open cells\n",
				g.Rows(), g.Cols(), g.Start(), g.Target(), g.PassableCount())
			if !g.Connected() {
				fmt.Fprintln(out, "target is not reachable from start")
			}
			return nil
		},
	}
}
