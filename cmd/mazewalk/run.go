package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/katalvlaran/mazewalk/bfs"
	_ "github.com/katalvlaran/mazewalk/dfs"
	"github.com/katalvlaran/mazewalk/playback"
	"github.com/katalvlaran/mazewalk/search"
	"github.com/katalvlaran/mazewalk/textsink"
)

type playFlags struct {
	delay     float64
	noStats   bool
	fast      bool
	finalOnly bool
	delaySet  bool
}

func newRunCmd(a *app) *cobra.Command {
	var f playFlags
	cmd := &cobra.Command{
		Use:       "run [bfs|dfs]",
		Short:     "Play a search as plain text on stdout",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bfs", "dfs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Algorithm
			if len(args) == 1 {
				name = args[0]
			}
			alg, err := search.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			f.delaySet = cmd.Flags().Changed("delay")
			return a.playPlain(cmd.Context(), alg, f)
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&f.delay, "delay", 0.5, "seconds between steps, 0.1 to 2.0")
	fl.BoolVar(&f.noStats, "no-stats", false, "hide the statistics block")
	fl.BoolVar(&f.fast, "fast", false, "skip the delay between steps")
	fl.BoolVar(&f.finalOnly, "final-only", false, "print only the last frame")
	return cmd
}

// immediate fires at once; it backs --fast.
func immediate(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func (a *app) playPlain(ctx context.Context, alg search.Algorithm, f playFlags) error {
	g, s, err := a.build()
	if err != nil {
		return err
	}
	if f.delaySet {
		if err := s.SetDelay(f.delay); err != nil {
			return err
		}
	}
	if f.noStats {
		s.SetShowStats(false)
	}

	st, err := search.New(alg, g)
	if err != nil {
		return err
	}

	var sinkOpts []textsink.Option
	if f.finalOnly {
		sinkOpts = append(sinkOpts, textsink.FinalOnly())
	}
	sink := textsink.New(a.stdout, sinkOpts...)

	opts := []playback.Option{playback.WithLogger(a.logger)}
	if f.fast {
		opts = append(opts, playback.WithClock(immediate))
	}
	if _, err := playback.New(g, s, sink, opts...).Run(ctx, st); err != nil {
		return err
	}
	return sink.Err()
}
