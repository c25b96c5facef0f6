package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazewalk/config"
	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/render"
	"github.com/katalvlaran/mazewalk/settings"
	"github.com/katalvlaran/mazewalk/tui"
)

// app carries what the persistent flags resolve to.
type app struct {
	configPath string
	logLevel   string
	logFile    string

	cfg     config.Config
	logger  *slog.Logger
	logSink io.Closer

	stdout io.Writer
	stderr io.Writer
}

// execute runs the command tree with args and releases the log file
// whatever the outcome.
func (a *app) execute(ctx context.Context, args []string) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "mazewalk",
		Short:         "Step through BFS and DFS on a grid maze",
		Long:          "mazewalk animates breadth-first and depth-first search over a grid maze,\nexplaining every step it takes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		RunE: a.runInteractive,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "mazewalk.yaml", "YAML configuration file (missing file means defaults)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFile, "log-file", "", "append logs to this file instead of stderr")

	root.AddCommand(newRunCmd(a), newGridCmd(a))
	return root
}

// load reads the configuration and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFile != "" {
		cfg.LogFile = a.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	var out io.Writer = a.stderr
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logSink = f
		out = f
	case cmd.Name() == "mazewalk" && a.interactive():
		// The alternate screen owns the terminal.
		out = io.Discard
	}
	a.logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) close() error {
	if a.logSink == nil {
		return nil
	}
	err := a.logSink.Close()
	a.logSink = nil
	return err
}

// interactive reports whether stdout is a terminal.
func (a *app) interactive() bool {
	f, ok := a.stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) build() (*grid.Grid, *settings.Settings, error) {
	g, err := a.cfg.BuildGrid()
	if err != nil {
		return nil, nil, err
	}
	s, err := a.cfg.BuildSettings()
	if err != nil {
		return nil, nil, err
	}
	return g, s, nil
}

func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	if !a.interactive() {
		alg, err := a.cfg.DefaultAlgorithm()
		if err != nil {
			return err
		}
		a.logger.Info("stdout is not a terminal, falling back to plain playback", "algorithm", alg.String())
		return a.playPlain(cmd.Context(), alg, playFlags{})
	}

	g, s, err := a.build()
	if err != nil {
		return err
	}
	m := tui.New(g, s, tui.WithLogger(a.logger), tui.WithStyles(render.Color()))
	return tui.Run(cmd.Context(), m)
}
