package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/astutecat/aoc-2024/internal/calendar"
	"github.com/astutecat/aoc-2024/internal/config"
	"github.com/astutecat/aoc-2024/internal/harness"
	"github.com/astutecat/aoc-2024/internal/logging"
	"github.com/astutecat/aoc-2024/internal/store"
)

// errFailed is returned when a command ran but some result was bad. The
// details have already been printed.
var errFailed = errors.New("one or more runs failed")

// #region main
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

// #endregion main

// #region app
// app holds what the persistent flags resolve to.
type app struct {
	configPath string
	verbose    bool
	dataDir    string
	dbPath     string

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2024 solver harness",
		Long: `aoc parses puzzle inputs, folds them into answers and records every run
in a local SQLite history.

Inputs are read from <data>/inputs/DD.txt, or <data>/examples/DD.txt with
--example. Settings come from aoc.yaml, AOC_* environment variables and flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&a.dataDir, "data-dir", "", "directory holding inputs/ and examples/")
	pf.StringVar(&a.dbPath, "db", "", "run history database")

	root.AddCommand(
		a.runCmd(),
		a.checkCmd(),
		a.historyCmd(),
		a.exportCmd(),
		a.serveCmd(),
		a.remoteCmd(),
	)
	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("db") {
		cfg.DBPath = a.dbPath
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.log.Debug("config loaded",
		zap.String("data_dir", cfg.DataDir),
		zap.String("db", cfg.DBPath),
		zap.Int("parallelism", cfg.Parallelism))
	return nil
}

// #endregion app

// #region helpers
func (a *app) openStore() (*store.Store, error) {
	st, err := store.NewStore(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return st, nil
}

// runner builds a Runner over the default calendar. st may be nil.
func (a *app) runner(st *store.Store, cache bool) *harness.Runner {
	opts := []harness.Option{harness.WithLogger(a.log)}
	if st != nil {
		opts = append(opts, harness.WithStore(st))
	}
	return harness.NewRunner(calendar.Default(), harness.Config{
		DataDir:     a.cfg.DataDir,
		Parallelism: a.cfg.Parallelism,
		Cache:       cache,
	}, opts...)
}

func sourceOf(example bool) harness.Source {
	if example {
		return harness.Example
	}
	return harness.Real
}

// #endregion helpers
