package main

import (
	"fmt"
	"os"

	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/day01"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/day02"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/day03"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/day04"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/inputs"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/puzzle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	configPath string
	inputDir   string
	verbose    bool
	lookupEnv  func(string) (string, bool)

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	a := &app{lookupEnv: os.LookupEnv}
	if err := a.rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "aoc2024",
		Short:        "Advent of Code 2024 solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to yaml config")
	root.PersistentFlags().StringVar(&a.inputDir, "input-dir", "", "directory with dayNN/input.txt, overrides config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.runCmd(), a.listCmd(), a.saveInputCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(a.lookupEnv)
	if a.inputDir != "" {
		cfg.InputDir = a.inputDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	zapCfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("bad log level %q: %w", cfg.LogLevel, err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	a.logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) registry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(
		day01.New(),
		day02.New(),
		day03.New(a.cfg.Day03.MaxTokens),
		day04.New(),
	)
}

func (a *app) store() inputs.Store {
	return inputs.NewLocalStore(a.cfg.InputDir, a.logger)
}
