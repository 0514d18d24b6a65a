package main

import (
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/gridsolver/internal/config"
	"svw.info/gridsolver/internal/generator"
	"svw.info/gridsolver/internal/infrastructure/storage"
	"svw.info/gridsolver/internal/reducer"
	"svw.info/gridsolver/internal/solver"
	"svw.info/gridsolver/internal/usecase"
	"svw.info/gridsolver/internal/validator"
)

type app struct {
	cfg    config.Config
	logger *slog.Logger
	svc    *usecase.Service
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		levelStr string
		seed     int64
		maxIters int
	)
	a := &app{}

	root := &cobra.Command{
		Use:           "gridsolver",
		Short:         "Solve, check, reduce and generate 9x9 sudoku boards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if seed != 0 {
				cfg.Seed = seed
			}
			if maxIters != 0 {
				cfg.MaxIterations = maxIters
			}
			a.cfg = cfg
			a.logger = newLogger(levelStr)
			a.svc = newService(cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "optional YAML tuning file")
	root.PersistentFlags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	root.PersistentFlags().IntVar(&maxIters, "max-iterations", 0, "randomized stage budget (0 = default)")

	root.AddCommand(newSolveCmd(a), newCheckCmd(a), newReduceCmd(a), newGenerateCmd(a), newListCmd(a))
	return root
}

func newLogger(levelStr string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newService wires providers → use cases, teacher-of-record for every
// subcommand.
func newService(cfg config.Config) *usecase.Service {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []solver.Option{solver.WithRand(rand.New(rand.NewSource(seed)))}
	if cfg.MaxIterations > 0 {
		opts = append(opts, solver.WithMaxIterations(cfg.MaxIterations))
	}
	s := solver.New(opts...)
	r := reducer.New(rand.New(rand.NewSource(seed)))
	g := generator.New()
	v := validator.New()
	st := storage.NewFS(cfg.DataDir)
	return usecase.NewService(s, r, g, v, st)
}
