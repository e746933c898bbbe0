package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/config"
	"github.com/katalvlaran/pipeloop/solver"
)

// app is the state shared by all subcommands once flags are resolved.
type app struct {
	configPath string
	walls      string
	color      bool
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "pipeloop",
		Short:        "Find the pipe loop in an ASCII diagram and count the cells it encloses",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.walls, "walls", string(solver.WallsMutual), "flood wall rule: mutual or loop")
	pf.BoolVar(&a.color, "color", false, "colored backgrounds when rendering")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(solveCmd(a), renderCmd(a))
	return root
}

// setup merges the config file with explicitly set flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("walls") {
		cfg.Walls = a.walls
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	color.NoColor = !cfg.Color

	lvl, _ := cfg.Level()
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.logger = logger.Named("pipeloop")
	return nil
}

// solve reads the diagram from args[0] or stdin and runs the analysis.
func (a *app) solve(cmd *cobra.Command, args []string) (*solver.Report, error) {
	opts := []solver.Option{
		solver.WithLogger(a.logger),
		solver.WithWalls(solver.Walls(a.cfg.Walls)),
	}
	if len(args) == 1 {
		a.logger.Debug("reading diagram", zap.String("path", args[0]))
		return solver.SolveFile(args[0], opts...)
	}
	return solver.SolveReader(cmd.InOrStdin(), opts...)
}

func printResult(w io.Writer, rep *solver.Report) {
	fmt.Fprintf(w, "farthest: %d\n", rep.Farthest)
	fmt.Fprintf(w, "enclosed: %d\n", rep.Enclosed)
}
