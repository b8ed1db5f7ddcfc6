package main

import (
	"errors"
	"fmt"

	"github.com/pschoepf/naturalbreaks/jenks"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// classesUnset marks -k as not given on the command line or in the config.
const classesUnset = -1

var (
	errClassesRequired = errors.New("class count is required (-k or 'classes' in config)")
	errBadWorkers      = errors.New("workers must be >= 1")
	errBadThreshold    = errors.New("parallel threshold must be >= 2")
)

// app carries flag values and the logger shared by all subcommands.
type app struct {
	classes           int
	format            string
	workers           int
	parallelThreshold int
	configPath        string
	verbose           bool

	logger *zap.Logger
}

func newApp() *app {
	return &app{}
}

// command builds the cobra command tree bound to a.
func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "naturalbreaks",
		Short: "Jenks–Fisher natural breaks classification",
		Long: `naturalbreaks partitions numeric data into k classes with minimal
within-class variance (Jenks–Fisher natural breaks).

Input is read from a file argument or stdin: numbers separated by whitespace,
commas or semicolons. Lines starting with '#' are ignored.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}
			return a.resolve(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&a.classes, "classes", "k", classesUnset, "number of classes")
	pf.StringVarP(&a.format, "format", "o", formatText, "output format: text, json or yaml")
	pf.IntVar(&a.workers, "workers", jenks.DefaultWorkers, "goroutines used by the split search")
	pf.IntVar(&a.parallelThreshold, "parallel-threshold", jenks.DefaultParallelThreshold, "minimal span forked onto another worker")
	pf.StringVar(&a.configPath, "config", "", "yaml file with default settings")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.breaksCommand(), a.classifyCommand())
	return root
}

// resolve merges the config file under explicit flags and validates the result.
func (a *app) resolve(cmd *cobra.Command) error {
	if a.configPath != "" {
		fc, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.applyConfig(fc, cmd.Flags().Changed)
		a.logger.Debug("loaded config", zap.String("path", a.configPath))
	}

	if a.classes == classesUnset {
		return errClassesRequired
	}
	if a.workers < 1 {
		return errBadWorkers
	}
	if a.parallelThreshold < 2 {
		return errBadThreshold
	}
	if _, err := parseFormat(a.format); err != nil {
		return err
	}
	return nil
}

// options translates flags into engine options.
func (a *app) options() []jenks.Option {
	return []jenks.Option{
		jenks.WithWorkers(a.workers),
		jenks.WithParallelThreshold(a.parallelThreshold),
	}
}

func (a *app) breaksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "breaks [file|-]",
		Short: "Print the class breaks (minimum value of each class)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			var breaks []float64
			elapsed := timed(func() {
				breaks, err = jenks.Breaks(values, a.classes, a.options()...)
			})
			if err != nil {
				return fmt.Errorf("classify: %w", err)
			}
			a.logResult(len(values), len(breaks), elapsed)

			f, _ := parseFormat(a.format)
			return writeBreaks(cmd.OutOrStdout(), f, breaks)
		},
	}
}

func (a *app) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [file|-]",
		Short: "Print the breaks with per-class statistics and goodness of variance fit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			var res *jenks.Classification
			elapsed := timed(func() {
				res, err = jenks.Classify(values, a.classes, a.options()...)
			})
			if err != nil {
				return fmt.Errorf("classify: %w", err)
			}
			a.logResult(len(values), len(res.Breaks), elapsed)

			f, _ := parseFormat(a.format)
			return writeClassification(cmd.OutOrStdout(), f, res)
		},
	}
}

// logResult reports run statistics and warns when the data had fewer
// distinct values than requested classes.
func (a *app) logResult(values, breaks int, elapsed zapcore.Field) {
	a.logger.Debug("classified",
		zap.Int("values", values),
		zap.Int("classes", a.classes),
		zap.Int("breaks", breaks),
		zap.Int("workers", a.workers),
		elapsed,
	)
	if breaks < a.classes {
		a.logger.Warn("fewer distinct values than classes",
			zap.Int("requested", a.classes),
			zap.Int("returned", breaks),
		)
	}
}
