package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"optpaircli/internal/config"
	"optpaircli/internal/dataprocessing"
	apperrors "optpaircli/internal/errors"
	"optpaircli/internal/exporter"
	"optpaircli/internal/infrastructure"
	"optpaircli/pkg/contracts"
)

// runArgs holds the command line flags
type runArgs struct {
	ConfigFile     string
	ConfigExplicit bool
	EnvFile        string
	BaseDirs       string
	Output         string
	Quiet          bool
}

// app carries the process dependencies that tests replace
type app struct {
	out       io.Writer
	newLogger func(cfg config.LoggingConfig) (*slog.Logger, error)
}

func newApp(out io.Writer) *app {
	return &app{out: out, newLogger: infrastructure.InitializeLogger}
}

func newRootCmd(a *app) *cobra.Command {
	args := runArgs{}

	cmd := &cobra.Command{
		Use:   "aggregator",
		Short: "Pair call and put quotes at equal strikes across dated option-chain folders",
		Long: `aggregator walks every dated folder under the configured base directories,
matches call and put rows that share a strike price and an identical volume,
adds their combined settlement cost and writes all matches to one workbook.`,
		Version:       contracts.GetFullVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args.ConfigExplicit = cmd.Flags().Changed("config")
			return a.run(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVarP(&args.ConfigFile, "config", "c", config.DefaultConfigFile, "path to the YAML configuration file")
	cmd.Flags().StringVar(&args.EnvFile, "env-file", config.DefaultEnvFile, "optional dotenv file")
	cmd.Flags().StringVar(&args.BaseDirs, "base-dirs", "", "comma-separated base directories (overrides config)")
	cmd.Flags().StringVarP(&args.Output, "output", "o", "", "consolidated workbook path (overrides config)")
	cmd.Flags().BoolVarP(&args.Quiet, "quiet", "q", false, "do not print the run summary")

	return cmd
}

// run executes one aggregation. Only configuration and output failures
// are returned; everything else is logged and recorded in the report.
func (a *app) run(ctx context.Context, args runArgs) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: args.ConfigFile,
		Explicit:   args.ConfigExplicit,
		EnvFile:    args.EnvFile,
		BaseDirs:   args.BaseDirs,
		OutputPath: args.Output,
	})
	if err != nil {
		return err
	}

	logger, err := a.newLogger(cfg.Logging)
	if err != nil {
		return apperrors.NewConfigError("failed to initialize logger", err)
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.EnsureRunID(ctx)
	logger.InfoContext(ctx, "Starting option pair aggregation",
		slog.Any("base_dirs", cfg.Aggregation.Dirs()),
		slog.String("output", cfg.Aggregation.OutputPath))

	metrics, err := infrastructure.NewRunMetrics()
	if err != nil {
		logger.WarnContext(ctx, "Metrics disabled", slog.String("error", err.Error()))
	}

	opts := dataprocessing.Options{Schema: cfg.Columns}
	if metrics != nil {
		opts.Recorder = metrics
		defer metrics.Shutdown(context.Background())
	}

	pipeline := dataprocessing.NewPipeline(infrastructure.WithComponent(logger, "pipeline"), opts)
	result, runErr := pipeline.Run(ctx, cfg.Aggregation.Dirs())

	switch {
	case errors.Is(runErr, dataprocessing.ErrNoMatches):
		logger.InfoContext(ctx, "No matching records found")
	case runErr != nil:
		return runErr
	default:
		writer := exporter.NewXLSXWriter().WithLogger(logger)
		if err := writer.Write(cfg.Aggregation.OutputPath, result.Table); err != nil {
			logger.ErrorContext(ctx, "Failed to save consolidated results",
				slog.String("path", cfg.Aggregation.OutputPath),
				slog.String("error", err.Error()))
			return err
		}
		logger.InfoContext(ctx, "Saved consolidated results",
			slog.Int("count", result.Table.Len()),
			slog.String("path", cfg.Aggregation.OutputPath))
	}

	if path := cfg.Aggregation.ReportPath; path != "" {
		if err := exporter.NewReportWriter().WithLogger(logger).WriteCSV(path, result.Report); err != nil {
			logger.WarnContext(ctx, "Failed to write run report",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}

	if metrics != nil {
		metrics.RunFinished(ctx, time.Now())
		if path := cfg.Aggregation.MetricsPath; path != "" {
			if err := metrics.WriteTextfile(path); err != nil {
				logger.WarnContext(ctx, "Failed to write metrics",
					slog.String("path", path),
					slog.String("error", err.Error()))
			}
		}
	}

	if !args.Quiet {
		if err := exporter.NewSummaryPrinter().Print(a.out, result.Report); err != nil {
			logger.WarnContext(ctx, "Failed to print summary", slog.String("error", err.Error()))
		}
	}

	return nil
}

// exitCode maps a run error to the process exit status
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func main() {
	cmd := newRootCmd(newApp(os.Stdout))
	err := cmd.ExecuteContext(infrastructure.ContextWithRunID(context.Background()))
	if err != nil {
		slog.Error("Aggregation failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}
