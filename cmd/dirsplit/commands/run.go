package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/marmos91/dirsplit/internal/bytesize"
	"github.com/marmos91/dirsplit/internal/cli/output"
	"github.com/marmos91/dirsplit/internal/cli/prompt"
	"github.com/marmos91/dirsplit/internal/cli/timeutil"
	"github.com/marmos91/dirsplit/internal/logger"
	"github.com/marmos91/dirsplit/internal/progress"
	"github.com/marmos91/dirsplit/internal/telemetry"
	"github.com/marmos91/dirsplit/pkg/config"
	"github.com/marmos91/dirsplit/pkg/metrics"
	"github.com/marmos91/dirsplit/pkg/split"
	"github.com/marmos91/dirsplit/pkg/transfer"
)

var (
	runInDir   string
	runOutDir  string
	runCommand string
	runShards  int
	runYes     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Split a directory into shard subdirectories",
	Long: `Split the files of a directory into evenly sized shard subdirectories.

Files are sorted by name and distributed in order: with N files and K shards
each shard receives N/K files and the last shard additionally takes the
remainder. Shard directories are named after their 1-based index, zero-padded
to the width of the shard count (01..10 for ten shards).

The command flag selects the transfer mode: m moves files out of the source
directory, c copies them and leaves the source untouched. Moving asks for
confirmation first; pass --yes for unattended runs.

Examples:
  # Move files into 10 shard directories
  dirsplit run --in_dir /data/photos --out_dir /data/shards --command m -n 10

  # Copy instead of moving
  dirsplit run --in_dir /data/photos --out_dir /data/shards --command c -n 10

  # Unattended move with environment variable overrides
  DIRSPLIT_LOGGING_LEVEL=DEBUG dirsplit run --in_dir ./in --out_dir ./out --command m -n 4 --yes`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runInDir, "in_dir", "", "Source directory whose files are split")
	runCmd.Flags().StringVar(&runOutDir, "out_dir", "", "Destination directory receiving the shard subdirectories")
	runCmd.Flags().StringVar(&runCommand, "command", "", "Transfer command: m (move) or c (copy)")
	runCmd.Flags().IntVarP(&runShards, "n", "n", 0, "Number of shard directories")
	runCmd.Flags().BoolVarP(&runYes, "yes", "y", false, "Skip the confirmation prompt before moving files")

	_ = runCmd.MarkFlagRequired("in_dir")
	_ = runCmd.MarkFlagRequired("out_dir")
	_ = runCmd.MarkFlagRequired("command")
	_ = runCmd.MarkFlagRequired("n")
}

func runRun(cmd *cobra.Command, args []string) error {
	mode, err := transfer.ParseMode(runCommand)
	if err != nil {
		return err
	}

	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	// Moving relocates files out of the source directory, so it is guarded
	// by a prompt unless --yes or confirm.assume_yes is set.
	if mode == transfer.ModeMove {
		confirmed, err := prompt.ConfirmWithForce(
			fmt.Sprintf("Move the files of %s into %d shard directories under %s?", runInDir, runShards, runOutDir),
			runYes || cfg.Confirm.AssumeYes,
		)
		if err != nil {
			if prompt.IsAborted(err) {
				fmt.Println("\nAborted.")
				return nil
			}
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Initialize the structured logger
	log, closer, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = closer.Close() }()

	runID := uuid.NewString()
	log = log.With(logger.RunID(runID))

	// Create cancellable context so a signal aborts between two files
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry (if enabled)
	telemetryCfg := telemetry.Config{
		Enabled:         cfg.Telemetry.Enabled,
		ServiceName:     "dirsplit",
		ServiceVersion:  Version,
		Endpoint:        cfg.Telemetry.Endpoint,
		Insecure:        cfg.Telemetry.Insecure,
		SampleRate:      cfg.Telemetry.SampleRate,
		ShutdownTimeout: cfg.Telemetry.ShutdownTimeout,
	}
	telemetryShutdown, err := telemetry.Init(ctx, telemetryCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(ctx); err != nil {
			log.Error("telemetry shutdown error", logger.Err(err))
		}
	}()

	log.Info("Configuration loaded", "source", getConfigSource(GetConfigFile()))
	if telemetry.IsEnabled() {
		log.Info("Telemetry enabled", "endpoint", cfg.Telemetry.Endpoint, "sample_rate", cfg.Telemetry.SampleRate)
	} else {
		log.Info("Telemetry disabled")
	}

	// Initialize per-run metrics (if enabled)
	var runMetrics *metrics.RunMetrics
	if cfg.Metrics.Enabled {
		runMetrics = metrics.NewRunMetrics(runID, mode.String())
	}

	// Abort between files on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			log.Info("Shutdown signal received, aborting after the current file", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	reporter := progress.NewReporter(log, mode, cfg.Progress.Interval)

	splitter, err := split.New(split.Config{
		SourceDir: runInDir,
		OutDir:    runOutDir,
		Mode:      mode,
		Shards:    runShards,
	}, log, split.WithReporter(reporter), split.WithMetrics(runMetrics))
	if err != nil {
		return err
	}

	start := time.Now()
	runCtx, span := telemetry.StartRunSpan(ctx, runID, mode.String(), runShards)
	result, runErr := splitter.Run(runCtx)
	if runErr != nil {
		telemetry.RecordError(runCtx, runErr)
	}
	span.End()
	elapsed := time.Since(start)

	// Export metrics even for an aborted run; partial progress still counts.
	if runMetrics != nil {
		if err := runMetrics.WriteToTextfile(cfg.Metrics.TextfilePath); err != nil {
			log.Warn("Failed to export metrics textfile", logger.Path(cfg.Metrics.TextfilePath), logger.Err(err))
		}
	}

	if runErr != nil {
		if result != nil && result.Transferred > 0 {
			log.Warn("Run aborted after partial completion",
				logger.Files(result.Transferred),
				logger.Shards(runShards),
			)
		}
		return runErr
	}

	printRunSummary(os.Stdout, mode, runShards, result, elapsed)
	return nil
}

// printRunSummary renders the closing summary of a successful run.
func printRunSummary(w io.Writer, mode transfer.Mode, shards int, result *split.Result, elapsed time.Duration) {
	verb := "moved"
	if mode == transfer.ModeCopy {
		verb = "copied"
	}
	_, _ = fmt.Fprintf(w, "\n%d of %d files %s into %d shard directories.\n\n",
		result.Transferred, result.TotalFiles, verb, shards)

	_ = output.SimpleTable(w, [][2]string{
		{"Mode", mode.String()},
		{"Files", strconv.Itoa(result.Transferred)},
		{"Bytes", bytesize.ByteSize(result.BytesTransferred).String()},
		{"Shards", strconv.Itoa(shards)},
		{"Dirs created", strconv.Itoa(result.DirsCreated)},
		{"Elapsed", timeutil.FormatDuration(elapsed)},
	})
}

// getConfigSource returns a description of where the config was loaded from.
func getConfigSource(configFile string) string {
	if configFile != "" {
		return configFile
	}
	if config.DefaultConfigExists() {
		return config.GetDefaultConfigPath()
	}
	return "defaults"
}
