package split

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/marmos91/dirsplit/internal/logger"
	"github.com/marmos91/dirsplit/internal/telemetry"
	"github.com/marmos91/dirsplit/internal/timing"
	"github.com/marmos91/dirsplit/pkg/metrics"
	"github.com/marmos91/dirsplit/pkg/split/errors"
	"github.com/marmos91/dirsplit/pkg/transfer"
)

// Config holds the parameters of a single split run.
type Config struct {
	// SourceDir is the directory whose files are distributed.
	SourceDir string

	// OutDir is the destination root receiving the shard directories.
	OutDir string

	// Mode selects whether files are moved or copied.
	Mode transfer.Mode

	// Shards is the number of shard directories, at least 1.
	Shards int
}

// Validate checks the run parameters.
func (c Config) Validate() error {
	if c.SourceDir == "" {
		return errors.NewInvalidArgumentError("source directory must not be empty")
	}
	if c.OutDir == "" {
		return errors.NewInvalidArgumentError("output directory must not be empty")
	}
	if c.Shards < 1 {
		return errors.NewInvalidArgumentError(
			fmt.Sprintf("shard count must be positive, got %d", c.Shards))
	}
	if _, err := transfer.ForMode(c.Mode); err != nil {
		return err
	}
	return nil
}

// ProgressReporter receives a notification after each transferred file.
// Pass nil to disable progress reporting.
type ProgressReporter interface {
	FileTransferred(shardIndex int, shardName string)
}

// Splitter orchestrates one split run: it enumerates the source files,
// provisions the shard directories, and transfers each file into its shard
// in enumeration order.
type Splitter struct {
	cfg        Config
	log        *slog.Logger
	transferer transfer.Transferer
	reporter   ProgressReporter
	metrics    *metrics.RunMetrics
}

// Option configures optional Splitter collaborators.
type Option func(*Splitter)

// WithReporter attaches a progress reporter notified after every transfer.
func WithReporter(r ProgressReporter) Option {
	return func(s *Splitter) {
		s.reporter = r
	}
}

// WithMetrics attaches run metrics updated during provisioning and transfer.
func WithMetrics(m *metrics.RunMetrics) Option {
	return func(s *Splitter) {
		s.metrics = m
	}
}

// New creates a Splitter for the given run configuration.
// A nil logger discards all output.
func New(cfg Config, log *slog.Logger, opts ...Option) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transferer, err := transfer.ForMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Splitter{
		cfg:        cfg,
		log:        log,
		transferer: transferer,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Result summarizes a split run. On an aborted run it reflects the partial
// progress made before the failure.
type Result struct {
	// TotalFiles is the number of files enumerated in the source directory.
	TotalFiles int

	// Transferred is the number of files placed into their shards.
	Transferred int

	// DirsCreated is the number of shard directories created by provisioning.
	DirsCreated int

	// BytesTransferred is the total payload size of the transferred files.
	BytesTransferred int64

	// ShardFiles holds the number of files placed into each shard,
	// indexed by shard index minus one.
	ShardFiles []int
}

// Run executes the split. Files already transferred when an error occurs
// stay in place; there is no rollback. The returned Result is non-nil
// whenever enumeration succeeded, even if a later phase failed.
func (s *Splitter) Run(ctx context.Context) (*Result, error) {
	done := timing.Phase(s.log, "split directory")

	files, err := s.enumerateFiles(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		TotalFiles: len(files),
		ShardFiles: make([]int, s.cfg.Shards),
	}

	s.log.Info(fmt.Sprintf("%d files to be split into %d directories", len(files), s.cfg.Shards),
		logger.Files(len(files)),
		logger.Shards(s.cfg.Shards),
	)

	created, err := s.provision(ctx)
	result.DirsCreated = created
	if err != nil {
		return result, err
	}
	s.metrics.RecordDirsCreated(created)

	if err := s.transferAll(ctx, files, result); err != nil {
		return result, err
	}

	done()
	return result, nil
}

// enumerateFiles runs the enumeration phase with timing and tracing.
func (s *Splitter) enumerateFiles(ctx context.Context) ([]string, error) {
	ctx, span := telemetry.StartPhaseSpan(ctx, "enumerate",
		telemetry.Source(s.cfg.SourceDir))
	defer span.End()

	done := timing.Phase(s.log, "get file list")
	files, err := EnumerateFiles(s.cfg.SourceDir)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return nil, err
	}
	done()

	telemetry.SetAttributes(ctx, telemetry.Files(len(files)))
	return files, nil
}

// provision runs the provisioning phase with timing and tracing.
func (s *Splitter) provision(ctx context.Context) (int, error) {
	ctx, span := telemetry.StartPhaseSpan(ctx, "provision",
		telemetry.Dest(s.cfg.OutDir),
		telemetry.Shards(s.cfg.Shards))
	defer span.End()

	done := timing.Phase(s.log, "create split directories")
	created, err := Provision(s.cfg.OutDir, s.cfg.Shards)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return created, err
	}
	done()

	telemetry.SetAttributes(ctx, telemetry.DirsCreated(created))
	return created, nil
}

// transferAll moves or copies every file into its shard, in order.
func (s *Splitter) transferAll(ctx context.Context, files []string, result *Result) error {
	ctx, span := telemetry.StartPhaseSpan(ctx, "transfer",
		telemetry.Files(len(files)))
	defer span.End()

	totalFiles := len(files)
	for i, src := range files {
		if err := ctx.Err(); err != nil {
			telemetry.RecordError(ctx, err)
			return err
		}

		position := i + 1
		shardIndex, err := Assign(position, s.cfg.Shards, totalFiles)
		if err != nil {
			return err
		}
		shardName, err := Name(shardIndex, s.cfg.Shards)
		if err != nil {
			return err
		}

		dst := filepath.Join(s.cfg.OutDir, shardName, filepath.Base(src))

		// Size has to be read before a move removes the source entry.
		var size int64
		if info, err := os.Stat(src); err == nil {
			size = info.Size()
		}

		start := time.Now()
		if err := s.transferer.Transfer(ctx, src, dst); err != nil {
			telemetry.RecordError(ctx, err)
			s.log.Error("transfer failed",
				logger.OldPath(src),
				logger.NewPath(dst),
				logger.Shard(shardName),
				logger.Err(err),
			)
			return err
		}

		s.metrics.ObserveTransfer(shardName, size, time.Since(start))
		result.Transferred++
		result.BytesTransferred += size
		result.ShardFiles[shardIndex-1]++

		if s.reporter != nil {
			s.reporter.FileTransferred(shardIndex, shardName)
		}

		s.log.Debug("file transferred",
			logger.OldPath(src),
			logger.NewPath(dst),
			logger.ShardIndex(shardIndex),
		)
	}

	return nil
}
