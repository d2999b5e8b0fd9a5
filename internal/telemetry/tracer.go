package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for split runs.
// These follow OpenTelemetry semantic conventions where applicable.
const (
	// ========================================================================
	// Run attributes
	// ========================================================================
	AttrRunID = "run.id"   // Unique identifier for the run
	AttrMode  = "run.mode" // Transfer mode: move, copy

	// ========================================================================
	// Split attributes
	// ========================================================================
	AttrShards      = "split.shards"       // Total number of shards
	AttrFiles       = "split.files"        // Total number of files
	AttrDirsCreated = "split.dirs_created" // Shard directories created

	// ========================================================================
	// Filesystem attributes
	// ========================================================================
	AttrSource   = "fs.source"      // Source directory
	AttrDest     = "fs.destination" // Destination root
	AttrPath     = "fs.path"        // File path
	AttrFilename = "fs.filename"    // File name (basename)

	// ========================================================================
	// Shard attributes
	// ========================================================================
	AttrShardIndex = "shard.index" // 1-based shard index
	AttrShardName  = "shard.name"  // Zero-padded shard name
)

// Span names for run phases.
// Format: dirsplit.<phase>
const (
	SpanRun       = "dirsplit.run"
	SpanEnumerate = "dirsplit.enumerate"
	SpanProvision = "dirsplit.provision"
	SpanTransfer  = "dirsplit.transfer"
)

// RunID returns an attribute for the run identifier
func RunID(id string) attribute.KeyValue {
	return attribute.String(AttrRunID, id)
}

// Mode returns an attribute for the transfer mode
func Mode(mode string) attribute.KeyValue {
	return attribute.String(AttrMode, mode)
}

// Shards returns an attribute for the total shard count
func Shards(n int) attribute.KeyValue {
	return attribute.Int(AttrShards, n)
}

// Files returns an attribute for the total file count
func Files(n int) attribute.KeyValue {
	return attribute.Int(AttrFiles, n)
}

// DirsCreated returns an attribute for the number of shard directories created
func DirsCreated(n int) attribute.KeyValue {
	return attribute.Int(AttrDirsCreated, n)
}

// Source returns an attribute for the source directory
func Source(dir string) attribute.KeyValue {
	return attribute.String(AttrSource, dir)
}

// Dest returns an attribute for the destination root
func Dest(dir string) attribute.KeyValue {
	return attribute.String(AttrDest, dir)
}

// Path returns an attribute for a file path
func Path(path string) attribute.KeyValue {
	return attribute.String(AttrPath, path)
}

// Filename returns an attribute for a filename
func Filename(name string) attribute.KeyValue {
	return attribute.String(AttrFilename, name)
}

// ShardIndex returns an attribute for a 1-based shard index
func ShardIndex(i int) attribute.KeyValue {
	return attribute.Int(AttrShardIndex, i)
}

// ShardName returns an attribute for a shard directory name
func ShardName(name string) attribute.KeyValue {
	return attribute.String(AttrShardName, name)
}

// StartRunSpan starts the root span for a split run.
// This is a convenience function that sets common attributes.
func StartRunSpan(ctx context.Context, runID, mode string, shards int, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		RunID(runID),
		Mode(mode),
		Shards(shards),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, SpanRun, trace.WithAttributes(allAttrs...))
}

// StartPhaseSpan starts a span for one phase of a run (enumerate, provision,
// transfer). The phase name is namespaced under "dirsplit.".
func StartPhaseSpan(ctx context.Context, phase string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, "dirsplit."+phase, trace.WithAttributes(attrs...))
}
