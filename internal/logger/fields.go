package logger

import (
	"log/slog"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so runs can be
// filtered and aggregated by shard, phase, or run ID.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for run correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for phase tracking

	// ========================================================================
	// Run Identification
	// ========================================================================
	KeyRunID    = "run_id"   // Unique identifier for a single split run
	KeyMode     = "mode"     // Transfer mode: move, copy
	KeyInterval = "interval" // Progress reporting interval

	// ========================================================================
	// File System
	// ========================================================================
	KeyPath     = "path"        // Full file/directory path
	KeyFilename = "filename"    // File name (basename)
	KeySource   = "source"      // Source directory of the run
	KeyDest     = "destination" // Destination directory of the run
	KeyOldPath  = "old_path"    // Source path of a single transfer
	KeyNewPath  = "new_path"    // Destination path of a single transfer
	KeySize     = "size"        // Size in bytes

	// ========================================================================
	// Sharding
	// ========================================================================
	KeyShard      = "shard"       // Shard directory name, e.g. "07"
	KeyShardIndex = "shard_index" // 1-based shard index
	KeyShards     = "shards"      // Total number of shards
	KeyFiles      = "files"       // Number of files
	KeyCreated    = "created"     // Number of directories created

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyPhase      = "phase"       // Run phase: enumerate, provision, transfer
	KeyOperation  = "operation"   // Sub-operation type
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyErrorCode  = "error_code"  // Numeric error code
)

// ============================================================================
// Field constructors for type safety
// These functions provide type-safe construction of slog.Attr values.
// ============================================================================

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// RunID returns a slog.Attr for the run identifier
func RunID(id string) slog.Attr {
	return slog.String(KeyRunID, id)
}

// Mode returns a slog.Attr for the transfer mode (move, copy)
func Mode(mode string) slog.Attr {
	return slog.String(KeyMode, mode)
}

// Interval returns a slog.Attr for the progress reporting interval
func Interval(n int) slog.Attr {
	return slog.Int(KeyInterval, n)
}

// Path returns a slog.Attr for file/directory path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Filename returns a slog.Attr for filename (basename)
func Filename(name string) slog.Attr {
	return slog.String(KeyFilename, name)
}

// Source returns a slog.Attr for the run's source directory
func Source(dir string) slog.Attr {
	return slog.String(KeySource, dir)
}

// Dest returns a slog.Attr for the run's destination directory
func Dest(dir string) slog.Attr {
	return slog.String(KeyDest, dir)
}

// OldPath returns a slog.Attr for the source path of a transfer
func OldPath(p string) slog.Attr {
	return slog.String(KeyOldPath, p)
}

// NewPath returns a slog.Attr for the destination path of a transfer
func NewPath(p string) slog.Attr {
	return slog.String(KeyNewPath, p)
}

// Size returns a slog.Attr for a size in bytes
func Size(s int64) slog.Attr {
	return slog.Int64(KeySize, s)
}

// Shard returns a slog.Attr for a shard directory name
func Shard(name string) slog.Attr {
	return slog.String(KeyShard, name)
}

// ShardIndex returns a slog.Attr for a 1-based shard index
func ShardIndex(i int) slog.Attr {
	return slog.Int(KeyShardIndex, i)
}

// Shards returns a slog.Attr for the total number of shards
func Shards(n int) slog.Attr {
	return slog.Int(KeyShards, n)
}

// Files returns a slog.Attr for a file count
func Files(n int) slog.Attr {
	return slog.Int(KeyFiles, n)
}

// Created returns a slog.Attr for the number of directories created
func Created(n int) slog.Attr {
	return slog.Int(KeyCreated, n)
}

// Phase returns a slog.Attr for the run phase
func Phase(name string) slog.Attr {
	return slog.String(KeyPhase, name)
}

// Operation returns a slog.Attr for sub-operation type
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ErrorCode returns a slog.Attr for numeric error code
func ErrorCode(code int) slog.Attr {
	return slog.Int(KeyErrorCode, code)
}
