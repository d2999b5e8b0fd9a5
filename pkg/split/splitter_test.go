package split

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/marmos91/dirsplit/internal/logger"
	"github.com/marmos91/dirsplit/pkg/metrics"
	"github.com/marmos91/dirsplit/pkg/split/errors"
	"github.com/marmos91/dirsplit/pkg/transfer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ============================================================================
// Test Helpers
// ============================================================================

// makeSourceDir creates a directory holding the named files, each filled
// with content derived from its own name.
func makeSourceDir(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("content of "+name), 0644))
	}
	return dir
}

// shardContents returns the file names found under every shard directory,
// keyed by shard name.
func shardContents(t *testing.T, outDir string) map[string][]string {
	t.Helper()

	shards, err := os.ReadDir(outDir)
	require.NoError(t, err)

	contents := make(map[string][]string, len(shards))
	for _, shard := range shards {
		require.True(t, shard.IsDir(), "unexpected non-directory %q in output root", shard.Name())

		entries, err := os.ReadDir(filepath.Join(outDir, shard.Name()))
		require.NoError(t, err)

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		contents[shard.Name()] = names
	}
	return contents
}

func sourceNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

type recordingReporter struct {
	calls []string
}

func (r *recordingReporter) FileTransferred(shardIndex int, shardName string) {
	r.calls = append(r.calls, fmt.Sprintf("%d:%s", shardIndex, shardName))
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestNewValidation(t *testing.T) {
	valid := Config{SourceDir: "/in", OutDir: "/out", Mode: transfer.ModeMove, Shards: 3}

	cases := map[string]Config{
		"EmptySource": {OutDir: "/out", Mode: transfer.ModeMove, Shards: 3},
		"EmptyOutput": {SourceDir: "/in", Mode: transfer.ModeMove, Shards: 3},
		"ZeroShards":  {SourceDir: "/in", OutDir: "/out", Mode: transfer.ModeMove},
		"BadMode":     {SourceDir: "/in", OutDir: "/out", Mode: transfer.Mode(42), Shards: 3},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(cfg, nil)
			require.Error(t, err)
			assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
		})
	}

	t.Run("ValidConfig", func(t *testing.T) {
		s, err := New(valid, nil)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})
}

// ============================================================================
// Move Run Tests
// ============================================================================

func TestRunMove(t *testing.T) {
	names := []string{
		"a.txt", "b.txt", "c.txt", "d.txt", "e.txt",
		"f.txt", "g.txt", "h.txt", "i.txt", "j.txt",
	}
	src := makeSourceDir(t, names...)
	out := t.TempDir()

	s, err := New(Config{SourceDir: src, OutDir: out, Mode: transfer.ModeMove, Shards: 3}, nil)
	require.NoError(t, err)

	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, result.TotalFiles)
	assert.Equal(t, 10, result.Transferred)
	assert.Equal(t, 3, result.DirsCreated)
	assert.Equal(t, []int{3, 3, 4}, result.ShardFiles)
	assert.Equal(t, int64(10*len("content of a.txt")), result.BytesTransferred)

	// 10 files over 3 shards: 3, 3, 4 in enumeration order.
	contents := shardContents(t, out)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, contents["1"])
	assert.Equal(t, []string{"d.txt", "e.txt", "f.txt"}, contents["2"])
	assert.Equal(t, []string{"g.txt", "h.txt", "i.txt", "j.txt"}, contents["3"])

	// A move drains the source directory.
	assert.Empty(t, sourceNames(t, src))

	// Content travels with the files.
	data, err := os.ReadFile(filepath.Join(out, "3", "j.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content of j.txt", string(data))
}

func TestRunMoveFewerFilesThanShards(t *testing.T) {
	src := makeSourceDir(t, "one.txt", "two.txt")
	out := t.TempDir()

	s, err := New(Config{SourceDir: src, OutDir: out, Mode: transfer.ModeMove, Shards: 5}, nil)
	require.NoError(t, err)

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, result.DirsCreated)
	assert.Equal(t, []int{0, 0, 0, 0, 2}, result.ShardFiles)

	// Both files land on the last shard; the first four stay empty.
	contents := shardContents(t, out)
	assert.Equal(t, []string{"one.txt", "two.txt"}, contents["5"])
	for _, name := range []string{"1", "2", "3", "4"} {
		assert.Empty(t, contents[name], "shard %s", name)
	}
}

// ============================================================================
// Copy Run Tests
// ============================================================================

func TestRunCopy(t *testing.T) {
	names := []string{"a.txt", "b.txt", "c.txt", "d.txt"}
	src := makeSourceDir(t, names...)
	out := t.TempDir()

	s, err := New(Config{SourceDir: src, OutDir: out, Mode: transfer.ModeCopy, Shards: 2}, nil)
	require.NoError(t, err)

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Transferred)

	// A copy leaves the source untouched.
	assert.Equal(t, names, sourceNames(t, src))

	contents := shardContents(t, out)
	assert.Equal(t, []string{"a.txt", "b.txt"}, contents["1"])
	assert.Equal(t, []string{"c.txt", "d.txt"}, contents["2"])

	data, err := os.ReadFile(filepath.Join(out, "1", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content of a.txt", string(data))
}

// TestRunPreservesFileSet checks that every enumerated file ends up in
// exactly one shard, whatever the shard count.
func TestRunPreservesFileSet(t *testing.T) {
	names := make([]string, 0, 23)
	for i := 0; i < 23; i++ {
		names = append(names, fmt.Sprintf("file-%03d.dat", i))
	}

	for _, shards := range []int{1, 4, 23, 30} {
		t.Run(fmt.Sprintf("Shards%d", shards), func(t *testing.T) {
			src := makeSourceDir(t, names...)
			out := t.TempDir()

			s, err := New(Config{SourceDir: src, OutDir: out, Mode: transfer.ModeMove, Shards: shards}, nil)
			require.NoError(t, err)

			_, err = s.Run(context.Background())
			require.NoError(t, err)

			var moved []string
			for _, files := range shardContents(t, out) {
				moved = append(moved, files...)
			}
			sort.Strings(moved)
			assert.Equal(t, names, moved)
			assert.Empty(t, sourceNames(t, src))
		})
	}
}

// ============================================================================
// Failure and Cancellation Tests
// ============================================================================

func TestRunAbortsOnTransferFailure(t *testing.T) {
	src := makeSourceDir(t, "a.txt", "b.txt", "c.txt", "d.txt")
	out := t.TempDir()

	// A directory squatting on c.txt's destination makes its transfer fail.
	require.NoError(t, os.MkdirAll(filepath.Join(out, "2", "c.txt"), 0755))

	s, err := New(Config{SourceDir: src, OutDir: out, Mode: transfer.ModeMove, Shards: 2}, nil)
	require.NoError(t, err)

	result, err := s.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrTransferFailure, errors.CodeOf(err))

	// The first two files were already moved and stay where they landed.
	require.NotNil(t, result)
	assert.Equal(t, 4, result.TotalFiles)
	assert.Equal(t, 2, result.Transferred)

	contents := shardContents(t, out)
	assert.Equal(t, []string{"a.txt", "b.txt"}, contents["1"])
	assert.Equal(t, []string{"c.txt", "d.txt"}, sourceNames(t, src))
}

func TestRunCancelledContext(t *testing.T) {
	src := makeSourceDir(t, "a.txt", "b.txt")
	out := t.TempDir()

	s, err := New(Config{SourceDir: src, OutDir: out, Mode: transfer.ModeMove, Shards: 2}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// Directories are provisioned before the first transfer is attempted.
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Transferred)
	assert.Equal(t, 2, result.DirsCreated)
	assert.Equal(t, []string{"a.txt", "b.txt"}, sourceNames(t, src))
}

func TestRunMissingSource(t *testing.T) {
	s, err := New(Config{
		SourceDir: filepath.Join(t.TempDir(), "nope"),
		OutDir:    t.TempDir(),
		Mode:      transfer.ModeCopy,
		Shards:    2,
	}, nil)
	require.NoError(t, err)

	result, err := s.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrNotFound, errors.CodeOf(err))
	assert.Nil(t, result)
}

func TestRunEmptySource(t *testing.T) {
	out := t.TempDir()

	s, err := New(Config{SourceDir: t.TempDir(), OutDir: out, Mode: transfer.ModeMove, Shards: 4}, nil)
	require.NoError(t, err)

	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalFiles)
	assert.Equal(t, 0, result.Transferred)
	assert.Equal(t, 4, result.DirsCreated)
	assert.Len(t, shardContents(t, out), 4)
}

// ============================================================================
// Collaborator Wiring Tests
// ============================================================================

func TestRunNotifiesReporter(t *testing.T) {
	src := makeSourceDir(t, "a.txt", "b.txt", "c.txt")
	out := t.TempDir()

	reporter := &recordingReporter{}
	s, err := New(Config{SourceDir: src, OutDir: out, Mode: transfer.ModeMove, Shards: 3}, nil,
		WithReporter(reporter))
	require.NoError(t, err)

	_, err = s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"1:1", "2:2", "3:3"}, reporter.calls)
}

func TestRunRecordsMetrics(t *testing.T) {
	src := makeSourceDir(t, "a.txt", "b.txt", "c.txt")
	out := t.TempDir()

	m := metrics.NewRunMetrics("test-run", "move")
	s, err := New(Config{SourceDir: src, OutDir: out, Mode: transfer.ModeMove, Shards: 1}, nil,
		WithMetrics(m))
	require.NoError(t, err)

	_, err = s.Run(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, m.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), `dirsplit_files_transferred_total{shard="1"} 3`)
	assert.Contains(t, string(data), "dirsplit_shard_directories_created_total 1")
}

func TestRunLogsPhasesAndCounts(t *testing.T) {
	src := makeSourceDir(t, "a.txt", "b.txt", "c.txt", "d.txt", "e.txt")
	out := t.TempDir()

	buf := new(bytes.Buffer)
	log := logger.NewWithWriter(buf, "INFO", "text", false)

	s, err := New(Config{SourceDir: src, OutDir: out, Mode: transfer.ModeCopy, Shards: 2}, log)
	require.NoError(t, err)

	_, err = s.Run(context.Background())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "5 files to be split into 2 directories")
	assert.Contains(t, output, "to get file list.")
	assert.Contains(t, output, "to create split directories.")
	assert.Contains(t, output, "to split directory.")
}
