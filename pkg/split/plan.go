package split

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// ShardPlan describes one shard of a planned run.
type ShardPlan struct {
	// Index is the 1-based shard index.
	Index int `json:"index" yaml:"index"`

	// Name is the shard directory name.
	Name string `json:"name" yaml:"name"`

	// Files is the number of files the shard would receive.
	Files int `json:"files" yaml:"files"`

	// Bytes is the total payload size of those files.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// First and Last are the base names of the shard's first and last
	// file in enumeration order, empty for an empty shard.
	First string `json:"first,omitempty" yaml:"first,omitempty"`
	Last  string `json:"last,omitempty" yaml:"last,omitempty"`
}

// Plan is the partition a run would produce, computed without touching
// the source or the destination.
type Plan struct {
	SourceDir  string      `json:"source_dir" yaml:"source_dir"`
	TotalFiles int         `json:"total_files" yaml:"total_files"`
	TotalBytes int64       `json:"total_bytes" yaml:"total_bytes"`
	Shards     []ShardPlan `json:"shards" yaml:"shards"`
}

// BuildPlan enumerates sourceDir and computes the per-shard distribution
// for totalShards shards. It creates no directories and transfers nothing.
func BuildPlan(sourceDir string, totalShards int) (*Plan, error) {
	if totalShards < 1 {
		return nil, errors.NewInvalidArgumentError(
			fmt.Sprintf("total shard count must be positive, got %d", totalShards))
	}

	files, err := EnumerateFiles(sourceDir)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		SourceDir:  sourceDir,
		TotalFiles: len(files),
		Shards:     make([]ShardPlan, 0, totalShards),
	}
	for index := 1; index <= totalShards; index++ {
		name, err := Name(index, totalShards)
		if err != nil {
			return nil, err
		}
		plan.Shards = append(plan.Shards, ShardPlan{Index: index, Name: name})
	}

	for position := 1; position <= len(files); position++ {
		index, err := Assign(position, totalShards, len(files))
		if err != nil {
			return nil, err
		}

		// A file disappearing between enumeration and stat counts as empty
		// rather than failing the dry run.
		path := files[position-1]
		var size int64
		if info, err := os.Stat(path); err == nil {
			size = info.Size()
		}

		shard := &plan.Shards[index-1]
		shard.Files++
		shard.Bytes += size
		if shard.First == "" {
			shard.First = filepath.Base(path)
		}
		shard.Last = filepath.Base(path)

		plan.TotalBytes += size
	}

	return plan, nil
}
