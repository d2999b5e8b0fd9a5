package split

import (
	"fmt"
	"strconv"

	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// Name returns the directory name of the shard at shardIndex out of
// totalShards. The index is left-padded with zeros to the decimal digit
// count of totalShards so that all names of a run have equal width and sort
// in shard order: Name(10, 100) is "010", Name(100, 100) is "100".
func Name(shardIndex, totalShards int) (string, error) {
	if totalShards < 1 {
		return "", errors.NewInvalidArgumentError(
			fmt.Sprintf("total shard count must be positive, got %d", totalShards))
	}
	if shardIndex < 1 || shardIndex > totalShards {
		return "", errors.NewInvalidArgumentError(
			fmt.Sprintf("shard index %d out of range [1, %d]", shardIndex, totalShards))
	}

	width := len(strconv.Itoa(totalShards))
	return fmt.Sprintf("%0*d", width, shardIndex), nil
}

// Assign computes the 1-based shard index for the file at the given 1-based
// position among totalFiles files distributed over totalShards shards.
//
// With perShard = floor(totalFiles/totalShards), positions are assigned in
// consecutive blocks of perShard files per shard. The remainder, and every
// file when there are fewer files than shards, lands on the last shard. The
// partition is deterministic; equal inputs always yield equal assignments.
func Assign(position, totalShards, totalFiles int) (int, error) {
	if totalShards < 1 {
		return 0, errors.NewInvalidArgumentError(
			fmt.Sprintf("total shard count must be positive, got %d", totalShards))
	}
	if position < 1 || position > totalFiles {
		return 0, errors.NewInvalidArgumentError(
			fmt.Sprintf("position %d out of range [1, %d]", position, totalFiles))
	}

	perShard := totalFiles / totalShards
	if perShard == 0 || position > perShard*totalShards {
		return totalShards, nil
	}

	return (position-1)/perShard + 1, nil
}
