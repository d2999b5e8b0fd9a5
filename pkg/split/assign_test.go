package split

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// ============================================================================
// Shard Naming Tests
// ============================================================================

func TestName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		index int
		total int
		want  string
	}{
		{1, 1, "1"},
		{1, 3, "1"},
		{3, 3, "3"},
		{2, 10, "02"},
		{10, 10, "10"},
		{3, 100, "003"},
		{10, 100, "010"},
		{100, 100, "100"},
		{7, 1000, "0007"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_of_%d", tc.index, tc.total), func(t *testing.T) {
			got, err := Name(tc.index, tc.total)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNameWidth(t *testing.T) {
	t.Parallel()

	// Every name is exactly as wide as the decimal rendering of the
	// total, and names are unique across the shard range.
	for _, total := range []int{1, 9, 10, 99, 100, 1000} {
		width := len(strconv.Itoa(total))
		seen := make(map[string]bool, total)

		for index := 1; index <= total; index++ {
			name, err := Name(index, total)
			require.NoError(t, err)
			assert.Len(t, name, width, "Name(%d, %d)", index, total)
			assert.False(t, seen[name], "duplicate name %q", name)
			seen[name] = true
		}
	}
}

func TestNameValidation(t *testing.T) {
	t.Parallel()

	_, err := Name(1, 0)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))

	_, err = Name(0, 5)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))

	_, err = Name(6, 5)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
}

// ============================================================================
// Shard Assignment Tests
// ============================================================================

func TestAssign(t *testing.T) {
	t.Parallel()

	t.Run("EvenSplitWithRemainder", func(t *testing.T) {
		// 10 files over 3 shards: 3, 3, then 4 on the last shard.
		want := []int{1, 1, 1, 2, 2, 2, 3, 3, 3, 3}
		for position := 1; position <= 10; position++ {
			got, err := Assign(position, 3, 10)
			require.NoError(t, err)
			assert.Equal(t, want[position-1], got, "position %d", position)
		}
	})

	t.Run("ExactDivision", func(t *testing.T) {
		want := []int{1, 1, 1, 2, 2, 2, 3, 3, 3}
		for position := 1; position <= 9; position++ {
			got, err := Assign(position, 3, 9)
			require.NoError(t, err)
			assert.Equal(t, want[position-1], got, "position %d", position)
		}
	})

	t.Run("FewerFilesThanShards", func(t *testing.T) {
		// 2 files over 5 shards: both land on the last shard.
		for position := 1; position <= 2; position++ {
			got, err := Assign(position, 5, 2)
			require.NoError(t, err)
			assert.Equal(t, 5, got, "position %d", position)
		}
	})

	t.Run("SingleShard", func(t *testing.T) {
		for position := 1; position <= 4; position++ {
			got, err := Assign(position, 1, 4)
			require.NoError(t, err)
			assert.Equal(t, 1, got)
		}
	})
}

func TestAssignPartition(t *testing.T) {
	t.Parallel()

	// Across a spread of shard counts and file counts, every position
	// maps to exactly one shard, assignments never decrease, the first
	// K-1 shards each hold totalFiles/totalShards files, and the last
	// shard absorbs the remainder.
	for _, totalShards := range []int{1, 2, 3, 5, 7, 10, 100} {
		for _, totalFiles := range []int{1, 2, 3, 9, 10, 11, 50, 101} {
			counts := make([]int, totalShards+1)
			previous := 0

			for position := 1; position <= totalFiles; position++ {
				index, err := Assign(position, totalShards, totalFiles)
				require.NoError(t, err)
				require.GreaterOrEqual(t, index, 1)
				require.LessOrEqual(t, index, totalShards)
				require.GreaterOrEqual(t, index, previous,
					"K=%d N=%d position %d", totalShards, totalFiles, position)
				previous = index
				counts[index]++
			}

			perShard := totalFiles / totalShards
			for index := 1; index < totalShards; index++ {
				assert.Equal(t, perShard, counts[index],
					"K=%d N=%d shard %d", totalShards, totalFiles, index)
			}
			assert.Equal(t, totalFiles-perShard*(totalShards-1), counts[totalShards],
				"K=%d N=%d last shard", totalShards, totalFiles)
		}
	}
}

func TestAssignValidation(t *testing.T) {
	t.Parallel()

	_, err := Assign(1, 0, 10)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))

	_, err = Assign(0, 3, 10)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))

	_, err = Assign(11, 3, 10)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))

	_, err = Assign(1, 3, 0)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
}
