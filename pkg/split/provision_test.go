package split

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// ============================================================================
// Provisioning Tests
// ============================================================================

func TestProvision(t *testing.T) {
	t.Run("CreatesAllShardDirectories", func(t *testing.T) {
		root := t.TempDir()

		created, err := Provision(root, 10)
		require.NoError(t, err)
		assert.Equal(t, 10, created)

		for _, name := range []string{"01", "02", "09", "10"} {
			info, err := os.Stat(filepath.Join(root, name))
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		}
	})

	t.Run("CreatesMissingOutputRoot", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "deep", "out")

		created, err := Provision(root, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, created)

		info, err := os.Stat(filepath.Join(root, "2"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("IsIdempotent", func(t *testing.T) {
		root := t.TempDir()

		created, err := Provision(root, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, created)

		created, err = Provision(root, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, created)
	})

	t.Run("CountsOnlyNewDirectories", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "1"), 0755))
		require.NoError(t, os.Mkdir(filepath.Join(root, "3"), 0755))

		created, err := Provision(root, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, created)
	})

	t.Run("RejectsNonPositiveShardCount", func(t *testing.T) {
		_, err := Provision(t.TempDir(), 0)
		require.Error(t, err)
		assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
	})
}
