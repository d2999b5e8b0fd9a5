package split

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// Provision ensures root and its totalShards shard directories exist,
// creating missing parent segments of root as needed. Pre-existing
// directories are accepted silently, making repeated calls idempotent.
// Returns the number of shard directories actually created.
func Provision(root string, totalShards int) (int, error) {
	if totalShards < 1 {
		return 0, errors.NewInvalidArgumentError(
			fmt.Sprintf("total shard count must be positive, got %d", totalShards))
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return 0, errors.NewOSError("failed to create output root", root, err)
	}

	created := 0
	for i := 1; i <= totalShards; i++ {
		name, err := Name(i, totalShards)
		if err != nil {
			return created, err
		}

		path := filepath.Join(root, name)
		err = os.Mkdir(path, 0755)
		if err == nil {
			created++
			continue
		}
		if stderrors.Is(err, fs.ErrExist) {
			continue
		}
		return created, errors.NewOSError("failed to create shard directory", path, err)
	}

	return created, nil
}
