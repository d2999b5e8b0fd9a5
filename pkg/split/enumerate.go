package split

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// EnumerateFiles lists the regular files directly inside sourceDir as full
// paths, sorted by name in ascending lexicographic order. A file's 1-based
// index in the returned slice is the ordinal position used by Assign, stable
// across repeated runs on an unchanged directory.
//
// Subdirectories and symbolic links are skipped, including links that point
// at regular files; only plain files directly inside sourceDir qualify.
func EnumerateFiles(sourceDir string) ([]string, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError(sourceDir)
		}
		return nil, errors.NewOSError("failed to stat source directory", sourceDir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewNotADirectoryError(sourceDir)
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, errors.NewOSError("failed to read source directory", sourceDir, err)
	}

	// os.ReadDir returns entries sorted by name, which for direct children
	// of a single directory matches sorting by full path.
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(sourceDir, entry.Name()))
	}

	return files, nil
}
