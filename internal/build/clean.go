package build

import (
	"os"
	"path/filepath"
)

// Clean removes build products under root. With dist set it also
// removes fetched dependency checkouts. Cleaning a never-built tree
// is a no-op.
func Clean(root string, dist bool) error {
	if err := os.RemoveAll(filepath.Join(root, buildDirName)); err != nil {
		return err
	}
	if dist {
		return os.RemoveAll(filepath.Join(root, depsDirName))
	}
	return nil
}
