package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
)

// File rewrites path in place through Stream. Cleaned output goes to a
// temporary file in the same directory, which atomically replaces the
// original on success; a reader of path never observes a half-written
// result. On any failure the original file is left untouched and the
// temporary file is removed.
func File(path string) (Stats, error) {
	in, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("cleanup: open %s: %w", path, err)
	}
	defer in.Close()

	dir, base := filepath.Split(path)
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return Stats{}, fmt.Errorf("cleanup: create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	replaced := false
	defer func() {
		tmp.Close()
		if !replaced {
			os.Remove(tmpName)
		}
	}()

	stats, err := Stream(in, tmp)
	if err != nil {
		return stats, err
	}
	if err := tmp.Close(); err != nil {
		return stats, fmt.Errorf("cleanup: close temp for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return stats, fmt.Errorf("cleanup: replace %s: %w", path, err)
	}
	replaced = true
	return stats, nil
}
