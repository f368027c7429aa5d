package fsx

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureDir creates path and its parents when missing. A path that exists
// but is not a directory is an error.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

// DirSize returns the total size in bytes of all regular files under path.
func DirSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}
