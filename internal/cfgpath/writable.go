package cfgpath

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ProbeFileName is created and removed in a parent directory to test it.
const ProbeFileName = ".write_test_tmp"

// IsWritable reports whether path looks writable.
//
// An existing path is opened for writing without create or truncate. A
// missing path is tested by creating ProbeFileName in its parent and removing
// it again. Only permission-denied counts as not writable; other failures
// report true. A missing path with no parent reports false.
func IsWritable(path string) bool {
	if _, err := os.Stat(path); err == nil {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return !errors.Is(err, fs.ErrPermission)
		}
		_ = f.Close()
		return true
	}

	parent, ok := parentDir(path)
	if !ok {
		return false
	}

	probe := filepath.Join(parent, ProbeFileName)
	f, err := os.Create(probe)
	if err != nil {
		return !errors.Is(err, fs.ErrPermission)
	}
	_ = f.Close()
	_ = os.Remove(probe)
	return true
}

// parentDir returns the directory containing path. Roots and the empty
// path have none. A trailing separator does not change the parent.
func parentDir(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	cleaned := filepath.Clean(path)
	parent := filepath.Dir(cleaned)
	if parent == cleaned {
		return "", false
	}
	return parent, true
}
