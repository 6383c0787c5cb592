package cfgpath

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ConfigFileName is the file InputConfigPath looks for inside a directory.
const ConfigFileName = "openmw.cfg"

// InputConfigPath resolves a directory or file path to an existing config file.
//
// A directory resolves to its openmw.cfg, which must be a regular file or a
// symlink. A regular file resolves to itself. The checks hit the filesystem
// on every call; nothing is cached.
func InputConfigPath(path string) (string, error) {
	checked, err := ValidatePath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(checked)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFileOrDirectory(checked)
		}
		return "", ioError(checked, err)
	}

	switch {
	case info.IsDir():
		candidate := filepath.Join(checked, ConfigFileName)
		if isFileOrSymlink(candidate) {
			return candidate, nil
		}
		return "", cannotFind(checked)
	case info.Mode().IsRegular():
		return checked, nil
	default:
		return "", notFileOrDirectory(checked)
	}
}

// isFileOrSymlink reports whether path is a regular file (following links)
// or a symlink of any kind, dangling included.
func isFileOrSymlink(path string) bool {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return true
	}
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}
