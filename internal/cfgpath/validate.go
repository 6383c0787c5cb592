package cfgpath

import (
	"os"
	"path/filepath"
)

// ValidatePath checks a user-supplied path.
//
// An empty path is rejected. An absolute path is returned unchanged and is
// not checked for existence; InputConfigPath does that when it matters.
// A relative path is canonicalized against the working directory with
// symlinks resolved, which fails with KindIO when the path does not exist.
func ValidatePath(path string) (string, error) {
	if path == "" {
		return "", notFileOrDirectory(path)
	}
	if filepath.IsAbs(path) {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", ioError(path, err)
	}
	// Joined by hand: filepath.Join would clean "link/.." lexically
	// before the link is resolved.
	canonical, err := filepath.EvalSymlinks(cwd + string(filepath.Separator) + path)
	if err != nil {
		return "", ioError(path, err)
	}
	return canonical, nil
}
