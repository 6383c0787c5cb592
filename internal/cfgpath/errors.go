package cfgpath

import (
	"errors"
	"fmt"
)

// Kind classifies a ConfigError.
type Kind int

const (
	// KindNotFileOrDirectory: the path is empty, missing, or an
	// unsupported entry type (device, socket, fifo).
	KindNotFileOrDirectory Kind = iota + 1
	// KindIO: a filesystem call failed for a reason other than "not found".
	KindIO
	// KindCannotFind: a directory was given but holds no openmw.cfg.
	KindCannotFind
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNotFileOrDirectory:
		return "not_file_or_directory"
	case KindIO:
		return "io"
	case KindCannotFind:
		return "cannot_find"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against any *ConfigError of the same Kind.
var (
	ErrNotFileOrDirectory = errors.New("not a file or directory")
	ErrIO                 = errors.New("config path i/o error")
	ErrCannotFind         = errors.New("cannot find " + ConfigFileName)
)

// ConfigError reports a path that could not be validated or resolved.
type ConfigError struct {
	Kind Kind
	// Path is the offending path: the input for validation failures,
	// the searched directory for KindCannotFind.
	Path string
	// Err is the underlying filesystem error, set for KindIO.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("i/o error on %q: %v", e.Path, e.Err)
	case KindCannotFind:
		return fmt.Sprintf("cannot find %s in %q", ConfigFileName, e.Path)
	default:
		return fmt.Sprintf("not a file or directory: %q", e.Path)
	}
}

// Unwrap returns the underlying filesystem error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *ConfigError) Is(target error) bool {
	switch e.Kind {
	case KindNotFileOrDirectory:
		return target == ErrNotFileOrDirectory
	case KindIO:
		return target == ErrIO
	case KindCannotFind:
		return target == ErrCannotFind
	default:
		return false
	}
}

// KindOf returns the Kind of the first *ConfigError in err's chain,
// or 0 when there is none.
func KindOf(err error) Kind {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind
	}
	return 0
}

func notFileOrDirectory(path string) *ConfigError {
	return &ConfigError{Kind: KindNotFileOrDirectory, Path: path}
}

func ioError(path string, err error) *ConfigError {
	return &ConfigError{Kind: KindIO, Path: path, Err: err}
}

func cannotFind(dir string) *ConfigError {
	return &ConfigError{Kind: KindCannotFind, Path: dir}
}
