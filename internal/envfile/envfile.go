// Package envfile loads environment variables from dotenv files so that
// settings such as CFG_DEBUG can live next to a profile instead of the shell.
//
// Variables already present in the environment, even with an empty value,
// are never overridden.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Var is one KEY=VALUE assignment.
type Var struct {
	Key   string
	Value string
}

// Parse reads assignments from r. Blank lines, comments and malformed
// lines are skipped.
func Parse(r io.Reader) ([]Var, error) {
	var vars []Var
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if v, ok := parseLine(scanner.Text()); ok {
			vars = append(vars, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

// Load applies the assignments in path that are not already set.
// A missing file is not an error.
func Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	vars, err := Parse(file)
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	for _, v := range vars {
		if _, set := os.LookupEnv(v.Key); set {
			continue
		}
		if err := os.Setenv(v.Key, v.Value); err != nil {
			return fmt.Errorf("setting %s from %s: %w", v.Key, path, err)
		}
	}
	return nil
}

// LoadFirst loads each path in order; earlier files win for shared keys.
// It returns the first error but keeps loading the remaining files.
func LoadFirst(paths ...string) error {
	var firstErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := Load(path); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// parseLine extracts KEY=VALUE, allowing an "export " prefix and one pair
// of matching quotes around the value.
func parseLine(line string) (Var, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Var{}, false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return Var{}, false
	}
	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	if key == "" {
		return Var{}, false
	}
	return Var{Key: key, Value: unquote(strings.TrimSpace(value))}, true
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
