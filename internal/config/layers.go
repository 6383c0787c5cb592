package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LayersFileName is the layer file looked up in Dir().
const LayersFileName = "layers.yaml"

// Layers is the ordered list of directories searched for openmw.cfg.
// The last entry is the most specific scope and wins.
type Layers struct {
	Configs  []string `yaml:"configs"`
	Fallback string   `yaml:"fallback,omitempty"`
}

// DefaultLayers returns the global directory followed by the user directory,
// with the user directory as fallback.
func DefaultLayers() Layers {
	layers := Layers{Fallback: Dir()}
	for _, dir := range []string{GlobalDir(), Dir()} {
		if dir != "" {
			layers.Configs = append(layers.Configs, dir)
		}
	}
	return layers
}

// LayersPath returns the default layer file location, or "" when the user
// directory is unknown.
func LayersPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, LayersFileName)
}

// LoadLayers reads a layer file. A missing file yields DefaultLayers.
// Entries are tilde-expanded and blanks dropped; an empty fallback
// defaults to Dir().
func LoadLayers(path string) (Layers, error) {
	if path == "" {
		return DefaultLayers(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultLayers(), nil
		}
		return Layers{}, fmt.Errorf("reading layers file %s: %w", path, err)
	}

	layers, err := ParseLayers(data)
	if err != nil {
		return Layers{}, fmt.Errorf("parsing layers file %s: %w", path, err)
	}
	return layers, nil
}

// ParseLayers decodes layer YAML. Unknown keys are rejected.
func ParseLayers(data []byte) (Layers, error) {
	var raw Layers
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Layers{}, err
	}

	layers := Layers{Fallback: expandHome(strings.TrimSpace(raw.Fallback))}
	for _, dir := range raw.Configs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		layers.Configs = append(layers.Configs, expandHome(dir))
	}
	if layers.Fallback == "" {
		layers.Fallback = Dir()
	}
	return layers, nil
}

// Candidates returns a copy of the configured directories, lowest precedence first.
func (l Layers) Candidates() []string {
	return append([]string(nil), l.Configs...)
}

// Marshal encodes the layers as YAML.
func (l Layers) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encoding layers: %w", err)
	}
	return data, nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
