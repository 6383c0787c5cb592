package cfgpath

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestInputConfigPath_DirectoryWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, filepath.Join(dir, ConfigFileName))

	got, err := InputConfigPath(dir)
	if err != nil {
		t.Fatalf("InputConfigPath() error = %v", err)
	}
	if got != cfg {
		t.Errorf("InputConfigPath() = %q, want %q", got, cfg)
	}
}

func TestInputConfigPath_DirectoryWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "settings.cfg"))

	_, err := InputConfigPath(dir)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("InputConfigPath() error = %v, want *ConfigError", err)
	}
	if cfgErr.Kind != KindCannotFind {
		t.Errorf("Kind = %v, want %v", cfgErr.Kind, KindCannotFind)
	}
	if cfgErr.Path != dir {
		t.Errorf("Path = %q, want %q", cfgErr.Path, dir)
	}
}

func TestInputConfigPath_DirectoryWithConfigDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ConfigFileName), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := InputConfigPath(dir)
	if !errors.Is(err, ErrCannotFind) {
		t.Errorf("InputConfigPath() error = %v, want ErrCannotFind", err)
	}
}

func TestInputConfigPath_FileReturnedUnchanged(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, filepath.Join(dir, "custom.cfg"))

	got, err := InputConfigPath(cfg)
	if err != nil {
		t.Fatalf("InputConfigPath() error = %v", err)
	}
	if got != cfg {
		t.Errorf("InputConfigPath() = %q, want %q", got, cfg)
	}
}

func TestInputConfigPath_RelativeDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "profile"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "profile", ConfigFileName))
	t.Chdir(dir)

	got, err := InputConfigPath("profile")
	if err != nil {
		t.Fatalf("InputConfigPath() error = %v", err)
	}
	want := filepath.Join(canonical(t, filepath.Join(dir, "profile")), ConfigFileName)
	if got != want {
		t.Errorf("InputConfigPath() = %q, want %q", got, want)
	}
}

func TestInputConfigPath_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := InputConfigPath(missing)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("InputConfigPath() error = %v, want *ConfigError", err)
	}
	if cfgErr.Kind != KindNotFileOrDirectory {
		t.Errorf("Kind = %v, want %v", cfgErr.Kind, KindNotFileOrDirectory)
	}
	if cfgErr.Path != missing {
		t.Errorf("Path = %q, want %q", cfgErr.Path, missing)
	}
}

func TestInputConfigPath_ValidationErrorPropagated(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := InputConfigPath(""); !errors.Is(err, ErrNotFileOrDirectory) {
		t.Errorf("InputConfigPath(\"\") error = %v, want ErrNotFileOrDirectory", err)
	}
	if _, err := InputConfigPath("relative-missing"); !errors.Is(err, ErrIO) {
		t.Errorf("InputConfigPath(relative-missing) error = %v, want ErrIO", err)
	}
}

func TestInputConfigPath_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	target := writeFile(t, filepath.Join(dir, "real.cfg"))

	fileLink := filepath.Join(dir, "link.cfg")
	if err := os.Symlink(target, fileLink); err != nil {
		t.Fatal(err)
	}
	got, err := InputConfigPath(fileLink)
	if err != nil {
		t.Fatalf("InputConfigPath(file link) error = %v", err)
	}
	if got != fileLink {
		t.Errorf("InputConfigPath(file link) = %q, want %q", got, fileLink)
	}

	profile := filepath.Join(dir, "profile")
	if err := os.Mkdir(profile, 0o755); err != nil {
		t.Fatal(err)
	}
	dangling := filepath.Join(profile, ConfigFileName)
	if err := os.Symlink(filepath.Join(dir, "gone.cfg"), dangling); err != nil {
		t.Fatal(err)
	}
	got, err = InputConfigPath(profile)
	if err != nil {
		t.Fatalf("InputConfigPath(dir with dangling link) error = %v", err)
	}
	if got != dangling {
		t.Errorf("InputConfigPath(dir with dangling link) = %q, want %q", got, dangling)
	}

	if _, err := InputConfigPath(filepath.Join(dir, "missing-link-target")); !errors.Is(err, ErrNotFileOrDirectory) {
		t.Errorf("InputConfigPath(missing) error = %v, want ErrNotFileOrDirectory", err)
	}
}

func TestInputConfigPath_SpecialFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no /dev/null on windows")
	}
	if _, err := os.Stat("/dev/null"); err != nil {
		t.Skip("/dev/null not available")
	}

	_, err := InputConfigPath("/dev/null")
	if !errors.Is(err, ErrNotFileOrDirectory) {
		t.Errorf("InputConfigPath(/dev/null) error = %v, want ErrNotFileOrDirectory", err)
	}
}
