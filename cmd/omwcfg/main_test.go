package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/omwcfg/internal/cfgpath"
	"github.com/gorewood/omwcfg/internal/output"
)

// isolateEnv points every config lookup at temp directories and runs the
// test from an empty working directory so no stray .env is loaded.
func isolateEnv(t *testing.T) (userDir, globalDir string) {
	t.Helper()
	root := t.TempDir()
	userDir = filepath.Join(root, "user")
	globalDir = filepath.Join(root, "global")
	for _, dir := range []string{userDir, globalDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("HOME", root)
	t.Setenv("OPENMW_CONFIG_HOME", userDir)
	t.Setenv("OPENMW_GLOBAL_CONFIG", globalDir)
	t.Setenv("CFG_DEBUG", "")
	_ = os.Unsetenv("CFG_DEBUG") //nolint:errcheck
	t.Chdir(t.TempDir())
	return userDir, globalDir
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeConfig creates dir/openmw.cfg and returns its path.
func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, cfgpath.ConfigFileName)
	if err := os.WriteFile(path, []byte("data=\"/games/Morrowind/Data Files\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// decodeJSON parses a JSON object from out.
func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, out)
	}
	return result
}

func TestRootCommand_Version(t *testing.T) {
	isolateEnv(t)
	version = "1.2.3"
	t.Cleanup(func() { version = "dev" })

	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "1.2.3") {
		t.Errorf("--version output should contain version: %q", out)
	}
	if !strings.Contains(out, "omwcfg") {
		t.Errorf("--version output should contain 'omwcfg': %q", out)
	}
}

func TestRootCommand_Help(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"omwcfg", "Usage:", "--json", "--layers", "resolve", "writable", "doctor"} {
		if !strings.Contains(out, expected) {
			t.Errorf("--help output should contain %q: %q", expected, out)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "--json")
	if err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}
	result := decodeJSON(t, out)
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %v", result)
	}
}

func TestRootCommand_InvalidColor(t *testing.T) {
	isolateEnv(t)

	_, _, err := execute(t, "--color", "sometimes", "layers")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d (err %v)", output.GetExitCode(err), output.ExitUserError, err)
	}
}

func TestBuildVersion(t *testing.T) {
	t.Cleanup(func() { version, commit, date = "dev", "none", "unknown" })

	version, commit, date = "1.0.0", "none", "unknown"
	if got := buildVersion(); got != "1.0.0" {
		t.Errorf("buildVersion() = %q, want %q", got, "1.0.0")
	}

	commit, date = "abcdef1234567", "2026-01-01"
	if got := buildVersion(); got != "1.0.0 (abcdef1, 2026-01-01)" {
		t.Errorf("buildVersion() = %q", got)
	}
}

func TestDebugTracing_FromEnvFile(t *testing.T) {
	userDir, _ := isolateEnv(t)
	writeConfig(t, userDir)
	if err := os.WriteFile(".env", []byte("CFG_DEBUG=\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, stderr, err := execute(t, "resolve", userDir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(out, "[CONFIG DEBUG]") {
		t.Errorf("debug output leaked to stdout: %q", out)
	}
	if !strings.Contains(stderr, "[CONFIG DEBUG]: resolved") {
		t.Errorf("stderr = %q, want resolve trace", stderr)
	}
}

func TestDebugTracing_Disabled(t *testing.T) {
	userDir, _ := isolateEnv(t)
	writeConfig(t, userDir)

	_, stderr, err := execute(t, "resolve", userDir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}
