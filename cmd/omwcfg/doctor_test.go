package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/omwcfg/internal/config"
)

func TestDoctor_JSON(t *testing.T) {
	userDir, _ := isolateEnv(t)
	writeConfig(t, userDir)

	out, _, err := execute(t, "doctor", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result doctorResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, out)
	}
	if len(result.Layers) != 2 {
		t.Fatalf("Layers = %+v, want 2 checks", result.Layers)
	}
	// Global layer has no openmw.cfg, user layer does.
	if result.Layers[0].Status != checkWarn {
		t.Errorf("global layer status = %s, want warn", result.Layers[0].Status)
	}
	if result.Layers[1].Status != checkPass {
		t.Errorf("user layer status = %s, want pass", result.Layers[1].Status)
	}
	if result.Summary.Failed != 0 {
		t.Errorf("Failed = %d, want 0: %+v", result.Summary.Failed, result)
	}
}

func TestDoctor_HumanQuiet(t *testing.T) {
	userDir, _ := isolateEnv(t)
	writeConfig(t, userDir)

	out, _, err := execute(t, "doctor", "--quiet")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(out, "SETUP") {
		t.Errorf("quiet output should skip all-pass sections: %q", out)
	}
	if !strings.Contains(out, "LAYERS") || !strings.Contains(out, "no openmw.cfg in this layer") {
		t.Errorf("quiet output should show the warning: %q", out)
	}
	if !strings.Contains(out, "1 warnings") {
		t.Errorf("summary missing: %q", out)
	}
}

func TestDoctor_BadLayerFileFails(t *testing.T) {
	userDir, _ := isolateEnv(t)
	bad := filepath.Join(userDir, config.LayersFileName)
	if err := os.WriteFile(bad, []byte("configs: {"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "doctor")
	if err == nil {
		t.Fatal("expected error for failing checks")
	}
	if !hasRow(out, "XX", "Layer File") {
		t.Errorf("output = %q, want failing layer file row", out)
	}
}

func TestDoctor_HumanTable(t *testing.T) {
	userDir, _ := isolateEnv(t)
	writeConfig(t, userDir)

	out, _, err := execute(t, "doctor")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, title := range []string{"SETUP", "LAYERS", "USER"} {
		if !strings.Contains(out, title+"\n"+strings.Repeat("─", len(title))+"\n") {
			t.Errorf("output missing %s section header: %q", title, out)
		}
	}
	if !strings.Contains(out, "STATUS  CHECK") {
		t.Errorf("output missing table header: %q", out)
	}
	if !hasRow(out, "ok", "Writable") {
		t.Errorf("output = %q, want passing writable row", out)
	}
	if !hasRow(out, "!!", "no openmw.cfg in this layer") {
		t.Errorf("output = %q, want warning row for the global layer", out)
	}
}

// hasRow reports whether a table row starts with status and mentions text.
func hasRow(out, status, text string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, status+" ") && strings.Contains(line, text) {
			return true
		}
	}
	return false
}

func TestCheckLayerDir(t *testing.T) {
	isolateEnv(t)
	locator := (&cliState{}).locator()
	missing := filepath.Join(t.TempDir(), "missing")

	if got := checkLayerDir(locator, missing); got.Status != checkWarn || got.Message != "directory does not exist" {
		t.Errorf("checkLayerDir(missing) = %+v", got)
	}
}
