package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/omwcfg/internal/cfgpath"
	"github.com/gorewood/omwcfg/internal/config"
	"github.com/gorewood/omwcfg/internal/debuglog"
	"github.com/gorewood/omwcfg/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version string         `json:"version"`
	Setup   []checkResult  `json:"setup"`
	Layers  []checkResult  `json:"layers"`
	User    []checkResult  `json:"user"`
	Summary *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd(state *cliState) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check every config layer and the user config location",
		Long: `Check the OpenMW configuration layout and suggest fixes.

Runs health checks across three categories:
  SETUP   - Layer file and debug tracing
  LAYERS  - Whether each configured directory holds an openmw.cfg
  USER    - Whether the selected user config can be written

Examples:
  omwcfg doctor            # Run all checks
  omwcfg doctor --quiet    # Only show failures and warnings
  omwcfg doctor --json     # Output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, state, quiet)
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Only show failures and warnings")
	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, state *cliState, quiet bool) error {
	printer := newPrinter(cmd)
	result := gatherDoctorChecks(state)

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		outputDoctorHuman(printer, result, quiet)
	}

	if result.Summary.Failed > 0 {
		return output.NewUserError("doctor found failing checks")
	}
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(state *cliState) *doctorResult {
	layersPath := state.layersPath
	if layersPath == "" {
		layersPath = config.LayersPath()
	}
	layersCheck, layers := checkLayersFile(layersPath)
	locator := state.locator()

	result := &doctorResult{
		Version: version,
		Setup:   []checkResult{layersCheck, checkDebug(state.log)},
		Layers:  checkLayerDirs(locator, layers),
		User:    checkUserConfig(locator, layers),
		Summary: &doctorSummary{},
	}

	allChecks := append(append(append([]checkResult{}, result.Setup...), result.Layers...), result.User...)
	for _, check := range allChecks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}
	return result
}

// checkLayersFile loads the layer file, falling back to defaults on failure.
func checkLayersFile(path string) (checkResult, config.Layers) {
	const name = "Layer File"
	if path == "" {
		return checkResult{
			Name:    name,
			Status:  checkWarn,
			Message: "user config directory unknown, using defaults",
			Hint:    "Set OPENMW_CONFIG_HOME or pass --layers",
		}, config.DefaultLayers()
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return checkResult{
			Name:    name,
			Status:  checkPass,
			Message: "no " + path + ", using default layers",
		}, config.DefaultLayers()
	}

	layers, err := config.LoadLayers(path)
	if err != nil {
		return checkResult{
			Name:    name,
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Fix the YAML or remove the file to use defaults",
		}, config.DefaultLayers()
	}
	return checkResult{
		Name:    name,
		Status:  checkPass,
		Message: path,
	}, layers
}

// checkDebug reports whether CFG_DEBUG tracing is active.
func checkDebug(log *debuglog.Logger) checkResult {
	msg := "disabled (set " + debuglog.EnvVar + " to trace)"
	if log.Enabled() {
		msg = "enabled"
	}
	return checkResult{Name: "Debug Tracing", Status: checkPass, Message: msg}
}

// checkLayerDirs resolves openmw.cfg in every layer.
func checkLayerDirs(locator *cfgpath.Locator, layers config.Layers) []checkResult {
	candidates := layers.Candidates()
	if len(candidates) == 0 {
		return []checkResult{{
			Name:    "Layers",
			Status:  checkWarn,
			Message: "no config directories configured",
			Hint:    "Add directories under 'configs:' in the layer file",
		}}
	}

	checks := make([]checkResult, 0, len(candidates))
	for _, dir := range candidates {
		checks = append(checks, checkLayerDir(locator, dir))
	}
	return checks
}

// checkLayerDir resolves openmw.cfg in a single layer directory.
func checkLayerDir(locator *cfgpath.Locator, dir string) checkResult {
	resolved, err := locator.Resolve(dir)
	if err == nil {
		return checkResult{Name: dir, Status: checkPass, Message: resolved}
	}

	switch cfgpath.KindOf(err) {
	case cfgpath.KindCannotFind:
		return checkResult{
			Name:    dir,
			Status:  checkWarn,
			Message: "no " + cfgpath.ConfigFileName + " in this layer",
		}
	case cfgpath.KindNotFileOrDirectory:
		return checkResult{
			Name:    dir,
			Status:  checkWarn,
			Message: "directory does not exist",
		}
	default:
		return checkResult{
			Name:    dir,
			Status:  checkFail,
			Message: err.Error(),
		}
	}
}

// checkUserConfig checks that the selected user config can be written.
func checkUserConfig(locator *cfgpath.Locator, layers config.Layers) []checkResult {
	userDir := locator.Select(layers.Candidates(), layers.Fallback)
	if userDir == "" {
		return []checkResult{{
			Name:    "User Config",
			Status:  checkFail,
			Message: "no user config directory could be determined",
			Hint:    "Set OPENMW_CONFIG_HOME or add a layer",
		}}
	}

	selected := checkResult{Name: "User Config", Status: checkPass, Message: userDir}
	target := filepath.Join(userDir, cfgpath.ConfigFileName)
	if locator.Writable(target) {
		return []checkResult{selected, {
			Name:    "Writable",
			Status:  checkPass,
			Message: target,
		}}
	}
	return []checkResult{selected, {
		Name:    "Writable",
		Status:  checkFail,
		Message: target + " is not writable",
		Hint:    "Fix permissions on " + userDir + " or add a writable layer last",
	}}
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("omwcfg doctor %s\n", result.Version)

	printCheckSection(printer, "SETUP", result.Setup, quiet)
	printCheckSection(printer, "LAYERS", result.Layers, quiet)
	printCheckSection(printer, "USER", result.User, quiet)

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), result.Summary.Passed,
		statusIcon(checkWarn), result.Summary.Warnings,
		statusIcon(checkFail), result.Summary.Failed,
	)
}

// printCheckSection prints a section of checks as a status table.
func printCheckSection(printer *output.Printer, title string, checks []checkResult, quiet bool) {
	if quiet && allPass(checks) {
		return
	}

	rows := make([][]string, 0, len(checks))
	for _, check := range checks {
		if quiet && check.Status == checkPass {
			continue
		}
		rows = append(rows, []string{statusIcon(check.Status), check.Name, check.Message, check.Hint})
	}

	printer.Section(title)
	printer.Table([]string{"STATUS", "CHECK", "DETAIL", "HINT"}, rows)
}

func allPass(checks []checkResult) bool {
	for _, check := range checks {
		if check.Status != checkPass {
			return false
		}
	}
	return true
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}
