package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/omwcfg/internal/config"
	"github.com/gorewood/omwcfg/internal/output"
)

// newLayersCmd creates the layers command.
func newLayersCmd(state *cliState) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Show the configured config directories",
		Long: `Show the directories searched for openmw.cfg, lowest precedence first.

Layers come from the layer file (--layers, default layers.yaml in the user
config dir). Without a layer file the system-wide directory and the user
directory are used.

Examples:
  omwcfg layers            # print layers as YAML
  omwcfg layers --write    # save the defaults to the layer file if it is missing
  omwcfg layers --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLayers(cmd, state, write)
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Write the effective layers to the layer file when it does not exist")
	return cmd
}

// runLayers executes the layers command.
func runLayers(cmd *cobra.Command, state *cliState, write bool) error {
	printer := newPrinter(cmd)

	layers, err := state.layers()
	if err != nil {
		printer.Error(err)
		return err
	}

	warning := ""
	if write {
		path, written, err := writeLayersFile(state, layers)
		if err != nil {
			printer.Error(err)
			return err
		}
		if !written {
			warning = path + " already exists, not overwriting"
		}
	}

	if printer.IsJSON() {
		result := map[string]any{
			"configs":  layers.Candidates(),
			"fallback": layers.Fallback,
		}
		if warning != "" {
			result["warning"] = warning
		}
		return printer.WriteJSON(result)
	}

	if warning != "" {
		printer.Warn("%s", warning)
	}

	data, err := layers.Marshal()
	if err != nil {
		exitErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}
	printer.Print("%s", data)
	return nil
}

// writeLayersFile saves layers unless the file already exists, and reports
// the target path and whether it was written. The target is checked with
// the writability probe first.
func writeLayersFile(state *cliState, layers config.Layers) (string, bool, error) {
	path := state.layersPath
	if path == "" {
		path = config.LayersPath()
	}
	if path == "" {
		return "", false, output.NewUserError("no layer file location: set --layers or OPENMW_CONFIG_HOME")
	}
	if _, err := os.Stat(path); err == nil {
		state.log.Logf("layer file %q exists, not overwriting", path)
		return path, false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, false, output.NewSystemErrorWithCause("creating "+filepath.Dir(path)+": "+err.Error(), err)
	}
	if !state.locator().Writable(path) {
		return path, false, output.NewNotWritableError(path)
	}

	data, err := layers.Marshal()
	if err != nil {
		return path, false, output.NewSystemErrorWithCause(err.Error(), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, false, output.NewSystemErrorWithCause("writing "+path+": "+err.Error(), err)
	}
	return path, true, nil
}
