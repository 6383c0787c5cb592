package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/omwcfg/internal/output"
)

// newWritableCmd creates the writable command.
func newWritableCmd(state *cliState) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "writable <path>",
		Short: "Check whether a config path can be written",
		Long: `Check whether a path can be written before saving configuration to it.

An existing path is opened for writing (never created or truncated). For a
missing path, a temporary .write_test_tmp file is created and removed in its
parent directory. Only "permission denied" counts as not writable, so a
writable result is a best guess. Exits with code 3 when not writable.

Examples:
  omwcfg writable ~/.config/openmw/openmw.cfg
  omwcfg writable /etc/openmw/openmw.cfg --quiet && echo ok`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWritable(cmd, state, args[0], quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing; report through the exit code")
	return cmd
}

// runWritable executes the writable command.
func runWritable(cmd *cobra.Command, state *cliState, path string, quiet bool) error {
	printer := newPrinter(cmd)
	if path == "" {
		err := output.NewUserError("path must not be empty")
		printer.Error(err)
		return err
	}

	writable := state.locator().Writable(path)

	if printer.IsJSON() {
		if err := printer.WriteJSON(map[string]any{"path": path, "writable": writable}); err != nil {
			return err
		}
	} else if !quiet {
		if writable {
			printer.Print("%s %s\n", printer.Styles().Success.Render("writable"), path)
		} else {
			printer.Print("%s %s\n", printer.Styles().Error.Render("not writable"), path)
		}
	}

	if !writable {
		return output.NewNotWritableError(path)
	}
	return nil
}
