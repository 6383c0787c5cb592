package main

import "github.com/spf13/cobra"

// newValidateCmd creates the validate command.
func newValidateCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate and canonicalize a path",
		Long: `Validate a path before it is used as a config location.

Relative paths are canonicalized (symlinks resolved) and must exist.
Absolute paths are printed unchanged and are not checked for existence,
so a config file that has not been created yet still validates.

Examples:
  omwcfg validate ../openmw           # prints the absolute, canonical path
  omwcfg validate /new/profile.cfg    # prints /new/profile.cfg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			validated, err := state.locator().Validate(args[0])
			if err != nil {
				exitErr := configExitError(err)
				printer.Error(exitErr)
				return exitErr
			}
			if printer.IsJSON() {
				return printer.Success(map[string]any{"input": args[0], "path": validated})
			}
			printer.Path(validated)
			return nil
		},
	}
}
