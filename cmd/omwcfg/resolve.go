package main

import "github.com/spf13/cobra"

// newResolveCmd creates the resolve command.
func newResolveCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a directory or file to its openmw.cfg",
		Long: `Resolve a directory or file path to an existing openmw.cfg.

A directory resolves to the openmw.cfg directly inside it; a file resolves
to itself. Relative paths are canonicalized against the working directory.

Examples:
  omwcfg resolve ~/.config/openmw        # prints ~/.config/openmw/openmw.cfg
  omwcfg resolve ./profiles/modded.cfg   # prints the canonical file path
  omwcfg resolve /etc/openmw --json      # {"path": "...", "writable": ...}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, state, args[0])
		},
	}
}

// runResolve executes the resolve command.
func runResolve(cmd *cobra.Command, state *cliState, path string) error {
	printer := newPrinter(cmd)
	locator := state.locator()

	resolved, err := locator.Resolve(path)
	if err != nil {
		exitErr := configExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"input":    path,
			"path":     resolved,
			"writable": locator.Writable(resolved),
		})
	}
	printer.Path(resolved)
	return nil
}
