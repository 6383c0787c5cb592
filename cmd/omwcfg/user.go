package main

import "github.com/spf13/cobra"

// newUserCmd creates the user command.
func newUserCmd(state *cliState) *cobra.Command {
	var fallback string
	cmd := &cobra.Command{
		Use:   "user [dir...]",
		Short: "Select the user config directory",
		Long: `Select the directory user configuration should be written to.

The last directory wins: later layers are more specific scopes. Without
arguments the directories come from the layer file; with no directories at
all the fallback is used.

Examples:
  omwcfg user                                   # last configured layer
  omwcfg user /etc/openmw ~/.config/openmw      # prints ~/.config/openmw
  omwcfg user --fallback ~/.config/openmw       # no layers: prints fallback`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUser(cmd, state, args, fallback, cmd.Flags().Changed("fallback"))
		},
	}
	cmd.Flags().StringVar(&fallback, "fallback", "", "Directory used when no candidates are given (default: layer file fallback)")
	return cmd
}

// runUser executes the user command.
func runUser(cmd *cobra.Command, state *cliState, args []string, fallback string, fallbackSet bool) error {
	printer := newPrinter(cmd)

	candidates := args
	source := "arguments"
	if len(candidates) == 0 {
		layers, err := state.layers()
		if err != nil {
			printer.Error(err)
			return err
		}
		candidates = layers.Candidates()
		source = "layers"
		if !fallbackSet {
			fallback = layers.Fallback
		}
	}
	if len(candidates) == 0 {
		source = "fallback"
	}

	selected := state.locator().Select(candidates, fallback)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"path":       selected,
			"source":     source,
			"candidates": candidates,
		})
	}
	printer.Path(selected)
	return nil
}
