// Package main provides the entry point for the omwcfg CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/omwcfg/internal/cfgpath"
	"github.com/gorewood/omwcfg/internal/config"
	"github.com/gorewood/omwcfg/internal/debuglog"
	"github.com/gorewood/omwcfg/internal/envfile"
	"github.com/gorewood/omwcfg/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cliState is built once per invocation and shared by the subcommands.
type cliState struct {
	layersPath string
	log        *debuglog.Logger
}

// locator returns a Locator tracing to the invocation's debug logger.
func (s *cliState) locator() *cfgpath.Locator {
	return cfgpath.NewLocator(s.log)
}

// layers loads the layer file given by --layers, or the default one.
func (s *cliState) layers() (config.Layers, error) {
	path := s.layersPath
	if path == "" {
		path = config.LayersPath()
	}
	s.log.Logf("loading layers from %q", path)
	layers, err := config.LoadLayers(path)
	if err != nil {
		return config.Layers{}, output.NewSystemErrorWithCause(err.Error(), err)
	}
	return layers, nil
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor combines the --color flag with TTY detection on stdout.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter creates the printer for a command, with errors on stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the omwcfg CLI.
func newRootCmd() *cobra.Command {
	state := &cliState{}

	cmd := &cobra.Command{
		Use:   "omwcfg",
		Short: "Locate and check OpenMW configuration files",
		Long: `omwcfg - locate openmw.cfg files and check where configuration can be written.

OpenMW reads its configuration from a stack of directories (system-wide,
then per-user, then any profile you add). omwcfg:
  - Resolves a directory or file to the openmw.cfg it refers to
  - Validates and canonicalizes paths before they are used
  - Picks the user config directory (the last configured layer wins)
  - Checks whether a path is writable before you save to it

Set CFG_DEBUG (any value) to trace every decision on stderr.
All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := newPrinter(cmd)
				err := output.NewUserError("no command specified. Run 'omwcfg --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Env files are loaded before CFG_DEBUG is read, so a dotenv file can
	// enable tracing. The logger is built once and shared.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles()
		state.log = debuglog.FromEnv(cmd.ErrOrStderr())
		flag := cmd.Root().PersistentFlags().Lookup("color")
		if flag == nil {
			return nil
		}
		if err := output.ValidateColorMode(flag.Value.String()); err != nil {
			newPrinter(cmd).Error(err)
			return err
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Colorize output: auto, always, never")
	cmd.PersistentFlags().StringVar(&state.layersPath, "layers", "",
		"Layer file listing config directories (default: "+config.LayersFileName+" in the user config dir)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd, state)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <user config dir>/env
func loadEnvFiles() {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	_ = envfile.LoadFirst(paths...)
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "paths", Title: "Path Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command, state *cliState) {
	addGroupedCommand(cmd, newResolveCmd(state), "paths")
	addGroupedCommand(cmd, newValidateCmd(state), "paths")
	addGroupedCommand(cmd, newUserCmd(state), "paths")
	addGroupedCommand(cmd, newWritableCmd(state), "paths")

	addGroupedCommand(cmd, newLayersCmd(state), "admin")
	addGroupedCommand(cmd, newDoctorCmd(state), "admin")
	addGroupedCommand(cmd, newServeCmd(state), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
