package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	omwmcp "github.com/gorewood/omwcfg/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run omwcfg as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "omwcfg": {
        "command": "omwcfg",
        "args": ["serve"]
      }
    }
  }

Available tools: resolve_config, validate_path, check_writable, user_config_path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layers, err := state.layers()
			if err != nil {
				return err
			}
			server := omwmcp.NewServer(buildVersion(), state.locator(), layers)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
