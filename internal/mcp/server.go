// Package mcp provides a Model Context Protocol server for omwcfg.
// It exposes config path resolution as read-only MCP tools so an agent
// can find and check openmw.cfg files before editing them.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/omwcfg/internal/cfgpath"
	"github.com/gorewood/omwcfg/internal/config"
)

// NewServer creates an MCP server with all omwcfg tools registered.
// layers supplies the candidates for user_config_path calls that pass none.
func NewServer(version string, locator *cfgpath.Locator, layers config.Layers) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "omwcfg",
		Version: version,
	}, nil)
	registerTools(server, locator, layers)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that only inspect the filesystem.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all omwcfg tools to the server.
func registerTools(server *mcp.Server, locator *cfgpath.Locator, layers config.Layers) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_config",
		Description: "Resolve a directory or file path to an existing openmw.cfg. A directory resolves to the openmw.cfg inside it.",
		Annotations: readOnlyAnnotations(),
	}, handleResolve(locator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_path",
		Description: "Validate a path: empty paths are rejected, relative paths are canonicalized (and must exist), absolute paths are returned unchanged.",
		Annotations: readOnlyAnnotations(),
	}, handleValidate(locator))

	// The probe briefly creates and removes a file, so it is not strictly read-only.
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_writable",
		Description: "Check whether a config path can be written. Only permission-denied counts as not writable, so a true result is a best guess.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(false),
			IdempotentHint:  true,
			OpenWorldHint:   boolPtr(false),
		},
	}, handleWritable(locator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "user_config_path",
		Description: "Pick the user config directory: the last of the candidate directories, or the fallback when there are none. Without arguments the configured layers are used.",
		Annotations: readOnlyAnnotations(),
	}, handleUserConfig(locator, layers))
}
