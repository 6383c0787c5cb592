package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/omwcfg/internal/cfgpath"
	"github.com/gorewood/omwcfg/internal/config"
)

// --- Resolve tool ---

// ResolveInput is the input for the resolve_config tool.
type ResolveInput struct {
	Path string `json:"path" jsonschema:"directory containing openmw.cfg, or the config file itself"`
}

// ResolveOutput is the output for the resolve_config tool.
type ResolveOutput struct {
	ConfigPath string `json:"config_path" jsonschema:"path of the existing config file"`
	Writable   bool   `json:"writable"    jsonschema:"best-guess writability of the config file"`
}

func handleResolve(locator *cfgpath.Locator) mcp.ToolHandlerFor[ResolveInput, ResolveOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ResolveInput) (*mcp.CallToolResult, ResolveOutput, error) {
		resolved, err := locator.Resolve(input.Path)
		if err != nil {
			return nil, ResolveOutput{}, describe(err)
		}
		return nil, ResolveOutput{
			ConfigPath: resolved,
			Writable:   locator.Writable(resolved),
		}, nil
	}
}

// --- Validate tool ---

// ValidateInput is the input for the validate_path tool.
type ValidateInput struct {
	Path string `json:"path" jsonschema:"path to validate"`
}

// ValidateOutput is the output for the validate_path tool.
type ValidateOutput struct {
	Path string `json:"path" jsonschema:"validated path (canonical when the input was relative)"`
}

func handleValidate(locator *cfgpath.Locator) mcp.ToolHandlerFor[ValidateInput, ValidateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
		validated, err := locator.Validate(input.Path)
		if err != nil {
			return nil, ValidateOutput{}, describe(err)
		}
		return nil, ValidateOutput{Path: validated}, nil
	}
}

// --- Writable tool ---

// WritableInput is the input for the check_writable tool.
type WritableInput struct {
	Path string `json:"path" jsonschema:"file or directory to check; need not exist"`
}

// WritableOutput is the output for the check_writable tool.
type WritableOutput struct {
	Path     string `json:"path"     jsonschema:"the checked path"`
	Writable bool   `json:"writable" jsonschema:"false only when access was denied"`
}

func handleWritable(locator *cfgpath.Locator) mcp.ToolHandlerFor[WritableInput, WritableOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input WritableInput) (*mcp.CallToolResult, WritableOutput, error) {
		if input.Path == "" {
			return nil, WritableOutput{}, errors.New("path is required")
		}
		return nil, WritableOutput{
			Path:     input.Path,
			Writable: locator.Writable(input.Path),
		}, nil
	}
}

// --- User config tool ---

// UserConfigInput is the input for the user_config_path tool.
type UserConfigInput struct {
	Candidates []string `json:"candidates,omitempty" jsonschema:"config directories, lowest precedence first"`
	Fallback   string   `json:"fallback,omitempty"   jsonschema:"directory used when there are no candidates"`
}

// UserConfigOutput is the output for the user_config_path tool.
type UserConfigOutput struct {
	Path   string `json:"path"   jsonschema:"selected user config directory"`
	Source string `json:"source" jsonschema:"where the path came from: candidates, fallback, or layers"`
}

func handleUserConfig(locator *cfgpath.Locator, layers config.Layers) mcp.ToolHandlerFor[UserConfigInput, UserConfigOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input UserConfigInput) (*mcp.CallToolResult, UserConfigOutput, error) {
		if len(input.Candidates) == 0 && input.Fallback == "" {
			return nil, UserConfigOutput{
				Path:   locator.Select(layers.Candidates(), layers.Fallback),
				Source: "layers",
			}, nil
		}

		source := "candidates"
		if len(input.Candidates) == 0 {
			source = "fallback"
		}
		return nil, UserConfigOutput{
			Path:   locator.Select(input.Candidates, input.Fallback),
			Source: source,
		}, nil
	}
}

// describe prefixes config errors with their kind so agents can branch on it.
func describe(err error) error {
	kind := cfgpath.KindOf(err)
	if kind == 0 {
		return err
	}
	return fmt.Errorf("%s: %w", kind, err)
}
