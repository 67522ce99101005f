// Package mcp exposes the IKP core to AI agents over the Model Context
// Protocol: document validation, sandboxed expression evaluation, and the
// JSON Schema export.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates a new MCP server with the IKP tools registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"ikp",
		version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("ikp/validate",
			mcp.WithDescription("Validate an IKP document YAML file"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the document YAML file")),
		),
		HandleValidate,
	)

	s.AddTool(
		mcp.NewTool("ikp/eval",
			mcp.WithDescription("Evaluate a sandboxed IKP expression against a variable set"),
			mcp.WithString("expr", mcp.Required(), mcp.Description("Expression, e.g. \"${x} > 3\" or \"1 + 2 * 3\"")),
			mcp.WithObject("vars", mcp.Description("Variable bindings (name → value)")),
		),
		HandleEval,
	)

	s.AddTool(
		mcp.NewTool("ikp/schema",
			mcp.WithDescription("Export the IKP document JSON Schema"),
		),
		HandleSchema,
	)

	return s
}
