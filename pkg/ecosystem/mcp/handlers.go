package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ormasoftchile/ikp/pkg/eval"
	"github.com/ormasoftchile/ikp/pkg/schema"
	"github.com/ormasoftchile/ikp/pkg/value"
)

// HandleValidate implements the ikp/validate MCP tool.
func HandleValidate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path, _ := args["path"].(string)
	if path == "" {
		return errorResult("path argument is required"), nil
	}

	doc, report := schema.ValidateFile(path)
	if !report.OK() {
		return errorResult(formatReport(report)), nil
	}
	msg := fmt.Sprintf("✓ document is valid (%d scenes)", len(doc.Scenes))
	if len(report.Warnings) > 0 {
		msg += "\n" + formatReport(report)
	}
	return textResult(msg), nil
}

// HandleEval implements the ikp/eval MCP tool.
func HandleEval(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	src, _ := args["expr"].(string)
	if src == "" {
		return errorResult("expr argument is required"), nil
	}

	snap := value.Snapshot{}
	if rawVars, ok := args["vars"].(map[string]any); ok {
		for name, v := range rawVars {
			snap[name] = value.FromAny(v)
		}
	}

	result, err := eval.Evaluate(src, snap)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return textResult(fmt.Sprintf("%s (%s)", result.Text(), result.Kind)), nil
}

// HandleSchema implements the ikp/schema MCP tool.
func HandleSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := schema.GenerateJSONSchema()
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return textResult(string(data)), nil
}

func formatReport(report *schema.Report) string {
	var lines []string
	for _, e := range report.Errors {
		lines = append(lines, "error: "+e)
	}
	for _, w := range report.Warnings {
		lines = append(lines, "warning: "+w)
	}
	return strings.Join(lines, "\n")
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(msg),
		},
		IsError: true,
	}
}
