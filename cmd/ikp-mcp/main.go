// Package main provides the ikp-mcp binary — MCP server for AI agents.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	ikpmcp "github.com/ormasoftchile/ikp/pkg/ecosystem/mcp"
)

var version = "dev"

func main() {
	s := ikpmcp.NewServer(version)
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
