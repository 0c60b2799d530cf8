// Package mcp exposes clodo's read surface over the Model Context
// Protocol so coding assistants can query a project's capabilities.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewClodoMCPServer creates an MCP server with all clodo tools and
// resources registered. projectPath is the project to analyze.
func NewClodoMCPServer(projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"clodo",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
