package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/manifeststore"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

// registerResources registers all clodo MCP resources.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			"clodo://capabilities",
			"Capability Model",
			mcplib.WithResourceDescription("Freshly discovered capability model for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCapabilitiesResource(projectPath),
	)

	s.AddResource(
		mcplib.NewResource(
			"clodo://manifest",
			"Service Manifest",
			mcplib.WithResourceDescription("The manifest recorded by the last generation run, if any"),
			mcplib.WithMIMEType("application/json"),
		),
		handleManifestResource(projectPath),
	)
}

func handleCapabilitiesResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		discovery, _ := newServices()
		model := discovery.Discover(projectPath)

		payload := struct {
			Model      capability.Model      `json:"model"`
			Assessment capability.Assessment `json:"assessment"`
		}{model, capability.Assess(model)}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling capabilities: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "clodo://capabilities",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleManifestResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		manifest, err := manifeststore.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading manifest: %w", err)
		}
		if manifest == nil {
			return nil, fmt.Errorf("no service manifest found at %s", manifeststore.New().Path(projectPath))
		}

		data, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling manifest: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "clodo://manifest",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
