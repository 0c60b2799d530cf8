package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/descriptor"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/envfile"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/fsio"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/gitinfo"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/layout"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/manifeststore"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/npm"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/permissions"
	"github.com/tamylaa/clodo-framework-sub007/internal/application"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

// registerTools registers all clodo MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("clodo_discover",
			mcplib.WithDescription("Returns the discovered capability model for the project as JSON"),
		),
		handleDiscover(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("clodo_assess",
			mcplib.WithDescription("Returns completeness, maturity, and ranked recommendations for the project"),
		),
		handleAssess(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("clodo_validate",
			mcplib.WithDescription("Validates the project's artifacts and cross-checks the service manifest against discovery"),
		),
		handleValidate(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("clodo_diagnose",
			mcplib.WithDescription("Returns errors, warnings, and recommendations for the project"),
			mcplib.WithBoolean("deep", mcplib.Description("Append best-practice recommendations")),
		),
		handleDiagnose(projectPath),
	)
}

// newServices wires the standard outbound adapters.
func newServices() (*application.DiscoveryService, *application.ValidateService) {
	discovery := application.NewDiscoveryService(
		descriptor.New(),
		npm.New(),
		layout.New(),
		envfile.New(),
		permissions.New(),
	)
	validate := application.NewValidateService(
		fsio.New(),
		npm.New(),
		descriptor.New(),
		manifeststore.New(),
		discovery,
		envfile.New(),
		gitinfo.New(),
	)
	return discovery, validate
}

func handleDiscover(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		discovery, _ := newServices()
		return jsonResult(discovery.Discover(projectPath))
	}
}

func handleAssess(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		discovery, _ := newServices()
		model := discovery.Discover(projectPath)
		return jsonResult(capability.Assess(model))
	}
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, validate := newServices()
		return jsonResult(validate.Validate(projectPath))
	}
}

func handleDiagnose(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		deep, _ := request.GetArguments()["deep"].(bool)
		_, validate := newServices()
		return jsonResult(validate.Diagnose(projectPath, deep))
	}
}

// jsonResult marshals v as an indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}
