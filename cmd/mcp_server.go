package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/tanekelly/overline-zebar/internal/model"
	"github.com/tanekelly/overline-zebar/internal/output"
	"github.com/tanekelly/overline-zebar/internal/title"
	"gopkg.in/yaml.v3"
)

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// mcpServer wraps the MCP server with a shared resolver.
type mcpServer struct {
	resolver *title.Resolver
	mcp      *mcpserver.MCPServer
}

// newMCPServer creates and configures an MCP server with all overline tools.
func newMCPServer() (*mcpServer, error) {
	resolver, err := newResolver()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{resolver: resolver}
	s.mcp = mcpserver.NewMCPServer(
		"overline",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("resolve_title",
			mcp.WithDescription("Resolve the display title for a window manager focus snapshot. Returns the title, the focused window's process name, and whether anything is renderable."),
			mcp.WithString("snapshot", mcp.Description("Focus snapshot or container tree as JSON"), mcp.Required()),
		),
		s.handleResolveTitle,
	)

	s.mcp.AddTool(
		mcp.NewTool("resolve_process",
			mcp.WithDescription("Return the focused window's process name, for copy-style affordances. Empty when a structural container has focus."),
			mcp.WithString("snapshot", mcp.Description("Focus snapshot or container tree as JSON"), mcp.Required()),
		),
		s.handleResolveProcess,
	)

	s.mcp.AddTool(
		mcp.NewTool("workspace_processes",
			mcp.WithDescription("List the application titles and process names inside the focused workspace, in tree encounter order."),
			mcp.WithString("snapshot", mcp.Description("Focus snapshot or workspace tree as JSON"), mcp.Required()),
		),
		s.handleWorkspaceProcesses,
	)
}

// snapshotParam decodes the required snapshot argument of a tool call.
func snapshotParam(request mcp.CallToolRequest) (model.FocusSnapshot, error) {
	params := request.GetArguments()
	raw, _ := params["snapshot"].(string)
	if raw == "" {
		return model.FocusSnapshot{}, fmt.Errorf("snapshot parameter is required")
	}
	return model.DecodeSnapshot(strings.NewReader(raw))
}

// resultToText serializes a result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("marshal result: %v", err)
	}
	return string(b)
}

func (s *mcpServer) handleResolveTitle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := snapshotParam(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := output.ResolveResult{}
	result.Title, result.OK = s.resolver.ResolveTitle(snap)
	result.Process, _ = s.resolver.ResolveProcessName(snap)
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleResolveProcess(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := snapshotParam(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := CopyResult{}
	result.Process, result.OK = s.resolver.ResolveProcessName(snap)
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleWorkspaceProcesses(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := snapshotParam(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if snap.Workspace == nil {
		return mcp.NewToolResultError("input contains no workspace"), nil
	}

	apps, processes := model.WorkspaceProcesses(snap.Workspace)
	return mcp.NewToolResultText(resultToText(output.ProcessesResult{
		Workspace: snap.Workspace.Name,
		Apps:      apps,
		Processes: processes,
	})), nil
}
