// Copyright 2026 © The Hermes Authors
// SPDX-License-Identifier: Apache-2.0

// Package mcp exposes a dispatch.Registry over the Model Context Protocol.
// The registry owns discovery, validation, and failure shaping; this
// package only translates between the two worlds.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jllopis/hermes/pkg/dispatch"
)

// Server wraps the mcp-go server to serve Hermes operations as MCP tools.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server.
func NewServer(name, version string) *Server {
	return &Server{
		mcpServer: server.NewMCPServer(name, version),
	}
}

// RegisterRegistry advertises every operation of the registry as an MCP
// tool, in registration order, and routes tool calls through
// Registry.Invoke so the whole dispatch path is exercised per call.
func (s *Server) RegisterRegistry(reg *dispatch.Registry) error {
	for _, desc := range reg.List() {
		schemaJSON, err := desc.JSONSchema()
		if err != nil {
			return err
		}
		tool := mcp.NewToolWithRawSchema(desc.Name, desc.Description, schemaJSON)
		s.mcpServer.AddTool(tool, toolHandler(reg, desc.Name))
	}
	return nil
}

// toolHandler adapts one registry operation to the mcp-go handler shape.
// Typed Hermes failures become tool-level error results; the protocol
// layer never sees a raw fault.
func toolHandler(reg *dispatch.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})
		result, err := reg.Invoke(ctx, name, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toCallToolResult(result), nil
	}
}

func toCallToolResult(result *dispatch.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(result.Content))
	for _, item := range result.Content {
		content = append(content, mcp.TextContent{Type: "text", Text: item.Text})
	}
	return &mcp.CallToolResult{Content: content}
}

// ServeStdio starts the server on stdio and blocks until the transport
// closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeStreamableHTTP starts the server on the streamable HTTP transport.
func (s *Server) ServeStreamableHTTP(addr string) error {
	return server.NewStreamableHTTPServer(s.mcpServer).Start(addr)
}
