// Package core defines the contract every Havona MCP tool satisfies.
package core

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is a single MCP tool: a schema handle plus its handler. Handlers
// report failures as error-envelope results, never as returned errors, so a
// tool call always produces a structured response for the host.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
