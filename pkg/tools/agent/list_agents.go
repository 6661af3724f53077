// Package agent exposes the ERC-8004 agent registry tools.
package agent

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// ListAgentsTool lists the AI agents registered on the platform.
type ListAgentsTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewListAgentsTool creates the list_agents tool.
func NewListAgentsTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &ListAgentsTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"list_agents",
		mcp.WithDescription("List all ERC-8004 AI agents registered on the Havona platform. Returns each agent's on-chain ID, name, type, wallet address, and status. Returns an empty list if the blockchain connection is unavailable."),
	)
	return t
}

// Handle returns the tool's definition.
func (t *ListAgentsTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *ListAgentsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	agents, err := client.Agents.List(ctx)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	out := make([]map[string]any, 0, len(agents))
	for _, a := range agents {
		out = append(out, map[string]any{
			"id":          a.ID,
			"name":        a.Name,
			"agentType":   a.AgentType,
			"wallet":      a.Wallet,
			"status":      a.Status,
			"metadataUri": a.MetadataURI,
		})
	}
	return tools.JSONResult(out), nil
}
