// Package blockchain exposes the blockchain persistence tools.
package blockchain

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// StatusTool reports the platform's blockchain connectivity.
type StatusTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewStatusTool creates the blockchain_status tool.
func NewStatusTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &StatusTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"blockchain_status",
		mcp.WithDescription("Check the blockchain connection status of the Havona platform. Returns whether the platform is connected to its confidential EVM chain, the chain ID, and the deployed contract address."),
	)
	return t
}

// Handle returns the tool's definition.
func (t *StatusTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *StatusTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	status, err := client.Blockchain.Status(ctx)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	out := map[string]any{
		"connected":       status.Connected,
		"chainId":         status.ChainID,
		"network":         status.Network,
		"contractAddress": status.ContractAddress,
	}
	for key, value := range status.Extra {
		out[key] = value
	}
	return tools.JSONResult(out), nil
}
