// Package trade exposes the trade contract tools.
package trade

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

const defaultListLimit = 20

// ListTradesTool lists trade contracts visible to the authenticated user.
type ListTradesTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewListTradesTool creates the list_trades tool.
func NewListTradesTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &ListTradesTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"list_trades",
		mcp.WithDescription("List trade contracts visible to the authenticated user. Returns up to `limit` records with id, contractNo, status, contractType, and blockchain persistence state."),
		mcp.WithNumber(
			"limit",
			mcp.Description("Maximum number of trades to return. Default: 20."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *ListTradesTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *ListTradesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit, err := tools.GetIntArg(request, "limit")
	if err != nil || limit <= 0 {
		limit = defaultListLimit
	}

	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	trades, err := client.Trades.List(ctx, limit)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	out := make([]map[string]any, 0, len(trades))
	for _, trade := range trades {
		out = append(out, map[string]any{
			"id":               trade.ID,
			"contractNo":       trade.ContractNo,
			"status":           trade.Status,
			"contractType":     trade.ContractType,
			"blockchainStatus": trade.BlockchainStatus,
			"txHash":           trade.TxHash,
		})
	}
	return tools.JSONResult(out), nil
}
