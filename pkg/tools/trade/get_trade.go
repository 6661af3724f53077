package trade

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// GetTradeTool fetches a single trade contract by ID.
type GetTradeTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewGetTradeTool creates the get_trade tool.
func NewGetTradeTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &GetTradeTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"get_trade",
		mcp.WithDescription("Fetch a single trade contract by its ID, including blockchain persistence state and block number."),
		mcp.WithString(
			"trade_id",
			mcp.Required(),
			mcp.Description("The DGraph UUID of the trade contract."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *GetTradeTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *GetTradeTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tradeID, err := tools.GetStringArg(request, "trade_id")
	if err != nil || tradeID == "" {
		return tools.ErrorResult(&havona.InputError{Reason: "trade_id argument is required"}), nil
	}

	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	trade, err := client.Trades.Get(ctx, tradeID)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	out := map[string]any{
		"id":               trade.ID,
		"contractNo":       trade.ContractNo,
		"status":           trade.Status,
		"contractType":     trade.ContractType,
		"blockchainStatus": trade.BlockchainStatus,
		"txHash":           trade.TxHash,
		"blockNumber":      trade.BlockNumber,
	}
	for key, value := range trade.Extra {
		out[key] = value
	}
	return tools.JSONResult(out), nil
}
