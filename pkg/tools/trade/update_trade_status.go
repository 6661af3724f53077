package trade

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// UpdateTradeStatusTool updates the status of an existing trade contract.
type UpdateTradeStatusTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewUpdateTradeStatusTool creates the update_trade_status tool.
func NewUpdateTradeStatusTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &UpdateTradeStatusTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"update_trade_status",
		mcp.WithDescription("Update the status of an existing trade contract. Returns the updated trade."),
		mcp.WithString(
			"trade_id",
			mcp.Required(),
			mcp.Description("The DGraph UUID of the trade."),
		),
		mcp.WithString(
			"status",
			mcp.Required(),
			mcp.Description("New status (e.g. \"ACTIVE\", \"COMPLETED\", \"CANCELLED\")."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *UpdateTradeStatusTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *UpdateTradeStatusTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tradeID, err := tools.GetStringArg(request, "trade_id")
	if err != nil || tradeID == "" {
		return tools.ErrorResult(&havona.InputError{Reason: "trade_id argument is required"}), nil
	}

	status, err := tools.GetStringArg(request, "status")
	if err != nil || status == "" {
		return tools.ErrorResult(&havona.InputError{Reason: "status argument is required"}), nil
	}

	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	trade, err := client.Trades.UpdateStatus(ctx, tradeID, status)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.JSONResult(map[string]any{
		"id":               trade.ID,
		"contractNo":       trade.ContractNo,
		"status":           trade.Status,
		"contractType":     trade.ContractType,
		"blockchainStatus": trade.BlockchainStatus,
		"txHash":           trade.TxHash,
	}), nil
}
