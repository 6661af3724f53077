package blockchain

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// RecordTool fetches the on-chain persistence record for a trade.
type RecordTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewRecordTool creates the get_trade_blockchain_record tool.
func NewRecordTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &RecordTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"get_trade_blockchain_record",
		mcp.WithDescription("Fetch the on-chain persistence record for a trade. Returns the blockchain confirmation status, transaction hash, and block number. Status is one of: PENDING, CONFIRMED, FAILED."),
		mcp.WithString(
			"trade_id",
			mcp.Required(),
			mcp.Description("The DGraph UUID of the trade."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *RecordTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *RecordTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tradeID, err := tools.GetStringArg(request, "trade_id")
	if err != nil || tradeID == "" {
		return tools.ErrorResult(&havona.InputError{Reason: "trade_id argument is required"}), nil
	}

	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	record, err := client.Blockchain.GetPersistence(ctx, tradeID)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.JSONResult(map[string]any{
		"recordId":     record.RecordID,
		"status":       record.Status,
		"txHash":       record.TxHash,
		"blockNumber":  record.BlockNumber,
		"attemptCount": record.AttemptCount,
		"createdAt":    record.CreatedAt,
	}), nil
}
