package trade

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// optionalFields maps tool argument names to the platform's input field names
// for create_trade. Unset arguments are left out of the mutation input
// entirely, never sent as null or empty placeholders.
var optionalFields = []struct {
	arg   string
	field string
}{
	{"contract_type", "contractType"},
	{"seller_id", "sellerId"},
	{"buyer_id", "buyerId"},
	{"commodity", "commodity"},
	{"quantity", "quantity"},
	{"unit", "unit"},
	{"currency", "currency"},
	{"total_value", "totalValue"},
	{"origin_country", "originCountry"},
	{"destination_country", "destinationCountry"},
}

// CreateTradeTool creates a new trade contract.
type CreateTradeTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewCreateTradeTool creates the create_trade tool.
func NewCreateTradeTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &CreateTradeTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"create_trade",
		mcp.WithDescription("Create a new trade contract. The record is dual-persisted to the database and the confidential blockchain. Returns the newly created trade including its server-assigned id."),
		mcp.WithString("contract_no", mcp.Required(), mcp.Description("Unique contract identifier (e.g. \"TC-2026-001\").")),
		mcp.WithString("status", mcp.Description("Initial status: DRAFT (default) or ACTIVE."), mcp.Enum("DRAFT", "ACTIVE")),
		mcp.WithString("contract_type", mcp.Description("Contract type, e.g. \"SPOT\", \"FORWARD\".")),
		mcp.WithString("seller_id", mcp.Description("Member UUID of the selling party.")),
		mcp.WithString("buyer_id", mcp.Description("Member UUID of the buying party.")),
		mcp.WithString("commodity", mcp.Description("Commodity name (e.g. \"Crude Oil\", \"Wheat\").")),
		mcp.WithString("quantity", mcp.Description("Quantity as a string (e.g. \"50000\").")),
		mcp.WithString("unit", mcp.Description("Unit of measure (e.g. \"BBL\", \"MT\").")),
		mcp.WithString("currency", mcp.Description("ISO currency code (e.g. \"USD\").")),
		mcp.WithString("total_value", mcp.Description("Total contract value as a string.")),
		mcp.WithString("origin_country", mcp.Description("ISO country code of origin.")),
		mcp.WithString("destination_country", mcp.Description("ISO country code of destination.")),
	)
	return t
}

// Handle returns the tool's definition.
func (t *CreateTradeTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *CreateTradeTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractNo, err := tools.GetStringArg(request, "contract_no")
	if err != nil || contractNo == "" {
		return tools.ErrorResult(&havona.InputError{Reason: "contract_no argument is required"}), nil
	}

	status, _ := tools.GetStringArg(request, "status")
	if status == "" {
		status = "DRAFT"
	}

	input := map[string]any{
		"contractNo": contractNo,
		"status":     status,
	}
	for _, opt := range optionalFields {
		if value, err := tools.GetStringArg(request, opt.arg); err == nil && value != "" {
			input[opt.field] = value
		}
	}

	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	trade, err := client.Trades.Create(ctx, input)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.JSONResult(map[string]any{
		"id":               trade.ID,
		"contractNo":       trade.ContractNo,
		"status":           trade.Status,
		"blockchainStatus": trade.BlockchainStatus,
	}), nil
}
