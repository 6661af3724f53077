package document

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// ExtractTool runs AI extraction over a trade document PDF.
type ExtractTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewExtractTool creates the extract_trade_document tool.
func NewExtractTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &ExtractTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"extract_trade_document",
		mcp.WithDescription("Extract structured trade data from an ETR document PDF using AI. Sends the PDF to the Havona extraction service and returns the extracted fields. Does not save anything; call create_trade with the returned fields to persist."),
		mcp.WithString(
			"file_path",
			mcp.Required(),
			mcp.Description("Absolute path to the PDF file on this machine."),
		),
		mcp.WithString(
			"document_type",
			mcp.Required(),
			mcp.Description("One of COMMERCIAL_INVOICE, BILL_OF_LADING, CERTIFICATE_OF_ORIGIN."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *ExtractTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *ExtractTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath, err := tools.GetStringArg(request, "file_path")
	if err != nil || filePath == "" {
		return tools.ErrorResult(&havona.InputError{Reason: "file_path argument is required"}), nil
	}

	documentType, err := tools.GetStringArg(request, "document_type")
	if err != nil || documentType == "" {
		return tools.ErrorResult(&havona.InputError{Reason: "document_type argument is required"}), nil
	}

	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	result, err := client.Documents.Extract(ctx, filePath, documentType)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.JSONResult(map[string]any{
		"documentType": result.DocumentType,
		"fields":       result.Fields,
		"confidence":   result.Confidence,
		"source":       result.Source,
	}), nil
}
