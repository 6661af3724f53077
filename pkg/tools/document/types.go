// Package document exposes the ETR document extraction tools.
package document

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// ListTypesTool lists the document types supported for AI extraction.
type ListTypesTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewListTypesTool creates the list_supported_document_types tool.
func NewListTypesTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &ListTypesTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"list_supported_document_types",
		mcp.WithDescription("List the ETR document types supported for AI extraction. Returns document type IDs and names such as COMMERCIAL_INVOICE, BILL_OF_LADING, and CERTIFICATE_OF_ORIGIN."),
	)
	return t
}

// Handle returns the tool's definition.
func (t *ListTypesTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *ListTypesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	types, err := client.Documents.SupportedTypes(ctx)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	out := make([]map[string]any, 0, len(types))
	for _, dt := range types {
		out = append(out, map[string]any{
			"id":          dt.ID,
			"name":        dt.Name,
			"description": dt.Description,
		})
	}
	return tools.JSONResult(out), nil
}
