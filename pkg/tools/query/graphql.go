// Package query exposes the raw GraphQL escape hatch.
package query

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// GraphQLTool forwards an arbitrary query to the Havona API. The result is
// returned unmodified; this path is intentionally schema-transparent.
type GraphQLTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewGraphQLTool creates the graphql_query tool.
func NewGraphQLTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &GraphQLTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"graphql_query",
		mcp.WithDescription("Execute a raw GraphQL query against the Havona API. Use this for advanced queries not covered by the other tools, for example querying nested fields, filtering by multiple criteria, or accessing types not exposed elsewhere. Example: query { queryTradeContract(first: 5) { id contractNo status } }"),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("GraphQL query string."),
		),
		mcp.WithString(
			"variables",
			mcp.Description("Optional JSON string of query variables."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *GraphQLTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool. Malformed variables are rejected before any
// network call is made.
func (t *GraphQLTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queryStr, err := tools.GetStringArg(request, "query")
	if err != nil || queryStr == "" {
		return tools.ErrorResult(&havona.InputError{Reason: "query argument is required"}), nil
	}

	var variables map[string]any
	if raw, err := tools.GetStringArg(request, "variables"); err == nil && raw != "" {
		if err := json.Unmarshal([]byte(raw), &variables); err != nil {
			return tools.ErrorResult(&havona.InputError{Reason: fmt.Sprintf("Invalid variables JSON: %v", err)}), nil
		}
	}

	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	data, err := client.GraphQL(ctx, queryStr, variables)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.JSONResult(data), nil
}
