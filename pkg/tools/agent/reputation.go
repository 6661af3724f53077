package agent

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools"
)

// ReputationTool fetches the aggregated reputation score for an agent.
type ReputationTool struct {
	lifecycle *havona.Lifecycle
	handle    mcp.Tool
}

// NewReputationTool creates the get_agent_reputation tool.
func NewReputationTool(lifecycle *havona.Lifecycle) core.Tool {
	t := &ReputationTool{lifecycle: lifecycle}

	t.handle = mcp.NewTool(
		"get_agent_reputation",
		mcp.WithDescription("Get the aggregated reputation score for an AI agent. Returns total feedback count, average score (0-5), and a score breakdown by category."),
		mcp.WithNumber(
			"agent_id",
			mcp.Required(),
			mcp.Description("The integer on-chain agent ID."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *ReputationTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *ReputationTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	agentID, err := tools.GetIntArg(request, "agent_id")
	if err != nil {
		return tools.ErrorResult(&havona.InputError{Reason: "agent_id argument is required and must be a number"}), nil
	}

	client, err := t.lifecycle.Client()
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	rep, err := client.Agents.GetReputation(ctx, int64(agentID))
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.JSONResult(map[string]any{
		"agentId":       rep.AgentID,
		"totalFeedback": rep.TotalFeedback,
		"averageScore":  rep.AverageScore,
		"breakdown":     rep.Breakdown,
	}), nil
}
