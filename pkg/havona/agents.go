package havona

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Agent is an ERC-8004 AI agent registered on the platform.
type Agent struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AgentType   string `json:"agentType"`
	Wallet      string `json:"wallet"`
	Status      string `json:"status"`
	MetadataURI string `json:"metadataUri"`
}

// AgentReputation aggregates the feedback recorded for an agent.
type AgentReputation struct {
	AgentID       int64              `json:"agentId"`
	TotalFeedback int                `json:"totalFeedback"`
	AverageScore  float64            `json:"averageScore"`
	Breakdown     map[string]float64 `json:"breakdown"`
}

// AgentsService provides agent registry operations over the platform's REST
// surface.
type AgentsService struct {
	client *Client
}

// List returns all registered agents. The platform answers 503 when its
// blockchain connection is down; that is not an error for this read-only
// listing, it is an empty registry.
func (s *AgentsService) List(ctx context.Context) ([]Agent, error) {
	var agents []Agent
	err := s.client.rest(ctx, http.MethodGet, "/api/agents", nil, "", &agents)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable {
			return []Agent{}, nil
		}
		return nil, err
	}
	if agents == nil {
		agents = []Agent{}
	}
	return agents, nil
}

// GetReputation fetches the aggregated reputation for an agent by its
// on-chain ID.
func (s *AgentsService) GetReputation(ctx context.Context, agentID int64) (*AgentReputation, error) {
	var rep AgentReputation
	path := fmt.Sprintf("/api/agents/%d/reputation", agentID)
	if err := s.client.rest(ctx, http.MethodGet, path, nil, "", &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
