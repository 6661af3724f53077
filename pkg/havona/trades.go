package havona

import (
	"context"
	"encoding/json"
	"fmt"
)

// TradeContract is a trade contract record as returned by the platform.
// Fields the platform returns beyond the known set land in Extra.
type TradeContract struct {
	ID               string `json:"id"`
	ContractNo       string `json:"contractNo"`
	Status           string `json:"status"`
	ContractType     string `json:"contractType"`
	BlockchainStatus string `json:"blockchainStatus"`
	TxHash           string `json:"txHash"`
	BlockNumber      int64  `json:"blockNumber"`

	Extra map[string]any `json:"-"`
}

var tradeContractKnownFields = map[string]bool{
	"id":               true,
	"contractNo":       true,
	"status":           true,
	"contractType":     true,
	"blockchainStatus": true,
	"txHash":           true,
	"blockNumber":      true,
}

// UnmarshalJSON decodes the known fields and collects anything else the
// platform returned into Extra.
func (t *TradeContract) UnmarshalJSON(data []byte) error {
	type plain TradeContract
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if tradeContractKnownFields[key] {
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return err
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any)
		}
		p.Extra[key] = v
	}

	*t = TradeContract(p)
	return nil
}

// TradesService provides trade contract operations over the platform's
// GraphQL surface.
type TradesService struct {
	client *Client
}

const tradeSummaryFields = "id contractNo status contractType blockchainStatus txHash"

// List returns up to limit trade contracts visible to the authenticated
// identity.
func (s *TradesService) List(ctx context.Context, limit int) ([]TradeContract, error) {
	query := fmt.Sprintf("query ListTrades($first: Int) { queryTradeContract(first: $first) { %s } }", tradeSummaryFields)
	data, err := s.client.GraphQL(ctx, query, map[string]any{"first": limit})
	if err != nil {
		return nil, err
	}

	var trades []TradeContract
	if err := decodeInto(data["queryTradeContract"], &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// Get fetches a single trade contract by its DGraph UUID, including block
// number and any additional fields the platform returns.
func (s *TradesService) Get(ctx context.Context, tradeID string) (*TradeContract, error) {
	query := fmt.Sprintf("query GetTrade($id: ID!) { getTradeContract(id: $id) { %s blockNumber } }", tradeSummaryFields)
	data, err := s.client.GraphQL(ctx, query, map[string]any{"id": tradeID})
	if err != nil {
		return nil, err
	}

	if data["getTradeContract"] == nil {
		return nil, &APIError{StatusCode: 404, Message: fmt.Sprintf("trade contract %q not found", tradeID)}
	}

	var trade TradeContract
	if err := decodeInto(data["getTradeContract"], &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// Create adds a new trade contract. The input map carries exactly the fields
// the caller set; absent optional fields must not be present as keys.
func (s *TradesService) Create(ctx context.Context, input map[string]any) (*TradeContract, error) {
	query := "mutation AddTrade($input: [AddTradeContractInput!]!) { addTradeContract(input: $input) { tradeContract { id contractNo status blockchainStatus } } }"
	data, err := s.client.GraphQL(ctx, query, map[string]any{"input": []any{input}})
	if err != nil {
		return nil, err
	}

	var payload struct {
		TradeContract []TradeContract `json:"tradeContract"`
	}
	if err := decodeInto(data["addTradeContract"], &payload); err != nil {
		return nil, err
	}
	if len(payload.TradeContract) == 0 {
		return nil, &APIError{Message: "create returned no trade contract"}
	}
	return &payload.TradeContract[0], nil
}

// UpdateStatus sets a trade contract's status and returns the updated record.
func (s *TradesService) UpdateStatus(ctx context.Context, tradeID, status string) (*TradeContract, error) {
	query := fmt.Sprintf("mutation UpdateTrade($id: [ID!], $status: String) { updateTradeContract(input: {filter: {id: $id}, set: {status: $status}}) { tradeContract { %s } } }", tradeSummaryFields)
	data, err := s.client.GraphQL(ctx, query, map[string]any{"id": []string{tradeID}, "status": status})
	if err != nil {
		return nil, err
	}

	var payload struct {
		TradeContract []TradeContract `json:"tradeContract"`
	}
	if err := decodeInto(data["updateTradeContract"], &payload); err != nil {
		return nil, err
	}
	if len(payload.TradeContract) == 0 {
		return nil, &APIError{StatusCode: 404, Message: fmt.Sprintf("trade contract %q not found", tradeID)}
	}
	return &payload.TradeContract[0], nil
}
