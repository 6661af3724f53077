package havona

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// BlockchainStatus describes the platform's connection to its confidential
// EVM chain.
type BlockchainStatus struct {
	Connected       bool   `json:"connected"`
	ChainID         int64  `json:"chainId"`
	Network         string `json:"network"`
	ContractAddress string `json:"contractAddress"`

	Extra map[string]any `json:"-"`
}

var blockchainStatusKnownFields = map[string]bool{
	"connected":       true,
	"chainId":         true,
	"network":         true,
	"contractAddress": true,
}

func (s *BlockchainStatus) UnmarshalJSON(data []byte) error {
	type plain BlockchainStatus
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if blockchainStatusKnownFields[key] {
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

	*s = BlockchainStatus(p)
	return nil
}

// PersistenceRecord is the on-chain persistence record for a trade. Status is
// one of PENDING, CONFIRMED, FAILED.
type PersistenceRecord struct {
	RecordID     string `json:"recordId"`
	Status       string `json:"status"`
	TxHash       string `json:"txHash"`
	BlockNumber  int64  `json:"blockNumber"`
	AttemptCount int    `json:"attemptCount"`
	CreatedAt    string `json:"createdAt"`
}

// BlockchainService provides blockchain persistence operations over the
// platform's REST surface.
type BlockchainService struct {
	client *Client
}

// Status reports the platform's blockchain connectivity.
func (s *BlockchainService) Status(ctx context.Context) (*BlockchainStatus, error) {
	var status BlockchainStatus
	if err := s.client.rest(ctx, http.MethodGet, "/api/blockchain/status", nil, "", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetPersistence fetches the on-chain persistence record for a trade.
func (s *BlockchainService) GetPersistence(ctx context.Context, tradeID string) (*PersistenceRecord, error) {
	var record PersistenceRecord
	path := "/api/blockchain/trades/" + url.PathEscape(tradeID)
	if err := s.client.rest(ctx, http.MethodGet, path, nil, "", &record); err != nil {
		return nil, err
	}
	return &record, nil
}
