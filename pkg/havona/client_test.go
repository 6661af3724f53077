package havona

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphqlHandler answers /graphql with the given data node, recording the
// request body for inspection.
func graphqlHandler(t *testing.T, data map[string]any, lastRequest *graphqlRequest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graphql", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		if lastRequest != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(lastRequest))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}
}

func TestTradesList(t *testing.T) {
	var captured graphqlRequest
	srv := httptest.NewServer(graphqlHandler(t, map[string]any{
		"queryTradeContract": []map[string]any{
			{"id": "0x1", "contractNo": "TC-2026-001", "status": "ACTIVE", "contractType": "SPOT", "blockchainStatus": "CONFIRMED", "txHash": "0xabc"},
			{"id": "0x2", "contractNo": "TC-2026-002", "status": "DRAFT", "contractType": "FORWARD", "blockchainStatus": "PENDING", "txHash": ""},
		},
	}, &captured))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	trades, err := client.Trades.List(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, trades, 2)
	assert.Equal(t, "TC-2026-001", trades[0].ContractNo)
	assert.Equal(t, "CONFIRMED", trades[0].BlockchainStatus)
	assert.Equal(t, float64(2), captured.Variables["first"])
}

func TestTradesGetPassthroughFields(t *testing.T) {
	srv := httptest.NewServer(graphqlHandler(t, map[string]any{
		"getTradeContract": map[string]any{
			"id":               "0x1",
			"contractNo":       "TC-2026-001",
			"status":           "ACTIVE",
			"blockchainStatus": "CONFIRMED",
			"blockNumber":      42,
			"commodity":        "Crude Oil",
			"currency":         "USD",
		},
	}, nil))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	trade, err := client.Trades.Get(context.Background(), "0x1")
	require.NoError(t, err)

	assert.Equal(t, int64(42), trade.BlockNumber)
	assert.Equal(t, "Crude Oil", trade.Extra["commodity"])
	assert.Equal(t, "USD", trade.Extra["currency"])
	assert.NotContains(t, trade.Extra, "contractNo")
}

func TestTradesGetNotFound(t *testing.T) {
	srv := httptest.NewServer(graphqlHandler(t, map[string]any{
		"getTradeContract": nil,
	}, nil))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	_, err := client.Trades.Get(context.Background(), "nonexistent-id")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "ApiError", ErrorKind(err))
}

func TestTradesCreateSendsOnlySetFields(t *testing.T) {
	var captured graphqlRequest
	srv := httptest.NewServer(graphqlHandler(t, map[string]any{
		"addTradeContract": map[string]any{
			"tradeContract": []map[string]any{
				{"id": "0x9", "contractNo": "TC-2026-003", "status": "DRAFT", "blockchainStatus": "PENDING"},
			},
		},
	}, &captured))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	trade, err := client.Trades.Create(context.Background(), map[string]any{
		"contractNo": "TC-2026-003",
		"status":     "DRAFT",
		"commodity":  "Wheat",
	})
	require.NoError(t, err)
	assert.Equal(t, "0x9", trade.ID)

	inputs, ok := captured.Variables["input"].([]any)
	require.True(t, ok)
	input, ok := inputs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Wheat", input["commodity"])
	assert.NotContains(t, input, "sellerId")
	assert.NotContains(t, input, "currency")
}

func TestGraphQLErrorsArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{
				{"message": "Unknown field: contractNumber"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	_, err := client.GraphQL(context.Background(), "query { x }", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "Unknown field")
}

func TestAgentsListUnavailableBlockchain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"blockchain connection unavailable"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	agents, err := client.Agents.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, agents)
	assert.NotNil(t, agents)
}

func TestAgentsListOtherFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	_, err := client.Agents.List(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestBlockchainPersistenceNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/blockchain/trades/nonexistent-id", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"trade not found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	_, err := client.Blockchain.GetPersistence(context.Background(), "nonexistent-id")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "trade not found", apiErr.Message)
}

func TestBlockchainStatusPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/blockchain/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"connected":true,"chainId":59144,"network":"linea","contractAddress":"0xdead","blockHeight":123456}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	status, err := client.Blockchain.Status(context.Background())
	require.NoError(t, err)

	assert.True(t, status.Connected)
	assert.Equal(t, int64(59144), status.ChainID)
	assert.Equal(t, float64(123456), status.Extra["blockHeight"])
}

func TestDocumentsExtractUnreadableFile(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	_, err := client.Documents.Extract(context.Background(), "/no/such/file.pdf", "COMMERCIAL_INVOICE")
	require.Error(t, err)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "InputError", ErrorKind(err))
	assert.Zero(t, hits)
}

func TestDocumentsExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/documents/extract", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "COMMERCIAL_INVOICE", r.FormValue("documentType"))

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "invoice.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"documentType":"COMMERCIAL_INVOICE","fields":{"contractNo":"TC-2026-001"},"confidence":0.97,"source":"gemini"}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0o600))

	client := NewClient(srv.URL, "test-token")
	result, err := client.Documents.Extract(context.Background(), path, "COMMERCIAL_INVOICE")
	require.NoError(t, err)

	assert.Equal(t, "COMMERCIAL_INVOICE", result.DocumentType)
	assert.Equal(t, 0.97, result.Confidence)
	assert.Equal(t, "TC-2026-001", result.Fields["contractNo"])
}

func TestConnectionRefusedIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse everything

	client := NewClient(srv.URL, "test-token")
	_, err := client.Blockchain.Status(context.Background())
	require.Error(t, err)
	assert.Equal(t, "ApiError", ErrorKind(err))
}
