// Package havona is the SDK for the Havona trade finance platform API.
// It covers credential resolution, the Auth0 token exchange, and an
// authenticated client with resource-scoped operations over the platform's
// GraphQL and REST surfaces.
package havona

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Client is an authenticated Havona API client. It holds the platform base
// URL and a bearer token; both are immutable after construction, so a single
// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	Trades     *TradesService
	Blockchain *BlockchainService
	Agents     *AgentsService
	Documents  *DocumentsService
}

// NewClient returns a client for the given base URL authenticated with the
// given access token. Every outbound call is bounded by a 30 second timeout.
func NewClient(baseURL, accessToken string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = 30 * time.Second

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
	c.Trades = &TradesService{client: c}
	c.Blockchain = &BlockchainService{client: c}
	c.Agents = &AgentsService{client: c}
	c.Documents = &DocumentsService{client: c}
	return c
}

// BaseURL returns the platform base URL the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// graphqlRequest is the wire shape of a GraphQL POST body.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlResponse is the wire shape of a GraphQL response.
type graphqlResponse struct {
	Data   map[string]any `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// GraphQL executes a raw GraphQL query with optional variables and returns
// the response data unmodified. A non-empty errors array in the response is
// surfaced as an *APIError even when data is partially present.
func (c *Client) GraphQL(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, &APIError{Message: "encoding graphql request failed", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(payload))
	if err != nil {
		return nil, &APIError{Message: "building graphql request failed", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: "graphql request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: "reading graphql response failed", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var gr graphqlResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, &APIError{Message: "decoding graphql response failed", Err: err}
	}

	if len(gr.Errors) > 0 {
		messages := make([]string, len(gr.Errors))
		for i, e := range gr.Errors {
			messages[i] = e.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.Join(messages, "; ")}
	}

	return gr.Data, nil
}

// restError is the platform's REST error body.
type restError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// rest issues a single REST request against the platform and decodes the JSON
// response into out. It makes exactly one attempt; failures of any kind come
// back as *APIError.
func (c *Client) rest(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &APIError{Message: "building request failed", Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("%s %s failed", method, path), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: "reading response failed", Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := strings.TrimSpace(string(respBody))
		var re restError
		if json.Unmarshal(respBody, &re) == nil {
			if re.Error != "" {
				message = re.Error
			} else if re.Message != "" {
				message = re.Message
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &APIError{Message: "decoding response failed", Err: err}
	}
	return nil
}

// decodeInto remarshals a loosely typed GraphQL data node into a concrete
// record type.
func decodeInto(node any, out any) error {
	raw, err := json.Marshal(node)
	if err != nil {
		return &APIError{Message: "re-encoding graphql node failed", Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Message: "decoding graphql node failed", Err: err}
	}
	return nil
}
