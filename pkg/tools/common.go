// Package tools provides the shared dispatch helpers for the Havona MCP
// tools: argument extraction and the uniform success/error envelopes.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/havona-labs/havona-mcp/pkg/havona"
)

// GetStringArg extracts a string argument from a tool request.
func GetStringArg(req mcp.CallToolRequest, key string) (string, error) {
	val, ok := req.Params.Arguments[key]
	if !ok {
		return "", fmt.Errorf("missing argument: %s", key)
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("argument %s is not a string", key)
	}

	return str, nil
}

// GetIntArg extracts an integer argument. JSON numbers arrive as float64.
func GetIntArg(req mcp.CallToolRequest, key string) (int, error) {
	val, ok := req.Params.Arguments[key]
	if !ok {
		return 0, fmt.Errorf("missing argument: %s", key)
	}

	f, ok := val.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %s is not a number", key)
	}

	return int(f), nil
}

// ErrorResult serializes any failure into the envelope every tool returns on
// error: {"error": <message>, "type": <kind>}. It is a tool result, never a
// protocol fault, so the host always receives a structured response.
func ErrorResult(err error) *mcp.CallToolResult {
	log.Error("tool call failed", "error", err)

	payload, merr := json.Marshal(map[string]string{
		"error": err.Error(),
		"type":  havona.ErrorKind(err),
	})
	if merr != nil {
		return mcp.NewToolResultText(`{"error":"internal error encoding error envelope","type":"Error"}`)
	}
	return mcp.NewToolResultText(string(payload))
}

// JSONResult serializes a success payload as the tool result.
func JSONResult(v any) *mcp.CallToolResult {
	payload, err := json.Marshal(v)
	if err != nil {
		return ErrorResult(fmt.Errorf("encoding result failed: %w", err))
	}
	return mcp.NewToolResultText(string(payload))
}
