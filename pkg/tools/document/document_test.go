package document

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/havona"
)

func newMockRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: struct {
			Name      string                 `json:"name"`
			Arguments map[string]interface{} `json:"arguments,omitempty"`
			Meta      *struct {
				ProgressToken mcp.ProgressToken `json:"progressToken,omitempty"`
			} `json:"_meta,omitempty"`
		}{
			Name:      "test",
			Arguments: args,
		},
	}
}

func resultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	if tc, ok := result.Content[0].(mcp.TextContent); ok {
		return tc.Text
	}
	return ""
}

func testLifecycle(baseURL string) *havona.Lifecycle {
	return havona.NewLifecycle(func() (*havona.Client, error) {
		return havona.NewClient(baseURL, "test-token"), nil
	})
}

func TestListTypesTool(t *testing.T) {
	Convey("Given a ListTypesTool", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":"COMMERCIAL_INVOICE","name":"Commercial Invoice","description":"Invoice issued by the seller."}]`))
		}))
		defer srv.Close()

		tool := NewListTypesTool(testLifecycle(srv.URL))

		Convey("It should implement the core.Tool interface", func() {
			So(tool, ShouldImplement, (*core.Tool)(nil))
			So(tool.Handle().Name, ShouldEqual, "list_supported_document_types")
		})

		Convey("Handler should return the supported types", func() {
			result, err := tool.Handler(context.Background(), newMockRequest(map[string]interface{}{}))
			So(err, ShouldBeNil)

			var types []map[string]any
			So(json.Unmarshal([]byte(resultText(result)), &types), ShouldBeNil)
			So(len(types), ShouldEqual, 1)
			So(types[0]["id"], ShouldEqual, "COMMERCIAL_INVOICE")
		})
	})
}

func TestExtractTool(t *testing.T) {
	Convey("Given an ExtractTool", t, func() {
		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
		}))
		defer srv.Close()

		tool := NewExtractTool(testLifecycle(srv.URL))

		Convey("It should have the correct name", func() {
			So(tool.Handle().Name, ShouldEqual, "extract_trade_document")
		})

		Convey("Handler should envelope an unreadable file as an input error", func() {
			result, err := tool.Handler(context.Background(), newMockRequest(map[string]interface{}{
				"file_path":     "/no/such/invoice.pdf",
				"document_type": "COMMERCIAL_INVOICE",
			}))
			So(err, ShouldBeNil)
			So(hits, ShouldEqual, 0)

			var envelope map[string]string
			So(json.Unmarshal([]byte(resultText(result)), &envelope), ShouldBeNil)
			So(envelope["type"], ShouldEqual, "InputError")
			So(envelope["error"], ShouldContainSubstring, "cannot read document file")
		})

		Convey("Handler should require document_type", func() {
			result, err := tool.Handler(context.Background(), newMockRequest(map[string]interface{}{
				"file_path": "/tmp/invoice.pdf",
			}))
			So(err, ShouldBeNil)

			var envelope map[string]string
			So(json.Unmarshal([]byte(resultText(result)), &envelope), ShouldBeNil)
			So(envelope["type"], ShouldEqual, "InputError")
		})
	})
}
