// Command havona-mcp exposes the Havona trade finance platform as MCP tools
// so any MCP-compatible AI assistant (Claude Desktop, Cursor, etc.) can query
// and manage trade contracts, check blockchain status, and extract trade
// documents.
package main

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/havona-labs/havona-mcp/core"
	"github.com/havona-labs/havona-mcp/pkg/config"
	"github.com/havona-labs/havona-mcp/pkg/havona"
	"github.com/havona-labs/havona-mcp/pkg/tools/agent"
	"github.com/havona-labs/havona-mcp/pkg/tools/blockchain"
	"github.com/havona-labs/havona-mcp/pkg/tools/document"
	"github.com/havona-labs/havona-mcp/pkg/tools/query"
	"github.com/havona-labs/havona-mcp/pkg/tools/trade"
)

// MultiTool manages all available tools
type MultiTool struct {
	server *server.MCPServer
	tools  map[string]core.Tool
}

func (mt *MultiTool) addTool(tool core.Tool) {
	handle := tool.Handle()
	mt.tools[handle.Name] = tool
	mt.server.AddTool(handle, tool.Handler)
}

func main() {
	sse := flag.Bool("sse", false, "serve over SSE instead of stdio")
	addr := flag.String("addr", ":8080", "listen address for the SSE transport")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		// Reported per tool call as well; the server still starts so the
		// host gets structured errors instead of a dead process.
		log.Warn("configuration incomplete", "error", err)
	}

	lifecycle := havona.NewDefaultLifecycle(cfg)

	mcpServer := server.NewMCPServer(
		"havona",
		"1.0.0",
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
	)

	multiTool := MultiTool{
		server: mcpServer,
		tools:  make(map[string]core.Tool),
	}

	multiTool.addTool(trade.NewListTradesTool(lifecycle))
	multiTool.addTool(trade.NewGetTradeTool(lifecycle))
	multiTool.addTool(trade.NewCreateTradeTool(lifecycle))
	multiTool.addTool(trade.NewUpdateTradeStatusTool(lifecycle))
	multiTool.addTool(blockchain.NewStatusTool(lifecycle))
	multiTool.addTool(blockchain.NewRecordTool(lifecycle))
	multiTool.addTool(agent.NewListAgentsTool(lifecycle))
	multiTool.addTool(agent.NewReputationTool(lifecycle))
	multiTool.addTool(document.NewListTypesTool(lifecycle))
	multiTool.addTool(document.NewExtractTool(lifecycle))
	multiTool.addTool(query.NewGraphQLTool(lifecycle))

	if *sse {
		log.Info("starting Havona MCP server", "transport", "sse", "addr", *addr, "tools", len(multiTool.tools))
		sseServer := server.NewSSEServer(mcpServer, fmt.Sprintf("http://localhost%s", *addr))
		if err := sseServer.Start(*addr); err != nil {
			log.Fatal("server error", "error", err)
		}
		return
	}

	log.Info("starting Havona MCP server", "transport", "stdio", "tools", len(multiTool.tools))
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatal("server error", "error", err)
	}
}
