package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"searchhub",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool descriptors. The declared parameters of each tool must match
	// exactly what its handler reads from the request arguments.
	toolDefinitions := map[string]mcp.Tool{
		"web_search": mcp.NewTool("web_search",
			mcp.WithDescription("Performs a Google web search for your query then returns a string of the top search results."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("The search query to perform."),
			),
			mcp.WithNumber("filter_year",
				mcp.Description("Optionally restrict results to a certain year"),
			),
		),
		"places_search": mcp.NewTool("places_search",
			mcp.WithDescription("Searches for places using Google Places API and returns information about matching locations."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("The place or business to search for."),
			),
			mcp.WithString("location",
				mcp.Description("Optional latitude,longitude coordinates (e.g. '44.8176,20.4633'). If not provided, defaults to Belgrade, Serbia."),
			),
			mcp.WithNumber("radius",
				mcp.Description("Search radius in meters. Default is 5000 meters."),
			),
		),
		"place_hours": mcp.NewTool("place_hours",
			mcp.WithDescription("Fetches working hours for a place and returns its opening and closing time as 24-hour clock strings (e.g. '0900')."),
			mcp.WithString("place_id",
				mcp.Required(),
				mcp.Description("The Google Place ID for the location you want information about"),
			),
		),
		"ddg_search": mcp.NewTool("ddg_search",
			mcp.WithDescription("Performs a DuckDuckGo web search. Needs no API key; use when Google search is not configured."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("The search query to perform."),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}
