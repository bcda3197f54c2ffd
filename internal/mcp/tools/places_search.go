package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vdjukic/searchhub/internal/google"
)

type PlacesSearchService interface {
	Search(ctx context.Context, query, location string, radius int) (google.PlacesResult, error)
}

type PlacesSearchHandler struct {
	Service PlacesSearchService
}

func (h *PlacesSearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	location, _ := args["location"].(string)
	radius := 0
	if raw, ok := args["radius"].(float64); ok {
		radius = int(raw)
	}

	result, err := h.Service.Search(ctx, query, location, radius)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
