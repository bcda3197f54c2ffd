package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

type WebSearchService interface {
	Search(ctx context.Context, query string, filterYear int) (string, error)
}

type WebSearchHandler struct {
	Service WebSearchService
}

func (h *WebSearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	filterYear := 0
	if raw, ok := args["filter_year"].(float64); ok {
		filterYear = int(raw)
	}
	if filterYear != 0 && (filterYear < 1000 || filterYear > 9999) {
		return mcp.NewToolResultError("filter_year must be a 4-digit year"), nil
	}

	result, err := h.Service.Search(ctx, query, filterYear)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(result), nil
}
