package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

type DDGSearchService interface {
	Search(ctx context.Context, query string) (string, error)
}

type DDGSearchHandler struct {
	Service DDGSearchService
}

func (h *DDGSearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, _ := req.GetArguments()["query"].(string)
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	result, err := h.Service.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(result), nil
}
