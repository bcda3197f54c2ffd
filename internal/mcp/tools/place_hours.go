package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vdjukic/searchhub/internal/google"
)

type HoursService interface {
	OpeningHours(ctx context.Context, placeID string) (google.Hours, error)
}

type PlaceHoursHandler struct {
	Service HoursService
}

func (h *PlaceHoursHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	placeID, _ := req.GetArguments()["place_id"].(string)
	if strings.TrimSpace(placeID) == "" {
		return mcp.NewToolResultError("place_id parameter is required"), nil
	}

	hours, err := h.Service.OpeningHours(ctx, placeID)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(hours))), nil
}
