package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatalf("expected content in result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

type fakeWebSearch struct {
	query      string
	filterYear int
	out        string
	err        error
}

func (f *fakeWebSearch) Search(ctx context.Context, query string, filterYear int) (string, error) {
	f.query = query
	f.filterYear = filterYear
	return f.out, f.err
}

func TestWebSearchHandlerRequiresQuery(t *testing.T) {
	h := &WebSearchHandler{Service: &fakeWebSearch{}}
	result, err := h.ToolAdapter(context.Background(), callReq(map[string]any{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatalf("expected error result for missing query")
	}
}

func TestWebSearchHandlerRejectsBadYear(t *testing.T) {
	h := &WebSearchHandler{Service: &fakeWebSearch{}}
	result, err := h.ToolAdapter(context.Background(), callReq(map[string]any{
		"query":       "belgrade",
		"filter_year": float64(20),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatalf("expected error result for 2-digit year")
	}
}

func TestWebSearchHandlerPassesArguments(t *testing.T) {
	fake := &fakeWebSearch{out: "## Search Results\n1. https://example.com"}
	h := &WebSearchHandler{Service: fake}

	result, err := h.ToolAdapter(context.Background(), callReq(map[string]any{
		"query":       "belgrade restaurants",
		"filter_year": float64(2020),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.query != "belgrade restaurants" || fake.filterYear != 2020 {
		t.Fatalf("service received %q/%d", fake.query, fake.filterYear)
	}
	if got := resultText(t, result); got != fake.out {
		t.Fatalf("unexpected result text %q", got)
	}
}

func TestWebSearchHandlerPropagatesError(t *testing.T) {
	wantErr := errors.New("provider down")
	h := &WebSearchHandler{Service: &fakeWebSearch{err: wantErr}}

	_, err := h.ToolAdapter(context.Background(), callReq(map[string]any{"query": "belgrade"}))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected propagated error, got %v", err)
	}
}
