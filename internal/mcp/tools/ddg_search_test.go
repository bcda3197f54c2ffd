package tools

import (
	"context"
	"testing"
)

type fakeDDG struct {
	query string
	out   string
	err   error
}

func (f *fakeDDG) Search(ctx context.Context, query string) (string, error) {
	f.query = query
	return f.out, f.err
}

func TestDDGSearchHandlerRequiresQuery(t *testing.T) {
	h := &DDGSearchHandler{Service: &fakeDDG{}}
	result, err := h.ToolAdapter(context.Background(), callReq(map[string]any{"query": "  "}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatalf("expected error result for blank query")
	}
}

func TestDDGSearchHandlerPassesQuery(t *testing.T) {
	fake := &fakeDDG{out: "Pont des Arts is 155 meters long."}
	h := &DDGSearchHandler{Service: fake}

	result, err := h.ToolAdapter(context.Background(), callReq(map[string]any{"query": "pont des arts length"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.query != "pont des arts length" {
		t.Fatalf("service received %q", fake.query)
	}
	if got := resultText(t, result); got != fake.out {
		t.Fatalf("unexpected result text %q", got)
	}
}
