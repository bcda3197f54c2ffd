package ddg

import (
	"context"
	"testing"

	"github.com/go-logr/logr"

	"github.com/vdjukic/searchhub/internal/logging"
)

func TestNewAppliesDefaultMaxResults(t *testing.T) {
	c, err := New(0, logging.New(logr.Discard()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c == nil {
		t.Fatalf("expected client")
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	c, err := New(5, logging.New(logr.Discard()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Search(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for blank query")
	}
}
