// Package ddg exposes DuckDuckGo search through the langchaingo tool. Unlike
// the Google clients it needs no credentials.
package ddg

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/tools/duckduckgo"

	"github.com/vdjukic/searchhub/internal/logging"
)

const userAgent = "searchhub/1.0"

type Client struct {
	tool *duckduckgo.Tool
	log  logging.Logger
}

func New(maxResults int, log logging.Logger) (*Client, error) {
	if maxResults <= 0 {
		maxResults = 5
	}
	tool, err := duckduckgo.New(maxResults, userAgent)
	if err != nil {
		return nil, fmt.Errorf("create duckduckgo tool: %w", err)
	}
	return &Client{tool: tool, log: log}, nil
}

// Search runs one DuckDuckGo query and returns the tool's formatted output.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query is required")
	}
	c.log.Debug("duckduckgo search", "query", query)
	result, err := c.tool.Call(ctx, query)
	if err != nil {
		return "", fmt.Errorf("duckduckgo search: %w", err)
	}
	return result, nil
}
