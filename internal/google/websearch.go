package google

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vdjukic/searchhub/internal/logging"
)

const customSearchURL = "https://www.googleapis.com/customsearch/v1"

type WebSearchConfig struct {
	Credentials Credentials
	BaseURL     string // defaults to the Custom Search endpoint
	Timeout     time.Duration
	Logger      logging.Logger
}

// WebSearch wraps the Google Custom Search API.
type WebSearch struct {
	creds   Credentials
	baseURL string
	client  *http.Client
	log     logging.Logger
}

func NewWebSearch(cfg WebSearchConfig) *WebSearch {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = customSearchURL
	}
	return &WebSearch{
		creds:   cfg.Credentials,
		baseURL: base,
		client:  newHTTPClient(cfg.Timeout),
		log:     cfg.Logger,
	}
}

// Search runs one web search and returns a numbered plain-text list of result
// links. A filterYear of 0 leaves results unrestricted; any other value
// restricts them to that year, newest first. Zero hits produce a descriptive
// message, not an error.
func (w *WebSearch) Search(ctx context.Context, query string, filterYear int) (string, error) {
	if w.creds.APIKey == "" {
		return "", &ConfigError{Key: "google_api_key"}
	}
	if w.creds.EngineID == "" {
		return "", &ConfigError{Key: "google_cse_id"}
	}

	params := url.Values{}
	params.Set("key", w.creds.APIKey)
	params.Set("cx", w.creds.EngineID)
	params.Set("q", query)
	if filterYear != 0 {
		params.Set("sort", "date")
		params.Set("dateRestrict", "y"+strconv.Itoa(filterYear))
	}

	body, err := getJSON(ctx, w.client, w.baseURL, params)
	if err != nil {
		return "", &ProviderError{Provider: "custom search", Err: err}
	}

	items := gjson.GetBytes(body, "items").Array()
	if len(items) == 0 {
		yearNote := ""
		if filterYear != 0 {
			yearNote = fmt.Sprintf(" with filter year=%d", filterYear)
		}
		w.log.Debug("web search returned no items", "query", query)
		return fmt.Sprintf("No results found for '%s'%s. Try with a more general query, or remove the year filter.", query, yearNote), nil
	}

	lines := make([]string, 0, len(items)+1)
	lines = append(lines, "## Search Results")
	for i, item := range items {
		link := item.Get("link").String()
		if link == "" {
			link = "#"
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, link))
	}
	w.log.Debug("web search succeeded", "query", query, "items", len(items))
	return strings.Join(lines, "\n"), nil
}
