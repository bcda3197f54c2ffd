package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/vdjukic/searchhub/internal/config"
	"github.com/vdjukic/searchhub/internal/ddg"
	"github.com/vdjukic/searchhub/internal/google"
	"github.com/vdjukic/searchhub/internal/logging"
	"github.com/vdjukic/searchhub/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.DefaultLogger(config.LogLevel())

	// Credentials are read here, once, and handed to the clients; nothing
	// below this point consults the environment.
	creds := google.Credentials{
		APIKey:   config.GoogleAPIKey(),
		EngineID: config.GoogleCSEID(),
	}
	timeout := config.HTTPTimeout()

	webSearch := google.NewWebSearch(google.WebSearchConfig{
		Credentials: creds,
		Timeout:     timeout,
		Logger:      logging.New(baseLogger.WithName("websearch")),
	})
	places := google.NewPlaces(google.PlacesConfig{
		Credentials: creds,
		Mode:        google.SearchMode(config.PlacesMode()),
		Timeout:     timeout,
		Logger:      logging.New(baseLogger.WithName("places")),
	})
	hours := google.NewHoursLookup(google.HoursConfig{
		Credentials: creds,
		Timeout:     timeout,
		Logger:      logging.New(baseLogger.WithName("hours")),
	})
	ddgClient, err := ddg.New(config.DDGMaxResults(), logging.New(baseLogger.WithName("ddg")))
	if err != nil {
		log.Fatalf("failed to init duckduckgo client: %v", err)
	}

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"web_search":    &tools.WebSearchHandler{Service: webSearch},
			"places_search": &tools.PlacesSearchHandler{Service: places},
			"place_hours":   &tools.PlaceHoursHandler{Service: hours},
			"ddg_search":    &tools.DDGSearchHandler{Service: ddgClient},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
