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

const placesBaseURL = "https://maps.googleapis.com/maps/api/place"

const (
	// Belgrade, Serbia: the documented fallback when no coordinates are
	// supplied or the supplied ones cannot be parsed.
	DefaultLat = 44.8176
	DefaultLng = 20.4633

	// DefaultRadius is applied when the caller passes no radius, in meters.
	DefaultRadius = 5000
)

// SearchMode selects which Places API surface a search uses.
type SearchMode string

const (
	// ModeTextSearch issues a free-text query around a location. Primary mode.
	ModeTextSearch SearchMode = "textsearch"
	// ModeFindPlace resolves a text candidate with a circular location bias.
	ModeFindPlace SearchMode = "findplacefromtext"
)

const findPlaceFields = "formatted_address,name,place_id,geometry,types,rating,user_ratings_total"

type PlacesConfig struct {
	Credentials Credentials
	Mode        SearchMode // defaults to ModeTextSearch
	BaseURL     string     // defaults to the Places API base
	Timeout     time.Duration
	Logger      logging.Logger
}

// Places wraps the Google Places search API.
type Places struct {
	creds   Credentials
	mode    SearchMode
	baseURL string
	client  *http.Client
	log     logging.Logger
}

func NewPlaces(cfg PlacesConfig) *Places {
	mode := cfg.Mode
	if mode != ModeFindPlace {
		mode = ModeTextSearch
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = placesBaseURL
	}
	return &Places{
		creds:   cfg.Credentials,
		mode:    mode,
		baseURL: base,
		client:  newHTTPClient(cfg.Timeout),
		log:     cfg.Logger,
	}
}

// ParseLocation splits a "lat,lng" string into coordinates. Malformed input
// of any shape falls back to the Belgrade default instead of failing; the
// agent-facing contract treats a bad location as "use the default area".
func ParseLocation(location string) (lat, lng float64) {
	if strings.Contains(location, ",") {
		parts := strings.SplitN(location, ",", 2)
		parsedLat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		parsedLng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLat == nil && errLng == nil {
			return parsedLat, parsedLng
		}
	}
	return DefaultLat, DefaultLng
}

// Search looks up places matching query near the given location. location is
// an optional "lat,lng" string, radius an optional distance in meters; both
// default as documented on ParseLocation and DefaultRadius. Zero matches
// yield a PlacesResult with Message set rather than an error.
func (p *Places) Search(ctx context.Context, query, location string, radius int) (PlacesResult, error) {
	if p.creds.APIKey == "" {
		return PlacesResult{}, &ConfigError{Key: "google_api_key"}
	}

	lat, lng := ParseLocation(location)
	if radius <= 0 {
		radius = DefaultRadius
	}

	params := url.Values{}
	params.Set("key", p.creds.APIKey)
	listPath := "results"
	if p.mode == ModeFindPlace {
		params.Set("input", query)
		params.Set("inputtype", "textquery")
		params.Set("fields", findPlaceFields)
		params.Set("locationbias", fmt.Sprintf("circle:%d@%v,%v", radius, lat, lng))
		listPath = "candidates"
	} else {
		params.Set("query", query)
		params.Set("location", fmt.Sprintf("%v,%v", lat, lng))
		params.Set("radius", strconv.Itoa(radius))
	}

	body, err := getJSON(ctx, p.client, p.baseURL+"/"+string(p.mode)+"/json", params)
	if err != nil {
		return PlacesResult{}, &ProviderError{Provider: "places", Err: err}
	}

	entries := gjson.GetBytes(body, listPath).Array()
	if len(entries) == 0 {
		p.log.Debug("places search returned no entries", "query", query)
		return PlacesResult{
			Message: fmt.Sprintf("No places found for '%s' within %dm of coordinates %v,%v.", query, radius, lat, lng),
		}, nil
	}

	places := make([]Place, 0, len(entries))
	for _, entry := range entries {
		place := Place{
			Name:    stringOr(entry, "name", "Unnamed location"),
			Address: stringOr(entry, "formatted_address", "No address available"),
			PlaceID: stringOr(entry, "place_id", "No ID"),
		}
		if rating := entry.Get("rating"); rating.Exists() {
			place.Rating = &RatingSummary{
				Value:   rating.Float(),
				Reviews: entry.Get("user_ratings_total").Int(),
			}
		}
		places = append(places, place)
	}
	p.log.Debug("places search succeeded", "query", query, "places", len(places))
	return PlacesResult{Places: places}, nil
}

func stringOr(entry gjson.Result, path, fallback string) string {
	if v := entry.Get(path); v.Exists() && v.String() != "" {
		return v.String()
	}
	return fallback
}
