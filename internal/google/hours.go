package google

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vdjukic/searchhub/internal/logging"
)

const detailsFields = "name,url,opening_hours"

type HoursConfig struct {
	Credentials Credentials
	BaseURL     string // defaults to the Places API base
	Timeout     time.Duration
	Logger      logging.Logger
}

// HoursLookup wraps the Place Details API restricted to opening hours.
type HoursLookup struct {
	creds   Credentials
	baseURL string
	client  *http.Client
	log     logging.Logger
}

func NewHoursLookup(cfg HoursConfig) *HoursLookup {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = placesBaseURL
	}
	return &HoursLookup{
		creds:   cfg.Credentials,
		baseURL: base,
		client:  newHTTPClient(cfg.Timeout),
		log:     cfg.Logger,
	}
}

// OpeningHours fetches a place's details and returns its first opening
// period. Places with split or seasonal schedules carry more periods; only
// the first is reported. Places without opening-hours data fail with
// DataShapeError.
func (h *HoursLookup) OpeningHours(ctx context.Context, placeID string) (Hours, error) {
	if h.creds.APIKey == "" {
		return Hours{}, &ConfigError{Key: "google_api_key"}
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)
	params.Set("key", h.creds.APIKey)

	body, err := getJSON(ctx, h.client, h.baseURL+"/details/json", params)
	if err != nil {
		return Hours{}, &ProviderError{Provider: "place details", Err: err}
	}

	periods := gjson.GetBytes(body, "result.opening_hours.periods").Array()
	if len(periods) == 0 {
		h.log.Debug("place has no opening hours", "place_id", placeID)
		return Hours{}, &DataShapeError{Provider: "place details", Field: "opening_hours.periods"}
	}

	first := periods[0]
	return Hours{
		OpenTime:  first.Get("open.time").String(),
		CloseTime: first.Get("close.time").String(),
	}, nil
}
