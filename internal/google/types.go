package google

// Credentials carry the API key shared by all Google clients plus the
// custom-search engine ID required only by web search. Read once from
// configuration at client construction, never mutated afterwards.
type Credentials struct {
	APIKey   string
	EngineID string
}

// RatingSummary is attached to a Place only when the provider returned a
// rating for it.
type RatingSummary struct {
	Value   float64 `json:"value"`
	Reviews int64   `json:"reviews"`
}

// Place is a single entry of a places search.
type Place struct {
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Rating  *RatingSummary `json:"rating,omitempty"`
	PlaceID string         `json:"place_id"`
}

// PlacesResult is the tagged outcome of a places search: Message is set when
// no places matched, Places otherwise. Never both.
type PlacesResult struct {
	Message string  `json:"message,omitempty"`
	Places  []Place `json:"places,omitempty"`
}

// Hours holds a place's first opening period as 4-digit 24-hour clock
// strings, e.g. "0900".
type Hours struct {
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}
