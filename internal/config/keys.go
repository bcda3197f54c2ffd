package config

const (
	KeyGoogleAPIKey  = "google_api_key"
	KeyGoogleCSEID   = "google_cse_id"
	KeyPlacesMode    = "places_search_mode"
	KeyHTTPTimeout   = "http_timeout_seconds"
	KeyDDGMaxResults = "ddg_max_results"
	KeyLogLevel      = "log_level"
)
