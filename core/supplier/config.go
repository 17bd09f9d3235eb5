package supplier

// Config holds configuration for the supplier inventory feed.
type Config struct {
	// URL is the full endpoint of the supplier inventory feed.
	URL string `mapstructure:"url" default:""`
	// APIKey is the pre-shared credential; it is base64-encoded into a
	// Basic authorization header as-is (the feed does not use user:pass).
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
