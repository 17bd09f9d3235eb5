package catalog

import "fmt"

// Config holds configuration for the storefront admin API.
type Config struct {
	// ShopName is the storefront subdomain ({shop}.myshopify.com).
	ShopName string `mapstructure:"shop_name" default:""`
	// APIKey is the admin API key used for Basic auth.
	APIKey string `mapstructure:"api_key" default:""`
	// Password is the admin API password paired with APIKey.
	Password string `mapstructure:"password" default:""`
	// APIVersion selects the admin API version segment of the URL.
	APIVersion string `mapstructure:"api_version" default:"2023-10"`
	// Endpoint overrides the derived admin URL when set.
	// Used for development stores and tests.
	Endpoint string `mapstructure:"endpoint" default:""`
	// LocationID is the inventory location all adjustments are applied to.
	LocationID string `mapstructure:"location_id" default:""`
	// Vendor is the vendor tag that selects which products to reconcile.
	Vendor string `mapstructure:"vendor" default:"TR-AU"`
	// PageSize is the number of products requested per page.
	PageSize int `mapstructure:"page_size" default:"100"`
	// TargetCapacity is the cost budget the throttle wait aims to restore.
	TargetCapacity int `mapstructure:"target_capacity" default:"101"`
	// RestoreRate is the cost restored per second, used as a fallback when
	// a throttled response does not report its own restore rate.
	RestoreRate int `mapstructure:"restore_rate" default:"100"`
	// MaxThrottleRetries caps throttle retries within one page fetch.
	// Zero means no limit, matching the upstream behavior this replaces.
	MaxThrottleRetries int `mapstructure:"max_throttle_retries" default:"0"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CooldownSeconds is the self-imposed pause after a non-empty bulk
	// adjustment before the next page request, independent of the
	// throttle-driven backoff.
	CooldownSeconds int `mapstructure:"cooldown_seconds" default:"1"`
}

// URL returns the GraphQL endpoint for this configuration.
func (c Config) URL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fmt.Sprintf("https://%s.myshopify.com/admin/api/%s/graphql.json", c.ShopName, c.APIVersion)
}

// QueryString returns the server-side product selector: vendor, lifecycle
// status, and channel publication all have to match.
func (c Config) QueryString() string {
	return fmt.Sprintf("vendor:%s status:active published_status:published", c.Vendor)
}
