package reconcile

import "strings"

// Config holds configuration for the reconciliation decision logic.
type Config struct {
	// ExemptSKUs is a comma-separated list of catalog SKUs that are known
	// to have no supplier record and should be neither corrected nor
	// reported. The defaults are placeholder products used for image
	// bookkeeping.
	ExemptSKUs string `mapstructure:"exempt_skus" default:"this product keeps track of images 1,this product keeps track of images 2"`
}

// ExemptSet parses ExemptSKUs into a lookup set.
func (c Config) ExemptSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, sku := range strings.Split(c.ExemptSKUs, ",") {
		sku = strings.TrimSpace(sku)
		if sku != "" {
			set[sku] = struct{}{}
		}
	}
	return set
}
