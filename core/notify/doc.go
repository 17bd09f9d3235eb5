// Package notify emails the unmatched-SKU report at the end of a run.
//
// Unmatched SKUs are catalog entries no supplier record exists for; they
// cannot be corrected automatically and need a human to delist or re-map
// them. An empty list sends nothing.
package notify
