// Package sync orchestrates a full reconciliation run.
//
// The control flow is strictly sequential: the supplier feed is fetched
// once, then catalog pages are streamed one at a time; each page is
// diffed against the in-memory supplier index and any resulting deltas
// are bulk-applied before the next page is requested. After the last
// page the accumulated unmatched-SKU list goes to the notifier.
//
// The service talks to its collaborators through small consumer-side
// interfaces so runs can be exercised without a storefront. Runner wraps
// the service with a single-flight guard for scheduled and HTTP-triggered
// operation.
package sync
