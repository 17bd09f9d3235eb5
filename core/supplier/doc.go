// Package supplier reads the authoritative stock feed.
//
// The feed is a single authenticated JSON document listing (sku, quantity)
// tuples; there is no pagination and the whole feed fits in memory. The
// client fails closed: any read problem yields an empty list, which in turn
// makes the run a no-op, because correcting a live catalog from a partial
// or garbled feed is worse than doing nothing.
package supplier
