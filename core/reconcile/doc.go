// Package reconcile decides which catalog items need correcting.
//
// The engine matches each storefront variant against the supplier index by
// exact SKU and applies an asymmetric threshold policy: supplier
// quantities of 0 or 1 are enforced exactly, restocks onto a near-zero
// catalog value are pushed immediately, and any other drift between two
// healthy quantities is tolerated. Supplier quantities are floored to an
// integer before comparison.
//
// The engine is pure: it performs no I/O and holds no state between
// pages. Catalog SKUs missing from the feed come back as unmatched unless
// they are on the configured exempt list.
package reconcile
