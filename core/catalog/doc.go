// Package catalog talks to the storefront's admin GraphQL API.
//
// It has three pieces:
//
//   - Client: the authenticated transport that posts GraphQL documents and
//     decodes the common envelope, including the cost accounting attached
//     to throttled responses.
//   - Pager: the cursor walk over the product catalog. Products are
//     filtered by vendor, lifecycle status, and channel publication both
//     server-side (query string) and client-side (re-check on the returned
//     page), because the upstream's "published" semantics can lag the UI.
//     Throttled pages are retried with the same cursor after a wait
//     computed from the upstream's reported cost budget; everything else
//     that goes wrong truncates the walk instead of failing the run.
//   - Adjuster: one bulk inventoryAdjustQuantities mutation per page.
//     Per-item rejections and request failures are absorbed; with a
//     stateless run the next pass naturally re-corrects them.
package catalog
