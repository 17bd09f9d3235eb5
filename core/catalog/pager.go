package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"stock-reconciler/core/events"
)

// productsQuery pages through the catalog, one primary variant per product.
const productsQuery = `
query ($first: Int!, $cursor: String, $queryString: String!) {
  products(first: $first, after: $cursor, query: $queryString) {
    edges {
      cursor
      node {
        id
        vendor
        status
        publishedOnCurrentPublication
        variants(first: 1) {
          edges {
            node {
              id
              sku
              inventoryQuantity
              inventoryItem {
                id
              }
            }
          }
        }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// productsPayload is the data section of a products page response.
// Products is a pointer so a structurally empty response is
// distinguishable from an empty last page.
type productsPayload struct {
	Products *struct {
		Edges []struct {
			Cursor string `json:"cursor"`
			Node   struct {
				ID                            string `json:"id"`
				Vendor                        string `json:"vendor"`
				Status                        string `json:"status"`
				PublishedOnCurrentPublication bool   `json:"publishedOnCurrentPublication"`
				Variants                      struct {
					Edges []struct {
						Node struct {
							ID                string `json:"id"`
							SKU               string `json:"sku"`
							InventoryQuantity int    `json:"inventoryQuantity"`
							InventoryItem     struct {
								ID string `json:"id"`
							} `json:"inventoryItem"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"variants"`
			} `json:"node"`
		} `json:"edges"`
		PageInfo struct {
			HasNextPage bool   `json:"hasNextPage"`
			EndCursor   string `json:"endCursor"`
		} `json:"pageInfo"`
	} `json:"products"`
}

// Sleeper waits for d or until ctx is done. Injectable so throttle waits
// can be tested without real delays.
type Sleeper func(ctx context.Context, d time.Duration) error

// DefaultSleeper waits on a timer, honoring context cancellation.
func DefaultSleeper(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Pager drives the cursor walk over the storefront catalog.
type Pager struct {
	client *Client
	cfg    Config
	events events.Sink

	// Sleep performs the throttle backoff wait. Replaceable in tests.
	Sleep Sleeper
}

// NewPager creates a pager over the given client.
func NewPager(client *Client, cfg Config, sink events.Sink) *Pager {
	return &Pager{
		client: client,
		cfg:    cfg,
		events: sink,
		Sleep:  DefaultSleeper,
	}
}

// NextPage fetches the page after cursor. An empty cursor starts the walk.
//
// Throttled responses are retried with the same cursor after a wait
// computed from the upstream's own cost accounting; no side effects occur
// until a page is returned, so the retry is idempotent. Any non-throttle
// failure degrades the walk: the page comes back terminal-empty
// (no items, HasMore false) and the cause is routed through the event
// sink. The only error NextPage itself returns is context cancellation.
func (p *Pager) NextPage(ctx context.Context, cursor string) (Page, error) {
	variables := map[string]any{
		"first":       p.pageSize(),
		"queryString": p.cfg.QueryString(),
	}
	if cursor != "" {
		variables["cursor"] = cursor
	}

	retries := 0
	for {
		resp, err := p.client.execute(ctx, productsQuery, variables)
		if err != nil {
			if ctx.Err() != nil {
				return Page{}, ctx.Err()
			}
			return p.degrade(cursor, err), nil
		}

		if resp.throttled() {
			retries++
			if p.cfg.MaxThrottleRetries > 0 && retries > p.cfg.MaxThrottleRetries {
				events.Emit(p.events, events.Event{
					Kind:   events.KindThrottleCeiling,
					Fields: map[string]any{"cursor": cursor, "retries": retries - 1},
				})
				return Page{}, nil
			}

			wait := p.throttleWait(resp.Extensions.Cost.ThrottleStatus)
			events.Emit(p.events, events.Event{
				Kind:   events.KindThrottled,
				Fields: map[string]any{"cursor": cursor, "wait": wait.String()},
			})
			if err := p.Sleep(ctx, wait); err != nil {
				return Page{}, err
			}
			continue
		}

		if len(resp.Errors) > 0 {
			return p.degrade(cursor, fmt.Errorf("graphql errors: %v", resp.errorMessages())), nil
		}

		var payload productsPayload
		if len(resp.Data) > 0 {
			if err := json.Unmarshal(resp.Data, &payload); err != nil {
				return p.degrade(cursor, err), nil
			}
		}
		if payload.Products == nil {
			return p.degrade(cursor, fmt.Errorf("response has no products section")), nil
		}

		return p.buildPage(payload), nil
	}
}

func (p *Pager) pageSize() int {
	if p.cfg.PageSize <= 0 {
		return 100
	}
	return p.cfg.PageSize
}

// throttleWait computes how long to wait before retrying a throttled page.
// The reported available budget and restore rate are used when present;
// the configured target capacity and fallback restore rate fill the gaps.
func (p *Pager) throttleWait(status throttleStatus) time.Duration {
	restore := status.RestoreRate
	if restore <= 0 {
		restore = float64(p.cfg.RestoreRate)
	}
	if restore <= 0 {
		restore = 100
	}

	shortfall := float64(p.cfg.TargetCapacity) - status.CurrentlyAvailable
	seconds := math.Ceil(shortfall / restore)
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

// buildPage applies the client-side eligibility re-check and flattens the
// page. The upstream query already filters, but its notion of "published"
// can lag the UI, so an item must pass both checks to be reconciled.
func (p *Pager) buildPage(payload productsPayload) Page {
	items := make([]Variant, 0, len(payload.Products.Edges))
	for _, edge := range payload.Products.Edges {
		node := edge.Node
		if node.Status != ProductStatusActive || !node.PublishedOnCurrentPublication {
			continue
		}
		if node.Vendor != p.cfg.Vendor {
			continue
		}
		for _, v := range node.Variants.Edges {
			items = append(items, Variant{
				ProductID:       node.ID,
				VariantID:       v.Node.ID,
				SKU:             v.Node.SKU,
				Quantity:        v.Node.InventoryQuantity,
				InventoryItemID: v.Node.InventoryItem.ID,
				Status:          node.Status,
				Published:       node.PublishedOnCurrentPublication,
			})
		}
	}

	return Page{
		Items:   items,
		Cursor:  payload.Products.PageInfo.EndCursor,
		HasMore: payload.Products.PageInfo.HasNextPage,
	}
}

// degrade truncates the walk at the current page. An imperfect but
// bounded outcome: the run keeps whatever was already processed and the
// next scheduled run starts over from the beginning.
func (p *Pager) degrade(cursor string, err error) Page {
	events.Emit(p.events, events.Event{
		Kind:   events.KindPageDegraded,
		Err:    err,
		Fields: map[string]any{"cursor": cursor},
	})
	return Page{}
}
