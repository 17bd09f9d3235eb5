package supplier

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stock-reconciler/core/events"
)

// Record is one authoritative stock entry from the supplier feed.
type Record struct {
	// SKU is the join key against the storefront catalog.
	SKU string
	// Quantity is the "should be" stock level. The feed reports it as a
	// JSON number; it is floored to an integer only at decision time.
	Quantity float64
}

// UnmarshalJSON decodes the feed's tuple form: ["SKU-123", 4].
func (r *Record) UnmarshalJSON(data []byte) error {
	var tuple []any
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) < 2 {
		return fmt.Errorf("inventory entry has %d fields, want 2", len(tuple))
	}
	sku, ok := tuple[0].(string)
	if !ok {
		return fmt.Errorf("inventory entry sku is %T, want string", tuple[0])
	}
	qty, ok := tuple[1].(float64)
	if !ok {
		return fmt.Errorf("inventory entry quantity is %T, want number", tuple[1])
	}
	r.SKU = sku
	r.Quantity = qty
	return nil
}

// feedResponse is the wire shape of the supplier feed.
type feedResponse struct {
	Inventory []Record `json:"inventory"`
}

// Client reads the supplier inventory feed.
type Client struct {
	cfg    Config
	http   *http.Client
	events events.Sink
}

// NewClient creates a supplier feed client.
func NewClient(cfg Config, sink events.Sink) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		events: sink,
	}
}

// Fetch reads the full supplier inventory in one authenticated call.
//
// Any transport, status, or decode failure returns an empty list rather
// than an error. The empty list makes the engine skip the whole run: a bad
// read must never zero out a live catalog.
func (c *Client) Fetch(ctx context.Context) []Record {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return c.failClosed(err)
	}
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.cfg.APIKey)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.failClosed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.failClosed(fmt.Errorf("supplier feed returned status %d", resp.StatusCode))
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return c.failClosed(err)
	}

	return feed.Inventory
}

func (c *Client) failClosed(err error) []Record {
	events.Emit(c.events, events.Event{
		Kind: events.KindSupplierUnavailable,
		Err:  err,
	})
	return nil
}

// Index builds the SKU lookup used by the reconciliation engine.
// SKU uniqueness within the feed is assumed, not enforced; on duplicates
// the last record wins.
func Index(records []Record) map[string]Record {
	index := make(map[string]Record, len(records))
	for _, r := range records {
		index[r.SKU] = r
	}
	return index
}
