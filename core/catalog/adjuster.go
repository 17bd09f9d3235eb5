package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"stock-reconciler/core/events"
)

// adjustMutation applies a batch of inventory deltas in one call.
const adjustMutation = `
mutation adjustInventory($input: InventoryAdjustQuantitiesInput!) {
  inventoryAdjustQuantities(input: $input) {
    inventoryAdjustmentGroup {
      id
    }
    userErrors {
      field
      message
    }
  }
}`

// adjustPayload is the data section of an adjustment mutation response.
type adjustPayload struct {
	InventoryAdjustQuantities struct {
		InventoryAdjustmentGroup struct {
			ID string `json:"id"`
		} `json:"inventoryAdjustmentGroup"`
		UserErrors []userError `json:"userErrors"`
	} `json:"inventoryAdjustQuantities"`
}

// userError is a per-item rejection from the mutation.
type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// Adjuster applies corrective deltas to the catalog's inventory store.
type Adjuster struct {
	client *Client
	cfg    Config
	events events.Sink
}

// NewAdjuster creates an adjuster over the given client.
func NewAdjuster(client *Client, cfg Config, sink events.Sink) *Adjuster {
	return &Adjuster{client: client, cfg: cfg, events: sink}
}

// Apply sends all adjustments for a page as one bulk mutation, best
// effort. Request-level failures and per-item rejections are routed
// through the event sink and never abort the caller; the next full run
// re-corrects anything that failed. Returns the number of adjustments
// submitted upstream (zero when the request itself failed).
func (a *Adjuster) Apply(ctx context.Context, adjustments []Adjustment) int {
	if len(adjustments) == 0 {
		return 0
	}

	changes := make([]map[string]any, 0, len(adjustments))
	for _, adj := range adjustments {
		changes = append(changes, map[string]any{
			"delta":           adj.Delta,
			"locationId":      a.cfg.LocationID,
			"inventoryItemId": adj.InventoryItemID,
		})
	}

	variables := map[string]any{
		"input": map[string]any{
			"reason":  "correction",
			"name":    "available",
			"changes": changes,
		},
	}

	resp, err := a.client.execute(ctx, adjustMutation, variables)
	if err != nil {
		return a.failed(len(adjustments), err)
	}
	if len(resp.Errors) > 0 {
		return a.failed(len(adjustments), fmt.Errorf("graphql errors: %v", resp.errorMessages()))
	}

	var payload adjustPayload
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &payload); err != nil {
			return a.failed(len(adjustments), err)
		}
	}

	if userErrors := payload.InventoryAdjustQuantities.UserErrors; len(userErrors) > 0 {
		msgs := make([]string, 0, len(userErrors))
		for _, ue := range userErrors {
			msgs = append(msgs, fmt.Sprintf("%v: %s", ue.Field, ue.Message))
		}
		events.Emit(a.events, events.Event{
			Kind: events.KindWritePartial,
			Fields: map[string]any{
				"submitted": len(adjustments),
				"rejected":  len(userErrors),
				"errors":    msgs,
			},
		})
	}

	return len(adjustments)
}

func (a *Adjuster) failed(count int, err error) int {
	events.Emit(a.events, events.Event{
		Kind:   events.KindWriteFailed,
		Err:    err,
		Fields: map[string]any{"submitted": count},
	})
	return 0
}
