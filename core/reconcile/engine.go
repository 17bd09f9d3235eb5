package reconcile

import (
	"math"

	"stock-reconciler/core/catalog"
	"stock-reconciler/core/supplier"
)

// Diff compares one catalog page against the supplier index and returns
// the corrections to apply plus the SKUs present in the catalog but absent
// from the feed. Items are processed in received order and unmatched SKUs
// preserve that order; duplicates across pages are reported as-is.
//
// A variant with no inventory identity is skipped silently: it cannot be
// corrected, but it is not "unmatched" either, since the supplier does
// know the SKU.
func Diff(items []catalog.Variant, index map[string]supplier.Record, exempt map[string]struct{}) ([]catalog.Adjustment, []string) {
	var adjustments []catalog.Adjustment
	var unmatched []string

	for _, item := range items {
		record, ok := index[item.SKU]
		if !ok {
			if _, exemptSKU := exempt[item.SKU]; !exemptSKU {
				unmatched = append(unmatched, item.SKU)
			}
			continue
		}

		if item.InventoryItemID == "" {
			continue
		}

		supplierQty := int(math.Floor(record.Quantity))
		if !needsCorrection(supplierQty, item.Quantity) {
			continue
		}

		adjustments = append(adjustments, catalog.Adjustment{
			InventoryItemID: item.InventoryItemID,
			Delta:           supplierQty - item.Quantity,
		})
	}

	return adjustments, unmatched
}

// needsCorrection is the threshold policy at the heart of the system.
//
// Low supplier stock (0 or 1) is treated as exact: any drift from the
// catalog is corrected immediately, because overselling near zero is
// expensive. When the supplier has restocked (>= 2) but the catalog still
// shows near-zero, the restock is pushed urgently. When both sides show
// healthy stock (>= 2), small drift is tolerated to save API calls.
func needsCorrection(supplierQty, catalogQty int) bool {
	if supplierQty <= 1 && supplierQty != catalogQty {
		return true
	}
	if supplierQty >= 2 && catalogQty <= 1 {
		return true
	}
	return false
}
