package catalog

// Variant is one storefront catalog entry eligible for reconciliation.
// Variants are rebuilt from each fetched page and never persisted.
type Variant struct {
	// ProductID is the owning product's ID.
	ProductID string
	// VariantID is the variant's own ID.
	VariantID string
	// SKU is the join key against the supplier feed.
	SKU string
	// Quantity is the quantity the catalog currently shows.
	Quantity int
	// InventoryItemID identifies the inventory record adjustments target.
	// Empty when the variant has no inventory identity; such variants can
	// never be corrected.
	InventoryItemID string
	// Status is the product lifecycle status (ACTIVE, DRAFT, ARCHIVED).
	Status string
	// Published reports whether the product is published on the current
	// sales channel.
	Published bool
}

// Page is one slice of the catalog walk.
type Page struct {
	// Items are the eligible variants on this page, in received order.
	Items []Variant
	// Cursor is the opaque token for the page after this one.
	Cursor string
	// HasMore reports whether another page exists.
	HasMore bool
}

// Adjustment is a signed inventory correction for a single item.
// newQuantity = currentQuantity + Delta.
type Adjustment struct {
	// InventoryItemID identifies the inventory record to adjust.
	InventoryItemID string
	// Delta is the signed quantity change.
	Delta int
}

// ProductStatusActive is the lifecycle status eligible for reconciliation.
const ProductStatusActive = "ACTIVE"
