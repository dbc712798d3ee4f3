package order

import "context"

// HeaderView is the read-back projection of a persisted header joined
// with the supplier and vendor display names. The header row itself is
// selected by its numeric surrogate id.
type HeaderView struct {
	PurchaseOrder
	SupplierName string `json:"supplier_name"`
	VendorName   string `json:"vendor_name"`
}

// ItemView is the read-back projection of a persisted line item joined
// with the product display description. Items are joined to the header
// through the external string identifier.
type ItemView struct {
	PurchaseOrderItem
	ProductDescription string `json:"product_description"`
}

// PersistedOrder is the result of a successful write: the re-read
// header plus all of its items, in insertion order.
type PersistedOrder struct {
	Header HeaderView `json:"header"`
	Items  []ItemView `json:"items"`
}

// Repository defines the interface for purchase order persistence
type Repository interface {
	// CreateWithItems persists the header and all drafts inside one
	// transaction and returns the read-back result. On any failure
	// nothing is persisted.
	CreateWithItems(ctx context.Context, header *PurchaseOrder, drafts []LineItemDraft) (*PersistedOrder, error)

	// FindPersisted re-reads a persisted order by its external
	// identifier, in the same projection CreateWithItems returns.
	FindPersisted(ctx context.Context, uniqueOrderID string) (*PersistedOrder, error)
}
