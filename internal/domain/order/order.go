package order

import (
	"time"

	"github.com/po-intake/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrder represents one ingested purchase-order header.
// The external UniqueOrderID is the natural key; the numeric ID is the
// storage-assigned surrogate. Line items reference the order by the
// external identifier, not the numeric one (see PurchaseOrderItem).
type PurchaseOrder struct {
	ID                     uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UniqueOrderID          string          `gorm:"type:varchar(100);not null;uniqueIndex" json:"unique_order_id"`
	ClientID               string          `gorm:"type:varchar(200)" json:"client_id"`
	VendorID               string          `gorm:"type:varchar(100)" json:"vendor_id"`
	ShipToDestination      string          `gorm:"type:varchar(200)" json:"ship_to_destination"`
	LocationGroup          string          `gorm:"type:varchar(100)" json:"location_group"`
	Location               string          `gorm:"type:varchar(100)" json:"location"`
	OrderDate              *time.Time      `gorm:"type:date" json:"order_date"`
	EstimatedDeliveryDate  *time.Time      `gorm:"type:date" json:"estimated_delivery_date"`
	CurrencyCode           string          `gorm:"type:varchar(10)" json:"currency_code"`
	CurrencyConversionRate decimal.Decimal `gorm:"type:decimal(18,6);not null;default:1" json:"currency_conversion_rate"`
	SupplierRef            string          `gorm:"type:varchar(200)" json:"supplier_ref"`
	CustomerSO             string          `gorm:"type:varchar(200)" json:"customer_so"`
	AssignedTo             string          `gorm:"type:varchar(100)" json:"assigned_to"`
	PaymentTerms           string          `gorm:"type:varchar(200)" json:"payment_terms"`
	ShippingTerms          string          `gorm:"type:varchar(200)" json:"shipping_terms"`
	CarrierID              string          `gorm:"type:varchar(100)" json:"carrier_id"`
	CarrierMode            string          `gorm:"type:varchar(100)" json:"carrier_mode"`
	FOB                    string          `gorm:"type:varchar(100)" json:"fob"`
	SpecialInstructions    string          `gorm:"type:text" json:"special_instructions"`
	SailingDate            *time.Time      `gorm:"type:date" json:"sailing_date"`
	OriginShipDate         *time.Time      `gorm:"type:date" json:"origin_ship_date"`
	LoadID                 string          `gorm:"type:varchar(100)" json:"load_id"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`

	Items []PurchaseOrderItem `gorm:"foreignKey:UniqueOrderID;references:UniqueOrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// Validate checks the invariants that must hold before persistence
func (o *PurchaseOrder) Validate() error {
	if o.UniqueOrderID == "" {
		return shared.NewDomainError("INVALID_ORDER_ID", "Unique order ID cannot be empty")
	}
	if len(o.UniqueOrderID) > 100 {
		return shared.NewDomainError("INVALID_ORDER_ID", "Unique order ID cannot exceed 100 characters")
	}
	return nil
}

// PurchaseOrderItem represents a line item belonging to a purchase order.
// It is keyed to the header through the external string identifier;
// the cascade delete is enforced by the store, not by application code.
type PurchaseOrderItem struct {
	ID               uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UniqueOrderID    string           `gorm:"type:varchar(100);not null;index" json:"unique_order_id"`
	ProductID        string           `gorm:"type:varchar(100)" json:"product_id"`
	Quantity         decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0" json:"quantity"`
	UnitOfMeasure    string           `gorm:"type:varchar(50)" json:"unit_of_measure"`
	UnitPrice        decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0" json:"unit_price"`
	ForeignUnitPrice decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0" json:"foreign_unit_price"`
	Vintage          string           `gorm:"type:varchar(20)" json:"vintage"`
	UPC              string           `gorm:"type:varchar(50)" json:"upc"`
	Weight           *decimal.Decimal `gorm:"type:decimal(18,4)" json:"weight"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// LineItemDraft carries the raw, not-yet-normalized values of one line
// item as they arrived at the boundary. Pointer fields distinguish
// "absent" from "present but zero/empty".
type LineItemDraft struct {
	ProductID        string
	Quantity         *string
	Unit             *string
	Size             *string
	UnitPrice        *string
	ForeignUnitPrice *string
	Vintage          *string
	UPC              *string
	Weight           *string
}

// BuildItem normalizes a draft into a persistable line item for the
// given order. Normalization never fails; unparseable values degrade to
// their documented defaults.
func BuildItem(uniqueOrderID string, draft LineItemDraft) PurchaseOrderItem {
	item := PurchaseOrderItem{
		UniqueOrderID:    uniqueOrderID,
		ProductID:        draft.ProductID,
		Quantity:         NormalizeQuantity(deref(draft.Quantity)),
		UnitOfMeasure:    NormalizeUnit(deref(draft.Unit), deref(draft.Size)),
		UnitPrice:        NormalizeUnitPrice(deref(draft.UnitPrice)),
		ForeignUnitPrice: NormalizeUnitPrice(deref(draft.ForeignUnitPrice)),
		Vintage:          deref(draft.Vintage),
		UPC:              deref(draft.UPC),
		Weight:           NormalizeWeight(deref(draft.Weight)),
	}
	return item
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
