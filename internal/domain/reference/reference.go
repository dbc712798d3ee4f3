// Package reference holds the read-only lookup tables the intake
// pipeline resolves against. The tables are maintained by upstream
// master-data processes; this service only queries them.
package reference

import "context"

// Supplier is a row in the supplier lookup table
type Supplier struct {
	SupplierID string `gorm:"type:varchar(100);primaryKey" json:"supplier_id"`
	Name       string `gorm:"type:varchar(200);not null;index" json:"name"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// Vendor is a row in the vendor lookup table
type Vendor struct {
	VendorID string `gorm:"type:varchar(100);primaryKey" json:"vendor_id"`
	Name     string `gorm:"type:varchar(200);not null" json:"name"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// LocationGroup is a row in the location-group lookup table
type LocationGroup struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

// TableName returns the table name for GORM
func (LocationGroup) TableName() string {
	return "location_groups"
}

// Location is a row in the location lookup table
type Location struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Location      string `gorm:"type:varchar(100);not null" json:"location"`
	LocationGroup string `gorm:"type:varchar(100)" json:"location_group"`
	Active        bool   `gorm:"not null;default:true" json:"active"`
}

// TableName returns the table name for GORM
func (Location) TableName() string {
	return "locations"
}

// Destination is a row in the destination lookup table
type Destination struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:varchar(200);not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

// TableName returns the table name for GORM
func (Destination) TableName() string {
	return "destinations"
}

// Product is a row in the product lookup table
type Product struct {
	ProductID   string `gorm:"type:varchar(100);primaryKey" json:"product_id"`
	Description string `gorm:"type:varchar(500)" json:"description"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// Repository defines the lookup interface the resolver depends on.
// Implementations return shared.ErrNotFound when no row matches so
// callers can distinguish "not found" from a store failure.
type Repository interface {
	// FindSupplierByName finds the first supplier whose name contains
	// the given fragment (case-insensitive), ordered by name ascending.
	FindSupplierByName(ctx context.Context, fragment string) (*Supplier, error)

	// FindVendorByID finds a vendor by its exact identifier.
	FindVendorByID(ctx context.Context, vendorID string) (*Vendor, error)

	// FindLocationGroupByName finds the first location group whose name
	// contains the given fragment, ordered by name ascending.
	FindLocationGroupByName(ctx context.Context, fragment string) (*LocationGroup, error)

	// FindActiveLocation finds the first active location in the given
	// group (partial match on group), ordered by location ascending.
	FindActiveLocation(ctx context.Context, locationGroup string) (*Location, error)

	// FindDestinationByName finds the first destination whose name
	// contains the given fragment, ordered by sort order.
	FindDestinationByName(ctx context.Context, fragment string) (*Destination, error)

	// FindProductByID finds a product by its exact identifier.
	FindProductByID(ctx context.Context, productID string) (*Product, error)
}
