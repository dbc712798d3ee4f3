package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/po-intake/backend/internal/domain/reference"
	"github.com/po-intake/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReferenceRepository implements reference.Repository using GORM
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewGormReferenceRepository creates a new reference repository
func NewGormReferenceRepository(db *gorm.DB) *GormReferenceRepository {
	return &GormReferenceRepository{db: db}
}

// FindSupplierByName finds the first supplier whose name contains the given
// fragment, case-insensitively, ordered by name.
func (r *GormReferenceRepository) FindSupplierByName(ctx context.Context, fragment string) (*reference.Supplier, error) {
	var supplier reference.Supplier
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindVendorByID finds a vendor by its exact identifier
func (r *GormReferenceRepository) FindVendorByID(ctx context.Context, vendorID string) (*reference.Vendor, error) {
	var vendor reference.Vendor
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// FindLocationGroupByName finds the first location group whose name contains
// the given fragment, case-insensitively.
func (r *GormReferenceRepository) FindLocationGroupByName(ctx context.Context, fragment string) (*reference.LocationGroup, error) {
	var group reference.LocationGroup
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// FindActiveLocation finds the first active location whose group contains
// the given fragment, case-insensitively, ordered by location name.
func (r *GormReferenceRepository) FindActiveLocation(ctx context.Context, locationGroup string) (*reference.Location, error) {
	var location reference.Location
	pattern := "%" + strings.ToLower(locationGroup) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(location_group) LIKE ? AND active = ?", pattern, true).
		Order("location ASC").
		First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

// FindDestinationByName finds the first destination whose name contains the
// given fragment, case-insensitively, ordered by sort order.
func (r *GormReferenceRepository) FindDestinationByName(ctx context.Context, fragment string) (*reference.Destination, error) {
	var destination reference.Destination
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("sort_order ASC").
		First(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &destination, nil
}

// FindProductByID finds a product by its exact identifier
func (r *GormReferenceRepository) FindProductByID(ctx context.Context, productID string) (*reference.Product, error) {
	var product reference.Product
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}
