package persistence

import (
	"context"
	"testing"

	"github.com/po-intake/backend/internal/domain/reference"
	"github.com/po-intake/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReferenceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&reference.Supplier{},
		&reference.Vendor{},
		&reference.LocationGroup{},
		&reference.Location{},
		&reference.Destination{},
		&reference.Product{},
	)
	require.NoError(t, err)

	return db
}

func TestFindSupplierByName(t *testing.T) {
	db := setupReferenceTestDB(t)
	repo := NewGormReferenceRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&reference.Supplier{SupplierID: "S1", Name: "Bordeaux Estates"}).Error)
	require.NoError(t, db.Create(&reference.Supplier{SupplierID: "S2", Name: "Alpha Bordeaux Negociants"}).Error)

	t.Run("case-insensitive substring match", func(t *testing.T) {
		supplier, err := repo.FindSupplierByName(ctx, "bordeaux")
		require.NoError(t, err)
		// Ties break on name order
		assert.Equal(t, "S2", supplier.SupplierID)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := repo.FindSupplierByName(ctx, "burgundy")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestFindVendorByID(t *testing.T) {
	db := setupReferenceTestDB(t)
	repo := NewGormReferenceRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&reference.Vendor{VendorID: "V100", Name: "Globex"}).Error)

	vendor, err := repo.FindVendorByID(ctx, "V100")
	require.NoError(t, err)
	assert.Equal(t, "Globex", vendor.Name)

	// Vendor lookup is exact, not partial
	_, err = repo.FindVendorByID(ctx, "V10")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFindLocationGroupAndActiveLocation(t *testing.T) {
	db := setupReferenceTestDB(t)
	repo := NewGormReferenceRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&reference.LocationGroup{Name: "East Coast"}).Error)
	require.NoError(t, db.Create(&reference.Location{Location: "NJ-2", LocationGroup: "East Coast", Active: false}).Error)
	require.NoError(t, db.Create(&reference.Location{Location: "NJ-1", LocationGroup: "East Coast", Active: true}).Error)
	require.NoError(t, db.Create(&reference.Location{Location: "NA-1", LocationGroup: "East Coast", Active: true}).Error)

	group, err := repo.FindLocationGroupByName(ctx, "east")
	require.NoError(t, err)
	assert.Equal(t, "East Coast", group.Name)

	location, err := repo.FindActiveLocation(ctx, "East Coast")
	require.NoError(t, err)
	// Inactive locations are skipped, ties break on location name
	assert.Equal(t, "NA-1", location.Location)

	// The group filter is a partial match, like the group lookup itself
	location, err = repo.FindActiveLocation(ctx, "east")
	require.NoError(t, err)
	assert.Equal(t, "NA-1", location.Location)

	_, err = repo.FindActiveLocation(ctx, "West Coast")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFindDestinationByName(t *testing.T) {
	db := setupReferenceTestDB(t)
	repo := NewGormReferenceRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&reference.Destination{Name: "Port Newark Annex", SortOrder: 2}).Error)
	require.NoError(t, db.Create(&reference.Destination{Name: "Port Newark", SortOrder: 1}).Error)

	destination, err := repo.FindDestinationByName(ctx, "newark")
	require.NoError(t, err)
	assert.Equal(t, "Port Newark", destination.Name)
}

func TestFindProductByID(t *testing.T) {
	db := setupReferenceTestDB(t)
	repo := NewGormReferenceRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&reference.Product{ProductID: "P1", Description: "Pinot Noir"}).Error)

	product, err := repo.FindProductByID(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Pinot Noir", product.Description)

	_, err = repo.FindProductByID(ctx, "P404")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
