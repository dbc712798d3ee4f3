package persistence

import (
	"context"
	"errors"

	"github.com/po-intake/backend/internal/domain/order"
	"github.com/po-intake/backend/internal/domain/reference"
	"github.com/po-intake/backend/internal/domain/shared"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormOrderRepository creates a new order repository
func NewGormOrderRepository(db *gorm.DB, logger *zap.Logger) *GormOrderRepository {
	return &GormOrderRepository{
		db:     db,
		logger: logger.Named("order-repository"),
	}
}

// CreateWithItems persists the header and all item drafts inside a single
// transaction. Drafts are normalized into rows as they are inserted. Any
// insert failure rolls the whole order back. After the commit the order is
// re-read joined with its reference display names.
func (r *GormOrderRepository) CreateWithItems(ctx context.Context, header *order.PurchaseOrder, drafts []order.LineItemDraft) (*order.PersistedOrder, error) {
	var headerID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(header).Error; err != nil {
			return err
		}
		headerID = header.ID

		for _, draft := range drafts {
			item := order.BuildItem(header.UniqueOrderID, draft)

			// The product lookup is informational only. An unknown
			// product id is persisted as sent.
			var product reference.Product
			lookupErr := tx.Where("product_id = ?", item.ProductID).First(&product).Error
			if lookupErr != nil && !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
				return lookupErr
			}
			if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
				r.logger.Warn("unknown product on line item",
					zap.String("unique_order_id", header.UniqueOrderID),
					zap.String("product_id", item.ProductID),
				)
			}

			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("order transaction rolled back",
			zap.String("unique_order_id", header.UniqueOrderID),
			zap.Error(err),
		)
		return nil, shared.NewDomainError("PERSISTENCE_FAILURE", "failed to persist purchase order: "+err.Error())
	}

	persisted, err := r.readBack(ctx, headerID)
	if err != nil {
		return nil, shared.NewDomainError("PERSISTENCE_FAILURE", "failed to read back purchase order: "+err.Error())
	}
	return persisted, nil
}

// FindPersisted re-reads a persisted order by its external identifier
func (r *GormOrderRepository) FindPersisted(ctx context.Context, uniqueOrderID string) (*order.PersistedOrder, error) {
	var header order.PurchaseOrder
	err := r.db.WithContext(ctx).
		Where("unique_order_id = ?", uniqueOrderID).
		First(&header).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.readBack(ctx, header.ID)
}

// readBack selects the header by its numeric surrogate id joined with the
// supplier and vendor names, then the items by the external string
// identifier joined with the product descriptions.
func (r *GormOrderRepository) readBack(ctx context.Context, headerID uint) (*order.PersistedOrder, error) {
	var header order.HeaderView
	err := r.db.WithContext(ctx).
		Model(&order.PurchaseOrder{}).
		Select("purchase_orders.*, suppliers.name AS supplier_name, vendors.name AS vendor_name").
		Joins("LEFT JOIN suppliers ON purchase_orders.client_id = suppliers.supplier_id").
		Joins("LEFT JOIN vendors ON purchase_orders.vendor_id = vendors.vendor_id").
		Where("purchase_orders.id = ?", headerID).
		Scan(&header).Error
	if err != nil {
		return nil, err
	}
	if header.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var items []order.ItemView
	err = r.db.WithContext(ctx).
		Model(&order.PurchaseOrderItem{}).
		Select("purchase_order_items.*, products.description AS product_description").
		Joins("LEFT JOIN products ON purchase_order_items.product_id = products.product_id").
		Where("purchase_order_items.unique_order_id = ?", header.UniqueOrderID).
		Order("purchase_order_items.id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return &order.PersistedOrder{Header: header, Items: items}, nil
}
