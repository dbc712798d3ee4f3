package intake

import (
	"context"

	"github.com/po-intake/backend/internal/domain/order"
	"go.uber.org/zap"
)

// Service orchestrates the intake pipeline: shape adaptation, reference
// resolution, and transactional persistence.
type Service struct {
	orders   order.Repository
	resolver *Resolver
	logger   *zap.Logger
}

// NewService creates a new intake Service
func NewService(orders order.Repository, resolver *Resolver, logger *zap.Logger) *Service {
	return &Service{
		orders:   orders,
		resolver: resolver,
		logger:   logger.Named("intake"),
	}
}

// IngestResult carries the persisted order plus the resolution outcomes
// for observability and tests
type IngestResult struct {
	Order       *order.PersistedOrder
	Resolutions order.ResolutionSet
}

// Ingest runs the full pipeline for one request body. Structural
// problems fail before any persistence is attempted; resolver
// degradation never fails the request; a persistence failure leaves
// nothing behind.
func (s *Service) Ingest(ctx context.Context, body []byte) (*IngestResult, error) {
	header, drafts, notes, err := Adapt(body)
	if err != nil {
		return nil, err
	}
	for _, note := range notes {
		s.logger.Warn("unparseable value absorbed during normalization",
			zap.String("unique_order_id", header.UniqueOrderID),
			zap.String("field", note.Field),
			zap.String("raw", note.Raw),
		)
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}

	resolutions := s.resolver.Resolve(ctx, header)

	// Supplier is the only resolution substituted into the persisted
	// row; location group and location stay informational even when
	// they resolve. Vendor keeps the supplied identifier unchanged.
	header.ClientID = resolutions.Supplier.Value

	persisted, err := s.orders.CreateWithItems(ctx, header, drafts)
	if err != nil {
		s.logger.Error("order persistence failed",
			zap.String("unique_order_id", header.UniqueOrderID),
			zap.Int("line_items", len(drafts)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("order persisted",
		zap.String("unique_order_id", header.UniqueOrderID),
		zap.Int("line_items", len(persisted.Items)),
		zap.String("supplier_resolution", resolutions.Supplier.Kind.String()),
		zap.String("vendor_resolution", resolutions.Vendor.Kind.String()),
	)

	return &IngestResult{Order: persisted, Resolutions: resolutions}, nil
}

// Get re-reads a persisted order in the write-path projection
func (s *Service) Get(ctx context.Context, uniqueOrderID string) (*order.PersistedOrder, error) {
	return s.orders.FindPersisted(ctx, uniqueOrderID)
}
