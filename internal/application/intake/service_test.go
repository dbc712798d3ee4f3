package intake

import (
	"context"
	"testing"

	"github.com/po-intake/backend/internal/domain/order"
	"github.com/po-intake/backend/internal/domain/reference"
	"github.com/po-intake/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) CreateWithItems(ctx context.Context, header *order.PurchaseOrder, drafts []order.LineItemDraft) (*order.PersistedOrder, error) {
	args := m.Called(ctx, header, drafts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PersistedOrder), args.Error(1)
}

func (m *mockOrderRepository) FindPersisted(ctx context.Context, uniqueOrderID string) (*order.PersistedOrder, error) {
	args := m.Called(ctx, uniqueOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PersistedOrder), args.Error(1)
}

func newTestService(orders *mockOrderRepository, refs *mockReferenceRepository) *Service {
	log := zap.NewNop()
	return NewService(orders, NewResolver(refs, log), log)
}

func persistedFor(uniqueOrderID string) *order.PersistedOrder {
	return &order.PersistedOrder{
		Header: order.HeaderView{
			PurchaseOrder: order.PurchaseOrder{ID: 1, UniqueOrderID: uniqueOrderID},
		},
	}
}

func TestIngest_SubstitutesResolvedSupplier(t *testing.T) {
	ctx := context.Background()
	orders := new(mockOrderRepository)
	refs := new(mockReferenceRepository)

	refs.On("FindSupplierByName", ctx, "Acme").
		Return(&reference.Supplier{SupplierID: "SUP-1", Name: "Acme Wines"}, nil)
	refs.On("FindVendorByID", ctx, "VEN-1").
		Return(&reference.Vendor{VendorID: "VEN-1"}, nil)

	orders.On("CreateWithItems", ctx, mock.MatchedBy(func(h *order.PurchaseOrder) bool {
		return h.ClientID == "SUP-1" && h.UniqueOrderID == "PO-1001"
	}), mock.Anything).Return(persistedFor("PO-1001"), nil)

	svc := newTestService(orders, refs)
	result, err := svc.Ingest(ctx, []byte(`{
		"unique_order_id": "PO-1001",
		"client_id": "Acme",
		"vendor_id": "VEN-1"
	}`))

	require.NoError(t, err)
	assert.Equal(t, "PO-1001", result.Order.Header.UniqueOrderID)
	assert.Equal(t, order.ResolutionResolved, result.Resolutions.Supplier.Kind)
	assert.Equal(t, "SUP-1", result.Resolutions.Supplier.Value)
	orders.AssertExpectations(t)
}

func TestIngest_UnresolvedSupplierKeepsRawValue(t *testing.T) {
	ctx := context.Background()
	orders := new(mockOrderRepository)
	refs := new(mockReferenceRepository)

	refs.On("FindSupplierByName", ctx, "Ghost Cellar").Return(nil, shared.ErrNotFound)

	orders.On("CreateWithItems", ctx, mock.MatchedBy(func(h *order.PurchaseOrder) bool {
		return h.ClientID == "Ghost Cellar"
	}), mock.Anything).Return(persistedFor("PO-1002"), nil)

	svc := newTestService(orders, refs)
	result, err := svc.Ingest(ctx, []byte(`{
		"unique_order_id": "PO-1002",
		"client_id": "Ghost Cellar"
	}`))

	require.NoError(t, err)
	assert.Equal(t, order.ResolutionNotFound, result.Resolutions.Supplier.Kind)
	orders.AssertExpectations(t)
}

func TestIngest_LocationGroupNotSubstituted(t *testing.T) {
	ctx := context.Background()
	orders := new(mockOrderRepository)
	refs := new(mockReferenceRepository)

	refs.On("FindSupplierByName", ctx, "Acme").
		Return(&reference.Supplier{SupplierID: "SUP-1"}, nil)
	refs.On("FindLocationGroupByName", ctx, "east").
		Return(&reference.LocationGroup{Name: "East Coast"}, nil)
	refs.On("FindActiveLocation", ctx, "east").
		Return(&reference.Location{Location: "NJ-1", Active: true}, nil)

	// Both resolutions succeed, yet the persisted row keeps the raw
	// location fields. Only the supplier is substituted.
	orders.On("CreateWithItems", ctx, mock.MatchedBy(func(h *order.PurchaseOrder) bool {
		return h.LocationGroup == "east" && h.Location == "front dock" && h.ClientID == "SUP-1"
	}), mock.Anything).Return(persistedFor("PO-1003"), nil)

	svc := newTestService(orders, refs)
	result, err := svc.Ingest(ctx, []byte(`{
		"unique_order_id": "PO-1003",
		"client_id": "Acme",
		"location_group": "east",
		"location": "front dock"
	}`))

	require.NoError(t, err)
	assert.Equal(t, order.ResolutionResolved, result.Resolutions.LocationGroup.Kind)
	assert.Equal(t, "East Coast", result.Resolutions.LocationGroup.Value)
	assert.Equal(t, "NJ-1", result.Resolutions.Location.Value)
	orders.AssertExpectations(t)
}

func TestIngest_ValidationFailsBeforePersistence(t *testing.T) {
	orders := new(mockOrderRepository)
	refs := new(mockReferenceRepository)
	svc := newTestService(orders, refs)

	_, err := svc.Ingest(context.Background(), []byte(`{"client_id": "Acme"}`))

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ORDER_ID", domainErr.Code)
	orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngest_MalformedBodyFailsBeforeResolution(t *testing.T) {
	orders := new(mockOrderRepository)
	refs := new(mockReferenceRepository)
	svc := newTestService(orders, refs)

	_, err := svc.Ingest(context.Background(), []byte(`not json`))

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MALFORMED_INPUT", domainErr.Code)
	refs.AssertNotCalled(t, "FindSupplierByName", mock.Anything, mock.Anything)
}

func TestIngest_PersistenceFailurePropagates(t *testing.T) {
	ctx := context.Background()
	orders := new(mockOrderRepository)
	refs := new(mockReferenceRepository)

	refs.On("FindSupplierByName", ctx, "Acme").Return(nil, shared.ErrNotFound)
	orders.On("CreateWithItems", ctx, mock.Anything, mock.Anything).
		Return(nil, shared.NewDomainError("PERSISTENCE_FAILURE", "insert failed"))

	svc := newTestService(orders, refs)
	_, err := svc.Ingest(ctx, []byte(`{"unique_order_id": "PO-1004", "client_id": "Acme"}`))

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PERSISTENCE_FAILURE", domainErr.Code)
}

func TestGet_DelegatesToRepository(t *testing.T) {
	ctx := context.Background()
	orders := new(mockOrderRepository)
	refs := new(mockReferenceRepository)

	orders.On("FindPersisted", ctx, "PO-1001").Return(persistedFor("PO-1001"), nil)

	svc := newTestService(orders, refs)
	got, err := svc.Get(ctx, "PO-1001")

	require.NoError(t, err)
	assert.Equal(t, "PO-1001", got.Header.UniqueOrderID)

	orders.On("FindPersisted", ctx, "missing").Return(nil, shared.ErrNotFound)
	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
