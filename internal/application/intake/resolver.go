package intake

import (
	"context"
	"errors"
	"strings"

	"github.com/po-intake/backend/internal/domain/order"
	"github.com/po-intake/backend/internal/domain/reference"
	"github.com/po-intake/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Resolver performs best-effort reference resolution against the lookup
// tables. A miss or a store failure never aborts the request: the
// outcome degrades to the raw input value and is logged. The upstream
// data is frequently OCR-derived; the resolver enriches when it can and
// never blocks ingestion on an unmatched reference.
type Resolver struct {
	refs   reference.Repository
	logger *zap.Logger
}

// NewResolver creates a new Resolver
func NewResolver(refs reference.Repository, logger *zap.Logger) *Resolver {
	return &Resolver{
		refs:   refs,
		logger: logger.Named("resolver"),
	}
}

// Resolve looks up every foreign-keyed header field and returns the
// per-field outcomes. It does not mutate the header; substitution
// decisions belong to the caller.
func (r *Resolver) Resolve(ctx context.Context, header *order.PurchaseOrder) order.ResolutionSet {
	set := order.ResolutionSet{
		Supplier:      r.resolveSupplier(ctx, header.ClientID),
		Vendor:        r.resolveVendor(ctx, header.VendorID),
		LocationGroup: r.resolveLocationGroup(ctx, header.LocationGroup),
		Location:      r.resolveLocation(ctx, header.LocationGroup, header.Location),
		Destination:   r.resolveDestination(ctx, header.ShipToDestination),
	}

	for _, res := range set.Degraded() {
		r.logger.Warn("reference lookup degraded to raw value",
			zap.String("field", res.Field),
			zap.String("raw", res.Raw),
			zap.String("outcome", res.Kind.String()),
		)
	}

	return set
}

// resolveSupplier matches case-insensitively on a name fragment; the
// first match by ascending name wins
func (r *Resolver) resolveSupplier(ctx context.Context, raw string) order.Resolution {
	if raw == "" {
		return order.NotFound("supplier", raw)
	}
	supplier, err := r.refs.FindSupplierByName(ctx, raw)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return order.NotFound("supplier", raw)
		}
		return order.LookupFailed("supplier", raw)
	}
	return order.Resolved("supplier", raw, supplier.SupplierID)
}

// resolveVendor is an exact lookup; the supplied identifier is kept
// unchanged either way
func (r *Resolver) resolveVendor(ctx context.Context, raw string) order.Resolution {
	if raw == "" {
		return order.NotFound("vendor", raw)
	}
	vendor, err := r.refs.FindVendorByID(ctx, raw)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return order.NotFound("vendor", raw)
		}
		return order.LookupFailed("vendor", raw)
	}
	return order.Resolved("vendor", raw, vendor.VendorID)
}

func (r *Resolver) resolveLocationGroup(ctx context.Context, raw string) order.Resolution {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return order.NotFound("location_group", raw)
	}
	group, err := r.refs.FindLocationGroupByName(ctx, trimmed)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return order.NotFound("location_group", raw)
		}
		return order.LookupFailed("location_group", raw)
	}
	return order.Resolved("location_group", raw, strings.TrimSpace(group.Name))
}

// resolveLocation filters by the possibly-unresolved location-group
// value and considers active locations only
func (r *Resolver) resolveLocation(ctx context.Context, locationGroup, raw string) order.Resolution {
	if raw == "" {
		return order.NotFound("location", raw)
	}
	loc, err := r.refs.FindActiveLocation(ctx, locationGroup)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return order.NotFound("location", raw)
		}
		return order.LookupFailed("location", raw)
	}
	return order.Resolved("location", raw, loc.Location)
}

func (r *Resolver) resolveDestination(ctx context.Context, raw string) order.Resolution {
	if raw == "" {
		return order.NotFound("destination", raw)
	}
	dest, err := r.refs.FindDestinationByName(ctx, raw)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return order.NotFound("destination", raw)
		}
		return order.LookupFailed("destination", raw)
	}
	return order.Resolved("destination", raw, dest.Name)
}
