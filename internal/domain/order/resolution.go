package order

// ResolutionKind classifies the outcome of one reference lookup
type ResolutionKind string

const (
	ResolutionResolved     ResolutionKind = "RESOLVED"
	ResolutionNotFound     ResolutionKind = "NOT_FOUND"
	ResolutionLookupFailed ResolutionKind = "LOOKUP_FAILED"
)

// IsValid checks if the kind is a valid ResolutionKind
func (k ResolutionKind) IsValid() bool {
	switch k {
	case ResolutionResolved, ResolutionNotFound, ResolutionLookupFailed:
		return true
	}
	return false
}

// String returns the string representation of ResolutionKind
func (k ResolutionKind) String() string {
	return string(k)
}

// Degraded reports whether the raw input value was used instead of a
// resolved identifier
func (k ResolutionKind) Degraded() bool {
	return k == ResolutionNotFound || k == ResolutionLookupFailed
}

// Resolution is the outcome of resolving one foreign-keyed field.
// Value holds the resolved identifier when Kind is RESOLVED, and the
// original raw input otherwise. A degraded resolution never aborts a
// request; it only falls back to the raw value.
type Resolution struct {
	Field string
	Kind  ResolutionKind
	Value string
	Raw   string
}

// Resolved builds a successful resolution
func Resolved(field, raw, id string) Resolution {
	return Resolution{Field: field, Kind: ResolutionResolved, Value: id, Raw: raw}
}

// NotFound builds a degraded resolution for a lookup with no match
func NotFound(field, raw string) Resolution {
	return Resolution{Field: field, Kind: ResolutionNotFound, Value: raw, Raw: raw}
}

// LookupFailed builds a degraded resolution for a lookup that errored
func LookupFailed(field, raw string) Resolution {
	return Resolution{Field: field, Kind: ResolutionLookupFailed, Value: raw, Raw: raw}
}

// ResolutionSet carries the per-field outcomes for one request.
// Supplier is the only resolution whose value is substituted into the
// persisted header; the others are computed for observability but the
// raw header value is written unchanged.
type ResolutionSet struct {
	Supplier      Resolution
	Vendor        Resolution
	LocationGroup Resolution
	Location      Resolution
	Destination   Resolution
}

// Degraded returns the resolutions that fell back to raw input
func (s ResolutionSet) Degraded() []Resolution {
	var out []Resolution
	for _, r := range []Resolution{s.Supplier, s.Vendor, s.LocationGroup, s.Location, s.Destination} {
		if r.Kind.Degraded() && r.Raw != "" {
			out = append(out, r)
		}
	}
	return out
}
