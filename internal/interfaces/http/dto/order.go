package dto

import "github.com/po-intake/backend/internal/domain/order"

// ResolutionDTO reports how one reference field resolved during intake
type ResolutionDTO struct {
	Field   string `json:"field"`
	Outcome string `json:"outcome"`
	Raw     string `json:"raw,omitempty"`
	Value   string `json:"value,omitempty"`
}

// IngestResponse is the payload returned after a purchase order is persisted
type IngestResponse struct {
	Order       *order.PersistedOrder `json:"order"`
	Resolutions []ResolutionDTO       `json:"resolutions"`
}

// NewIngestResponse maps an intake result into the response payload
func NewIngestResponse(persisted *order.PersistedOrder, set order.ResolutionSet) IngestResponse {
	resolutions := []order.Resolution{
		set.Supplier,
		set.Vendor,
		set.LocationGroup,
		set.Location,
		set.Destination,
	}

	out := make([]ResolutionDTO, 0, len(resolutions))
	for _, r := range resolutions {
		out = append(out, ResolutionDTO{
			Field:   r.Field,
			Outcome: r.Kind.String(),
			Raw:     r.Raw,
			Value:   r.Value,
		})
	}

	return IngestResponse{
		Order:       persisted,
		Resolutions: out,
	}
}
