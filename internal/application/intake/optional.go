package intake

import (
	"encoding/json"
	"strconv"
	"strings"
)

// OptString is a boundary-only optional string. Upstream emitters wrap
// many fields as {"value": ...} and are inconsistent about whether
// scalars arrive as strings or numbers; OptString accepts all of
// those plus null. Internal types never carry it; the adapter unwraps
// every field before anything downstream runs.
type OptString struct {
	Value string
	Set   bool
}

// UnmarshalJSON accepts a bare scalar, null, or a {"value": scalar}
// wrapper.
func (o *OptString) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	return o.fromAny(raw)
}

func (o *OptString) fromAny(raw any) error {
	switch v := raw.(type) {
	case nil:
		o.Set = false
		o.Value = ""
	case string:
		o.Set = true
		o.Value = v
	case json.Number:
		o.Set = true
		o.Value = v.String()
	case bool:
		o.Set = true
		o.Value = strconv.FormatBool(v)
	case map[string]any:
		inner, ok := v["value"]
		if !ok {
			o.Set = false
			o.Value = ""
			return nil
		}
		return o.fromAny(inner)
	default:
		// Arrays and other shapes are treated as absent rather than
		// failing the whole request; the upstream data is OCR-derived.
		o.Set = false
		o.Value = ""
	}
	return nil
}

// Ptr returns the value as a *string, nil when absent
func (o OptString) Ptr() *string {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// Or returns the value, or the fallback when absent
func (o OptString) Or(fallback string) string {
	if !o.Set {
		return fallback
	}
	return o.Value
}
