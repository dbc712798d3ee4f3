package intake

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptStringUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSet   bool
		wantValue string
	}{
		{"bare string", `"PO-1"`, true, "PO-1"},
		{"bare integer", `42`, true, "42"},
		{"bare decimal keeps precision", `9.90`, true, "9.90"},
		{"bool", `true`, true, "true"},
		{"null", `null`, false, ""},
		{"wrapped string", `{"value": "PO-1"}`, true, "PO-1"},
		{"wrapped number", `{"value": 12.5}`, true, "12.5"},
		{"wrapped null", `{"value": null}`, false, ""},
		{"wrapper without value key", `{"confidence": 0.9}`, false, ""},
		{"array degrades to absent", `[1, 2]`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o OptString
			require.NoError(t, json.Unmarshal([]byte(tt.input), &o))
			assert.Equal(t, tt.wantSet, o.Set)
			assert.Equal(t, tt.wantValue, o.Value)
		})
	}
}

func TestOptStringPtr(t *testing.T) {
	set := OptString{Value: "x", Set: true}
	require.NotNil(t, set.Ptr())
	assert.Equal(t, "x", *set.Ptr())

	var absent OptString
	assert.Nil(t, absent.Ptr())
}

func TestOptStringOr(t *testing.T) {
	assert.Equal(t, "x", OptString{Value: "x", Set: true}.Or("y"))
	assert.Equal(t, "y", OptString{}.Or("y"))
	// An explicitly empty value is still present
	assert.Equal(t, "", OptString{Value: "", Set: true}.Or("y"))
}
