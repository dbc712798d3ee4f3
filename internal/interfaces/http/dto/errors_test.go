package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeMalformedInput))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeInvalidOrderID))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(ErrCodePersistenceFailure))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(ErrCodeDiagnosticFailure))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestResponseEnvelope(t *testing.T) {
	success := NewSuccessResponse(map[string]string{"k": "v"})
	assert.True(t, success.Success)
	assert.NotNil(t, success.Data)
	assert.Nil(t, success.Error)

	failure := NewErrorResponse(ErrCodeNotFound, "order not found")
	assert.False(t, failure.Success)
	assert.Nil(t, failure.Data)
	assert.Equal(t, ErrCodeNotFound, failure.Error.Code)
	assert.Equal(t, "order not found", failure.Error.Message)
}
