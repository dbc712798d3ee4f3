package dto

import "net/http"

// Error codes returned by the intake API
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL"
	// ErrCodeMalformedInput is used when the request body cannot be
	// interpreted as either accepted order shape
	ErrCodeMalformedInput = "MALFORMED_INPUT"
	// ErrCodeInvalidOrderID is used when the order identifier fails validation
	ErrCodeInvalidOrderID = "INVALID_ORDER_ID"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodePersistenceFailure is used when the order transaction fails
	ErrCodePersistenceFailure = "PERSISTENCE_FAILURE"
	// ErrCodeDiagnosticFailure is used when schema inspection fails
	ErrCodeDiagnosticFailure = "DIAGNOSTIC_FAILURE"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeMalformedInput: http.StatusBadRequest,
	ErrCodeInvalidOrderID: http.StatusBadRequest,
	ErrCodeBadRequest:     http.StatusBadRequest,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodePersistenceFailure: http.StatusInternalServerError,
	ErrCodeDiagnosticFailure:  http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
