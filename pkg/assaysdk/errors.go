package assaysdk

import (
	"fmt"
	"net/http"

	"github.com/introprep/assay/pkg/httpx"
)

// Error codes returned by the service.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeDuplicateID    = "duplicate_user_id"
	ErrorCodeUnauthorized   = "unauthorized"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeServerError    = "server_error"
)

// APIError is the service's error envelope. It implements the error
// interface and is used both by the server (to write responses) and by the
// client (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable description.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes the error to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest covers malformed bodies and missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrDuplicateID is returned when the signup user ID is already taken.
	ErrDuplicateID = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateID,
		Description: "an identity with this user id already exists",
	}

	// ErrBadLogin is the single response for every login failure. Unknown
	// user and wrong password must be indistinguishable to the caller.
	ErrBadLogin = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "invalid user id or password",
	}

	// ErrNotFound is returned for a missing record, including records
	// owned by someone else.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "record not found",
	}

	// ErrServerError is the generic internal failure; details stay in the
	// server logs and are never echoed to the caller.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "an internal error occurred",
	}
)
