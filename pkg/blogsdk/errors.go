package blogsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/bloggr/pkg/httpx"
)

// ============================================================================
// Validation errors (400)
// ============================================================================

// FieldError names the input field that failed validation.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// ValidationError is a 400 response listing every failing field.
type ValidationError struct {
	Errors []FieldError `json:"errorsMessages"`
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Message: message, Field: field}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasField reports whether field is among the failures.
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// WriteError writes the error as a 400 response.
func (e *ValidationError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, e)
}

// ============================================================================
// Generic API errors
// ============================================================================

// APIError is the body of every non-validation error response.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

// NewAPIError stamps an error for the request path.
func NewAPIError(status int, path string) *APIError {
	return &APIError{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(TimeFormat),
		Path:       path,
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, http.StatusText(e.StatusCode), e.Path)
}

// WriteError writes the error with its status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// WriteStatus is shorthand for NewAPIError(status, r.URL.Path).WriteError(w).
func WriteStatus(w http.ResponseWriter, r *http.Request, status int) {
	NewAPIError(status, r.URL.Path).WriteError(w)
}

// StatusOf returns the HTTP status carried by an error returned from the
// client, or 0 when err did not come from a response.
func StatusOf(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

// parseErrorResponse maps a non-success response onto a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode == http.StatusBadRequest {
		var ve ValidationError
		if err := json.Unmarshal(body, &ve); err == nil && len(ve.Errors) > 0 {
			return &ve
		}
	}

	var ae APIError
	if err := json.Unmarshal(body, &ae); err == nil && ae.StatusCode != 0 {
		ae.StatusCode = resp.StatusCode
		return &ae
	}

	// Bodies written by middleware (401 from the bearer guard, 404 from the
	// mux) carry no JSON.
	out := &APIError{StatusCode: resp.StatusCode}
	if resp.Request != nil {
		out.Path = resp.Request.URL.Path
	}
	return out
}
