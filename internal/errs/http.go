package errs

import (
	"strings"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "numberOfDisks", "error": "must be a whole number" }
type FieldError struct {
	// Field is the request field the error relates to (e.g. "numberOfDisks").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, sent to the client as "error".
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
//
// The wire shape is produced by Response(), not by marshaling HTTPError.
type HTTPError struct {
	Code    string
	Message string
	Status  int
	Errors  []FieldError
}

// Response is the JSON body written for every failed request.
//
//	{ "error": "Request body is required", "code": "BAD_REQUEST" }
type Response struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It only checks whether the other thing is the same *type* (*HTTPError),
// it does NOT compare Code/Status/etc.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// Response converts the error into its JSON body.
func (e *HTTPError) Response() Response {
	return Response{
		Error:  e.Message,
		Code:   e.Code,
		Errors: e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
