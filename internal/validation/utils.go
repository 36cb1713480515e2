// Package validation contains the logic for validating
// request data.
//
// It decodes request bodies, runs each payload's own Validate() and
// extracts validation errors into a format the client can
// understand
package validation

import (
	"encoding/json"
	"io"

	"github.com/deppfellow/go-hanoi/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Validate returns CustomValidationErrors for failures the client should see.
// Any other error is reported with its own message.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// maxBodyBytes bounds how much of a request body is read.
const maxBodyBytes = 1 << 20

// BindAndValidate decodes the JSON request body into payload and validates it.
//
// Flow:
//  1. An empty body is a client error (errs.MsgBodyRequired). A body of
//     only whitespace is present but not JSON, so it falls under step 2.
//  2. A body that is not JSON at all is NOT a client error: a plain wrapped
//     error is returned and the global error handler answers 500 without
//     leaking the parse details.
//  3. payload.Validate() applies validation rules; failures become a 400
//     *errs.HTTPError.
//
// The body is decoded regardless of Content-Type.
func BindAndValidate(c echo.Context, payload Validatable) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return errors.Wrap(err, "failed to read request body")
	}

	if len(body) == 0 {
		return errs.NewBadRequestError(errs.MsgBodyRequired, nil, nil)
	}

	// Valid JSON of the wrong shape ("x", [1], {"a":{}}) still decodes what
	// it can; Validate() then reports the missing or mistyped fields.
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(body, payload); err != nil && !errors.As(err, &typeErr) {
		return errors.Wrap(err, "failed to decode request body")
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError turns a Validate() error into a top-level message
// and field errors.
//
// Custom errors carry full sentences, so the first one becomes the message.
func extractValidationError(err error) (string, []errs.FieldError) {
	var customValidationErrors CustomValidationErrors
	if !errors.As(err, &customValidationErrors) || len(customValidationErrors) == 0 {
		return err.Error(), []errs.FieldError{}
	}

	fieldErrors := make([]errs.FieldError, 0, len(customValidationErrors))
	for _, err := range customValidationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: err.Field,
			Error: err.Message,
		})
	}
	return fieldErrors[0].Error, fieldErrors
}
