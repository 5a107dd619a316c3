// Package validation provides common validation utilities for configuration
// of the stream sources and decorators in the gostep library.
//
// Every helper returns a *errors.ValidationError, so callers can match
// failures with errors.IsValidationError or errors.Is(err, ErrInvalidConfiguration).
package validation
