// Package datastore provides error handling helpers for database operations
package datastore

import (
	"fmt"

	"github.com/securebank/fraudflow/internal/errors"
)

// dbError creates a properly categorized database error with context
func dbError(err error, operation string, context ...any) error {
	builder := errors.New(fmt.Errorf("%s: %w", operation, err)).
		Component("datastore").
		Category(errors.CategoryDatabase).
		Priority(errors.PriorityHigh).
		Context("operation", operation)

	// Add context pairs
	for i := 0; i < len(context)-1; i += 2 {
		if key, ok := context[i].(string); ok {
			builder = builder.Context(key, context[i+1])
		}
	}

	return builder.Build()
}

// validationError creates a validation error (not sent to users by default)
func validationError(message, field string, value any) error {
	return errors.Newf("%s", message).
		Component("datastore").
		Category(errors.CategoryValidation).
		Context("field", field).
		Context("value", fmt.Sprintf("%v", value)).
		Build()
}

// notFoundError creates a not found error (low priority, expected outcome)
func notFoundError(resource, identifier string) error {
	return errors.Newf("%s not found", resource).
		Component("datastore").
		Category(errors.CategoryNotFound).
		Priority(errors.PriorityLow).
		Context("resource", resource).
		Context("identifier", identifier).
		Build()
}

// stateError marks a transition that lost the race against a concurrent
// resolution of the same case.
func stateError(message string, caseID uint, targetStatus string) error {
	return errors.Newf("%s", message).
		Component("datastore").
		Category(errors.CategoryState).
		Context("case_id", caseID).
		Context("target_status", targetStatus).
		Build()
}
