// Package validators encodes the business rules a vehicle record must
// satisfy before it is sent to the backend. Keeping the rules behind the
// Validator interface decouples them from both the form layer and the
// transport, so the same checks guard every write path.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
