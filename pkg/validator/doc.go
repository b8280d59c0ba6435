// Package validator turns the predicates from package pattern into composable
// rules with rich, translation-friendly error metadata.
//
// A Rule pairs a boolean Check with a ValidationError describing the failure.
// Apply evaluates any number of rules and aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so several
// field-level problems surface through a single error return.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("username", form.Username),
//	    validator.Username("username", form.Username),
//	    validator.Email("email", form.Email),
//	    validator.Matches("color", form.Color, pattern.HexColor),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Details() groups messages by field
//	}
//
// Each pattern rule uses the translation key "validation.<validator name>",
// for example "validation.email_format".
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is and can be
// recovered with errors.As or ExtractValidationErrors.
//
// The package holds no state and is safe for concurrent use.
package validator
