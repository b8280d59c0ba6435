// Package logger builds *slog.Logger values from functional options and
// injects attributes read from context.Context into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "lexcheck"),
//	    logger.WithContextExtractors(requestIDFromContext),
//	)
//	log.InfoContext(ctx, "checked", logger.Validator("hex_color"), logger.Valid(true))
//
// Attribute helpers such as Error and RequestID return an empty slog.Attr for
// zero values, which slog drops, so callers need no nil checks.
package logger
