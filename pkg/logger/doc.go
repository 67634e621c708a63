// Package logger builds *slog.Logger values with functional options.
//
// Three output formats are available: JSON (default, production), logfmt
// text, and a coloured "pretty" format backed by github.com/lmittmann/tint
// for local development. Registered ContextExtractor callbacks run on each
// record, so request-scoped values (request id, locale) are logged without
// threading them through call sites.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "langswitch"),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//	log.InfoContext(ctx, "language changed", logger.Locale("ja"))
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty Attr for nil errors, so it can be passed unconditionally.
package logger
