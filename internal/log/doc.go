// Package log provides logging with automatic masking of sensitive values,
// built on top of the standard slog package.
//
// Project configuration can carry database credentials, and verbose mode
// logs configuration details. The MaskingHandler makes sure passwords,
// tokens, and similar secrets never reach the log output in clear, even
// when a caller logs a whole config attribute by attribute.
//
// Usage:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("database configured",
//	    "name", "app",
//	    "password", "hunter2", // masked in output
//	)
//	slog.SetDefault(logger)
package log
