// Package logging provides a minimal logging facade for the matcalc wrapper.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. The session logs every command it forwards to the native
// engine, together with the raw return code, at debug level; errors are never
// downgraded to log messages.
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	cfg := matcalc.Config{Logger: logging.New(slog.New(handler))}
package logging
