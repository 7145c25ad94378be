// Package logging provides a minimal logging facade for the gexiv2 wrapper.
//
// The Logger interface wraps the context-aware subset of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New binds a Logger to a *slog.Logger (nil means slog.Default()):
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	md, err := gexiv2.Open("photo.jpg", gexiv2.WithLogger(logging.New(slog.New(handler))))
//
// The library logs handle open and close at Debug, handles released by a
// finalizer at Warn, and native failures without detail at Error. Tag values
// are never logged; Redacted marks where one was withheld:
//
//	logger.Debug(ctx, "tag written", "tag", key, logging.Redacted("value"))
//
// Metadata values opened without WithLogger log through New(nil), that is
// slog.Default. Discard returns a Logger that drops everything.
package logging
