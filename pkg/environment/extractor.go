package environment

import (
	"context"
	"log/slog"
)

// Extractor returns a function that reports the context environment as a
// plain string. Its signature matches the feature package's
// EnvironmentExtractor, so it can be passed directly to
// feature.WithEnvironmentExtractor.
func Extractor() func(ctx context.Context) string {
	return func(ctx context.Context) string {
		return string(FromContext(ctx))
	}
}

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
