// Package environment provides simple helpers to propagate the current
// application environment (development, staging, production, etc.) through
// context.Context, HTTP requests and structured logs.
//
// It defines the typed string alias Environment with predefined constants
// Development, Staging and Production. These values can be attached to a
// context using WithContext, extracted with FromContext and queried with the
// convenience predicates IsDevelopment, IsStaging and IsProduction.
//
// In HTTP servers the Middleware function can be used to set the desired
// environment on every request's context, making it available across the
// request-handling pipeline and to any downstream code that consumes the
// context — including environment-gated feature strategies.
//
// # Usage
//
// Import the package:
//
//	import "github.com/featurelabs/flagkit/pkg/environment"
//
// Set the environment on an HTTP server:
//
//	mux := http.NewServeMux()
//	mux.Handle("/", handler)
//	envAwareMux := environment.Middleware(environment.Production)(mux)
//	http.ListenAndServe(":8080", envAwareMux)
//
// Gate a feature strategy on the context environment:
//
//	strategy := feature.NewEnvironmentStrategy(
//		[]string{"staging"},
//		feature.WithEnvironmentExtractor(environment.Extractor()),
//	)
//
// Add the environment to a slog logger attribute set:
//
//	if attr, ok := environment.LoggerExtractor()(ctx); ok {
//		logger = logger.With(attr)
//	}
//
// # Error Handling
//
// All helpers are designed to be allocation-free and never return errors.
// Missing values simply result in the zero value ("").
package environment
