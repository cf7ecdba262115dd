// Package config provides environment-based configuration loading for
// applications consuming feature flags.
//
// It parses environment variables into typed structs using struct tags, with
// an optional .env file loaded once per process. This is the simplest way to
// supply rollout fractions to the feature package when no dedicated flag
// store is in play: the fraction lives in the environment, the decision logic
// stays deterministic.
//
// # Usage
//
//	import "github.com/featurelabs/flagkit/pkg/config"
//
//	type RolloutConfig struct {
//		Environment string             `env:"APP_ENV" envDefault:"development"`
//		Fractions   map[string]float64 `env:"ROLLOUT_FRACTIONS"`
//	}
//
//	var cfg RolloutConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
//
//	source := feature.StaticFractions(cfg.Fractions)
//
// With ROLLOUT_FRACTIONS=new-checkout:0.25,dark-mode:1.0 the loaded map can
// be used directly as a FractionSource.
//
// # Error Handling
//
// Load returns ErrNilPointer for a nil destination and wraps parsing
// failures with ErrParsingConfig; both can be checked with errors.Is.
// MustLoad panics instead, for configuration the application cannot start
// without.
package config
