package feature

import (
	"context"
)

// Flag represents a feature flag with its configuration.
type Flag struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Enabled     bool     `json:"enabled"`
	Strategy    Strategy `json:"strategy,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// IsEnabled evaluates the flag for the given context.
//
// Evaluation happens in two stages: a globally disabled flag is off for
// everyone regardless of strategy; an enabled flag without a strategy is on
// for everyone; otherwise the strategy decides.
func (f *Flag) IsEnabled(ctx context.Context) (bool, error) {
	if f == nil || f.Name == "" {
		return false, ErrInvalidFlag
	}

	if !f.Enabled {
		return false, nil
	}

	if f.Strategy == nil {
		return true, nil
	}

	return f.Strategy.Evaluate(ctx)
}

// Strategy defines different ways to roll out a feature.
type Strategy interface {
	// Evaluate determines if the feature should be enabled for a specific context.
	// Context should contain data required by the strategy (user ID, groups, etc.).
	Evaluate(ctx context.Context) (bool, error)
}

// TargetCriteria defines targeting criteria for a flag.
type TargetCriteria struct {
	UserIDs []string `json:"user_ids,omitempty"`
	Groups  []string `json:"groups,omitempty"`
	// Fraction is the rollout fraction in [0, 1] applied to users that match
	// no other criteria.
	Fraction *float64 `json:"fraction,omitempty"`
	// AllowList always takes precedence over other criteria except DenyList
	AllowList []string `json:"allow_list,omitempty"`
	// DenyList always takes precedence over all other criteria
	DenyList []string `json:"deny_list,omitempty"`
}

// Extractor function types for retrieving data from context.
// These allow users to define how to extract feature flag evaluation data
// from their application's context, maintaining decoupling from the feature package.
type (
	UserIDExtractor      func(ctx context.Context) string
	UserGroupsExtractor  func(ctx context.Context) []string
	EnvironmentExtractor func(ctx context.Context) string
)

// FractionSource supplies the current rollout fraction for a named flag.
//
// It is the seam between this package and whatever configuration store the
// application uses (database, cache, config service): the store's only
// obligation is answering "what is the current fraction for flag X".
type FractionSource interface {
	// Fraction returns the rollout fraction in [0, 1] for the named flag.
	// If the flag is unknown it returns ErrFlagNotFound.
	Fraction(ctx context.Context, flagName string) (float64, error)
}

// StaticFractions is a FractionSource backed by a fixed map. It's useful for
// testing and simple applications.
type StaticFractions map[string]float64

// Fraction returns the configured fraction for the named flag.
func (s StaticFractions) Fraction(_ context.Context, flagName string) (float64, error) {
	fraction, ok := s[flagName]
	if !ok {
		return 0, ErrFlagNotFound
	}
	return fraction, nil
}
