// Package feature provides evaluation strategies for feature flags with
// deterministic percentage rollouts.
//
// The package is built around two core concepts:
//
// 1. Flags - configuration units that pair a global kill switch with a rollout rule
// 2. Strategies - evaluation logic that determines feature availability
//
// Feature evaluation happens in two stages: first checking if a flag is
// globally enabled, then evaluating its strategy against the provided
// context. This allows for both simple on/off toggles and gradual rollout
// rules.
//
// Where flag configuration lives is deliberately out of scope: the current
// rollout fraction is an input, supplied either directly when constructing a
// strategy or read through the FractionSource interface from whatever store
// the application uses. The package owns only the decision.
//
// # Usage
//
// Basic percentage rollout:
//
//	import "github.com/featurelabs/flagkit/pkg/feature"
//
//	flag := &feature.Flag{
//		Name:    "new-checkout",
//		Enabled: true,
//		Strategy: feature.NewRolloutStrategy(0.25, getUserID),
//	}
//
//	enabled, err := flag.IsEnabled(ctx)
//	if err != nil {
//		// Handle error
//	}
//	if enabled {
//		// New checkout flow
//	}
//
// Rollout decisions are stable: the same user stays on the same side of the
// flag across calls and restarts, and widening the fraction only ever adds
// users (see the rollout package for the underlying guarantees).
//
// # Strategies
//
// The package provides several built-in strategies:
//
// AlwaysStrategy - returns a constant value (on/off)
// RolloutStrategy - deterministic percentage rollout at a fixed fraction
// DynamicRolloutStrategy - percentage rollout with the fraction read from a FractionSource per evaluation
// TargetedStrategy - enables features for specific users, groups, or a fraction
// EnvironmentStrategy - activates features in specific environments
// CompositeStrategy - combines multiple strategies with AND/OR logic
//
// # Context Extractors
//
// The package uses extractor functions to retrieve evaluation data from
// context, maintaining decoupling between the feature system and application
// logic:
//
//	func getUserID(ctx context.Context) string {
//		if user, ok := ctx.Value("user").(*User); ok {
//			return user.ID
//		}
//		return ""
//	}
//
// An empty extracted user ID is an evaluation outcome, not an error: rollout
// based strategies keep anonymous users on the old behavior.
//
// # Error Handling
//
// The package defines specific errors for different failure scenarios:
//
//	enabled, err := flag.IsEnabled(ctx)
//	if errors.Is(err, feature.ErrInvalidStrategy) {
//		// Strategy is misconfigured (e.g. fraction out of range)
//	}
//
// All errors follow consistent naming patterns and can be checked using
// errors.Is.
//
// All strategies are stateless after construction and safe for concurrent
// use.
package feature
