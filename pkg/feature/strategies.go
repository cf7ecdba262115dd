package feature

import (
	"context"
	"errors"
	"slices"

	"github.com/featurelabs/flagkit/pkg/rollout"
)

// AlwaysStrategy is a strategy that always returns the same value.
type AlwaysStrategy struct {
	Value bool
}

// Evaluate returns the configured value for all contexts.
func (s *AlwaysStrategy) Evaluate(ctx context.Context) (bool, error) {
	return s.Value, nil
}

// NewAlwaysOnStrategy creates a strategy that enables the feature for all users.
func NewAlwaysOnStrategy() Strategy {
	return &AlwaysStrategy{Value: true}
}

// NewAlwaysOffStrategy creates a strategy that disables the feature for all users.
func NewAlwaysOffStrategy() Strategy {
	return &AlwaysStrategy{Value: false}
}

// RolloutStrategy enables a feature for a stable subset of users sized by a
// fixed fraction. The subset is derived from a cryptographic hash of the user
// ID (see the rollout package), so the same user keeps the same decision
// across calls and restarts, and raising the fraction only adds users.
type RolloutStrategy struct {
	// Fraction is the rollout fraction in [0, 1].
	Fraction float64

	userIDExtractor UserIDExtractor
}

// NewRolloutStrategy creates a percentage rollout at a fixed fraction.
// The extractor supplies the stable user identifier from the context.
func NewRolloutStrategy(fraction float64, extractor UserIDExtractor) Strategy {
	return &RolloutStrategy{
		Fraction:        fraction,
		userIDExtractor: extractor,
	}
}

// Evaluate determines if the user from the context falls inside the rollout.
func (s *RolloutStrategy) Evaluate(ctx context.Context) (bool, error) {
	var userID string
	if s.userIDExtractor != nil {
		userID = s.userIDExtractor(ctx)
	}
	return evaluateFraction(userID, s.Fraction)
}

// DynamicRolloutStrategy is a percentage rollout whose fraction is read from
// a FractionSource on every evaluation. This supports widening a rollout at
// runtime without rebuilding strategies: users already inside stay inside.
type DynamicRolloutStrategy struct {
	source          FractionSource
	flagName        string
	userIDExtractor UserIDExtractor
}

// NewDynamicRolloutStrategy creates a percentage rollout that asks source for
// the current fraction of the named flag at each evaluation.
func NewDynamicRolloutStrategy(source FractionSource, flagName string, extractor UserIDExtractor) Strategy {
	return &DynamicRolloutStrategy{
		source:          source,
		flagName:        flagName,
		userIDExtractor: extractor,
	}
}

// Evaluate reads the current fraction and decides membership for the user
// from the context.
func (s *DynamicRolloutStrategy) Evaluate(ctx context.Context) (bool, error) {
	if s.source == nil {
		return false, errors.Join(ErrInvalidStrategy, errors.New("fraction source cannot be nil"))
	}
	if s.flagName == "" {
		return false, errors.Join(ErrInvalidStrategy, errors.New("flag name cannot be empty"))
	}

	fraction, err := s.source.Fraction(ctx, s.flagName)
	if err != nil {
		return false, err
	}

	var userID string
	if s.userIDExtractor != nil {
		userID = s.userIDExtractor(ctx)
	}
	return evaluateFraction(userID, fraction)
}

// evaluateFraction decides rollout membership for a user ID.
//
// Boundary fractions short-circuit before the user ID is consulted, so a
// fully-open or fully-closed rollout applies to anonymous users too. An empty
// user ID otherwise keeps the user on the old behavior.
func evaluateFraction(userID string, fraction float64) (bool, error) {
	if err := rollout.ValidateFraction(fraction); err != nil {
		return false, errors.Join(ErrInvalidStrategy, err)
	}

	if fraction == 0 {
		return false, nil
	}
	if fraction == 1 {
		return true, nil
	}

	// We need a stable user ID for partial rollouts
	if userID == "" {
		return false, nil
	}

	return rollout.InRollout(userID, fraction)
}

// TargetedStrategy enables features for specific users, groups, or a rollout fraction.
type TargetedStrategy struct {
	// Criteria for enabling the feature.
	Criteria TargetCriteria

	// Extractors for retrieving data from context.
	userIDExtractor     UserIDExtractor
	userGroupsExtractor UserGroupsExtractor
}

// Evaluate determines if a feature should be enabled based on the context and criteria.
func (s *TargetedStrategy) Evaluate(ctx context.Context) (bool, error) {
	if s.isEmptyCriteria() {
		return false, ErrInvalidStrategy
	}

	var userID string
	if s.userIDExtractor != nil {
		userID = s.userIDExtractor(ctx)
	}

	// Deny list always takes precedence
	if s.isInDenyList(userID) {
		return false, nil
	}

	if s.isInAllowList(userID) {
		return true, nil
	}

	if s.isTargetedUser(userID) {
		return true, nil
	}

	if s.isInTargetedGroup(ctx) {
		return true, nil
	}

	// Fall back to the deterministic percentage rollout
	if s.Criteria.Fraction != nil {
		return evaluateFraction(userID, *s.Criteria.Fraction)
	}

	return false, nil
}

// isEmptyCriteria checks if all criteria are nil
func (s *TargetedStrategy) isEmptyCriteria() bool {
	return s.Criteria.UserIDs == nil && s.Criteria.Groups == nil &&
		s.Criteria.Fraction == nil && s.Criteria.AllowList == nil &&
		s.Criteria.DenyList == nil
}

// isInDenyList checks if user is in the deny list
func (s *TargetedStrategy) isInDenyList(userID string) bool {
	if len(s.Criteria.DenyList) == 0 {
		return false
	}

	// If we can't determine the user ID and there's a deny list, fail safe
	if userID == "" {
		return true
	}

	return slices.Contains(s.Criteria.DenyList, userID)
}

// isInAllowList checks if user is in the allow list
func (s *TargetedStrategy) isInAllowList(userID string) bool {
	return len(s.Criteria.AllowList) > 0 && userID != "" &&
		slices.Contains(s.Criteria.AllowList, userID)
}

// isTargetedUser checks if user is in the targeted user IDs
func (s *TargetedStrategy) isTargetedUser(userID string) bool {
	return len(s.Criteria.UserIDs) > 0 && userID != "" &&
		slices.Contains(s.Criteria.UserIDs, userID)
}

// isInTargetedGroup checks if user belongs to any targeted group
func (s *TargetedStrategy) isInTargetedGroup(ctx context.Context) bool {
	if len(s.Criteria.Groups) == 0 || s.userGroupsExtractor == nil {
		return false
	}

	userGroups := s.userGroupsExtractor(ctx)
	if len(userGroups) == 0 {
		return false
	}

	for _, userGroup := range userGroups {
		if slices.Contains(s.Criteria.Groups, userGroup) {
			return true
		}
	}

	return false
}

// TargetedStrategyOption is a function that configures a TargetedStrategy.
type TargetedStrategyOption func(*TargetedStrategy)

// WithUserIDExtractor sets the user ID extractor for the strategy.
func WithUserIDExtractor(extractor UserIDExtractor) TargetedStrategyOption {
	return func(s *TargetedStrategy) {
		s.userIDExtractor = extractor
	}
}

// WithUserGroupsExtractor sets the user groups extractor for the strategy.
func WithUserGroupsExtractor(extractor UserGroupsExtractor) TargetedStrategyOption {
	return func(s *TargetedStrategy) {
		s.userGroupsExtractor = extractor
	}
}

// NewTargetedStrategy creates a strategy based on targeting criteria.
func NewTargetedStrategy(criteria TargetCriteria, opts ...TargetedStrategyOption) Strategy {
	s := &TargetedStrategy{
		Criteria: criteria,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// EnvironmentStrategy enables features based on the environment.
type EnvironmentStrategy struct {
	// EnabledEnvironments lists environments where the feature is enabled.
	EnabledEnvironments []string

	// Extractor for retrieving environment from context.
	environmentExtractor EnvironmentExtractor
}

// Evaluate checks if the feature should be enabled for the current environment.
func (s *EnvironmentStrategy) Evaluate(ctx context.Context) (bool, error) {
	if len(s.EnabledEnvironments) == 0 {
		return false, ErrInvalidStrategy
	}

	if s.environmentExtractor == nil {
		return false, nil
	}

	env := s.environmentExtractor(ctx)
	if env == "" {
		return false, nil
	}

	return slices.Contains(s.EnabledEnvironments, env), nil
}

// EnvironmentStrategyOption is a function that configures an EnvironmentStrategy.
type EnvironmentStrategyOption func(*EnvironmentStrategy)

// WithEnvironmentExtractor sets the environment extractor for the strategy.
func WithEnvironmentExtractor(extractor EnvironmentExtractor) EnvironmentStrategyOption {
	return func(s *EnvironmentStrategy) {
		s.environmentExtractor = extractor
	}
}

// NewEnvironmentStrategy creates a strategy that enables features in specific environments.
func NewEnvironmentStrategy(environments []string, opts ...EnvironmentStrategyOption) Strategy {
	s := &EnvironmentStrategy{
		EnabledEnvironments: environments,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CompositeStrategy combines multiple strategies with an operator.
type CompositeStrategy struct {
	Strategies []Strategy
	Operator   string // "and" or "or"
}

// Evaluate combines the results of multiple strategies.
func (s *CompositeStrategy) Evaluate(ctx context.Context) (bool, error) {
	if len(s.Strategies) == 0 {
		return false, ErrInvalidStrategy
	}

	switch s.Operator {
	case "and":
		for _, strategy := range s.Strategies {
			enabled, err := strategy.Evaluate(ctx)
			if err != nil {
				return false, err
			}
			if !enabled {
				return false, nil
			}
		}
		return true, nil

	case "or":
		for _, strategy := range s.Strategies {
			enabled, err := strategy.Evaluate(ctx)
			if err != nil {
				return false, err
			}
			if enabled {
				return true, nil
			}
		}
		return false, nil

	default:
		return false, errors.Join(ErrInvalidStrategy,
			errors.New("composite operator must be 'and' or 'or'"))
	}
}

// NewAndStrategy creates a strategy that requires all child strategies to return true.
func NewAndStrategy(strategies ...Strategy) Strategy {
	return &CompositeStrategy{
		Strategies: strategies,
		Operator:   "and",
	}
}

// NewOrStrategy creates a strategy that requires at least one child strategy to return true.
func NewOrStrategy(strategies ...Strategy) Strategy {
	return &CompositeStrategy{
		Strategies: strategies,
		Operator:   "or",
	}
}
