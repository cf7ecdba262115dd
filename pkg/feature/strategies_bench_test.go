package feature_test

import (
	"context"
	"testing"

	"github.com/featurelabs/flagkit/pkg/feature"
)

func BenchmarkStrategies(b *testing.B) {
	getUserID := func(ctx context.Context) string { return "user-123" }
	getUserGroups := func(ctx context.Context) []string { return []string{"group-1", "group-2"} }
	getEnvironment := func(ctx context.Context) string { return "production" }

	b.Run("AlwaysOnStrategy", func(b *testing.B) {
		strategy := feature.NewAlwaysOnStrategy()
		ctx := context.Background()
		b.ResetTimer()
		for b.Loop() {
			_, _ = strategy.Evaluate(ctx)
		}
	})

	b.Run("RolloutStrategy", func(b *testing.B) {
		strategy := feature.NewRolloutStrategy(0.5, getUserID)
		ctx := context.Background()
		b.ResetTimer()
		for b.Loop() {
			_, _ = strategy.Evaluate(ctx)
		}
	})

	b.Run("DynamicRolloutStrategy", func(b *testing.B) {
		source := feature.StaticFractions{"bench-flag": 0.5}
		strategy := feature.NewDynamicRolloutStrategy(source, "bench-flag", getUserID)
		ctx := context.Background()
		b.ResetTimer()
		for b.Loop() {
			_, _ = strategy.Evaluate(ctx)
		}
	})

	b.Run("UserTargetStrategy", func(b *testing.B) {
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{UserIDs: []string{"user-123", "user-456"}},
			feature.WithUserIDExtractor(getUserID),
		)
		ctx := context.Background()
		b.ResetTimer()
		for b.Loop() {
			_, _ = strategy.Evaluate(ctx)
		}
	})

	b.Run("GroupTargetStrategy", func(b *testing.B) {
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{Groups: []string{"group-1", "group-3"}},
			feature.WithUserGroupsExtractor(getUserGroups),
		)
		ctx := context.Background()
		b.ResetTimer()
		for b.Loop() {
			_, _ = strategy.Evaluate(ctx)
		}
	})

	b.Run("FractionTargetStrategy", func(b *testing.B) {
		fraction := 0.5
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{Fraction: &fraction},
			feature.WithUserIDExtractor(getUserID),
		)
		ctx := context.Background()
		b.ResetTimer()
		for b.Loop() {
			_, _ = strategy.Evaluate(ctx)
		}
	})

	b.Run("EnvironmentStrategy", func(b *testing.B) {
		strategy := feature.NewEnvironmentStrategy(
			[]string{"production", "staging"},
			feature.WithEnvironmentExtractor(getEnvironment),
		)
		ctx := context.Background()
		b.ResetTimer()
		for b.Loop() {
			_, _ = strategy.Evaluate(ctx)
		}
	})

	b.Run("CompositeAndStrategy", func(b *testing.B) {
		strategy := feature.NewAndStrategy(
			feature.NewEnvironmentStrategy([]string{"production"},
				feature.WithEnvironmentExtractor(getEnvironment)),
			feature.NewRolloutStrategy(0.5, getUserID),
		)
		ctx := context.Background()
		b.ResetTimer()
		for b.Loop() {
			_, _ = strategy.Evaluate(ctx)
		}
	})
}
