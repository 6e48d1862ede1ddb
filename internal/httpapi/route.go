package httpapi

import (
	"context"

	"chatstream/internal/dispatch"
	"chatstream/internal/emit"
	"chatstream/internal/planner"
	"chatstream/internal/registry"
)

// route invokes the emitter (or planner) matching pattern, the single
// place that wires dispatch.Classify's result to a handler.
func route(ctx context.Context, sink emit.Sink, reg *registry.Registry, deps Deps, pattern dispatch.Pattern, message string) error {
	switch pattern {
	case dispatch.PatternLLMPlan:
		plan := deps.Planner.Plan(ctx, message)
		return planner.Emit(ctx, sink, reg, deps.Gen, deps.Limits, plan)
	case dispatch.PatternSingleDelayedCard:
		return emit.SingleDelayedCard(ctx, sink, reg, deps.Gen, deps.Limits)
	case dispatch.PatternMultiDelayedCards:
		return emit.MultiDelayedCards(ctx, sink, reg, deps.Gen, deps.Limits, message)
	case dispatch.PatternMultiNormalCards:
		return emit.MultiNormalCards(ctx, sink, reg, deps.Gen, deps.Limits, message)
	case dispatch.PatternSingleNormalCard:
		return emit.SingleNormalCard(ctx, sink, reg, deps.Gen, deps.Limits)
	case dispatch.PatternIncrementalCard:
		return emit.IncrementalCard(ctx, sink, reg, deps.Gen, deps.Limits)
	case dispatch.PatternTables:
		return emit.Tables(ctx, sink, reg, deps.Gen, deps.Limits, message)
	case dispatch.PatternCharts:
		return emit.Charts(ctx, sink, reg, deps.Gen, deps.Limits, message)
	default:
		return emit.DefaultText(ctx, sink)
	}
}
