// Package planner implements the LLM planning collaborator: for requests
// carrying planner keywords, it replaces the rule-based dispatcher with
// an externally-sourced plan, with caching, retry, per-component
// validation, and a deterministic fallback when the remote call cannot
// produce one.
package planner

import (
	"context"
	"log/slog"
	"time"

	"chatstream/internal/config"
	"chatstream/internal/emit"
	"chatstream/internal/idgen"
	"chatstream/internal/metrics"
	"chatstream/internal/registry"
	"chatstream/internal/wire"
)

// Planner ties a remote Client to the shared cache and the validation/
// fallback pipeline.
type Planner struct {
	client Client
	cache  *Cache
	limits config.Limits
}

// New constructs a Planner. cache is expected to be shared across
// requests; client and limits may be per-process.
func New(client Client, cache *Cache, limits config.Limits) *Planner {
	return &Planner{client: client, cache: cache, limits: limits}
}

// backoffSchedule is the fixed exponential backoff between retry
// attempts: 1s, 2s, 4s.
var backoffSchedule = []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}

// Plan produces a validated Plan for message, consulting the cache first
// and falling back to a retried remote call. It never returns an error:
// any unrecoverable failure resolves to FallbackPlan().
func (p *Planner) Plan(ctx context.Context, message string) Plan {
	key := Key(message)
	if cached, ok := p.cache.Get(key); ok {
		metrics.PlannerCacheHits.Inc()
		return cached
	}
	metrics.PlannerCacheMisses.Inc()

	attempts := p.limits.LLMMaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			metrics.PlannerRetries.Inc()
			backoff := backoffSchedule[min(attempt-1, len(backoffSchedule)-1)]
			slog.Warn("planner retrying", "attempt", attempt+1, "backoff", backoff)
			select {
			case <-ctx.Done():
				break
			case <-time.After(backoff):
			}
		}
		if ctx.Err() != nil {
			break
		}

		plan, err := p.attempt(ctx, message)
		if err != nil {
			slog.Warn("planner attempt failed", "attempt", attempt+1, "err", err)
			continue
		}

		p.cache.Put(key, plan, p.limits.LLMCacheTTL)
		return plan
	}

	slog.Error("planner exhausted retries, serving fallback plan", "message", message)
	metrics.PlannerFallbacks.Inc()
	return FallbackPlan()
}

// attempt runs one remote call, extraction, and validation pass.
func (p *Planner) attempt(ctx context.Context, message string) (Plan, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.limits.LLMRequestTimeout)
	defer cancel()

	text, err := p.client.Complete(callCtx, buildPrompt(message))
	if err != nil {
		return Plan{}, err
	}

	raw, err := extractPlan(text)
	if err != nil {
		return Plan{}, err
	}

	plan := validateAndClamp(raw, p.limits)
	if len(plan.Components) == 0 {
		return Plan{}, errNoPlanFound
	}
	return plan, nil
}

// validateAndClamp drops components that fail their kind's schema or
// length bounds, then truncates to the configured maximum components per
// plan.
func validateAndClamp(raw []rawPlanObject, limits config.Limits) Plan {
	var out []PlanComponent
	for _, obj := range raw {
		if !validComponent(obj, limits) {
			continue
		}
		out = append(out, PlanComponent{Kind: obj.Type, Data: obj.Data})
		if len(out) >= limits.LLMMaxComponentsPerPlan {
			break
		}
	}
	return Plan{Components: out}
}

func validComponent(obj rawPlanObject, limits config.Limits) bool {
	schema, ok := compiledSchemas[obj.Type]
	if !ok {
		return false
	}
	data := obj.Data
	if data == nil {
		data = map[string]any{}
	}
	if err := schema.Validate(data); err != nil {
		return false
	}

	switch obj.Type {
	case wire.KindTable:
		rows, _ := data["rows"].([]any)
		if len(rows) > limits.MaxTableRows {
			return false
		}
	case wire.KindChart:
		chartType, _ := data["chart_type"].(string)
		if !isPermittedChartType(chartType) {
			return false
		}
		if longest := longestSeriesValues(data["series"]); longest > limits.MaxChartPoints {
			return false
		}
	}
	return true
}

func longestSeriesValues(series any) int {
	list, ok := series.([]any)
	if !ok {
		return 0
	}
	max := 0
	for _, s := range list {
		m, ok := s.(map[string]any)
		if !ok {
			continue
		}
		values, ok := m["values"].([]any)
		if !ok {
			continue
		}
		if len(values) > max {
			max = len(values)
		}
	}
	return max
}

// Emit assigns fresh ids to plan's components, registers them so planned
// frames obey the same introduce-before-update discipline as progressive
// ones, and writes each as a single self-contained frame with a small
// inter-frame pause.
func Emit(ctx context.Context, sink emit.Sink, reg *registry.Registry, gen *idgen.Generator, limits config.Limits, plan Plan) error {
	for _, comp := range plan.Components {
		id := gen.NewID()
		if err := reg.Introduce(id, comp.Kind, comp.Data); err != nil {
			slog.Warn("dropping planned component", "id", id, "err", err)
			continue
		}
		if err := sink.Envelope(ctx, wire.Envelope{Type: comp.Kind, ID: id, Data: comp.Data}); err != nil {
			return err
		}
		if err := sink.Sleep(ctx, limits.FrameDelay); err != nil {
			return err
		}
	}
	return nil
}
