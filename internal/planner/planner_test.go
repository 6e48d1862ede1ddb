package planner

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"chatstream/internal/config"
	"chatstream/internal/wire"
)

type fakeClient struct {
	calls     int32
	responses []string
	err       error
}

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	n := atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return "", f.err
	}
	idx := int(n) - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

func fastLimits() config.Limits {
	lim := config.DefaultLimits()
	lim.LLMMaxAttempts = 3
	lim.LLMRequestTimeout = time.Second
	return lim
}

func TestPlanCacheHit(t *testing.T) {
	client := &fakeClient{responses: []string{
		`$$$[{"type":"SimpleComponent","data":{"title":"Cached"}}]$$$`,
	}}
	p := New(client, NewCache(), fastLimits())

	first := p.Plan(context.Background(), "show me an ai summary")
	second := p.Plan(context.Background(), "show me an ai summary")

	if len(first.Components) != 1 || len(second.Components) != 1 {
		t.Fatalf("expected 1 component in each plan, got %d and %d", len(first.Components), len(second.Components))
	}
	if atomic.LoadInt32(&client.calls) != 1 {
		t.Fatalf("expected exactly 1 remote call due to cache hit, got %d", client.calls)
	}
}

func TestPlanRetriesThenSucceeds(t *testing.T) {
	client := &fakeClient{responses: []string{
		"not a valid plan at all",
		`$$$[{"type":"TableA","data":{"columns":["A","B"]}}]$$$`,
	}}
	lim := fastLimits()
	p := New(client, NewCache(), lim)

	plan := p.Plan(context.Background(), "plan my week")
	if len(plan.Components) != 1 {
		t.Fatalf("expected 1 component after retry, got %d", len(plan.Components))
	}
	if plan.Components[0].Kind != wire.KindTable {
		t.Fatalf("expected TableA component, got %v", plan.Components[0].Kind)
	}
}

func TestPlanExhaustsToFallback(t *testing.T) {
	client := &fakeClient{err: errors.New("network down")}
	lim := fastLimits()
	p := New(client, NewCache(), lim)

	plan := p.Plan(context.Background(), "analyze my data")
	fallback := FallbackPlan()
	if len(plan.Components) != len(fallback.Components) {
		t.Fatalf("expected fallback plan with %d components, got %d", len(fallback.Components), len(plan.Components))
	}
	if int(client.calls) != lim.LLMMaxAttempts {
		t.Fatalf("expected %d attempts, got %d", lim.LLMMaxAttempts, client.calls)
	}
}

func TestPlanDropsInvalidComponentsKeepsValid(t *testing.T) {
	client := &fakeClient{responses: []string{
		`$$$[{"type":"SimpleComponent","data":{"title":"ok"}},{"type":"TableA","data":{}}]$$$`,
	}}
	p := New(client, NewCache(), fastLimits())

	plan := p.Plan(context.Background(), "smart dashboard please")
	if len(plan.Components) != 1 {
		t.Fatalf("expected the TableA-without-columns component dropped, got %d components", len(plan.Components))
	}
	if plan.Components[0].Kind != wire.KindSimple {
		t.Fatalf("expected the valid SimpleComponent to survive, got %v", plan.Components[0].Kind)
	}
}

func TestPlanClampsToMaxComponents(t *testing.T) {
	var objs string
	for i := 0; i < 8; i++ {
		if i > 0 {
			objs += ","
		}
		objs += fmt.Sprintf(`{"type":"SimpleComponent","data":{"title":"c%d"}}`, i)
	}
	client := &fakeClient{responses: []string{"$$$[" + objs + "]$$$"}}
	lim := fastLimits()
	p := New(client, NewCache(), lim)

	plan := p.Plan(context.Background(), "llm plan please")
	if len(plan.Components) != lim.LLMMaxComponentsPerPlan {
		t.Fatalf("expected clamp to %d components, got %d", lim.LLMMaxComponentsPerPlan, len(plan.Components))
	}
}

func TestFallbackPlanIsStable(t *testing.T) {
	a := FallbackPlan()
	b := FallbackPlan()
	if len(a.Components) != len(b.Components) {
		t.Fatalf("expected stable fallback plan shape")
	}
	for i := range a.Components {
		if a.Components[i].Kind != b.Components[i].Kind {
			t.Fatalf("expected stable component kind ordering at %d", i)
		}
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Put("k", Plan{Components: []PlanComponent{{Kind: wire.KindSimple}}}, time.Hour)
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected cache hit before Clear")
	}
	c.Clear()
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected cache miss after Clear")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache()
	c.Put("k", Plan{Components: []PlanComponent{{Kind: wire.KindSimple}}}, -time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected already-expired entry to miss")
	}
}
