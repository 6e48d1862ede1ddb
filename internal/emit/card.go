package emit

import (
	"context"
	"fmt"
	"time"

	"chatstream/internal/config"
	"chatstream/internal/dispatch"
	"chatstream/internal/idgen"
	"chatstream/internal/presets"
	"chatstream/internal/registry"
	"chatstream/internal/wire"
)

// defaultMultiCardCount is used when the multi-card pattern is reached by
// plural "cards" alone, with no explicit two/2/three/3/multiple/several
// keyword to size the batch. Two is the smallest count that makes "cards"
// (plural) true and keeps the unscoped case distinct from the
// keyword-driven one.
const defaultMultiCardCount = 2

// clamp bounds n to [1, max].
func clamp(n, max int) int {
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

// SingleNormalCard streams one card introduced empty, filled in one
// update, with ellipsis narration in between.
func SingleNormalCard(ctx context.Context, sink Sink, reg *registry.Registry, gen *idgen.Generator, lim config.Limits) error {
	id := gen.NewID()
	if err := introduceFrame(ctx, sink, reg, wire.KindSimple, id, map[string]any{}); err != nil {
		return err
	}

	if err := typeProse(ctx, sink, "Generating your card …", lim.CharDelay, lim.WordDelay); err != nil {
		return err
	}

	c := presets.Cards[0]
	full := map[string]any{
		"title":       c.Title,
		"description": c.Description,
		"value":       c.Value,
		"timestamp":   nowStamp(),
	}
	if err := updateFrame(ctx, sink, reg, wire.KindSimple, id, full); err != nil {
		return err
	}

	return sink.Text(ctx, " "+sentenceDone)
}

// SingleDelayedCard streams a partial introduction, holds the configured
// hard wait, then sends a units-only update.
func SingleDelayedCard(ctx context.Context, sink Sink, reg *registry.Registry, gen *idgen.Generator, lim config.Limits) error {
	id := gen.NewID()
	c := presets.Cards[0]
	initial := map[string]any{"title": c.Title, "date": nowStamp()}
	if err := introduceFrame(ctx, sink, reg, wire.KindSimple, id, initial); err != nil {
		return err
	}

	if err := typeProse(ctx, sink, "Generating units … please wait.", lim.CharDelay, lim.WordDelay); err != nil {
		return err
	}
	if err := sink.Sleep(ctx, lim.SingleDelayedCardWait); err != nil {
		return err
	}

	update := map[string]any{"units": c.Units}
	if err := updateFrame(ctx, sink, reg, wire.KindSimple, id, update); err != nil {
		return err
	}

	return sink.Text(ctx, " "+sentenceDone)
}

// MultiNormalCards streams N cards introduced empty, then filled in
// sequence, value = 100*i by default.
func MultiNormalCards(ctx context.Context, sink Sink, reg *registry.Registry, gen *idgen.Generator, lim config.Limits, message string) error {
	n := dispatch.ExtractCount(message)
	if n == 0 {
		n = defaultMultiCardCount
	}
	n = clamp(n, lim.MaxComponentsPerResponse)

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := gen.NewID()
		ids[i] = id
		if err := introduceFrame(ctx, sink, reg, wire.KindSimple, id, map[string]any{}); err != nil {
			return err
		}
	}

	if err := typeProse(ctx, sink, fmt.Sprintf("Loading %d cards …", n), lim.CharDelay, lim.WordDelay); err != nil {
		return err
	}

	for i, id := range ids {
		full := map[string]any{
			"title":       fmt.Sprintf("Card #%d", i+1),
			"description": presets.Cards[i%len(presets.Cards)].Description,
			"value":       100 * (i + 1),
			"timestamp":   nowStamp(),
		}
		if err := updateFrame(ctx, sink, reg, wire.KindSimple, id, full); err != nil {
			return err
		}
		if err := sink.Sleep(ctx, lim.FrameDelay); err != nil {
			return err
		}
	}

	return sink.Text(ctx, " "+sentenceDone)
}

// MultiDelayedCards has the same shape as MultiNormalCards but with a
// hard mid-sequence wait and units-only follow-up updates at 50*i.
func MultiDelayedCards(ctx context.Context, sink Sink, reg *registry.Registry, gen *idgen.Generator, lim config.Limits, message string) error {
	n := dispatch.ExtractCount(message)
	if n == 0 {
		n = defaultMultiCardCount
	}
	n = clamp(n, lim.MaxComponentsPerResponse)

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := gen.NewID()
		ids[i] = id
		initial := map[string]any{
			"title":       fmt.Sprintf("Delayed Card #%d", i+1),
			"date":        nowStamp(),
			"description": "Generating units … please wait.",
		}
		if err := introduceFrame(ctx, sink, reg, wire.KindSimple, id, initial); err != nil {
			return err
		}
	}

	if err := typeProse(ctx, sink, fmt.Sprintf("Processing %d delayed cards…", n), lim.CharDelay, lim.WordDelay); err != nil {
		return err
	}
	if err := sink.Sleep(ctx, lim.MultiDelayedCardWait); err != nil {
		return err
	}

	for i, id := range ids {
		update := map[string]any{
			"description": "Units added successfully!",
			"units":       50 * (i + 1),
		}
		if err := updateFrame(ctx, sink, reg, wire.KindSimple, id, update); err != nil {
			return err
		}
	}

	return sink.Text(ctx, " "+sentenceDone)
}

// IncrementalCard streams one id with three successive single-field
// updates (title, then description, then value).
func IncrementalCard(ctx context.Context, sink Sink, reg *registry.Registry, gen *idgen.Generator, lim config.Limits) error {
	id := gen.NewID()
	if err := introduceFrame(ctx, sink, reg, wire.KindSimple, id, map[string]any{}); err != nil {
		return err
	}

	if err := typeProse(ctx, sink, "Loading card in stages …", lim.CharDelay, lim.WordDelay); err != nil {
		return err
	}

	c := presets.Cards[0]
	steps := []map[string]any{
		{"title": c.Title},
		{"description": c.Description},
		{"value": c.Value},
	}
	for _, step := range steps {
		if err := updateFrame(ctx, sink, reg, wire.KindSimple, id, step); err != nil {
			return err
		}
		if err := sink.Sleep(ctx, lim.FrameDelay); err != nil {
			return err
		}
	}

	return sink.Text(ctx, " "+sentenceDone)
}

// nowStamp formats the current time the way every card/table/chart
// timestamp field is rendered on the wire.
func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
