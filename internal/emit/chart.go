package emit

import (
	"context"
	"fmt"
	"regexp"

	"chatstream/internal/config"
	"chatstream/internal/dispatch"
	"chatstream/internal/idgen"
	"chatstream/internal/presets"
	"chatstream/internal/registry"
	"chatstream/internal/wire"
)

// chartGroups maps request keywords (line/trend/sales, bar/revenue,
// growth, performance/metric) to the preset they select.
var chartGroups = []dispatch.KindGroup{
	{Key: "sales_line", Pattern: regexp.MustCompile(`(?i)\b(line|trend|sales)\b`)},
	{Key: "revenue_bar", Pattern: regexp.MustCompile(`(?i)\b(bar|revenue)\b`)},
	{Key: "growth_line", Pattern: regexp.MustCompile(`(?i)\bgrowth\b`)},
	{Key: "performance_bar", Pattern: regexp.MustCompile(`(?i)\b(performance|metrics?)\b`)},
}

type chartState struct {
	id   string
	kind string
}

// Charts selects presets, introduces each with an empty series, then
// interleaves point updates round-robin by point index. Each chart
// carries exactly one series; only its values array accumulates, while
// chart_type, title, and x_axis never reappear after the first frame.
func Charts(ctx context.Context, sink Sink, reg *registry.Registry, gen *idgen.Generator, lim config.Limits, message string) error {
	count := dispatch.ExtractCount(message)
	kinds := dispatch.SelectKinds(message, count, chartGroups, presets.ChartOrder)
	if len(kinds) > lim.MaxChartsPerResponse {
		kinds = kinds[:lim.MaxChartsPerResponse]
	}

	charts := make([]chartState, len(kinds))
	for i, kind := range kinds {
		c := presets.Charts[kind]
		id := gen.NewID()
		charts[i] = chartState{id: id, kind: kind}

		initial := map[string]any{
			"chart_type": c.ChartType,
			"title":      c.Title,
			"x_axis":     c.XAxis,
			"series":     []any{},
		}
		if err := introduceFrame(ctx, sink, reg, wire.KindChart, id, initial); err != nil {
			return err
		}
	}

	label := kinds[0]
	if len(kinds) > 1 {
		label = "charts"
	}
	if err := typeProse(ctx, sink, fmt.Sprintf("Rendering %s …", label), lim.CharDelay, lim.WordDelay); err != nil {
		return err
	}

	maxPoints := 0
	for _, kind := range kinds {
		if n := len(presets.Charts[kind].Values); n > maxPoints {
			maxPoints = n
		}
	}
	if maxPoints > lim.MaxChartPoints {
		maxPoints = lim.MaxChartPoints
	}

	total := 0
	for pointIdx := 0; pointIdx < maxPoints; pointIdx++ {
		for _, c := range charts {
			preset := presets.Charts[c.kind]
			if pointIdx >= len(preset.Values) || pointIdx >= lim.MaxChartPoints {
				continue
			}

			current, ok := reg.Get(c.id)
			if !ok {
				continue
			}
			values := currentSeriesValues(current["series"])
			values = append(values, preset.Values[pointIdx])

			newSeries := []any{
				map[string]any{"label": preset.SeriesLabel, "values": values},
			}
			patch := map[string]any{"series": newSeries}
			if err := updateFrame(ctx, sink, reg, wire.KindChart, c.id, patch); err != nil {
				return err
			}
			total++
			if err := sink.Sleep(ctx, lim.ChartPointDelay); err != nil {
				return err
			}
		}
	}

	return sink.Text(ctx, fmt.Sprintf(" Rendered %d total points.", total))
}

// currentSeriesValues extracts the accumulated values slice from a
// registry's stored series (round-tripped through JSON, so it arrives as
// []any of map[string]any), or an empty slice if no series exists yet.
func currentSeriesValues(series any) []any {
	list, ok := series.([]any)
	if !ok || len(list) == 0 {
		return []any{}
	}
	first, ok := list[0].(map[string]any)
	if !ok {
		return []any{}
	}
	values, ok := first["values"].([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, len(values))
	copy(out, values)
	return out
}
