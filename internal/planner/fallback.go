package planner

import "chatstream/internal/wire"

// FallbackPlan is the fixed three-component plan served when the planner
// cannot produce a valid plan. Keeping it a pure function with no
// randomness or clock reads lets callers assert structural stability
// across runs.
func FallbackPlan() Plan {
	return Plan{Components: []PlanComponent{
		{
			Kind: wire.KindSimple,
			Data: map[string]any{
				"title":       "Dashboard Unavailable",
				"description": "Showing a placeholder summary while insights are regenerated.",
				"value":       0,
			},
		},
		{
			Kind: wire.KindTable,
			Data: map[string]any{
				"columns":    []string{"Metric", "Value"},
				"rows":       []any{},
				"total_rows": 0,
			},
		},
		{
			Kind: wire.KindChart,
			Data: map[string]any{
				"chart_type": "line",
				"title":      "Trend Unavailable",
				"x_axis":     []string{},
				"series":     []any{},
			},
		},
	}}
}
