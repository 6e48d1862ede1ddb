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

var tableGroups = []dispatch.KindGroup{
	{Key: "sales", Pattern: regexp.MustCompile(`(?i)\bsales\b`)},
	{Key: "users", Pattern: regexp.MustCompile(`(?i)\busers?\b`)},
	{Key: "products", Pattern: regexp.MustCompile(`(?i)\bproducts?\b`)},
}

type tableState struct {
	id   string
	kind string
}

// Tables selects kinds, introduces each
// with an empty row set, then interleave row updates round-robin by row
// index so every visible table makes progress together.
func Tables(ctx context.Context, sink Sink, reg *registry.Registry, gen *idgen.Generator, lim config.Limits, message string) error {
	count := dispatch.ExtractCount(message)
	kinds := dispatch.SelectKinds(message, count, tableGroups, presets.TableOrder)
	if len(kinds) > lim.MaxTablesPerResponse {
		kinds = kinds[:lim.MaxTablesPerResponse]
	}

	tables := make([]tableState, len(kinds))
	for i, kind := range kinds {
		t := presets.Tables[kind]
		id := gen.NewID()
		tables[i] = tableState{id: id, kind: kind}

		initial := map[string]any{
			"columns":    t.Columns,
			"rows":       []any{},
			"total_rows": 0,
		}
		if err := introduceFrame(ctx, sink, reg, wire.KindTable, id, initial); err != nil {
			return err
		}
	}

	label := kinds[0]
	if len(kinds) > 1 {
		label = "tables"
	}
	if err := typeProse(ctx, sink, fmt.Sprintf("Loading %s …", label), lim.CharDelay, lim.WordDelay); err != nil {
		return err
	}

	maxRows := 0
	for _, kind := range kinds {
		if n := len(presets.Tables[kind].Rows); n > maxRows {
			maxRows = n
		}
	}
	if maxRows > lim.MaxTableRows {
		maxRows = lim.MaxTableRows
	}

	total := 0
	for rowIdx := 0; rowIdx < maxRows; rowIdx++ {
		for _, t := range tables {
			srcRows := presets.Tables[t.kind].Rows
			if rowIdx >= len(srcRows) || rowIdx >= lim.MaxTableRows {
				continue
			}

			current, ok := reg.Get(t.id)
			if !ok {
				continue
			}
			rows := toAnySlice(current["rows"])
			rows = append(rows, cloneRow(srcRows[rowIdx]))

			patch := map[string]any{
				"rows":       rows,
				"total_rows": len(rows),
			}
			if err := updateFrame(ctx, sink, reg, wire.KindTable, t.id, patch); err != nil {
				return err
			}
			total++
			if err := sink.Sleep(ctx, lim.TableRowDelay); err != nil {
				return err
			}
		}
	}

	return sink.Text(ctx, fmt.Sprintf(" Loaded %d total rows.", total))
}

func toAnySlice(v any) []any {
	if v == nil {
		return []any{}
	}
	s, ok := v.([]any)
	if !ok {
		return []any{}
	}
	return s
}

func cloneRow(row []any) []any {
	out := make([]any, len(row))
	copy(out, row)
	return out
}
