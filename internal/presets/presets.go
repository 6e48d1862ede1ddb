// Package presets holds the fixed sample-data catalogs for cards, tables,
// and charts. Data ships as embedded JSON, loaded once at init.
package presets

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFS embed.FS

// Card is one of the three fixed card scenarios.
type Card struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       int    `json:"value"`
	Units       int    `json:"units"`
}

// Table is one of the three fixed table schemas (sales, users, products).
type Table struct {
	Key     string   `json:"key"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Chart is one of the four fixed chart scenarios.
type Chart struct {
	Key         string    `json:"key"`
	ChartType   string    `json:"chart_type"`
	Title       string    `json:"title"`
	XAxis       []string  `json:"x_axis"`
	SeriesLabel string    `json:"series_label"`
	Values      []float64 `json:"values"`
}

// Cards holds the three card scenarios in fixed order.
var Cards []Card

// Tables maps table kind ("sales", "users", "products") to its schema.
var Tables map[string]Table

// TableOrder is the fixed fill order used when a request names no kind.
var TableOrder = []string{"sales", "users", "products"}

// Charts maps chart preset key to its scenario.
var Charts map[string]Chart

// ChartOrder is the fixed fill order used when a request names no preset.
var ChartOrder = []string{"sales_line", "revenue_bar", "growth_line", "performance_bar"}

func init() {
	mustLoad("data/cards.json", &Cards)

	if err := loadJSON("data/tables.json", &Tables); err != nil {
		panic(fmt.Errorf("presets: loading tables: %w", err))
	}
	if err := loadJSON("data/charts.json", &Charts); err != nil {
		panic(fmt.Errorf("presets: loading charts: %w", err))
	}
}

func mustLoad(path string, v any) {
	if err := loadJSON(path, v); err != nil {
		panic(fmt.Errorf("presets: loading %s: %w", path, err))
	}
}

func loadJSON(path string, v any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
