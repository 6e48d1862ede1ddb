package presets

import "testing"

func TestCardsLoaded(t *testing.T) {
	if len(Cards) == 0 {
		t.Fatalf("expected at least one card preset")
	}
	for _, c := range Cards {
		if c.Key == "" || c.Title == "" {
			t.Fatalf("card preset missing key/title: %+v", c)
		}
	}
}

func TestTablesRowsMatchColumnCount(t *testing.T) {
	for _, kind := range TableOrder {
		tbl, ok := Tables[kind]
		if !ok {
			t.Fatalf("missing table preset %q", kind)
		}
		if len(tbl.Columns) == 0 {
			t.Fatalf("table %q has no columns", kind)
		}
		for i, row := range tbl.Rows {
			if len(row) != len(tbl.Columns) {
				t.Fatalf("table %q row %d has %d cells, want %d", kind, i, len(row), len(tbl.Columns))
			}
		}
	}
}

func TestChartsValuesMatchXAxisLength(t *testing.T) {
	for _, kind := range ChartOrder {
		c, ok := Charts[kind]
		if !ok {
			t.Fatalf("missing chart preset %q", kind)
		}
		if len(c.XAxis) == 0 {
			t.Fatalf("chart %q has empty x_axis", kind)
		}
		if len(c.Values) != len(c.XAxis) {
			t.Fatalf("chart %q has %d values but %d x_axis points", kind, len(c.Values), len(c.XAxis))
		}
		if c.ChartType != "line" && c.ChartType != "bar" {
			t.Fatalf("chart %q has unexpected chart_type %q", kind, c.ChartType)
		}
	}
}

func TestChartOrderAndTableOrderMatchCatalogs(t *testing.T) {
	if len(ChartOrder) != len(Charts) {
		t.Fatalf("ChartOrder length %d does not match Charts catalog size %d", len(ChartOrder), len(Charts))
	}
	if len(TableOrder) != len(Tables) {
		t.Fatalf("TableOrder length %d does not match Tables catalog size %d", len(TableOrder), len(Tables))
	}
}
