package planner

import "fmt"

// buildPrompt constructs the fixed system instructions plus the verbatim
// user message. The model is told the closed kind set, required fields,
// permitted chart types, and the exact delimiter its answer must be
// wrapped in, the same three-byte sequence used on the wire.
func buildPrompt(message string) string {
	return fmt.Sprintf(`You are a UI planning assistant. Given a user request, respond with a JSON
array of component plan objects and nothing else, wrapped between the
exact three-character marker $$$ on both sides (the same marker on the
opening and closing side, with no other text between the markers and the
array).

Each object has the shape {"type": <kind>, "data": {...}}. <kind> is one of:

- "SimpleComponent": data may include title (string), description (string),
  value (number), date (string), units (number), timestamp (string).
- "TableA": data must include columns (array of strings); may include rows
  (array of arrays of text/number/bool cells), total_rows (number).
- "ChartComponent": data must include chart_type (one of "line", "bar",
  "area", "pie", "scatter"), title (string), x_axis (array of strings); may
  include series (array of {label, values}), total_points (number).

Return at most 5 objects.

User request: %s`, message)
}
