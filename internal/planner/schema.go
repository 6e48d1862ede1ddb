package planner

import (
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"chatstream/internal/wire"
)

// permittedChartTypes is the closed set of chart renderings the frontend
// understands.
var permittedChartTypes = []string{"line", "bar", "area", "pie", "scatter"}

// schemaSources holds one JSON Schema document per component kind,
// compiled once at package init the way the source repo compiles its
// schemas up front (internal/runtime/script_runner.go's validate step).
var schemaSources = map[wire.Kind]string{
	wire.KindSimple: `{
		"type": "object",
		"properties": {
			"title": {"type": "string"},
			"description": {"type": "string"},
			"value": {"type": "number"},
			"date": {"type": "string"},
			"units": {"type": "number"},
			"timestamp": {"type": "string"}
		},
		"additionalProperties": false
	}`,
	wire.KindTable: `{
		"type": "object",
		"required": ["columns"],
		"properties": {
			"columns": {"type": "array", "items": {"type": "string"}, "minItems": 1},
			"rows": {"type": "array"},
			"total_rows": {"type": "number"},
			"timestamp": {"type": "string"}
		},
		"additionalProperties": false
	}`,
	wire.KindChart: `{
		"type": "object",
		"required": ["chart_type", "title", "x_axis"],
		"properties": {
			"chart_type": {"type": "string", "enum": ["line", "bar", "area", "pie", "scatter"]},
			"title": {"type": "string"},
			"x_axis": {"type": "array", "items": {"type": "string"}, "minItems": 1},
			"series": {"type": "array"},
			"total_points": {"type": "number"},
			"timestamp": {"type": "string"}
		},
		"additionalProperties": false
	}`,
}

var compiledSchemas map[wire.Kind]*jsonschema.Schema

func init() {
	compiledSchemas = make(map[wire.Kind]*jsonschema.Schema, len(schemaSources))
	for kind, src := range schemaSources {
		c := jsonschema.NewCompiler()
		name := string(kind) + ".json"
		if err := c.AddResource(name, strings.NewReader(src)); err != nil {
			panic(fmt.Errorf("planner: adding schema resource %s: %w", name, err))
		}
		schema, err := c.Compile(name)
		if err != nil {
			panic(fmt.Errorf("planner: compiling schema %s: %w", name, err))
		}
		compiledSchemas[kind] = schema
	}
}

func isPermittedChartType(t string) bool {
	for _, v := range permittedChartTypes {
		if v == t {
			return true
		}
	}
	return false
}
