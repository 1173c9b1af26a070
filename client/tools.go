package client

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// NewTool builds a Tool whose input schema is derived from the struct type T.
// Field names follow the struct's json tags; jsonschema tags refine the
// schema (descriptions, enums).
func NewTool[T any](name, description string) Tool {
	r := jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	var v T
	schema := r.Reflect(&v)

	// Round-trip through JSON to get the plain map shape the API takes.
	raw, err := json.Marshal(schema)
	if err != nil {
		return Tool{Name: name, Description: description}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return Tool{Name: name, Description: description}
	}
	delete(m, "$schema")

	return Tool{Name: name, Description: description, InputSchema: m}
}
