package fieldcheck

import (
	"bytes"
	"encoding/json"
	"fmt"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaRule builds a rule whose Test validates the candidate value against
// a JSON Schema document (a raw map, e.g. decoded from configuration or
// produced by SchemaFor). The value is marshaled to JSON and validated
// against the compiled schema; marshal failures count as invalid. The
// schema map is not retained and may be reused by the caller.
//
// invalidText may be nil for a silent gating rule; set ValidText on the
// returned rule if positive feedback is wanted.
func SchemaRule[C, V any](key string, schemaMap map[string]any, invalidText func(C) string) (Rule[C, V], error) {
	compiled, err := compileSchema(schemaMap)
	if err != nil {
		return Rule[C, V]{}, fmt.Errorf("compile schema for rule %q: %w", key, err)
	}
	return Rule[C, V]{
		Key: key,
		Test: func(_ C, c Candidate[V]) bool {
			data, err := json.Marshal(c.Value)
			if err != nil {
				return false
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				return false
			}
			return compiled.Validate(doc) == nil
		},
		InvalidText: invalidText,
	}, nil
}

// SchemaFor reflects a JSON Schema from type T's struct tags and returns it
// as a raw map suitable for SchemaRule. The reflected $id is stripped so
// compilation does not depend on it.
func SchemaFor[T any]() (map[string]any, error) {
	var v T
	schema := invopop.Reflect(&v)
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(data, &schemaMap); err != nil {
		return nil, err
	}
	stripSchemaIDs(schemaMap)
	return schemaMap, nil
}

// compileSchema compiles a raw JSON Schema map into a validator. The map is
// round-tripped through JSON so the compiler sees plain json.Number-typed
// values and the caller's map is never mutated.
func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("schema.json")
}

// walkSchema recursively visits every map node in the schema tree (including $defs).
func walkSchema(schemaMap map[string]any, visit func(map[string]any)) {
	if schemaMap == nil {
		return
	}
	visit(schemaMap)
	for _, val := range schemaMap {
		switch v := val.(type) {
		case map[string]any:
			walkSchema(v, visit)
		case []any:
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					walkSchema(m, visit)
				}
			}
		}
	}
}

// stripSchemaIDs removes id and $id from schema so resolution does not depend on them.
func stripSchemaIDs(schemaMap map[string]any) {
	walkSchema(schemaMap, func(n map[string]any) {
		delete(n, "id")
		delete(n, "$id")
	})
}
