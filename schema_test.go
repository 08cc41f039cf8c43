package fieldcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaRule_RawSchema(t *testing.T) {
	schema := map[string]any{
		"type":      "string",
		"minLength": 3,
	}
	rule, err := SchemaRule[noCtx, string]("shape", schema, Text[noCtx]("at least 3 characters"))
	require.NoError(t, err)
	assert.Equal(t, "shape", rule.Key)

	ok, _ := runRule(t, rule, "abcd")
	assert.True(t, ok)
	ok, entry := runRule(t, rule, "ab")
	assert.False(t, ok)
	require.NotNil(t, entry)
	assert.Equal(t, "at least 3 characters", entry.Text)
}

func TestSchemaRule_CompileError(t *testing.T) {
	_, err := SchemaRule[noCtx, string]("broken", map[string]any{"type": true}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestSchemaRule_InEvaluator(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"email": map[string]any{"type": "string", "minLength": 3},
		},
		"required": []any{"email"},
	}
	rule, err := SchemaRule[noCtx, map[string]any]("profile", schema, Text[noCtx]("profile is incomplete"))
	require.NoError(t, err)

	eval, err := Build(RuleSet[noCtx, map[string]any]{
		Rules: []Rule[noCtx, map[string]any]{rule},
	})
	require.NoError(t, err)

	res := eval(noCtx{}, map[string]any{"email": "a@b.c"}, Focused())
	assert.Equal(t, ValidityValid, res.Validity)

	res = eval(noCtx{}, map[string]any{"name": "bob"}, Focused())
	assert.Equal(t, ValidityInvalid, res.Validity)
	require.NotNil(t, res.Feedback)
	assert.Equal(t, "profile is incomplete", res.Feedback.Entries[0].Text)
}

func TestSchemaFor_ReflectsStructTags(t *testing.T) {
	type profile struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	schema, err := SchemaFor[profile]()
	require.NoError(t, err)
	require.NotEmpty(t, schema)
	assertNoIDs(t, schema)

	rule, err := SchemaRule[noCtx, map[string]any]("profile", schema, Text[noCtx]("bad profile"))
	require.NoError(t, err)

	ok, _ := runRule(t, rule, map[string]any{"name": "bob", "age": 30})
	assert.True(t, ok)
	// Missing required property.
	ok, _ = runRule(t, rule, map[string]any{"name": "bob"})
	assert.False(t, ok)
	// Wrong property type.
	ok, _ = runRule(t, rule, map[string]any{"name": "bob", "age": "thirty"})
	assert.False(t, ok)
}

func TestSchemaFor_ValidatesTypedValue(t *testing.T) {
	type profile struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	schema, err := SchemaFor[profile]()
	require.NoError(t, err)

	rule, err := SchemaRule[noCtx, profile]("profile", schema, nil)
	require.NoError(t, err)
	ok, _ := runRule(t, rule, profile{Name: "bob", Age: 30})
	assert.True(t, ok)
}

func TestStripSchemaIDs(t *testing.T) {
	schema := map[string]any{
		"$id":  "https://example.com/root",
		"type": "object",
		"$defs": map[string]any{
			"inner": map[string]any{
				"id":   "legacy",
				"type": "string",
			},
		},
	}
	stripSchemaIDs(schema)
	assertNoIDs(t, schema)
	assert.Equal(t, "object", schema["type"])
}

func assertNoIDs(t *testing.T, schema map[string]any) {
	t.Helper()
	walkSchema(schema, func(n map[string]any) {
		assert.NotContains(t, n, "$id")
		assert.NotContains(t, n, "id")
	})
}
