package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/zodgen/ir"
)

func TestRefs_ExpandDefsAndDefinitions(t *testing.T) {
	o, d := mustImport(t, `{
		"type": "object",
		"properties": {
			"a": {"$ref": "#/$defs/Name"},
			"b": {"$ref": "#/definitions/Count", "description": "override"}
		},
		"$defs": {"Name": {"type": "string", "minLength": 1}},
		"definitions": {"Count": {"type": "integer", "description": "base"}}
	}`, Options{})
	assert.False(t, d.HasWarnings())

	a := o.Object.Properties["a"].(*ir.Object)
	assert.Equal(t, ir.Single(ir.TypeString), a.Type)
	assert.Equal(t, uint64(1), *a.String.MinLength)

	b := o.Object.Properties["b"].(*ir.Object)
	assert.Equal(t, ir.Single(ir.TypeInteger), b.Type)
	assert.Equal(t, "override", *b.Metadata.Description)
}

func TestRefs_EscapedName(t *testing.T) {
	o, _ := mustImport(t, `{
		"items": {"$ref": "#/$defs/a~1b"},
		"$defs": {"a/b": {"type": "boolean"}}
	}`, Options{})
	item := o.Array.Items.(ir.SingleItem).Schema.(*ir.Object)
	assert.Equal(t, ir.Single(ir.TypeBoolean), item.Type)
}

func TestRefs_CycleIsError(t *testing.T) {
	_, _, err := Import([]byte(`{
		"$ref": "#/$defs/Node",
		"$defs": {"Node": {"type": "object", "properties": {"next": {"$ref": "#/$defs/Node"}}}}
	}`), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cyclic $ref")
}

func TestRefs_SameDefTwiceIsNotACycle(t *testing.T) {
	o, _ := mustImport(t, `{
		"properties": {"x": {"$ref": "#/$defs/S"}, "y": {"$ref": "#/$defs/S"}},
		"$defs": {"S": {"type": "string"}}
	}`, Options{})
	assert.Len(t, o.Object.Properties, 2)
}

func TestRefs_UnresolvedRef(t *testing.T) {
	s, d, err := Import([]byte(`{"$ref": "https://example.com/x.json"}`), Options{})
	require.NoError(t, err)
	assert.Equal(t, ir.True, s)
	assert.True(t, d.HasWarnings())

	_, _, err = Import([]byte(`{"$ref": "#/$defs/Missing"}`), Options{Strict: true})
	require.Error(t, err)
}
