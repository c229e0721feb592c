package zod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpr_String(t *testing.T) {
	e := Z("string").With("min", Raw("1")).With("max", Raw("3"))
	assert.Equal(t, "z.string().min(1).max(3)", e.String())

	obj := Z("object", ObjectLit{
		{Key: `"a"`, Value: Z("number")},
		{Key: `"b"`, Value: Z("array", Z("never"))},
	}).With("strict")
	assert.Equal(t, `z.object({ "a": z.number(), "b": z.array(z.never()) }).strict()`, obj.String())

	assert.Equal(t, "z.object({})", Z("object", ObjectLit{}).String())
	assert.Equal(t, `z.tuple([z.string(), z.number()])`, Z("tuple", Array{Z("string"), Z("number")}).String())
	assert.Equal(t, `z.string().regex(new RegExp("^a$"))`,
		Z("string").With("regex", New{Ctor: "RegExp", Args: []Node{Raw(`"^a$"`)}}).String())
}

func TestExpr_WithDoesNotAlias(t *testing.T) {
	base := Z("string").With("min", Raw("1"))
	a := base.With("optional")
	b := base.With("nullable")
	assert.Equal(t, "z.string().min(1).optional()", a.String())
	assert.Equal(t, "z.string().min(1).nullable()", b.String())
	assert.Equal(t, "z.string().min(1)", base.String())
}

func TestExpr_ReplaceLast(t *testing.T) {
	e := Z("number").With("nullable")
	assert.Equal(t, "nullable", e.Last())
	assert.Equal(t, "z.number().nullish()", e.ReplaceLast("nullish").String())
	assert.Equal(t, "z.number().nullable()", e.String())

	bare := Z("number")
	assert.Equal(t, "", bare.Last())
	assert.Equal(t, "z.number().optional()", bare.ReplaceLast("optional").String())
}
