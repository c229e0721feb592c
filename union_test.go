package zodgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/zodgen/ir"
)

func variant(props map[string]ir.Schema) *ir.Object {
	required := make([]string, 0, len(props))
	for k := range props {
		required = append(required, k)
	}
	return ir.Struct(props, required...)
}

func TestUnion_Discriminated(t *testing.T) {
	a := variant(map[string]ir.Schema{"kind": ir.Const("A"), "x": num()})
	b := variant(map[string]ir.Schema{"kind": ir.Const("B"), "y": str()})
	assert.Equal(t,
		`z.discriminatedUnion("kind", [z.object({ "kind": z.literal("A"), "x": z.number() }), z.object({ "kind": z.literal("B"), "y": z.string() })])`,
		translate(t, Config{}, ir.OneOf(a, b)))

	key, ok := DiscriminantKey([]ir.Schema{a, b})
	assert.True(t, ok)
	assert.Equal(t, "kind", key)

	// singleton enums count as literals too
	c := variant(map[string]ir.Schema{"kind": ir.Enum("C")})
	key, ok = DiscriminantKey([]ir.Schema{a, b, c})
	assert.True(t, ok)
	assert.Equal(t, "kind", key)
}

func TestUnion_PlainWhenDiscriminantAmbiguousOrMissing(t *testing.T) {
	twoKeys := []ir.Schema{
		variant(map[string]ir.Schema{"kind": ir.Const("A"), "type": ir.Const("x")}),
		variant(map[string]ir.Schema{"kind": ir.Const("B"), "type": ir.Const("y")}),
	}
	_, ok := DiscriminantKey(twoKeys)
	assert.False(t, ok)
	out := translate(t, Config{}, ir.AnyOf(twoKeys...))
	assert.Equal(t,
		`z.union([z.object({ "kind": z.literal("A"), "type": z.literal("x") }), z.object({ "kind": z.literal("B"), "type": z.literal("y") })])`,
		out)

	noShared := []ir.Schema{
		variant(map[string]ir.Schema{"kind": ir.Const("A")}),
		variant(map[string]ir.Schema{"tag": ir.Const("B")}),
	}
	_, ok = DiscriminantKey(noShared)
	assert.False(t, ok)

	notLiteral := []ir.Schema{
		variant(map[string]ir.Schema{"kind": ir.Const("A")}),
		variant(map[string]ir.Schema{"kind": str()}),
	}
	_, ok = DiscriminantKey(notLiteral)
	assert.False(t, ok)

	mixed := []ir.Schema{variant(map[string]ir.Schema{"kind": ir.Const("A")}), str()}
	_, ok = DiscriminantKey(mixed)
	assert.False(t, ok)

	nested := ir.OneOf(variant(map[string]ir.Schema{"kind": ir.Const("A")}))
	nested.Type = ir.Single(ir.TypeObject)
	nested.Object = &ir.ObjectFacet{Properties: map[string]ir.Schema{"kind": ir.Const("N")}}
	_, ok = DiscriminantKey([]ir.Schema{variant(map[string]ir.Schema{"kind": ir.Const("B")}), nested})
	assert.False(t, ok)

	_, ok = DiscriminantKey(nil)
	assert.False(t, ok)
}

func TestUnion_MemberCounts(t *testing.T) {
	assert.Equal(t, `z.any()`, translate(t, Config{}, ir.OneOf()))
	assert.Equal(t, `z.unknown()`, translate(t, Config{PreferUnknown: true}, ir.AnyOf()))

	member := ir.Struct(map[string]ir.Schema{"a": str(), "b": ir.ArrayOf(num())}, "a")
	direct := translate(t, Config{}, member)
	assert.Equal(t, direct, translate(t, Config{}, ir.OneOf(member)))
	assert.Equal(t, direct, translate(t, Config{}, ir.AnyOf(member)))

	// oneOf wins over anyOf
	both := &ir.Object{Subschemas: &ir.Subschemas{OneOf: []ir.Schema{str()}, AnyOf: []ir.Schema{num()}}}
	assert.Equal(t, `z.string()`, translate(t, Config{}, both))
}

func TestUnion_Intersection(t *testing.T) {
	u := ir.OneOf(str(), num())
	u.Object = &ir.ObjectFacet{Properties: map[string]ir.Schema{"a": str()}, Required: []string{"a"}}
	assert.Equal(t,
		`z.intersection(z.union([z.string(), z.number()]), z.object({ "a": z.string() }))`,
		translate(t, Config{}, u))
	assert.Equal(t,
		`z.intersection(z.object({ "a": z.string() }), z.union([z.string(), z.number()]))`,
		translate(t, Config{IntersectionOrder: ObjectFirst}, u))

	one := ir.OneOf(str())
	one.Object = u.Object
	assert.Equal(t, `z.intersection(z.string(), z.object({ "a": z.string() }))`, translate(t, Config{}, one))

	empty := ir.OneOf()
	empty.Object = u.Object
	assert.Equal(t, `z.object({ "a": z.string() })`, translate(t, Config{}, empty))
}

func TestUnion_UnsupportedCombinators(t *testing.T) {
	for _, sub := range []*ir.Subschemas{
		{AllOf: []ir.Schema{str()}},
		{Not: str()},
		{If: str(), Then: num()},
	} {
		e := translateErr(t, Config{}, &ir.Object{Subschemas: sub})
		assert.Equal(t, KindUnimplemented, e.Kind)
		assert.Equal(t, "subschemas", e.Facet)
	}

	// member failures carry the member path
	bad := ir.ArrayOf(str())
	bad.Array.UniqueItems = ir.Ptr(true)
	e := translateErr(t, Config{}, ir.AnyOf(str(), bad))
	assert.Equal(t, "/anyOf/1", e.Path)

	_, err := MustNew(Config{}).TranslateUnion(str())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreconditionViolated)
}
