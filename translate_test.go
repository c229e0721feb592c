package zodgen

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/zodgen/ir"
)

func TestTranslate_TrivialSchemas(t *testing.T) {
	assert.Equal(t, "z.any()", translate(t, Config{}, ir.True))
	assert.Equal(t, "z.unknown()", translate(t, Config{PreferUnknown: true}, ir.True))
	assert.Equal(t, "z.never()", translate(t, Config{}, ir.False))
}

func TestTranslate_FalseAtAnyPosition(t *testing.T) {
	cfgs := []Config{{}, {PreferUnknown: true, ArrayStyle: ArrayPostfix, Descriptions: true}, {ClosedObjects: ClosedImplicit}}
	for _, cfg := range cfgs {
		assert.Equal(t, `z.object({ "x": z.never() })`, translate(t, cfg, ir.Struct(map[string]ir.Schema{"x": ir.False}, "x")))
		assert.Equal(t, `z.tuple([z.never()])`, translate(t, cfg, ir.TupleOf(ir.False)))
		assert.Equal(t, `z.union([z.never(), z.string()])`, translate(t, cfg, ir.OneOf(ir.False, str())))
	}
	assert.Equal(t, `z.array(z.never())`, translate(t, Config{}, ir.ArrayOf(ir.False)))
	assert.Equal(t, `z.never().array()`, translate(t, Config{ArrayStyle: ArrayPostfix}, ir.ArrayOf(ir.False)))
}

func TestTranslate_DispatchPrecedence(t *testing.T) {
	// union beats literal
	u := ir.OneOf(str(), num())
	u.Const = &ir.Literal{Value: "x"}
	assert.Equal(t, `z.union([z.string(), z.number()])`, translate(t, Config{}, u))

	// literal beats type
	lit := str()
	lit.Const = &ir.Literal{Value: "x"}
	assert.Equal(t, `z.literal("x")`, translate(t, Config{}, lit))

	single := str()
	single.Enum = []any{"only"}
	assert.Equal(t, `z.literal("only")`, translate(t, Config{}, single))

	// a typed string node with values goes to the enum rule
	choice := str()
	choice.Enum = []any{"a", "b"}
	assert.Equal(t, `z.enum(["a", "b"])`, translate(t, Config{}, choice))

	e := translateErr(t, Config{}, &ir.Object{Format: "email"})
	assert.Equal(t, KindInvalidSchema, e.Kind)
	assert.Equal(t, "/", e.Path)
}

func TestTranslate_UntypedEnumIsInvalid(t *testing.T) {
	tr := MustNew(Config{})
	for _, node := range []*ir.Object{ir.Enum("a", "b"), ir.Enum(), ir.Enum(1, "a")} {
		out, err := tr.Translate(node)
		assert.Empty(t, out)
		assert.ErrorIs(t, err, ErrInvalidSchema)
	}

	e := translateErr(t, Config{}, ir.Struct(map[string]ir.Schema{"role": ir.Enum("admin", "guest")}))
	assert.Equal(t, KindInvalidSchema, e.Kind)
	assert.Equal(t, "/properties/role", e.Path)
}

func TestTranslate_TypeSets(t *testing.T) {
	cases := []struct {
		set  ir.Set
		want string
	}{
		{ir.Set{ir.TypeString, ir.TypeNull}, `z.string().nullable()`},
		{ir.Set{ir.TypeNull, ir.TypeInteger}, `z.number().int().nullable()`},
		{ir.Set{ir.TypeString}, `z.string()`},
		{ir.Set{ir.TypeString, ir.TypeNumber}, `z.union([z.string(), z.number()])`},
		{ir.Set{ir.TypeBoolean, ir.TypeNull, ir.TypeString}, `z.union([z.boolean(), z.string()]).nullable()`},
		{ir.Set{ir.TypeNull}, `z.null()`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, translate(t, Config{}, &ir.Object{Type: tc.set}), "set %v", tc.set)
	}

	e := translateErr(t, Config{}, &ir.Object{Type: ir.Set{}})
	assert.Equal(t, KindInvalidSchema, e.Kind)
	assert.Equal(t, "type", e.Facet)
}

func TestTranslate_TypeSetNeverDiscriminated(t *testing.T) {
	o := &ir.Object{
		Type: ir.Set{ir.TypeObject, ir.TypeString},
		Object: &ir.ObjectFacet{
			Properties: map[string]ir.Schema{"kind": ir.Const("a")},
			Required:   []string{"kind"},
		},
	}
	assert.Equal(t, `z.union([z.object({ "kind": z.literal("a") }), z.string()])`, translate(t, Config{}, o))
}

func TestTranslate_Descriptions(t *testing.T) {
	cfg := Config{Descriptions: true}
	assert.Equal(t, `z.string().describe("say \"hi\" <b>")`, translate(t, cfg, str().Describe(`say "hi" <b>`)))

	nullable := ir.Nullable(ir.TypeString).Describe("d")
	assert.Equal(t, `z.string().nullable().describe("d")`, translate(t, cfg, nullable))

	assert.Equal(t, `z.literal(1).describe("one")`, translate(t, cfg, ir.Const(1).Describe("one")))
	assert.Equal(t, `z.union([z.string(), z.number()]).describe("u")`, translate(t, cfg, ir.OneOf(str(), num()).Describe("u")))

	// off by default
	assert.Equal(t, `z.string()`, translate(t, Config{}, str().Describe("ignored")))
}

func TestTranslate_Deterministic(t *testing.T) {
	props := map[string]ir.Schema{}
	for _, k := range []string{"zeta", "alpha", "mu", "beta", "omega", "gamma", "delta"} {
		props[k] = str()
	}
	s := ir.Struct(props, "alpha", "mu")
	first := translate(t, Config{}, s)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, translate(t, Config{}, s))
	}
	assert.True(t, strings.Index(first, `"alpha"`) < strings.Index(first, `"zeta"`))
}

func TestTranslate_ConcurrentUse(t *testing.T) {
	tr := MustNew(Config{})
	s := ir.Struct(map[string]ir.Schema{"a": str(), "b": ir.ArrayOf(num())}, "a")
	want, err := tr.Translate(s)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := tr.Translate(s)
			if err == nil && got != want {
				err = errors.New("mismatch: " + got)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestTranslate_DepthLimit(t *testing.T) {
	deep := ir.ArrayOf(ir.ArrayOf(ir.ArrayOf(str())))
	e := translateErr(t, Config{MaxDepth: 3}, deep)
	assert.Equal(t, KindDepthExceeded, e.Kind)
	assert.Equal(t, "/items/items/items", e.Path)
	assert.Equal(t, 3, e.Params["limit"])
	assert.True(t, errors.Is(e, ErrDepthExceeded))
	assert.Contains(t, e.Error(), "schema nesting too deep (max 3)")

	assert.Equal(t, "z.array(z.array(z.string()))", translate(t, Config{MaxDepth: 3}, ir.ArrayOf(ir.ArrayOf(str()))))
}

func TestTranslate_InvalidVariants(t *testing.T) {
	e := translateErr(t, Config{}, nil)
	assert.Equal(t, KindUnimplemented, e.Kind)

	e = translateErr(t, Config{}, (*ir.Object)(nil))
	assert.Equal(t, KindInvalidSchema, e.Kind)
}

func TestTranslate_ErrorPathsAndSentinels(t *testing.T) {
	arr := ir.ArrayOf(str())
	arr.Array.Contains = str()
	s := ir.Struct(map[string]ir.Schema{"a/b": ir.Struct(map[string]ir.Schema{"tags": arr})})

	tr := MustNew(Config{})
	_, err := tr.Translate(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnimplemented))
	assert.False(t, errors.Is(err, ErrInvalidSchema))

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "/properties/a~1b/properties/tags", e.Path)
	assert.Equal(t, "array.contains", e.Facet)
	assert.Equal(t, "unsupported schema shape at /properties/a~1b/properties/tags: array.contains", e.Error())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{ArrayStyle: "sideways"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ArrayStyle")

	assert.Panics(t, func() { MustNew(Config{MaxDepth: -1}) })
}
