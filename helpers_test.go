package zodgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/zodgen/ir"
)

func translate(t *testing.T, cfg Config, s ir.Schema) string {
	t.Helper()
	tr, err := New(cfg)
	require.NoError(t, err)
	out, err := tr.Translate(s)
	require.NoError(t, err)
	return out
}

func translateErr(t *testing.T, cfg Config, s ir.Schema) *Error {
	t.Helper()
	tr, err := New(cfg)
	require.NoError(t, err)
	out, err := tr.Translate(s)
	require.Errorf(t, err, "unexpected output %q", out)
	require.Empty(t, out)
	e, ok := AsError(err)
	require.Truef(t, ok, "want *Error, got %T", err)
	return e
}

func str() *ir.Object { return ir.Typed(ir.TypeString) }
func num() *ir.Object { return ir.Typed(ir.TypeNumber) }
func integer() *ir.Object { return ir.Typed(ir.TypeInteger) }

// strEnum returns a string node restricted to values.
func strEnum(values ...any) *ir.Object {
	o := str()
	o.Enum = values
	return o
}

func withString(o *ir.Object, f ir.StringFacet) *ir.Object {
	o.String = &f
	return o
}

func withNumber(o *ir.Object, f ir.NumberFacet) *ir.Object {
	o.Number = &f
	return o
}
