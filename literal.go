package zodgen

import (
	"fmt"

	"github.com/reoring/zodgen/internal/zod"
	"github.com/reoring/zodgen/ir"
)

// IsLiteral reports whether o pins a single value: a const, or an enum with
// exactly one entry.
func IsLiteral(o *ir.Object) bool {
	return o != nil && (o.Const != nil || len(o.Enum) == 1)
}

func (t *Translator) literal(w walk, o *ir.Object) (*zod.Expr, error) {
	var v any
	facet := "const"
	switch {
	case o.Const != nil:
		v = o.Const.Value
	case len(o.Enum) == 1:
		v, facet = o.Enum[0], "enum"
	default:
		return nil, newError(KindPreconditionViolated, w.path, "const", "literal rule needs a const or a single-entry enum")
	}
	return t.literalValue(w, facet, v)
}

// literalValue renders z.literal(v). Zod literals are primitives only.
func (t *Translator) literalValue(w walk, facet string, v any) (*zod.Expr, error) {
	switch v.(type) {
	case map[string]any, []any:
		return nil, newError(KindUnimplemented, w.path, facet, fmt.Sprintf("composite literal %T", v))
	}
	raw, err := encodeJSON(w, facet, v)
	if err != nil {
		return nil, err
	}
	return zod.Z("literal", raw), nil
}
