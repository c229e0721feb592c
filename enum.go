package zodgen

import (
	"strconv"

	"github.com/reoring/zodgen/internal/zod"
	"github.com/reoring/zodgen/ir"
)

// enum renders a finite choice. Literal nodes must be routed to the literal
// rule first; reaching here with one is a dispatch bug.
func (t *Translator) enum(w walk, o *ir.Object) (*zod.Expr, error) {
	if o.Enum == nil {
		return nil, newError(KindPreconditionViolated, w.path, "enum", "enum rule needs enum values")
	}
	if IsLiteral(o) {
		return nil, newError(KindPreconditionViolated, w.path, "enum", "literal node passed to the enum rule")
	}
	if len(o.Enum) == 0 {
		return zod.Z("never"), nil
	}

	allStrings := true
	for _, v := range o.Enum {
		if _, ok := v.(string); !ok {
			allStrings = false
			break
		}
	}
	values := make(zod.Array, 0, len(o.Enum))
	for i, v := range o.Enum {
		vw := w.at("enum", strconv.Itoa(i))
		if allStrings {
			raw, err := encodeJSON(vw, "enum", v)
			if err != nil {
				return nil, err
			}
			values = append(values, raw)
			continue
		}
		lit, err := t.literalValue(vw, "enum", v)
		if err != nil {
			return nil, err
		}
		values = append(values, lit)
	}
	if allStrings {
		return zod.Z("enum", values), nil
	}
	return zod.Z("union", values), nil
}
