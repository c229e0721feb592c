package zodgen

import (
	"strconv"

	"github.com/reoring/zodgen/internal/zod"
	"github.com/reoring/zodgen/ir"
)

// IsUnion reports whether o carries subschemas and must go through the
// union rule, whatever else it declares.
func IsUnion(o *ir.Object) bool {
	return o != nil && o.Subschemas != nil
}

// DiscriminantKey returns the single property key that is a literal in every
// member. Members must all be plain object nodes; any other member shape,
// or zero or several shared literal keys, yields false.
func DiscriminantKey(members []ir.Schema) (string, bool) {
	if len(members) == 0 {
		return "", false
	}
	var common map[string]bool
	for _, m := range members {
		o, ok := m.(*ir.Object)
		if !ok || o == nil || o.Subschemas != nil || o.Object == nil || IsLiteral(o) || o.Enum != nil {
			return "", false
		}
		if ts, ok := o.Type.(ir.Single); !ok || ir.InstanceType(ts) != ir.TypeObject {
			return "", false
		}
		keys := map[string]bool{}
		for k, p := range o.Object.Properties {
			if po, ok := p.(*ir.Object); ok && IsLiteral(po) && !IsUnion(po) {
				if common == nil || common[k] {
					keys[k] = true
				}
			}
		}
		common = keys
		if len(common) == 0 {
			return "", false
		}
	}
	if len(common) != 1 {
		return "", false
	}
	for k := range common {
		return k, true
	}
	return "", false
}

func (t *Translator) union(w walk, o *ir.Object) (*zod.Expr, error) {
	if o.Subschemas == nil {
		return nil, newError(KindPreconditionViolated, w.path, "subschemas", "union rule needs subschemas")
	}
	members, kw := o.Subschemas.OneOf, "oneOf"
	if members == nil {
		members, kw = o.Subschemas.AnyOf, "anyOf"
	}
	if members == nil {
		return nil, newError(KindUnimplemented, w.path, "subschemas", "only oneOf and anyOf are supported")
	}

	var e *zod.Expr
	switch len(members) {
	case 0:
		e = t.anyExpr()
	case 1:
		var err error
		if e, err = t.schema(w.at(kw, "0"), members[0]); err != nil {
			return nil, err
		}
	default:
		exprs := make(zod.Array, 0, len(members))
		for i, m := range members {
			me, err := t.schema(w.at(kw, strconv.Itoa(i)), m)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, me)
		}
		if key, ok := DiscriminantKey(members); ok {
			k, err := encodeJSON(w, "subschemas", key)
			if err != nil {
				return nil, err
			}
			e = zod.Z("discriminatedUnion", k, exprs)
		} else {
			e = zod.Z("union", exprs)
		}
	}

	if o.Object == nil {
		return e, nil
	}
	// Sibling object facet: the value must match a member and this shape.
	shape, err := t.objectFacet(w, o)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return shape, nil
	}
	if t.cfg.IntersectionOrder == ObjectFirst {
		return zod.Z("intersection", shape, e), nil
	}
	return zod.Z("intersection", e, shape), nil
}
