package zodgen

import (
	"fmt"
	"strconv"

	"github.com/reoring/zodgen/internal/zod"
	"github.com/reoring/zodgen/ir"
)

func (t *Translator) array(w walk, o *ir.Object) (*zod.Expr, error) {
	af := o.Array
	if af == nil {
		af = &ir.ArrayFacet{}
	}
	if af.Contains != nil {
		return nil, newError(KindUnimplemented, w.path, "array.contains", "")
	}
	if af.UniqueItems != nil && *af.UniqueItems {
		return nil, newError(KindUnimplemented, w.path, "array.uniqueItems", "")
	}

	switch items := af.Items.(type) {
	case nil:
		return t.withLength(t.wrapArray(zod.Z("never")), af), nil
	case ir.SingleItem:
		item, err := t.schema(w.at("items"), items.Schema)
		if err != nil {
			return nil, err
		}
		return t.withLength(t.wrapArray(item), af), nil
	case ir.TupleItems:
		// Arity fixes the length, so min/max items are not applied.
		elems := make(zod.Array, 0, len(items))
		for i, s := range items {
			e, err := t.schema(w.at("items", strconv.Itoa(i)), s)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		if af.AdditionalItems == nil {
			return zod.Z("tuple", elems), nil
		}
		rest, err := t.schema(w.at("additionalItems"), af.AdditionalItems)
		if err != nil {
			return nil, err
		}
		return zod.Z("tuple", elems, rest), nil
	default:
		return nil, newError(KindUnimplemented, w.path, "array.items", fmt.Sprintf("items shape %T", af.Items))
	}
}

func (t *Translator) wrapArray(item *zod.Expr) *zod.Expr {
	if t.cfg.ArrayStyle == ArrayPostfix {
		return item.With("array")
	}
	return zod.Z("array", item)
}

func (t *Translator) withLength(e *zod.Expr, af *ir.ArrayFacet) *zod.Expr {
	if af.MinItems != nil {
		e = e.With("min", formatCount(*af.MinItems))
	}
	if af.MaxItems != nil {
		e = e.With("max", formatCount(*af.MaxItems))
	}
	return e
}
