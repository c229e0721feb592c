package zodgen

import (
	"sort"

	"github.com/reoring/zodgen/internal/zod"
	"github.com/reoring/zodgen/ir"
)

// objectFacet is the struct/record rule.
func (t *Translator) objectFacet(w walk, o *ir.Object) (*zod.Expr, error) {
	of := o.Object
	if of == nil {
		of = &ir.ObjectFacet{}
	}
	switch {
	case of.MinProperties != nil:
		return nil, newError(KindUnimplemented, w.path, "object.minProperties", "")
	case of.MaxProperties != nil:
		return nil, newError(KindUnimplemented, w.path, "object.maxProperties", "")
	case len(of.PatternProperties) > 0:
		return nil, newError(KindUnimplemented, w.path, "object.patternProperties", "")
	case of.PropertyNames != nil:
		return nil, newError(KindUnimplemented, w.path, "object.propertyNames", "")
	}

	fields, err := t.properties(w, of)
	if err != nil {
		return nil, err
	}

	switch ap := of.AdditionalProperties.(type) {
	case nil:
		if len(fields) == 0 {
			return zod.Z("object", fields), nil
		}
		if t.cfg.OpenByDefault {
			return t.open(fields), nil
		}
		return zod.Z("object", fields), nil
	case ir.Bool:
		if !ap {
			if len(fields) == 0 {
				return nil, newError(KindUnimplemented, w.path, "object.additionalProperties", "closed object without properties")
			}
			return t.closed(fields), nil
		}
		if len(fields) == 0 {
			return zod.Z("record", zod.Z("string"), t.anyExpr()), nil
		}
		return t.open(fields), nil
	default:
		rest, err := t.schema(w.at("additionalProperties"), ap)
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			return zod.Z("record", zod.Z("string"), rest), nil
		}
		return zod.Z("object", fields).With("catchall", rest), nil
	}
}

// properties translates declared properties in lexicographic key order.
func (t *Translator) properties(w walk, of *ir.ObjectFacet) (zod.ObjectLit, error) {
	keys := make([]string, 0, len(of.Properties))
	for k := range of.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(zod.ObjectLit, 0, len(keys))
	for _, k := range keys {
		pw := w.at("properties", k)
		s := of.Properties[k]
		e, err := t.schema(pw, s)
		if err != nil {
			return nil, err
		}
		if def := defaultOf(s); t.cfg.PropertyDefaults && def != nil {
			v, err := encodeJSON(pw, "metadata.default", def.Value)
			if err != nil {
				return nil, err
			}
			e = e.With("default", v)
		} else if !of.IsRequired(k) && !t.cfg.IgnoreUndefined {
			if e.Last() == "nullable" {
				e = e.ReplaceLast("nullish")
			} else {
				e = e.With("optional")
			}
		}
		key, err := encodeJSON(pw, "object.properties", k)
		if err != nil {
			return nil, err
		}
		fields = append(fields, zod.Field{Key: string(key), Value: e})
	}
	return fields, nil
}

func defaultOf(s ir.Schema) *ir.Literal {
	o, ok := s.(*ir.Object)
	if !ok || o == nil || o.Metadata == nil {
		return nil
	}
	return o.Metadata.Default
}

func (t *Translator) closed(fields zod.ObjectLit) *zod.Expr {
	switch t.cfg.ClosedObjects {
	case ClosedStrictObject:
		return zod.Z("strictObject", fields)
	case ClosedImplicit:
		return zod.Z("object", fields)
	default:
		return zod.Z("object", fields).With("strict")
	}
}

func (t *Translator) open(fields zod.ObjectLit) *zod.Expr {
	switch t.cfg.OpenObjects {
	case OpenLooseObject:
		return zod.Z("looseObject", fields)
	case OpenCatchall:
		return zod.Z("object", fields).With("catchall", t.anyExpr())
	default:
		return zod.Z("object", fields).With("passthrough")
	}
}
