package zodgen

import (
	"fmt"

	"github.com/reoring/zodgen/internal/zod"
	"github.com/reoring/zodgen/ir"
)

// schema is the top-level dispatch every nested node goes through.
func (t *Translator) schema(w walk, s ir.Schema) (*zod.Expr, error) {
	w.depth++
	if w.depth > t.cfg.MaxDepth {
		e := newError(KindDepthExceeded, w.path, "", "")
		e.Params = map[string]any{"limit": t.cfg.MaxDepth}
		return nil, e
	}
	switch v := s.(type) {
	case ir.Bool:
		if v {
			return t.anyExpr(), nil
		}
		return zod.Z("never"), nil
	case *ir.Object:
		if v == nil {
			return nil, newError(KindInvalidSchema, w.path, "", "nil object node")
		}
		return t.object(w, v)
	default:
		return nil, newError(KindUnimplemented, w.path, "", fmt.Sprintf("schema variant %T", s))
	}
}

func (t *Translator) anyExpr() *zod.Expr {
	if t.cfg.PreferUnknown {
		return zod.Z("unknown")
	}
	return zod.Z("any")
}

// object picks the production rule for a structured node. The order of the
// checks is significant: a union node may also look like a literal, and a
// literal node may also declare a type. Enums are only reached through a
// declared type (the string rule delegates to the enum rule).
func (t *Translator) object(w walk, o *ir.Object) (*zod.Expr, error) {
	var rule func(walk, *ir.Object) (*zod.Expr, error)
	var name string
	switch {
	case IsUnion(o):
		rule, name = t.union, "union"
	case IsLiteral(o):
		rule, name = t.literal, "literal"
	case o.Type != nil:
		rule, name = t.typed, "type"
	default:
		return nil, newError(KindInvalidSchema, w.path, "", "node is not a union or literal and declares no type")
	}
	t.log.Debug("zodgen: rule selected", "path", pointerOrRoot(w.path), "rule", name)
	e, err := rule(w, o)
	if err != nil {
		return nil, err
	}
	return t.describe(w, o, e)
}

// describe appends .describe(...) as the outermost modifier.
func (t *Translator) describe(w walk, o *ir.Object, e *zod.Expr) (*zod.Expr, error) {
	if !t.cfg.Descriptions || o.Metadata == nil || o.Metadata.Description == nil {
		return e, nil
	}
	d, err := encodeJSON(w, "metadata.description", *o.Metadata.Description)
	if err != nil {
		return nil, err
	}
	return e.With("describe", d), nil
}

// typed dispatches on the declared type. A set containing null makes the
// result nullable instead of adding a null member.
func (t *Translator) typed(w walk, o *ir.Object) (*zod.Expr, error) {
	switch ts := o.Type.(type) {
	case ir.Single:
		return t.instanceType(w, ir.InstanceType(ts), o)
	case ir.Set:
		if len(ts) == 0 {
			return nil, newError(KindInvalidSchema, w.path, "type", "empty type set")
		}
		tags, nullable := ts.WithoutNull()
		var e *zod.Expr
		switch len(tags) {
		case 0:
			return zod.Z("null"), nil
		case 1:
			var err error
			if e, err = t.instanceType(w, tags[0], o); err != nil {
				return nil, err
			}
		default:
			members := make(zod.Array, 0, len(tags))
			for _, tag := range tags {
				m, err := t.instanceType(w, tag, o)
				if err != nil {
					return nil, err
				}
				members = append(members, m)
			}
			e = zod.Z("union", members)
		}
		if nullable {
			e = e.With("nullable")
		}
		return e, nil
	default:
		return nil, newError(KindUnimplemented, w.path, "type", fmt.Sprintf("type spec %T", o.Type))
	}
}

func (t *Translator) instanceType(w walk, tag ir.InstanceType, o *ir.Object) (*zod.Expr, error) {
	switch tag {
	case ir.TypeNull:
		return zod.Z("null"), nil
	case ir.TypeBoolean:
		return zod.Z("boolean"), nil
	case ir.TypeNumber:
		return t.number(w, false, o)
	case ir.TypeInteger:
		return t.number(w, true, o)
	case ir.TypeString:
		return t.str(w, o)
	case ir.TypeArray:
		return t.array(w, o)
	case ir.TypeObject:
		return t.objectFacet(w, o)
	default:
		return nil, newError(KindInvalidSchema, w.path, "type", fmt.Sprintf("unknown instance type %q", string(tag)))
	}
}
