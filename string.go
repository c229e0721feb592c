package zodgen

import (
	"github.com/reoring/zodgen/internal/zod"
	"github.com/reoring/zodgen/ir"
)

// stringFormats maps JSON Schema format tags to refined Zod constructors.
var stringFormats = map[string]*zod.Expr{
	"email":             zod.Z("email"),
	"uri":               zod.Z("url"),
	"url":               zod.Z("url"),
	"uuid":              zod.Z("uuid"),
	"guid":              zod.Z("guid"),
	"ipv4":              zod.Z("ipv4"),
	"ipv6":              zod.Z("ipv6"),
	"hostname":          zod.Z("hostname"),
	"date-time":         zod.Z("iso.datetime"),
	"partial-date-time": zod.Z("iso.datetime", zod.ObjectLit{{Key: `"local"`, Value: zod.Raw("true")}}),
	"date":              zod.Z("iso.date"),
	"time":              zod.Z("iso.time"),
	"duration":          zod.Z("iso.duration"),
}

// coercedFormats are the formats replaced by z.coerce.date() under CoerceDates.
var coercedFormats = map[string]bool{"date-time": true, "partial-date-time": true, "date": true}

func (t *Translator) str(w walk, o *ir.Object) (*zod.Expr, error) {
	if o.Enum != nil {
		return t.enum(w, o)
	}
	if t.cfg.CoerceDates && coercedFormats[o.Format] {
		return zod.Z("coerce.date"), nil
	}
	e := zod.Z("string")
	if base, ok := stringFormats[o.Format]; ok {
		e = base
	}
	sf := o.String
	if sf == nil {
		return e, nil
	}
	if sf.MinLength != nil && sf.MaxLength != nil && *sf.MinLength == *sf.MaxLength {
		e = e.With("length", formatCount(*sf.MinLength))
	} else {
		if sf.MinLength != nil {
			e = e.With("min", formatCount(*sf.MinLength))
		}
		if sf.MaxLength != nil {
			e = e.With("max", formatCount(*sf.MaxLength))
		}
	}
	if sf.Pattern != nil {
		p, err := encodeJSON(w, "string.pattern", *sf.Pattern)
		if err != nil {
			return nil, err
		}
		e = e.With("regex", zod.New{Ctor: "RegExp", Args: []zod.Node{p}})
	}
	return e, nil
}
