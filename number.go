package zodgen

import (
	"github.com/reoring/zodgen/internal/zod"
	"github.com/reoring/zodgen/ir"
)

// number handles both number and integer. Modifier order is fixed:
// multipleOf, minimum, exclusiveMinimum, maximum, exclusiveMaximum.
func (t *Translator) number(w walk, isInt bool, o *ir.Object) (*zod.Expr, error) {
	e := zod.Z("number")
	if isInt {
		e = e.With("int")
	}
	nf := o.Number
	if nf == nil {
		return e, nil
	}
	minimum := nf.Minimum
	if isInt && t.cfg.NonNegativeInt && minimum != nil && *minimum == 0 {
		e = e.With("nonnegative")
		minimum = nil
	}
	lower, upper := "min", "max"
	if t.cfg.ExplicitMinMax {
		lower, upper = "gte", "lte"
	}
	steps := []struct {
		mod   string
		facet string
		v     *float64
	}{
		{"multipleOf", "number.multipleOf", nf.MultipleOf},
		{lower, "number.minimum", minimum},
		{"gt", "number.exclusiveMinimum", nf.ExclusiveMinimum},
		{upper, "number.maximum", nf.Maximum},
		{"lt", "number.exclusiveMaximum", nf.ExclusiveMaximum},
	}
	for _, s := range steps {
		if s.v == nil {
			continue
		}
		n, err := formatNumber(w, s.facet, *s.v)
		if err != nil {
			return nil, err
		}
		e = e.With(s.mod, n)
	}
	return e, nil
}
