package jsonschema

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/zodgen/ir"
)

// annotation keywords that never affect translation and are dropped silently.
var annotationKeys = map[string]bool{
	"$schema": true, "$id": true, "id": true, "$comment": true, "$anchor": true,
	"$defs": true, "definitions": true,
	"examples": true, "readOnly": true, "writeOnly": true, "deprecated": true,
	"discriminator": true, "externalDocs": true, "xml": true, "example": true,
	"contentEncoding": true, "contentMediaType": true,
}

// handled keywords. Anything else (and not x-*) produces a warning.
var knownKeys = map[string]bool{
	"$ref": true, "type": true, "enum": true, "const": true, "format": true,
	"minLength": true, "maxLength": true, "pattern": true,
	"multipleOf": true, "minimum": true, "maximum": true, "exclusiveMinimum": true, "exclusiveMaximum": true,
	"items": true, "prefixItems": true, "additionalItems": true, "minItems": true, "maxItems": true,
	"contains": true, "uniqueItems": true,
	"properties": true, "required": true, "additionalProperties": true, "minProperties": true,
	"maxProperties": true, "patternProperties": true, "propertyNames": true,
	"oneOf": true, "anyOf": true, "allOf": true, "not": true, "if": true, "then": true, "else": true,
	"title": true, "description": true, "default": true, "nullable": true,
}

type converter struct {
	opts     Options
	d        *simpleDiag
	defs     map[string]any // "#/$defs/Name" and "#/definitions/Name" -> definition
	visiting map[string]bool
}

func newConverter(root any, opts Options, d *simpleDiag) *converter {
	return &converter{opts: opts, d: d, defs: extractDefs(root), visiting: make(map[string]bool)}
}

func (c *converter) schema(path string, v any) (ir.Schema, error) {
	switch t := v.(type) {
	case bool:
		return ir.Bool(t), nil
	case map[string]any:
		return c.object(path, t)
	case nil:
		return nil, fmt.Errorf("jsonschema: %s: schema is null", at(path))
	default:
		return nil, fmt.Errorf("jsonschema: %s: schema must be an object or a boolean, got %T", at(path), v)
	}
}

func (c *converter) object(path string, m map[string]any) (ir.Schema, error) {
	if ref, ok := m["$ref"].(string); ok {
		return c.ref(path, ref, m)
	}
	o := &ir.Object{}
	if err := c.typeFacet(path, m, o); err != nil {
		return nil, err
	}
	if err := c.valueFacets(path, m, o); err != nil {
		return nil, err
	}
	if err := c.stringFacet(path, m, o); err != nil {
		return nil, err
	}
	if err := c.numberFacet(path, m, o); err != nil {
		return nil, err
	}
	if err := c.arrayFacet(path, m, o); err != nil {
		return nil, err
	}
	if err := c.objectFacet(path, m, o); err != nil {
		return nil, err
	}
	if err := c.subschemas(path, m, o); err != nil {
		return nil, err
	}
	c.metadata(m, o)
	if err := c.unknownKeys(path, m); err != nil {
		return nil, err
	}
	return o, nil
}

func (c *converter) typeFacet(path string, m map[string]any, o *ir.Object) error {
	switch t := m["type"].(type) {
	case nil:
	case string:
		it, err := ir.ParseInstanceType(t)
		if err != nil {
			return fmt.Errorf("jsonschema: %s: %w", at(path), err)
		}
		o.Type = ir.Single(it)
	case []any:
		set := make(ir.Set, 0, len(t))
		for _, raw := range t {
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("jsonschema: %s: type entries must be strings, got %T", at(path), raw)
			}
			it, err := ir.ParseInstanceType(s)
			if err != nil {
				return fmt.Errorf("jsonschema: %s: %w", at(path), err)
			}
			set = append(set, it)
		}
		o.Type = set
	default:
		return fmt.Errorf("jsonschema: %s: type must be a string or an array, got %T", at(path), t)
	}
	if c.opts.IgnoreNullable || !nullableTrue(m) {
		return nil
	}
	// OpenAPI 3.0: nullable widens the declared type with null.
	switch t := o.Type.(type) {
	case ir.Single:
		o.Type = ir.Set{ir.InstanceType(t), ir.TypeNull}
	case ir.Set:
		if _, hasNull := t.WithoutNull(); !hasNull {
			o.Type = append(append(ir.Set{}, t...), ir.TypeNull)
		}
	default:
		c.d.warnf("%s: nullable without type ignored", at(path))
	}
	return nil
}

func (c *converter) valueFacets(path string, m map[string]any, o *ir.Object) error {
	if raw, ok := m["enum"]; ok {
		vals, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("jsonschema: %s: enum must be an array, got %T", at(path), raw)
		}
		o.Enum = append([]any{}, vals...)
	}
	if v, ok := m["const"]; ok {
		o.Const = &ir.Literal{Value: v}
	}
	if f, ok := m["format"].(string); ok {
		o.Format = f
	}
	return nil
}

func (c *converter) stringFacet(path string, m map[string]any, o *ir.Object) error {
	var sf ir.StringFacet
	set := false
	var err error
	if sf.MinLength, err = c.count(path, m, "minLength"); err != nil {
		return err
	}
	if sf.MaxLength, err = c.count(path, m, "maxLength"); err != nil {
		return err
	}
	if raw, ok := m["pattern"]; ok {
		p, ok := raw.(string)
		if !ok {
			return fmt.Errorf("jsonschema: %s: pattern must be a string, got %T", at(path), raw)
		}
		sf.Pattern = &p
	}
	set = sf.MinLength != nil || sf.MaxLength != nil || sf.Pattern != nil
	if set {
		o.String = &sf
	}
	return nil
}

func (c *converter) numberFacet(path string, m map[string]any, o *ir.Object) error {
	var nf ir.NumberFacet
	var err error
	if nf.MultipleOf, err = c.number(path, m, "multipleOf"); err != nil {
		return err
	}
	if nf.Minimum, err = c.number(path, m, "minimum"); err != nil {
		return err
	}
	if nf.Maximum, err = c.number(path, m, "maximum"); err != nil {
		return err
	}
	// draft-04 spells exclusive bounds as booleans modifying minimum/maximum.
	if b, ok := m["exclusiveMinimum"].(bool); ok {
		if b && nf.Minimum != nil {
			nf.ExclusiveMinimum, nf.Minimum = nf.Minimum, nil
		}
	} else if nf.ExclusiveMinimum, err = c.number(path, m, "exclusiveMinimum"); err != nil {
		return err
	}
	if b, ok := m["exclusiveMaximum"].(bool); ok {
		if b && nf.Maximum != nil {
			nf.ExclusiveMaximum, nf.Maximum = nf.Maximum, nil
		}
	} else if nf.ExclusiveMaximum, err = c.number(path, m, "exclusiveMaximum"); err != nil {
		return err
	}
	if nf != (ir.NumberFacet{}) {
		o.Number = &nf
	}
	return nil
}

func (c *converter) arrayFacet(path string, m map[string]any, o *ir.Object) error {
	var af ir.ArrayFacet
	set := false
	prefix, hasPrefix := m["prefixItems"].([]any)
	switch it := m["items"].(type) {
	case nil:
	case []any:
		// draft-04..07 tuple form
		items, err := c.list(path+"/items", it)
		if err != nil {
			return err
		}
		af.Items, set = ir.TupleItems(items), true
	default:
		s, err := c.schema(path+"/items", it)
		if err != nil {
			return err
		}
		if hasPrefix {
			// 2020-12: items describes the positions after prefixItems.
			af.AdditionalItems = s
		} else {
			af.Items = ir.SingleItem{Schema: s}
		}
		set = true
	}
	if hasPrefix {
		items, err := c.list(path+"/prefixItems", prefix)
		if err != nil {
			return err
		}
		af.Items, set = ir.TupleItems(items), true
	}
	if raw, ok := m["additionalItems"]; ok {
		s, err := c.schema(path+"/additionalItems", raw)
		if err != nil {
			return err
		}
		af.AdditionalItems, set = s, true
	}
	var err error
	if af.MinItems, err = c.count(path, m, "minItems"); err != nil {
		return err
	}
	if af.MaxItems, err = c.count(path, m, "maxItems"); err != nil {
		return err
	}
	if raw, ok := m["contains"]; ok {
		s, err := c.schema(path+"/contains", raw)
		if err != nil {
			return err
		}
		af.Contains, set = s, true
	}
	if raw, ok := m["uniqueItems"]; ok {
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("jsonschema: %s: uniqueItems must be a boolean, got %T", at(path), raw)
		}
		af.UniqueItems, set = &b, true
	}
	if set || af.MinItems != nil || af.MaxItems != nil {
		o.Array = &af
	}
	return nil
}

func (c *converter) objectFacet(path string, m map[string]any, o *ir.Object) error {
	var of ir.ObjectFacet
	set := false
	if raw, ok := m["properties"]; ok {
		pm, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("jsonschema: %s: properties must be an object, got %T", at(path), raw)
		}
		props, err := c.schemaMap(path+"/properties", pm)
		if err != nil {
			return err
		}
		of.Properties, set = props, true
	}
	if raw, ok := m["required"]; ok {
		names, err := requiredNames(path, raw)
		if err != nil {
			return err
		}
		of.Required, set = names, true
	}
	if raw, ok := m["additionalProperties"]; ok {
		s, err := c.schema(path+"/additionalProperties", raw)
		if err != nil {
			return err
		}
		of.AdditionalProperties, set = s, true
	}
	var err error
	if of.MinProperties, err = c.count(path, m, "minProperties"); err != nil {
		return err
	}
	if of.MaxProperties, err = c.count(path, m, "maxProperties"); err != nil {
		return err
	}
	if raw, ok := m["patternProperties"]; ok {
		pm, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("jsonschema: %s: patternProperties must be an object, got %T", at(path), raw)
		}
		props, err := c.schemaMap(path+"/patternProperties", pm)
		if err != nil {
			return err
		}
		of.PatternProperties, set = props, true
	}
	if raw, ok := m["propertyNames"]; ok {
		s, err := c.schema(path+"/propertyNames", raw)
		if err != nil {
			return err
		}
		of.PropertyNames, set = s, true
	}
	if set || of.MinProperties != nil || of.MaxProperties != nil {
		o.Object = &of
	}
	return nil
}

func (c *converter) subschemas(path string, m map[string]any, o *ir.Object) error {
	var sub ir.Subschemas
	set := false
	for _, kw := range []string{"oneOf", "anyOf", "allOf"} {
		raw, ok := m[kw]
		if !ok {
			continue
		}
		arr, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("jsonschema: %s: %s must be an array, got %T", at(path), kw, raw)
		}
		list, err := c.list(path+"/"+kw, arr)
		if err != nil {
			return err
		}
		switch kw {
		case "oneOf":
			sub.OneOf = list
		case "anyOf":
			sub.AnyOf = list
		default:
			sub.AllOf = list
		}
		set = true
	}
	for _, kw := range []string{"not", "if", "then", "else"} {
		raw, ok := m[kw]
		if !ok {
			continue
		}
		s, err := c.schema(path+"/"+kw, raw)
		if err != nil {
			return err
		}
		switch kw {
		case "not":
			sub.Not = s
		case "if":
			sub.If = s
		case "then":
			sub.Then = s
		default:
			sub.Else = s
		}
		set = true
	}
	if set {
		o.Subschemas = &sub
	}
	return nil
}

func (c *converter) metadata(m map[string]any, o *ir.Object) {
	var md ir.Metadata
	set := false
	if t, ok := m["title"].(string); ok {
		md.Title, set = t, true
	}
	if d, ok := m["description"].(string); ok {
		md.Description, set = &d, true
	}
	if v, ok := m["default"]; ok {
		md.Default, set = &ir.Literal{Value: v}, true
	}
	if set {
		o.Metadata = &md
	}
}

func (c *converter) unknownKeys(path string, m map[string]any) error {
	var ignored []string
	for k := range m {
		if knownKeys[k] || annotationKeys[k] || strings.HasPrefix(k, "x-") {
			continue
		}
		ignored = append(ignored, k)
	}
	if len(ignored) == 0 {
		return nil
	}
	sort.Strings(ignored)
	if c.opts.Strict {
		return fmt.Errorf("jsonschema: %s: unsupported keywords %s", at(path), strings.Join(ignored, ", "))
	}
	c.d.warnf("%s: keywords ignored: %s", at(path), strings.Join(ignored, ", "))
	return nil
}

func (c *converter) list(path string, arr []any) ([]ir.Schema, error) {
	out := make([]ir.Schema, 0, len(arr))
	for i, raw := range arr {
		s, err := c.schema(path+"/"+strconv.Itoa(i), raw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *converter) schemaMap(path string, pm map[string]any) (map[string]ir.Schema, error) {
	out := make(map[string]ir.Schema, len(pm))
	for k, raw := range pm {
		s, err := c.schema(path+"/"+escapePointer(k), raw)
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

// number reads an optional numeric keyword.
func (c *converter) number(path string, m map[string]any, key string) (*float64, error) {
	raw, ok := m[key]
	if !ok {
		return nil, nil
	}
	f, ok := toFloat(raw)
	if !ok {
		return nil, fmt.Errorf("jsonschema: %s: %s must be a number, got %T", at(path), key, raw)
	}
	return &f, nil
}

// count reads an optional non-negative integer keyword.
func (c *converter) count(path string, m map[string]any, key string) (*uint64, error) {
	raw, ok := m[key]
	if !ok {
		return nil, nil
	}
	f, ok := toFloat(raw)
	if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt64 {
		return nil, fmt.Errorf("jsonschema: %s: %s must be a non-negative integer, got %v", at(path), key, raw)
	}
	n := uint64(f)
	return &n, nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case uint:
		return float64(t), true
	}
	return 0, false
}

func requiredNames(path string, raw any) ([]string, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("jsonschema: %s: required must be an array, got %T", at(path), raw)
	}
	names := make([]string, 0, len(arr))
	for _, r := range arr {
		s, ok := r.(string)
		if !ok {
			return nil, fmt.Errorf("jsonschema: %s: required entries must be strings, got %T", at(path), r)
		}
		names = append(names, s)
	}
	return names, nil
}

// nullableTrue reports whether OpenAPI 3.0 style nullable is enabled.
func nullableTrue(m map[string]any) bool {
	b, ok := m["nullable"].(bool)
	return ok && b
}

func at(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func escapePointer(s string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}
