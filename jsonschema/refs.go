package jsonschema

import (
	"fmt"
	"strings"

	"github.com/reoring/zodgen/ir"
)

// extractDefs indexes local definitions of the document root by their
// reference string.
func extractDefs(root any) map[string]any {
	doc, ok := root.(map[string]any)
	if !ok {
		return nil
	}
	defs := map[string]any{}
	for _, kw := range []string{"$defs", "definitions"} {
		m, ok := doc[kw].(map[string]any)
		if !ok {
			continue
		}
		for k, v := range m {
			defs["#/"+kw+"/"+escapePointer(k)] = v
		}
	}
	return defs
}

// ref expands a local $ref. Keywords next to $ref take precedence over the
// referenced definition (shallow merge).
func (c *converter) ref(path, ref string, s map[string]any) (ir.Schema, error) {
	rest := make(map[string]any, len(s))
	for k, v := range s {
		if k != "$ref" {
			rest[k] = v
		}
	}
	base, ok := c.defs[normalizeRef(ref)]
	if !ok {
		if c.opts.Strict {
			return nil, fmt.Errorf("jsonschema: %s: $ref %q not supported (local $defs/definitions only)", at(path), ref)
		}
		c.d.warnf("%s: $ref %q not resolved, dropped", at(path), ref)
		if len(rest) == 0 {
			return ir.True, nil
		}
		return c.object(path, rest)
	}
	key := normalizeRef(ref)
	if c.visiting[key] {
		return nil, fmt.Errorf("jsonschema: %s: cyclic $ref %q", at(path), ref)
	}
	c.visiting[key] = true
	defer delete(c.visiting, key)

	switch b := base.(type) {
	case bool:
		if len(rest) == 0 {
			return ir.Bool(b), nil
		}
		if !b {
			return ir.False, nil
		}
		return c.object(path, rest)
	case map[string]any:
		merged := make(map[string]any, len(b)+len(rest))
		for k, v := range b {
			merged[k] = v
		}
		for k, v := range rest {
			merged[k] = v
		}
		return c.object(path, merged)
	default:
		return nil, fmt.Errorf("jsonschema: %s: $ref %q points at %T, not a schema", at(path), ref, base)
	}
}

// normalizeRef maps "#/definitions/A" and "#/$defs/A" to their index key.
// Percent-encoding is not decoded.
func normalizeRef(ref string) string {
	for _, p := range []string{"#/$defs/", "#/definitions/"} {
		if strings.HasPrefix(ref, p) {
			return ref
		}
	}
	return ""
}
