// Package zodgen translates JSON-Schema-shaped IR into Zod schema source.
//
// One IR node produces one Zod expression, recursively:
//
//	t, err := zodgen.New(zodgen.DefaultConfig())
//	expr, err := t.Translate(ir.Struct(map[string]ir.Schema{
//		"name": ir.Typed(ir.TypeString),
//	}, "name"))
//	// z.object({ "name": z.string() })
//
// Design policy:
//   - IR lives in package ir; building it from JSON Schema, YAML or Go types
//     is the job of package jsonschema.
//   - Rules build a small expression AST (internal/zod) and render it once,
//     so modifier rewrites never operate on text.
//   - Translation is all-or-nothing. Failures are *Error values carrying a
//     Kind, the JSON Pointer of the offending node and the facet involved.
//   - The formatter (package pretty by default) only runs in TranslatePretty
//     and TranslateModule.
package zodgen
