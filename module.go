package zodgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/reoring/zodgen/ir"
)

// Decl is one named schema of a generated module.
type Decl struct {
	Name   string
	Schema ir.Schema
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// reserved words that cannot be used as a const name.
var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true, "continue": true,
	"debugger": true, "default": true, "delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true, "for": true, "function": true,
	"if": true, "import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true, "with": true,
	"let": true, "static": true, "yield": true, "await": true, "z": true,
}

// TranslateModule emits a TypeScript module exporting each declaration as
// a Zod schema and its inferred type:
//
//	import { z } from "zod";
//
//	export const User = z.object({ ... });
//	export type User = z.infer<typeof User>;
//
// With pretty set, each expression goes through the formatter.
func (t *Translator) TranslateModule(decls []Decl, pretty bool) (string, error) {
	var b strings.Builder
	b.WriteString("import { z } from \"zod\";\n")
	seen := make(map[string]bool, len(decls))
	for _, d := range decls {
		if !identRe.MatchString(d.Name) || reserved[d.Name] {
			return "", fmt.Errorf("zodgen: %q is not a valid export name", d.Name)
		}
		if seen[d.Name] {
			return "", fmt.Errorf("zodgen: duplicate export name %q", d.Name)
		}
		seen[d.Name] = true

		expr, err := t.Translate(d.Schema)
		if err != nil {
			return "", fmt.Errorf("zodgen: %s: %w", d.Name, err)
		}
		if pretty {
			if expr, err = t.format(expr); err != nil {
				return "", fmt.Errorf("zodgen: %s: %w", d.Name, err)
			}
			expr = strings.TrimSuffix(strings.TrimRight(expr, "\n"), ";")
		}
		fmt.Fprintf(&b, "\nexport const %s = %s;\n", d.Name, expr)
		fmt.Fprintf(&b, "export type %s = z.infer<typeof %s>;\n", d.Name, d.Name)
	}
	return b.String(), nil
}
