package jsonschema

import (
	"fmt"

	invjs "github.com/invopop/jsonschema"
)

// Options controls how JSON Schema documents are imported into IR.
type Options struct {
	// Strict turns ignored keywords and unresolved $refs into errors
	// instead of warnings.
	Strict bool
	// IgnoreNullable disables OpenAPI 3.0 "nullable: true" handling.
	IgnoreNullable bool
	// Reflector is used by Reflect. nil selects a reflector that inlines
	// every type (DoNotReference, ExpandedStruct).
	Reflector *invjs.Reflector
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
