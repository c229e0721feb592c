package jsonschema

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	invjs "github.com/invopop/jsonschema"

	"github.com/reoring/zodgen/ir"
)

func defaultReflector() *invjs.Reflector {
	return &invjs.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
}

// Reflect derives IR from a Go value's type using struct tags
// (json, jsonschema) the way github.com/invopop/jsonschema reads them.
func Reflect(v any, opts Options) (ir.Schema, Diag, error) {
	if v == nil {
		return nil, &simpleDiag{}, errors.New("jsonschema: cannot reflect nil")
	}
	r := opts.Reflector
	if r == nil {
		r = defaultReflector()
	}
	return FromInvopop(r.Reflect(v), opts)
}

// FromInvopop converts a schema built with github.com/invopop/jsonschema.
func FromInvopop(s *invjs.Schema, opts Options) (ir.Schema, Diag, error) {
	if s == nil {
		return nil, &simpleDiag{}, errors.New("jsonschema: nil schema")
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("jsonschema: cannot marshal reflected schema: %w", err)
	}
	return Import(b, opts)
}
