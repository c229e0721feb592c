// Package jsonschema builds translator IR from JSON Schema documents.
//
// Documents can be raw JSON, YAML, decoded maps, or Go types reflected
// through github.com/invopop/jsonschema. Local $refs are expanded inline;
// the IR has no reference nodes, so recursive definitions are rejected.
package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/reoring/zodgen/ir"
)

// Import converts a JSON Schema document into IR.
// The input can be raw JSON bytes, a decoded map[string]any, a bool, or any
// value that marshals to a JSON Schema document.
func Import(doc any, opts Options) (ir.Schema, Diag, error) {
	d := &simpleDiag{}
	if doc == nil {
		return nil, d, errors.New("jsonschema: nil schema")
	}
	var root any
	switch t := doc.(type) {
	case []byte:
		v, err := decodeJSON(t)
		if err != nil {
			return nil, d, err
		}
		dups, err := duplicateKeys(t)
		if err != nil {
			return nil, d, fmt.Errorf("jsonschema: invalid JSON: %w", err)
		}
		for _, p := range dups {
			if opts.Strict {
				return nil, d, fmt.Errorf("jsonschema: %s: duplicate key", p)
			}
			d.warnf("%s: duplicate key, last value wins", p)
		}
		root = v
	case map[string]any:
		root = t
	case bool:
		root = t
	default:
		// try json.Marshaler style
		b, err := json.Marshal(t)
		if err != nil {
			return nil, d, fmt.Errorf("jsonschema: cannot marshal input: %w", err)
		}
		v, err := decodeJSON(b)
		if err != nil {
			return nil, d, err
		}
		root = v
	}

	c := newConverter(root, opts, d)
	s, err := c.schema("", root)
	return s, d, err
}

// decodeJSON decodes one JSON document keeping numbers as json.Number so
// literal values render exactly as written.
func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("jsonschema: invalid JSON: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("jsonschema: invalid JSON: trailing data after document")
	}
	return v, nil
}
