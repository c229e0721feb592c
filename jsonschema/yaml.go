package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/reoring/zodgen/ir"
)

// ImportYAML converts the first document of a YAML stream into IR.
func ImportYAML(data []byte, opts Options) (ir.Schema, Diag, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("jsonschema: invalid YAML: %w", err)
	}
	switch t := node.(type) {
	case bool:
		return Import(t, opts)
	case nil:
		return nil, &simpleDiag{}, errors.New("jsonschema: empty YAML document")
	}
	m := yamlAnyToStringMap(node)
	if m == nil {
		return nil, &simpleDiag{}, fmt.Errorf("jsonschema: YAML root must be a mapping, got %T", node)
	}
	return Import(m, opts)
}

// ImportCRD scans a multi-document YAML bundle for the
// CustomResourceDefinition whose spec.names.kind equals kind and imports
// the openAPIV3Schema of its served version (the first one when version
// is empty).
func ImportCRD(data []byte, kind, version string, opts Options) (ir.Schema, Diag, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &simpleDiag{}, fmt.Errorf("jsonschema: invalid YAML: %w", err)
		}
		m := yamlAnyToStringMap(node)
		if m == nil {
			continue
		}
		if k, _ := m["kind"].(string); k != "CustomResourceDefinition" {
			continue
		}
		spec, _ := m["spec"].(map[string]any)
		names, _ := spec["names"].(map[string]any)
		if k, _ := names["kind"].(string); k != kind {
			continue
		}
		versions, _ := spec["versions"].([]any)
		for _, raw := range versions {
			v, _ := raw.(map[string]any)
			if name, _ := v["name"].(string); version != "" && name != version {
				continue
			}
			sch, _ := v["schema"].(map[string]any)
			if root, ok := sch["openAPIV3Schema"].(map[string]any); ok {
				return Import(root, opts)
			}
		}
		return nil, &simpleDiag{}, fmt.Errorf("jsonschema: CRD %s has no openAPIV3Schema for version %q", kind, version)
	}
	return nil, &simpleDiag{}, fmt.Errorf("jsonschema: CRD kind %q not found in YAML bundle", kind)
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
