package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/zodgen/ir"
)

func TestImportYAML(t *testing.T) {
	s, _, err := ImportYAML([]byte(`
type: object
properties:
  port:
    type: integer
    maximum: 65535
required: [port]
`), Options{})
	require.NoError(t, err)
	o := s.(*ir.Object)
	port := o.Object.Properties["port"].(*ir.Object)
	assert.Equal(t, ir.Single(ir.TypeInteger), port.Type)
	assert.Equal(t, 65535.0, *port.Number.Maximum)

	_, _, err = ImportYAML([]byte("- a\n- b\n"), Options{})
	require.Error(t, err)
}

const crdBundle = `
apiVersion: v1
kind: ConfigMap
metadata: {name: unrelated}
---
apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata: {name: widgets.example.com}
spec:
  names: {kind: Widget}
  versions:
    - name: v1alpha1
      schema:
        openAPIV3Schema:
          type: object
          properties:
            size: {type: string}
    - name: v1
      schema:
        openAPIV3Schema:
          type: object
          properties:
            size: {type: integer, nullable: true}
`

func TestImportCRD(t *testing.T) {
	s, _, err := ImportCRD([]byte(crdBundle), "Widget", "v1", Options{})
	require.NoError(t, err)
	size := s.(*ir.Object).Object.Properties["size"].(*ir.Object)
	assert.Equal(t, ir.Set{ir.TypeInteger, ir.TypeNull}, size.Type)

	s, _, err = ImportCRD([]byte(crdBundle), "Widget", "", Options{})
	require.NoError(t, err)
	size = s.(*ir.Object).Object.Properties["size"].(*ir.Object)
	assert.Equal(t, ir.Single(ir.TypeString), size.Type)

	_, _, err = ImportCRD([]byte(crdBundle), "Gadget", "", Options{})
	require.Error(t, err)
	_, _, err = ImportCRD([]byte(crdBundle), "Widget", "v2", Options{})
	require.Error(t, err)
}
